package main

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/callbuf/handle"
)

var (
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectFunc modelState = iota
	stateInputArgs
	stateShowResult
)

type interactiveModel struct {
	err      error
	table    *handle.Table
	bindings []binding
	inputs   []textinput.Model
	result   string
	selected int
	focusIdx int
	state    modelState
}

type callResultMsg struct {
	err    error
	result string
}

func runInteractive() error {
	table := handle.NewTable()
	bindings, err := bindDemos(table)
	if err != nil {
		return err
	}

	m := &interactiveModel{
		table:    table,
		bindings: bindings,
		state:    stateSelectFunc,
	}
	_, err = tea.NewProgram(m).Run()
	return err
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			// while typing arguments "q" is just a character
			if m.state != stateInputArgs {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectFunc && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectFunc && m.selected < len(m.bindings)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectFunc:
				m.prepareInputs()
				if len(m.inputs) == 0 {
					return m, m.callFunction
				}
				m.state = stateInputArgs

			case stateInputArgs:
				return m, m.callFunction

			case stateShowResult:
				m.state = stateSelectFunc
				m.result = ""
				m.err = nil
			}

		case "tab":
			if m.state == stateInputArgs && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			switch m.state {
			case stateInputArgs:
				m.state = stateSelectFunc
				m.inputs = nil
			case stateShowResult:
				m.state = stateSelectFunc
				m.result = ""
				m.err = nil
			}
		}

	case callResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
		return m, nil
	}

	if m.state == stateInputArgs && len(m.inputs) > 0 {
		var cmd tea.Cmd
		m.inputs[m.focusIdx], cmd = m.inputs[m.focusIdx].Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) prepareInputs() {
	b := m.bindings[m.selected]
	s := b.callable.Signature()

	m.inputs = make([]textinput.Model, s.NumFields())
	for i, f := range s.Fields() {
		ti := textinput.New()
		ti.Placeholder = f.Kind.String()
		ti.CharLimit = 32
		ti.Width = 20
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

func (m *interactiveModel) callFunction() tea.Msg {
	b := m.bindings[m.selected]
	s := b.callable.Signature()

	args := b.callable.NewArgs()
	cells := make([]reflect.Value, s.NumFields())
	for i, f := range s.Fields() {
		cell, err := setArg(args, m.table, f, i, strings.TrimSpace(m.inputs[i].Value()))
		if err != nil {
			return callResultMsg{err: fmt.Errorf("arg%d: %w", i, err)}
		}
		cells[i] = cell
	}

	results, err := b.callable.Invoke(args.Bytes())
	if err != nil {
		return callResultMsg{err: err}
	}

	var out strings.Builder
	for i, r := range results {
		fmt.Fprintf(&out, "result[%d] = %v\n", i, r)
	}
	for i, cell := range cells {
		if cell.IsValid() {
			fmt.Fprintf(&out, "*arg%d = %v\n", i, cell.Elem().Interface())
		}
	}
	return callResultMsg{result: out.String()}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("callbuf"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectFunc:
		for i, bd := range m.bindings {
			line := fmt.Sprintf("%s  %s", bd.name, bd.callable.Signature())
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + nameStyle.Render(bd.name) + "  " + typeStyle.Render(bd.callable.Signature().String()))
			}
			b.WriteByte('\n')
		}
		b.WriteString(helpStyle.Render("\n↑/↓ select · enter call · q quit\n"))

	case stateInputArgs:
		bd := m.bindings[m.selected]
		b.WriteString(nameStyle.Render(bd.name))
		b.WriteString("  ")
		b.WriteString(typeStyle.Render(bd.callable.Signature().String()))
		b.WriteString("\n\n")
		for i := range m.inputs {
			fmt.Fprintf(&b, "arg%d: %s\n", i, m.inputs[i].View())
		}
		b.WriteString(helpStyle.Render("\ntab next field · enter call · esc back\n"))

	case stateShowResult:
		if m.err != nil {
			b.WriteString(errorStyle.Render(m.err.Error()))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString(helpStyle.Render("\nenter continue · q quit\n"))
	}

	return b.String()
}
