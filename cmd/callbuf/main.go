package main

import (
	"flag"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/callbuf/handle"
	"github.com/wippyai/callbuf/invoke"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func main() {
	var (
		list        = flag.Bool("list", false, "List demo functions with their record layouts and exit")
		funcName    = flag.String("func", "", "Function to call")
		argList     = flag.String("args", "", "Arguments (comma-separated)")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Enable debug logging")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		invoke.SetLogger(logger)
	}

	if !*list && *funcName == "" && !*interactive {
		fmt.Fprintln(os.Stderr, "Usage: callbuf -list")
		fmt.Fprintln(os.Stderr, "       callbuf -func <name> -args <v1,v2,...>")
		fmt.Fprintln(os.Stderr, "       callbuf -i  (interactive mode)")
		os.Exit(1)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*funcName, *argList, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(funcName, argList string, listOnly bool) error {
	table := handle.NewTable()
	bindings, err := bindDemos(table)
	if err != nil {
		return err
	}

	if listOnly {
		printLayouts(bindings)
		return nil
	}

	b, ok := findBinding(bindings, funcName)
	if !ok {
		return fmt.Errorf("unknown function %q (try -list)", funcName)
	}

	var raw []string
	if argList != "" {
		raw = strings.Split(argList, ",")
	}
	s := b.callable.Signature()
	if len(raw) != s.NumFields() {
		return fmt.Errorf("%s takes %d arguments, got %d", b.name, s.NumFields(), len(raw))
	}

	args := b.callable.NewArgs()
	cells := make([]reflect.Value, s.NumFields())
	for i, f := range s.Fields() {
		cell, err := setArg(args, table, f, i, strings.TrimSpace(raw[i]))
		if err != nil {
			return fmt.Errorf("arg%d: %w", i, err)
		}
		cells[i] = cell
	}

	results, err := b.callable.Invoke(args.Bytes())
	if err != nil {
		return err
	}

	for i, r := range results {
		fmt.Printf("result[%d] = %v\n", i, r)
	}
	for i, cell := range cells {
		if cell.IsValid() {
			fmt.Printf("*arg%d = %v\n", i, cell.Elem().Interface())
		}
	}
	return nil
}

func printLayouts(bindings []binding) {
	fmt.Println(headerStyle.Render("callbuf demo functions"))
	fmt.Println()

	for _, b := range bindings {
		s := b.callable.Signature()
		fmt.Printf("%s  %s\n", nameStyle.Render(b.name), typeStyle.Render(s.String()))
		fmt.Printf("  %s\n", dimStyle.Render(b.desc))
		for i, f := range s.Fields() {
			fmt.Printf("  arg%d  %-6s offset=%-3d size=%d\n", i, f.Kind, f.Offset, f.Size)
		}
		fmt.Printf("  record size: %d bytes\n\n", b.callable.Size())
	}
}
