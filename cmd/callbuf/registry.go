package main

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/wippyai/callbuf/handle"
	"github.com/wippyai/callbuf/invoke"
	"github.com/wippyai/callbuf/sig"
)

// demo is one sample function exposed by the binary.
type demo struct {
	fn   any
	name string
	desc string
}

var demos = []demo{
	{
		name: "add",
		desc: "32-bit addition",
		fn:   func(a, b int32) int32 { return a + b },
	},
	{
		name: "scale",
		desc: "multiply a float by a factor",
		fn:   func(x, factor float64) float64 { return x * factor },
	},
	{
		name: "clamp",
		desc: "clamp a value into [lo, hi]",
		fn: func(v, lo, hi int64) int64 {
			if v < lo {
				return lo
			}
			if v > hi {
				return hi
			}
			return v
		},
	},
	{
		name: "divmod",
		desc: "quotient and remainder",
		fn:   func(a, b uint32) (uint32, uint32) { return a / b, a % b },
	},
	{
		name: "inc",
		desc: "increment a cell through a reference",
		fn:   func(p *int32) int32 { *p++; return *p },
	},
}

// binding pairs a demo with its bound callable.
type binding struct {
	demo
	callable *invoke.Callable
}

func bindDemos(table *handle.Table) ([]binding, error) {
	bindings := make([]binding, 0, len(demos))
	for _, d := range demos {
		c, err := invoke.Bind(d.fn, invoke.WithHandles(table))
		if err != nil {
			return nil, fmt.Errorf("bind %s: %w", d.name, err)
		}
		bindings = append(bindings, binding{demo: d, callable: c})
	}
	return bindings, nil
}

func findBinding(bindings []binding, name string) (binding, bool) {
	for _, b := range bindings {
		if b.name == name {
			return b, true
		}
	}
	return binding{}, false
}

// setArg parses raw and writes it into field i. Ref fields get a fresh
// cell registered in the table; the returned cell is non-nil in that case
// so the caller can show the mutated value after the call.
func setArg(args *invoke.Args, table *handle.Table, f sig.Field, i int, raw string) (reflect.Value, error) {
	if f.Kind == sig.KindRef {
		cell := reflect.New(f.Type.Elem())
		if err := setScalar(cell.Elem(), raw); err != nil {
			return reflect.Value{}, err
		}
		return cell, args.SetRef(i, table.Register(cell.Interface()))
	}

	v, err := parseScalar(f, raw)
	if err != nil {
		return reflect.Value{}, err
	}
	return reflect.Value{}, args.Set(i, v)
}

func parseScalar(f sig.Field, raw string) (any, error) {
	switch {
	case f.Kind == sig.KindBool:
		return strconv.ParseBool(raw)
	case f.Kind.IsFloat():
		return strconv.ParseFloat(raw, 64)
	case f.Kind.IsSigned():
		return strconv.ParseInt(raw, 10, 64)
	default:
		return strconv.ParseUint(raw, 10, 64)
	}
}

func setScalar(v reflect.Value, raw string) error {
	switch v.Kind() {
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		x, err := strconv.ParseFloat(raw, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(x)
	default:
		return fmt.Errorf("cannot parse %q into %s", raw, v.Type())
	}
	return nil
}
