// Package wasmcall applies the buffer-backed calling convention to
// functions exported by a wazero module.
//
// A WebAssembly export already is a function whose parameter types are
// only known at runtime, which makes it the natural foreign-function
// target for this library: Bind reads the export's core value types and
// computes the argument record layout, and Invoke decodes a raw buffer
// into the core value stack and calls through the engine.
//
//	mod, _ := r.Instantiate(ctx, wasmBinary)
//	f, _ := wasmcall.Bind(mod.ExportedFunction("add"))
//
//	buf := callbuf.NewBuffer(f.Size())
//	buf.WriteU32(0, 40)
//	buf.WriteU32(4, 2)
//
//	results, _ := f.Invoke(ctx, buf) // results[0] == 42
//
// The size contract is the same as for Go functions: a buffer whose
// length differs from Size fails with size_mismatch before the engine is
// entered. Guest traps surface as trap errors wrapping wazero's error.
package wasmcall
