// Package invoke binds Go functions for buffer-backed invocation.
//
// Bind compiles a function's parameter list into an argument record
// schema once, at setup time. Each call then supplies the arguments as a
// raw little-endian buffer whose length must equal the schema's record
// size; Invoke decodes every field at its recorded offset, calls the
// function and returns its results.
//
//	c, err := invoke.Bind(func(a, b int32) int32 { return a + b })
//	// c.Size() == 8
//
//	args := c.NewArgs()
//	args.Set(0, int32(40))
//	args.Set(1, int32(2))
//	results, err := c.Invoke(args.Bytes())
//
// # Safety
//
// There is no undefined behavior at the invocation boundary. A buffer of
// the wrong length fails with a size_mismatch error before any byte is
// read. Ref fields carry handles, not raw pointers; a handle that does
// not resolve, resolves to a value of the wrong type, or is zero fails
// with invalid_handle, type_mismatch or nil_pointer respectively.
//
// # By-Reference Parameters
//
// Pointer parameters receive the registered pointer itself, so the
// callee observes and can mutate the caller's cell:
//
//	table := handle.NewTable()
//	c, _ := invoke.Bind(func(p *int32) int32 { *p++; return *p },
//	    invoke.WithHandles(table))
//
// The invocation borrows the buffer only for the duration of the call
// and never retains it. Buffers must not be shared between concurrent
// invocations.
package invoke
