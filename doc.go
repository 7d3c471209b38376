// Package callbuf provides buffer-backed invocation of statically-typed
// functions, plus a sentinel-coded optional container.
//
// A caller that does not statically know a function's parameter types can
// still call it: the function is bound once at setup time, its parameter
// list is compiled into a fixed argument record layout, and each call
// supplies the arguments as a raw byte buffer matching that layout.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	callbuf/         Root package with the raw Buffer type
//	├── sig/         Signature derivation and argument record layout
//	├── invoke/      Binding Go functions and invoking them from buffers
//	├── handle/      Handle table for by-reference arguments
//	├── wasmcall/    The same convention over wazero-exported functions
//	├── optional/    Sentinel-coded optional values
//	└── errors/      Structured error types for debugging
//
// # Quick Start
//
// Bind a function and call it through a buffer:
//
//	c, err := invoke.Bind(func(a, b int32) int32 { return a + b })
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	args := c.NewArgs()
//	args.Set(0, int32(40))
//	args.Set(1, int32(2))
//
//	results, err := c.Invoke(args.Bytes())
//	fmt.Println(results[0]) // 42
//
// # Argument Record Layout
//
// Parameters are laid out like a C struct: each field is aligned to its
// natural alignment and the total size is rounded up to the record's
// maximum alignment:
//
//	Type            Size    Alignment
//	──────────────────────────────────
//	bool            1       1
//	uint8/int8      1       1
//	uint16/int16    2       2
//	uint32/int32    4       4
//	uint64/int64    8       8
//	float32         4       4
//	float64         8       8
//	int/uint        platform word size
//	pointer         4       4 (handle)
//
// Buffer contents are little-endian. A buffer whose length does not equal
// the record size is rejected with a size_mismatch error; the library
// never reinterprets misaligned or truncated memory.
//
// # By-Reference Arguments
//
// Pointer parameters do not place raw Go pointers into byte buffers.
// The caller registers the target cell in a handle table and embeds the
// 4-byte handle instead; the callee receives the registered pointer and
// can write through it:
//
//	table := handle.NewTable()
//	c, _ := invoke.Bind(func(p *int32) int32 { *p++; return *p },
//	    invoke.WithHandles(table))
//
//	cell := int32(42)
//	args := c.NewArgs()
//	args.SetRef(0, table.Register(&cell))
//
//	results, _ := c.Invoke(args.Bytes())
//	// results[0] == int32(43), cell == 43
//
// # Thread Safety
//
// Signature and Callable are immutable after binding and safe for
// concurrent use. Buffers are not: give each invocation its own buffer.
// The invocation never retains a buffer past the call that consumed it.
package callbuf
