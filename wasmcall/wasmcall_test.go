package wasmcall

import (
	"context"
	"errors"
	"testing"

	"github.com/tetratelabs/wazero"

	"github.com/wippyai/callbuf"
	cberrors "github.com/wippyai/callbuf/errors"
)

// Hand-assembled module with three exports:
//
//	(func (export "add") (param i32 i32) (result i32)
//	  local.get 0 local.get 1 i32.add)
//	(func (export "mix") (param i32 i64) (result i64)
//	  local.get 0 i64.extend_i32_u local.get 1 i64.add)
//	(func (export "boom") (result i32) unreachable)
var testModule = []byte{
	0x00, 0x61, 0x73, 0x6d, // magic
	0x01, 0x00, 0x00, 0x00, // version 1

	// type section: (i32,i32)->i32, (i32,i64)->i64, ()->i32
	0x01, 0x11, 0x03,
	0x60, 0x02, 0x7f, 0x7f, 0x01, 0x7f,
	0x60, 0x02, 0x7f, 0x7e, 0x01, 0x7e,
	0x60, 0x00, 0x01, 0x7f,

	// function section: three functions, type indices 0 1 2
	0x03, 0x04, 0x03, 0x00, 0x01, 0x02,

	// export section
	0x07, 0x14, 0x03,
	0x03, 'a', 'd', 'd', 0x00, 0x00,
	0x03, 'm', 'i', 'x', 0x00, 0x01,
	0x04, 'b', 'o', 'o', 'm', 0x00, 0x02,

	// code section
	0x0a, 0x16, 0x03,
	0x07, 0x00, 0x20, 0x00, 0x20, 0x01, 0x6a, 0x0b,
	0x08, 0x00, 0x20, 0x00, 0xad, 0x20, 0x01, 0x7c, 0x0b,
	0x03, 0x00, 0x00, 0x0b,
}

func TestInvokeAdd(t *testing.T) {
	ctx := context.Background()
	r := wazero.NewRuntime(ctx)
	defer r.Close(ctx)

	mod, err := r.Instantiate(ctx, testModule)
	if err != nil {
		t.Fatalf("instantiate: %v", err)
	}

	f, err := Bind(mod.ExportedFunction("add"))
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if f.Size() != 8 {
		t.Fatalf("Size: got %d, want 8", f.Size())
	}

	buf := callbuf.NewBuffer(f.Size())
	buf.WriteU32(0, 40)
	buf.WriteU32(4, 2)

	results, err := f.Invoke(ctx, buf)
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if len(results) != 1 || uint32(results[0]) != 42 {
		t.Errorf("results: got %v, want [42]", results)
	}
}

func TestInvokeMixedWidths(t *testing.T) {
	ctx := context.Background()
	r := wazero.NewRuntime(ctx)
	defer r.Close(ctx)

	mod, err := r.Instantiate(ctx, testModule)
	if err != nil {
		t.Fatalf("instantiate: %v", err)
	}

	f, err := Bind(mod.ExportedFunction("mix"))
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	// i32 at 0, i64 aligned to 8, record padded to 16
	if f.Size() != 16 {
		t.Fatalf("Size: got %d, want 16", f.Size())
	}

	buf := callbuf.NewBuffer(f.Size())
	buf.WriteU32(0, 2)
	buf.WriteU64(8, 40)

	results, err := f.Invoke(ctx, buf)
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if len(results) != 1 || results[0] != 42 {
		t.Errorf("results: got %v, want [42]", results)
	}
}

func TestInvokeSizeMismatch(t *testing.T) {
	ctx := context.Background()
	r := wazero.NewRuntime(ctx)
	defer r.Close(ctx)

	mod, err := r.Instantiate(ctx, testModule)
	if err != nil {
		t.Fatalf("instantiate: %v", err)
	}

	f, err := Bind(mod.ExportedFunction("add"))
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}

	for _, n := range []uint32{0, 4, 7, 12} {
		_, err := f.Invoke(ctx, callbuf.NewBuffer(n))
		if !errors.Is(err, &cberrors.Error{Phase: cberrors.PhaseInvoke, Kind: cberrors.KindSizeMismatch}) {
			t.Errorf("buffer of %d bytes: got %v, want size_mismatch", n, err)
		}
	}
}

func TestInvokeTrap(t *testing.T) {
	ctx := context.Background()
	r := wazero.NewRuntime(ctx)
	defer r.Close(ctx)

	mod, err := r.Instantiate(ctx, testModule)
	if err != nil {
		t.Fatalf("instantiate: %v", err)
	}

	f, err := Bind(mod.ExportedFunction("boom"))
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if f.Size() != 0 {
		t.Fatalf("Size: got %d, want 0", f.Size())
	}

	_, err = f.Invoke(ctx, callbuf.Buffer{})
	if err == nil {
		t.Fatal("unreachable should trap")
	}
	if !errors.Is(err, &cberrors.Error{Phase: cberrors.PhaseInvoke, Kind: cberrors.KindTrap}) {
		t.Errorf("got %v, want invoke/trap", err)
	}
}

func TestBindNil(t *testing.T) {
	_, err := Bind(nil)
	if !errors.Is(err, &cberrors.Error{Phase: cberrors.PhaseBind, Kind: cberrors.KindNilPointer}) {
		t.Errorf("got %v, want bind/nil_pointer", err)
	}
}
