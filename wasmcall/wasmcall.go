package wasmcall

import (
	"context"
	"strconv"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/callbuf"
	"github.com/wippyai/callbuf/errors"
	"github.com/wippyai/callbuf/internal/layout"
)

// Function is a wazero-exported function bound for buffer-backed
// invocation. The argument record layout is computed from the export's
// core value types: i32/f32 occupy 4 bytes, i64/f64 occupy 8, each at
// its natural alignment.
type Function struct {
	fn      api.Function
	name    string
	offsets []uint32
	sizes   []uint32
	size    uint32
}

// Bind computes the argument record layout for an exported function.
// Reference types (funcref, externref) and v128 have no raw-buffer
// representation and are rejected.
func Bind(fn api.Function) (*Function, error) {
	if fn == nil {
		return nil, errors.NilPointer(errors.PhaseBind, nil, "api.Function")
	}

	def := fn.Definition()
	params := def.ParamTypes()

	offsets := make([]uint32, len(params))
	sizes := make([]uint32, len(params))
	maxAlign := uint32(1)
	offset := uint32(0)

	for i, vt := range params {
		var size uint32
		switch vt {
		case api.ValueTypeI32, api.ValueTypeF32:
			size = 4
		case api.ValueTypeI64, api.ValueTypeF64:
			size = 8
		default:
			return nil, errors.Unsupported(errors.PhaseBind,
				[]string{argName(i)},
				"core value type "+api.ValueTypeName(vt))
		}

		offset = layout.AlignTo(offset, size)
		offsets[i] = offset
		sizes[i] = size
		if size > maxAlign {
			maxAlign = size
		}
		offset += size
	}

	return &Function{
		fn:      fn,
		name:    def.DebugName(),
		offsets: offsets,
		sizes:   sizes,
		size:    layout.AlignTo(offset, maxAlign),
	}, nil
}

// Size returns the exact byte length Invoke requires of its buffer.
func (f *Function) Size() uint32 {
	return f.size
}

// Name returns the bound export's debug name.
func (f *Function) Name() string {
	return f.name
}

// Invoke decodes buf into the core value stack and calls the function.
// Results come back in wazero's uint64 encoding. A trap or runtime
// failure inside the guest is reported as a trap error wrapping the
// engine's error.
func (f *Function) Invoke(ctx context.Context, buf callbuf.Buffer) ([]uint64, error) {
	if uint32(len(buf)) != f.size {
		return nil, errors.SizeMismatch(errors.PhaseInvoke, uint32(len(buf)), f.size)
	}

	stack := make([]uint64, len(f.sizes))
	for i := range f.sizes {
		if f.sizes[i] == 4 {
			v, err := buf.ReadU32(f.offsets[i])
			if err != nil {
				return nil, err
			}
			stack[i] = uint64(v)
		} else {
			v, err := buf.ReadU64(f.offsets[i])
			if err != nil {
				return nil, err
			}
			stack[i] = v
		}
	}

	results, err := f.fn.Call(ctx, stack...)
	if err != nil {
		return nil, errors.Trap(f.name, err)
	}
	return results, nil
}

func argName(i int) string {
	return "arg" + strconv.Itoa(i)
}
