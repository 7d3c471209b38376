package invoke

import (
	"math"

	"github.com/wippyai/callbuf"
	"github.com/wippyai/callbuf/errors"
	"github.com/wippyai/callbuf/handle"
	"github.com/wippyai/callbuf/sig"
)

// Args builds an argument buffer for one Callable, writing each value at
// its recorded field offset. The resulting buffer always has the exact
// required size.
type Args struct {
	sig *sig.Signature
	buf callbuf.Buffer
}

// NewArgs allocates a zeroed argument buffer sized for the callable.
func (c *Callable) NewArgs() *Args {
	return &Args{
		sig: c.sig,
		buf: callbuf.NewBuffer(c.sig.Size()),
	}
}

// Bytes returns the underlying buffer. Ref fields left unset read as
// handle 0 and are rejected at invocation.
func (a *Args) Bytes() callbuf.Buffer {
	return a.buf
}

// Set coerces value into field i's kind and writes it. Integer values are
// range-checked against the field's width; out-of-range values are
// overflow errors, never truncated silently.
func (a *Args) Set(i int, value any) error {
	if i < 0 || i >= a.sig.NumFields() {
		return errors.OutOfBounds(errors.PhaseEncode, nil, i, a.sig.NumFields())
	}
	f := a.sig.Field(i)
	path := []string{argName(i)}

	switch {
	case f.Kind == sig.KindBool:
		b, ok := value.(bool)
		if !ok {
			return errors.TypeMismatch(errors.PhaseEncode, path, typeName(value), "bool")
		}
		var raw uint8
		if b {
			raw = 1
		}
		return a.buf.WriteU8(f.Offset, raw)

	case f.Kind == sig.KindRef:
		h, ok := value.(handle.Handle)
		if !ok {
			return errors.TypeMismatch(errors.PhaseEncode, path, typeName(value), "handle.Handle")
		}
		return a.SetRef(i, h)

	case f.Kind.IsFloat():
		fv, ok := coerceToFloat64(value)
		if !ok {
			return errors.TypeMismatch(errors.PhaseEncode, path, typeName(value), f.Kind.String())
		}
		if f.Kind == sig.KindF32 {
			return a.buf.WriteU32(f.Offset, math.Float32bits(float32(fv)))
		}
		return a.buf.WriteU64(f.Offset, math.Float64bits(fv))

	case f.Kind.IsSigned():
		sv, ok := coerceToInt64(value)
		if !ok {
			return errors.TypeMismatch(errors.PhaseEncode, path, typeName(value), f.Kind.String())
		}
		if !fitsSigned(sv, f.Size) {
			return errors.Overflow(errors.PhaseEncode, path, value, f.Type.String())
		}
		return writeRaw(a.buf, f.Offset, f.Size, uint64(sv))

	default:
		uv, ok := coerceToUint64(value)
		if !ok {
			return errors.TypeMismatch(errors.PhaseEncode, path, typeName(value), f.Kind.String())
		}
		if !fitsUnsigned(uv, f.Size) {
			return errors.Overflow(errors.PhaseEncode, path, value, f.Type.String())
		}
		return writeRaw(a.buf, f.Offset, f.Size, uv)
	}
}

// SetRef writes a handle into ref field i. The handle is validated at
// invocation, when it is resolved against the callable's table.
func (a *Args) SetRef(i int, h handle.Handle) error {
	if i < 0 || i >= a.sig.NumFields() {
		return errors.OutOfBounds(errors.PhaseEncode, nil, i, a.sig.NumFields())
	}
	f := a.sig.Field(i)
	if f.Kind != sig.KindRef {
		return errors.TypeMismatch(errors.PhaseEncode, []string{argName(i)},
			"handle.Handle", f.Type.String())
	}
	return a.buf.WriteU32(f.Offset, uint32(h))
}

func writeRaw(buf callbuf.Buffer, offset, size uint32, raw uint64) error {
	switch size {
	case 1:
		return buf.WriteU8(offset, uint8(raw))
	case 2:
		return buf.WriteU16(offset, uint16(raw))
	case 4:
		return buf.WriteU32(offset, uint32(raw))
	default:
		return buf.WriteU64(offset, raw)
	}
}

func fitsSigned(v int64, size uint32) bool {
	switch size {
	case 1:
		return v >= math.MinInt8 && v <= math.MaxInt8
	case 2:
		return v >= math.MinInt16 && v <= math.MaxInt16
	case 4:
		return v >= math.MinInt32 && v <= math.MaxInt32
	default:
		return true
	}
}

func fitsUnsigned(v uint64, size uint32) bool {
	switch size {
	case 1:
		return v <= math.MaxUint8
	case 2:
		return v <= math.MaxUint16
	case 4:
		return v <= math.MaxUint32
	default:
		return true
	}
}
