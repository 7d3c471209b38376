package invoke

import (
	"fmt"
	"math"
	"reflect"

	"go.uber.org/zap"

	"github.com/wippyai/callbuf"
	"github.com/wippyai/callbuf/errors"
	"github.com/wippyai/callbuf/handle"
	"github.com/wippyai/callbuf/sig"
)

// Callable is a function bound for buffer-backed invocation. Binding
// happens once per target function; Callable is immutable afterwards and
// safe for concurrent use, as long as each Invoke gets its own buffer.
type Callable struct {
	fn      reflect.Value
	sig     *sig.Signature
	handles *handle.Table
}

// Option configures a Callable at bind time.
type Option func(*Callable)

// WithHandles attaches the handle table used to resolve by-reference
// arguments. Required when the signature has pointer parameters.
func WithHandles(t *handle.Table) Option {
	return func(c *Callable) {
		c.handles = t
	}
}

// Bind compiles fn's parameter list into an argument record schema and
// returns a Callable. Nil functions, unsupported parameter kinds,
// variadic functions and ref parameters without a handle table are
// rejected here, not at call time.
func Bind(fn any, opts ...Option) (*Callable, error) {
	s, err := sig.Of(fn)
	if err != nil {
		return nil, err
	}

	c := &Callable{fn: reflect.ValueOf(fn), sig: s}
	if c.fn.IsNil() {
		return nil, errors.NilPointer(errors.PhaseBind, nil, c.fn.Type().String())
	}
	for _, opt := range opts {
		opt(c)
	}

	if s.HasRefs() && c.handles == nil {
		return nil, errors.InvalidInput(errors.PhaseBind,
			"signature has by-reference parameters but no handle table is configured")
	}

	Logger().Debug("bound function",
		zap.Stringer("signature", s),
		zap.Int("args", s.NumFields()),
		zap.Uint32("record_size", s.Size()))
	return c, nil
}

// Size returns the exact byte length Invoke requires of its buffer.
func (c *Callable) Size() uint32 {
	return c.sig.Size()
}

// Signature returns the compiled argument record schema.
func (c *Callable) Signature() *sig.Signature {
	return c.sig
}

// Invoke decodes buf as the bound function's argument record, calls the
// function and returns its results. The buffer's length must equal Size
// exactly; anything else is a size_mismatch error, never a silent
// reinterpretation. Invoke borrows buf only for the duration of the call.
func (c *Callable) Invoke(buf callbuf.Buffer) ([]any, error) {
	if uint32(len(buf)) != c.sig.Size() {
		debugf("invoke %s: buffer %d bytes, record %d", c.sig, len(buf), c.sig.Size())
		return nil, errors.SizeMismatch(errors.PhaseInvoke, uint32(len(buf)), c.sig.Size())
	}

	args := make([]reflect.Value, c.sig.NumFields())
	for i, f := range c.sig.Fields() {
		v, err := c.decodeField(buf, f, i)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	out := c.fn.Call(args)

	results := make([]any, len(out))
	for i, v := range out {
		results[i] = v.Interface()
	}
	return results, nil
}

func (c *Callable) decodeField(buf callbuf.Buffer, f sig.Field, idx int) (reflect.Value, error) {
	if f.Kind == sig.KindRef {
		return c.resolveRef(buf, f, idx)
	}

	raw, err := readRaw(buf, f.Offset, f.Size)
	if err != nil {
		return reflect.Value{}, err
	}

	rv := reflect.New(f.Type).Elem()
	switch {
	case f.Kind == sig.KindBool:
		rv.SetBool(raw != 0)
	case f.Kind == sig.KindF32:
		rv.SetFloat(float64(math.Float32frombits(uint32(raw))))
	case f.Kind == sig.KindF64:
		rv.SetFloat(math.Float64frombits(raw))
	case f.Kind.IsSigned():
		rv.SetInt(signExtend(raw, f.Size))
	default:
		rv.SetUint(raw)
	}
	return rv, nil
}

func (c *Callable) resolveRef(buf callbuf.Buffer, f sig.Field, idx int) (reflect.Value, error) {
	h, err := buf.ReadU32(f.Offset)
	if err != nil {
		return reflect.Value{}, err
	}

	path := []string{argName(idx)}
	if h == 0 {
		return reflect.Value{}, errors.NilPointer(errors.PhaseInvoke, path, f.Type.String())
	}

	v, ok := c.handles.Get(handle.Handle(h))
	if !ok {
		return reflect.Value{}, errors.InvalidHandle(errors.PhaseInvoke, path, h)
	}

	rv := reflect.ValueOf(v)
	if !rv.Type().AssignableTo(f.Type) {
		return reflect.Value{}, errors.TypeMismatch(errors.PhaseInvoke, path,
			rv.Type().String(), f.Type.String())
	}
	return rv, nil
}

func readRaw(buf callbuf.Buffer, offset, size uint32) (uint64, error) {
	switch size {
	case 1:
		v, err := buf.ReadU8(offset)
		return uint64(v), err
	case 2:
		v, err := buf.ReadU16(offset)
		return uint64(v), err
	case 4:
		v, err := buf.ReadU32(offset)
		return uint64(v), err
	default:
		return buf.ReadU64(offset)
	}
}

func argName(i int) string {
	return fmt.Sprintf("arg%d", i)
}

func signExtend(raw uint64, size uint32) int64 {
	switch size {
	case 1:
		return int64(int8(raw))
	case 2:
		return int64(int16(raw))
	case 4:
		return int64(int32(raw))
	default:
		return int64(raw)
	}
}
