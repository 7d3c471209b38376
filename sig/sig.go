package sig

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/wippyai/callbuf/errors"
	"github.com/wippyai/callbuf/internal/layout"
	"github.com/wippyai/callbuf/sig/internal/kind"
)

type Kind = kind.Kind

const (
	KindBool = kind.KindBool
	KindU8   = kind.KindU8
	KindS8   = kind.KindS8
	KindU16  = kind.KindU16
	KindS16  = kind.KindS16
	KindU32  = kind.KindU32
	KindS32  = kind.KindS32
	KindU64  = kind.KindU64
	KindS64  = kind.KindS64
	KindInt  = kind.KindInt
	KindUint = kind.KindUint
	KindF32  = kind.KindF32
	KindF64  = kind.KindF64
	KindRef  = kind.KindRef
)

// HandleSize is the storage a by-reference parameter occupies in the
// argument record: a 4-byte handle, never a raw Go pointer.
const HandleSize = 4

// Field is one parameter's slot in the argument record.
type Field struct {
	Type   reflect.Type
	Kind   Kind
	Offset uint32
	Size   uint32
	Align  uint32
}

// Signature is a compiled parameter schema for one target function.
// Immutable after Of returns; safe for concurrent use.
type Signature struct {
	fnType reflect.Type
	fields []Field
	size   uint32
	align  uint32
	refs   int
}

var cache sync.Map // reflect.Type -> *Signature

// Of derives the argument record schema from a function value. The result
// is cached per function type. Non-function values, variadic functions and
// parameters outside the supported kind set are bind errors.
func Of(fn any) (*Signature, error) {
	if fn == nil {
		return nil, errors.NilPointer(errors.PhaseBind, nil, "nil")
	}

	t := reflect.TypeOf(fn)
	if t.Kind() != reflect.Func {
		return nil, errors.TypeMismatch(errors.PhaseBind, nil, t.String(), "func")
	}
	if t.IsVariadic() {
		return nil, errors.Unsupported(errors.PhaseBind, nil, "variadic functions")
	}

	if cached, ok := cache.Load(t); ok {
		return cached.(*Signature), nil
	}

	s, err := compile(t)
	if err != nil {
		return nil, err
	}

	cache.Store(t, s)
	return s, nil
}

func compile(t reflect.Type) (*Signature, error) {
	numIn := t.NumIn()
	fields := make([]Field, numIn)
	slots := make([]layout.Slot, numIn)
	refs := 0

	for i := 0; i < numIn; i++ {
		pt := t.In(i)
		k, ok := kindOf(pt)
		if !ok {
			return nil, errors.Unsupported(errors.PhaseBind,
				[]string{argName(i)},
				fmt.Sprintf("parameter type %s", pt))
		}

		size, align := uint32(pt.Size()), uint32(pt.Align())
		if k == KindRef {
			size, align = HandleSize, HandleSize
			refs++
		}

		fields[i] = Field{Type: pt, Kind: k, Size: size, Align: align}
		slots[i] = layout.Slot{Size: size, Align: align}
	}

	info := layout.Calc(slots)
	for i := range fields {
		fields[i].Offset = info.Offsets[i]
	}

	return &Signature{
		fnType: t,
		fields: fields,
		size:   info.Size,
		align:  info.Align,
		refs:   refs,
	}, nil
}

func kindOf(t reflect.Type) (Kind, bool) {
	switch t.Kind() {
	case reflect.Bool:
		return KindBool, true
	case reflect.Uint8:
		return KindU8, true
	case reflect.Int8:
		return KindS8, true
	case reflect.Uint16:
		return KindU16, true
	case reflect.Int16:
		return KindS16, true
	case reflect.Uint32:
		return KindU32, true
	case reflect.Int32:
		return KindS32, true
	case reflect.Uint64:
		return KindU64, true
	case reflect.Int64:
		return KindS64, true
	case reflect.Int:
		return KindInt, true
	case reflect.Uint:
		return KindUint, true
	case reflect.Float32:
		return KindF32, true
	case reflect.Float64:
		return KindF64, true
	case reflect.Ptr:
		return KindRef, true
	default:
		return 0, false
	}
}

func argName(i int) string {
	return fmt.Sprintf("arg%d", i)
}

// NumFields returns the number of parameters.
func (s *Signature) NumFields() int {
	return len(s.fields)
}

// Field returns parameter i's slot.
func (s *Signature) Field(i int) Field {
	return s.fields[i]
}

// Fields returns all parameter slots in declaration order.
func (s *Signature) Fields() []Field {
	return s.fields
}

// Size returns the exact byte length an argument buffer must have.
func (s *Signature) Size() uint32 {
	return s.size
}

// Align returns the record's maximum field alignment.
func (s *Signature) Align() uint32 {
	return s.align
}

// HasRefs reports whether any parameter is passed by reference.
func (s *Signature) HasRefs() bool {
	return s.refs > 0
}

// FuncType returns the reflected type of the bound function.
func (s *Signature) FuncType() reflect.Type {
	return s.fnType
}

func (s *Signature) String() string {
	return s.fnType.String()
}
