package kind

type Kind uint8

const (
	KindBool Kind = iota
	KindU8
	KindS8
	KindU16
	KindS16
	KindU32
	KindS32
	KindU64
	KindS64
	KindInt
	KindUint
	KindF32
	KindF64
	KindRef
)

var kindNames = [...]string{
	KindBool: "bool",
	KindU8:   "u8",
	KindS8:   "s8",
	KindU16:  "u16",
	KindS16:  "s16",
	KindU32:  "u32",
	KindS32:  "s32",
	KindU64:  "u64",
	KindS64:  "s64",
	KindInt:  "int",
	KindUint: "uint",
	KindF32:  "f32",
	KindF64:  "f64",
	KindRef:  "ref",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

func (k Kind) IsInteger() bool {
	return k >= KindU8 && k <= KindUint
}

func (k Kind) IsSigned() bool {
	switch k {
	case KindS8, KindS16, KindS32, KindS64, KindInt:
		return true
	default:
		return false
	}
}

func (k Kind) IsFloat() bool {
	return k == KindF32 || k == KindF64
}
