package kind

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		want string
		kind Kind
	}{
		{"bool", KindBool},
		{"u8", KindU8},
		{"s8", KindS8},
		{"u16", KindU16},
		{"s16", KindS16},
		{"u32", KindU32},
		{"s32", KindS32},
		{"u64", KindU64},
		{"s64", KindS64},
		{"int", KindInt},
		{"uint", KindUint},
		{"f32", KindF32},
		{"f64", KindF64},
		{"ref", KindRef},
		{"unknown", Kind(255)},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.kind.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestKindPredicates(t *testing.T) {
	integers := []Kind{KindU8, KindS8, KindU16, KindS16, KindU32, KindS32, KindU64, KindS64, KindInt, KindUint}
	for _, k := range integers {
		if !k.IsInteger() {
			t.Errorf("%s should be an integer kind", k)
		}
	}
	for _, k := range []Kind{KindBool, KindF32, KindF64, KindRef} {
		if k.IsInteger() {
			t.Errorf("%s should not be an integer kind", k)
		}
	}

	signed := []Kind{KindS8, KindS16, KindS32, KindS64, KindInt}
	for _, k := range signed {
		if !k.IsSigned() {
			t.Errorf("%s should be signed", k)
		}
	}
	for _, k := range []Kind{KindU8, KindU16, KindU32, KindU64, KindUint, KindBool, KindF32, KindRef} {
		if k.IsSigned() {
			t.Errorf("%s should not be signed", k)
		}
	}

	for _, k := range []Kind{KindF32, KindF64} {
		if !k.IsFloat() {
			t.Errorf("%s should be a float kind", k)
		}
	}
	if KindU32.IsFloat() || KindRef.IsFloat() {
		t.Error("u32/ref should not be float kinds")
	}
}
