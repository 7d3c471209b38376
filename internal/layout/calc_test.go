package layout

import "testing"

func TestAlignTo(t *testing.T) {
	tests := []struct {
		offset uint32
		align  uint32
		want   uint32
	}{
		{0, 1, 0},
		{0, 4, 0},
		{1, 1, 1},
		{1, 4, 4},
		{4, 4, 4},
		{5, 4, 8},
		{5, 8, 8},
		{9, 8, 16},
		{7, 0, 7},
	}

	for _, tc := range tests {
		if got := AlignTo(tc.offset, tc.align); got != tc.want {
			t.Errorf("AlignTo(%d, %d) = %d, want %d", tc.offset, tc.align, got, tc.want)
		}
	}
}

func TestCalcEmpty(t *testing.T) {
	info := Calc(nil)
	if info.Size != 0 {
		t.Errorf("size: got %d, want 0", info.Size)
	}
	if info.Align != 1 {
		t.Errorf("align: got %d, want 1", info.Align)
	}
}

func TestCalcSingle(t *testing.T) {
	info := Calc([]Slot{{Size: 4, Align: 4}})
	if info.Offsets[0] != 0 {
		t.Errorf("offset: got %d, want 0", info.Offsets[0])
	}
	if info.Size != 4 {
		t.Errorf("size: got %d, want 4", info.Size)
	}
	if info.Align != 4 {
		t.Errorf("align: got %d, want 4", info.Align)
	}
}

func TestCalcMixedAlignment(t *testing.T) {
	// u8, u32, u8: padding after the first byte, tail padding to align 4
	info := Calc([]Slot{
		{Size: 1, Align: 1},
		{Size: 4, Align: 4},
		{Size: 1, Align: 1},
	})

	want := []uint32{0, 4, 8}
	for i, w := range want {
		if info.Offsets[i] != w {
			t.Errorf("offset %d: got %d, want %d", i, info.Offsets[i], w)
		}
	}
	if info.Size != 12 {
		t.Errorf("size: got %d, want 12", info.Size)
	}
	if info.Align != 4 {
		t.Errorf("align: got %d, want 4", info.Align)
	}
}

func TestCalcWideAlignment(t *testing.T) {
	// u8, u64
	info := Calc([]Slot{
		{Size: 1, Align: 1},
		{Size: 8, Align: 8},
	})

	if info.Offsets[0] != 0 {
		t.Errorf("offset 0: got %d, want 0", info.Offsets[0])
	}
	if info.Offsets[1] != 8 {
		t.Errorf("offset 1: got %d, want 8", info.Offsets[1])
	}
	if info.Size != 16 {
		t.Errorf("size: got %d, want 16", info.Size)
	}
	if info.Align != 8 {
		t.Errorf("align: got %d, want 8", info.Align)
	}
}

func TestCalcZeroAlignSlot(t *testing.T) {
	info := Calc([]Slot{{Size: 3, Align: 0}})
	if info.Offsets[0] != 0 {
		t.Errorf("offset: got %d, want 0", info.Offsets[0])
	}
	if info.Size != 3 {
		t.Errorf("size: got %d, want 3", info.Size)
	}
}
