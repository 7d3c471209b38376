package layout

// Slot is one field's storage requirement.
type Slot struct {
	Size  uint32
	Align uint32
}

// Info describes a computed argument record layout.
type Info struct {
	Offsets []uint32
	Size    uint32
	Align   uint32
}

// AlignTo rounds offset up to the next multiple of align.
func AlignTo(offset, align uint32) uint32 {
	if align == 0 {
		return offset
	}
	return (offset + align - 1) &^ (align - 1)
}

// Calc lays out slots in order, C-struct style: each slot starts at an
// offset aligned to its alignment, and the total size is rounded up to
// the record's maximum alignment.
func Calc(slots []Slot) Info {
	if len(slots) == 0 {
		return Info{Size: 0, Align: 1}
	}

	offsets := make([]uint32, len(slots))
	maxAlign := uint32(1)
	offset := uint32(0)

	for i, s := range slots {
		align := s.Align
		if align == 0 {
			align = 1
		}

		offset = AlignTo(offset, align)
		offsets[i] = offset

		if align > maxAlign {
			maxAlign = align
		}

		offset += s.Size
	}

	return Info{
		Offsets: offsets,
		Size:    AlignTo(offset, maxAlign),
		Align:   maxAlign,
	}
}
