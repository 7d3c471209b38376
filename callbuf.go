package callbuf

import (
	"encoding/binary"

	"github.com/wippyai/callbuf/errors"
)

// Buffer is a raw argument buffer. Its length is fixed by the target
// signature's record size; the caller allocates it, fills it, and discards
// it after the call. All multi-byte accessors are little-endian and
// bounds-checked.
type Buffer []byte

// NewBuffer allocates a zeroed buffer of the given size.
func NewBuffer(size uint32) Buffer {
	return make(Buffer, size)
}

func (b Buffer) check(phase errors.Phase, offset, n uint32) error {
	if uint64(offset)+uint64(n) > uint64(len(b)) {
		return errors.OutOfBounds(phase, nil, int(offset), len(b))
	}
	return nil
}

// ReadU8 reads one byte at offset.
func (b Buffer) ReadU8(offset uint32) (uint8, error) {
	if err := b.check(errors.PhaseInvoke, offset, 1); err != nil {
		return 0, err
	}
	return b[offset], nil
}

// ReadU16 reads a little-endian uint16 at offset.
func (b Buffer) ReadU16(offset uint32) (uint16, error) {
	if err := b.check(errors.PhaseInvoke, offset, 2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b[offset:]), nil
}

// ReadU32 reads a little-endian uint32 at offset.
func (b Buffer) ReadU32(offset uint32) (uint32, error) {
	if err := b.check(errors.PhaseInvoke, offset, 4); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[offset:]), nil
}

// ReadU64 reads a little-endian uint64 at offset.
func (b Buffer) ReadU64(offset uint32) (uint64, error) {
	if err := b.check(errors.PhaseInvoke, offset, 8); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[offset:]), nil
}

// WriteU8 writes one byte at offset.
func (b Buffer) WriteU8(offset uint32, value uint8) error {
	if err := b.check(errors.PhaseEncode, offset, 1); err != nil {
		return err
	}
	b[offset] = value
	return nil
}

// WriteU16 writes a little-endian uint16 at offset.
func (b Buffer) WriteU16(offset uint32, value uint16) error {
	if err := b.check(errors.PhaseEncode, offset, 2); err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(b[offset:], value)
	return nil
}

// WriteU32 writes a little-endian uint32 at offset.
func (b Buffer) WriteU32(offset uint32, value uint32) error {
	if err := b.check(errors.PhaseEncode, offset, 4); err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(b[offset:], value)
	return nil
}

// WriteU64 writes a little-endian uint64 at offset.
func (b Buffer) WriteU64(offset uint32, value uint64) error {
	if err := b.check(errors.PhaseEncode, offset, 8); err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(b[offset:], value)
	return nil
}
