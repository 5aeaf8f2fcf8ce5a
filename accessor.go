package fxbmp

import (
	"encoding/binary"
	"fmt"

	"github.com/aligator/fxbmp/checkpoint"
)

// image is a read-only view over a whole volume. All reads are bounds
// checked and little-endian.
type image []byte

func (b image) outOfBounds(off, n int) error {
	return checkpoint.Wrap(fmt.Errorf("%d bytes at offset %#x, image length %#x", n, off, len(b)), ErrOutOfBounds)
}

// slice returns the n bytes at off without copying.
func (b image) slice(off, n int) ([]byte, error) {
	if off < 0 || n < 0 || off > len(b) || len(b)-off < n {
		return nil, b.outOfBounds(off, n)
	}
	return b[off : off+n : off+n], nil
}

func (b image) u8(off int) (uint8, error) {
	s, err := b.slice(off, 1)
	if err != nil {
		return 0, err
	}
	return s[0], nil
}

func (b image) u16(off int) (uint16, error) {
	s, err := b.slice(off, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(s), nil
}

func (b image) u32(off int) (uint32, error) {
	s, err := b.slice(off, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(s), nil
}
