package protocol

import (
	"fmt"
	"strings"
)

// DisplayType selects the badge geometry.
type DisplayType int

const (
	Display11x44 DisplayType = iota
	Display12x48
)

func (t DisplayType) String() string {
	if t == Display12x48 {
		return "12x48"
	}
	return "11x44"
}

// Rows is the number of bytes per byte-column on the wire.
func (t DisplayType) Rows() int {
	if t == Display12x48 {
		return 12
	}
	return 11
}

// ParseDisplayType treats anything mentioning 12 as the 12x48 badge.
func ParseDisplayType(s string) DisplayType {
	if strings.Contains(s, "12") {
		return Display12x48
	}
	return Display11x44
}

// Interleave converts an 11-row bitmap for the 12x48 badge by appending one
// blank row to every column. data must hold whole 11-byte columns.
func Interleave(data []byte) ([]byte, error) {
	if len(data)%11 != 0 {
		return nil, fmt.Errorf("%w: bitmap of %d bytes is not made of 11-row columns", ErrInvalidInput, len(data))
	}
	out := make([]byte, 0, len(data)/11*12)
	for i := 0; i < len(data); i += 11 {
		out = append(out, data[i:i+11]...)
		out = append(out, 0)
	}
	return out, nil
}

// Pad extends buf with zeros up to a multiple of blockSize.
func Pad(buf []byte, blockSize int) []byte {
	if rem := len(buf) % blockSize; rem != 0 {
		buf = append(buf, make([]byte, blockSize-rem)...)
	}
	return buf
}

// CheckLength rejects payloads that would damage the display.
func CheckLength(buf []byte, maxSize int) error {
	if len(buf) > maxSize {
		return fmt.Errorf("%w: writing more than %d bytes damages the display (got %d), nothing written", ErrPayloadTooLarge, maxSize, len(buf))
	}
	return nil
}

// Assemble concatenates the header and the message bitmaps.
func Assemble(h Header, bitmaps ...[]byte) []byte {
	size := HeaderSize
	for _, b := range bitmaps {
		size += len(b)
	}
	buf := make([]byte, 0, size)
	buf = append(buf, h[:]...)
	for _, b := range bitmaps {
		buf = append(buf, b...)
	}
	return buf
}
