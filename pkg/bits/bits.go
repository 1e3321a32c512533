// Package bits addresses single bits of a byte slice in place.
package bits

// Bits is a view over a byte slice. Set and IsSet number bits from the
// least significant end of each byte, SetMSB and IsSetMSB from the most
// significant end.
type Bits struct {
	missingBits uint8
	bytes       []byte
}

// New wraps data. The last missingBits bits of the final byte are out of
// range.
func New(data []byte, missingBits int) Bits {
	return Bits{
		bytes:       data,
		missingBits: uint8(missingBits),
	}
}

func (b Bits) Len() int {
	return len(b.bytes)*8 - int(b.missingBits)
}

func (b Bits) IsSet(bit int) bool {
	if bit >= b.Len() {
		return false
	}
	return b.bytes[bit/8]&(1<<(bit%8)) != 0
}

// Set reports whether the bit changed. Out of range bits are ignored.
func (b Bits) Set(bit int) bool {
	if bit >= b.Len() {
		return false
	}
	mask := byte(1) << (bit % 8)
	changed := b.bytes[bit/8]&mask == 0
	b.bytes[bit/8] |= mask
	return changed
}

// SetMSB sets a bit counted left to right, the way pixels are laid out in a
// bitmap row.
func (b Bits) SetMSB(bit int) bool {
	if bit >= b.Len() {
		return false
	}
	mask := byte(0x80) >> (bit % 8)
	changed := b.bytes[bit/8]&mask == 0
	b.bytes[bit/8] |= mask
	return changed
}

func (b Bits) IsSetMSB(bit int) bool {
	if bit >= b.Len() {
		return false
	}
	return b.bytes[bit/8]&(byte(0x80)>>(bit%8)) != 0
}
