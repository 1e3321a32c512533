package bits

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLen(t *testing.T) {
	assert.Equal(t, 16, New(make([]byte, 2), 0).Len())
	assert.Equal(t, 12, New(make([]byte, 2), 4).Len())
	assert.Equal(t, 0, New(nil, 0).Len())
}

func TestSet(t *testing.T) {
	data := make([]byte, 1)
	b := New(data, 0)
	for _, bit := range []int{1, 2, 3, 4, 5, 6, 7} {
		assert.True(t, b.Set(bit), "bit %d", bit)
	}
	assert.False(t, b.Set(3))
	assert.Equal(t, byte(0xfe), data[0])
	assert.False(t, b.IsSet(0))
	assert.True(t, b.IsSet(7))

	assert.False(t, b.Set(8))
	assert.False(t, b.IsSet(8))
}

func TestSetMissingBits(t *testing.T) {
	data := make([]byte, 2)
	b := New(data, 4)
	assert.True(t, b.Set(11))
	assert.False(t, b.Set(12))
	assert.False(t, b.SetMSB(12))
	assert.Equal(t, []byte{0x00, 0x08}, data)
}

func TestSetMSB(t *testing.T) {
	data := make([]byte, 2)
	b := New(data, 0)
	assert.True(t, b.SetMSB(0))
	assert.True(t, b.SetMSB(7))
	assert.True(t, b.SetMSB(9))
	assert.False(t, b.SetMSB(9))
	assert.Equal(t, []byte{0x81, 0x40}, data)

	assert.True(t, b.IsSetMSB(9))
	assert.False(t, b.IsSetMSB(8))
	// the same byte read from the other end
	assert.True(t, b.IsSet(14))
}
