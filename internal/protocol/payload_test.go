package protocol

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterleave(t *testing.T) {
	data := append(bytes.Repeat([]byte{1}, 11), bytes.Repeat([]byte{2}, 11)...)
	out, err := Interleave(data)
	require.NoError(t, err)
	require.Len(t, out, 24)
	assert.Equal(t, byte(0), out[11])
	assert.Equal(t, byte(2), out[12])
	assert.Equal(t, byte(0), out[23])

	out, err = Interleave(nil)
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = Interleave(make([]byte, 12))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPad(t *testing.T) {
	assert.Len(t, Pad(make([]byte, 3), 64), 64)
	assert.Len(t, Pad(make([]byte, 64), 64), 64)
	assert.Len(t, Pad(make([]byte, 65), 64), 128)
	assert.Empty(t, Pad(nil, 64))
}

func TestCheckLength(t *testing.T) {
	assert.NoError(t, CheckLength(make([]byte, MaxPayload), MaxPayload))
	assert.ErrorIs(t, CheckLength(make([]byte, MaxPayload+64), MaxPayload), ErrPayloadTooLarge)
}

func TestAssemble(t *testing.T) {
	h, err := BuildHeader([]int{1, 1}, testOptions())
	require.NoError(t, err)
	buf := Assemble(h, []byte{1, 2}, []byte{3})
	require.Len(t, buf, HeaderSize+3)
	assert.Equal(t, h[:], buf[:HeaderSize])
	assert.Equal(t, []byte{1, 2, 3}, buf[HeaderSize:])
}

func TestParseDisplayType(t *testing.T) {
	assert.Equal(t, Display11x44, ParseDisplayType("11x44"))
	assert.Equal(t, Display12x48, ParseDisplayType("12x48"))
	assert.Equal(t, Display12x48, ParseDisplayType("led-badge-12x48"))
	assert.Equal(t, 12, Display12x48.Rows())
	assert.Equal(t, "11x44", Display11x44.String())
}
