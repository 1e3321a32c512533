package linux

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuroplastio/neio-badge/internal/protocol"
)

func upload(t *testing.T, bitmaps ...[]byte) []byte {
	t.Helper()
	var lengths []int
	for _, b := range bitmaps {
		lengths = append(lengths, len(b)/11)
	}
	opts := protocol.DefaultOptions()
	opts.Timestamp = time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)
	h, err := protocol.BuildHeader(lengths, opts)
	require.NoError(t, err)
	return protocol.Pad(protocol.Assemble(h, bitmaps...), protocol.BlockSize)
}

func chunks(buf []byte, reportID bool) [][]byte {
	var out [][]byte
	for i := 0; i < len(buf); i += protocol.BlockSize {
		chunk := buf[i : i+protocol.BlockSize]
		if reportID {
			chunk = append([]byte{0}, chunk...)
		}
		out = append(out, chunk)
	}
	return out
}

func TestAssembler(t *testing.T) {
	first := bytes.Repeat([]byte{0xaa}, 5*11)
	second := bytes.Repeat([]byte{0x55}, 2*11)
	buf := upload(t, first, second)
	require.Len(t, buf, 192)

	for _, reportID := range []bool{false, true} {
		a := NewAssembler(protocol.Display11x44)
		reports := chunks(buf, reportID)
		for i, r := range reports {
			u, done, err := a.Feed(r)
			require.NoError(t, err)
			if i < len(reports)-1 {
				assert.False(t, done)
				assert.True(t, a.Pending())
				continue
			}
			require.True(t, done)
			assert.False(t, a.Pending())
			assert.Equal(t, []int{5, 2}, u.Info.Lengths)
			assert.Equal(t, first, u.Message(0))
			assert.Equal(t, second, u.Message(1))
		}
	}
}

func TestAssemblerInterleaved(t *testing.T) {
	message := bytes.Repeat([]byte{0x81}, 2*11)
	wide, err := protocol.Interleave(message)
	require.NoError(t, err)

	h, err := protocol.BuildHeader([]int{2}, protocol.DefaultOptions())
	require.NoError(t, err)
	buf := protocol.Pad(protocol.Assemble(h, wide), protocol.BlockSize)

	a := NewAssembler(protocol.Display12x48)
	var u Upload
	var done bool
	for _, r := range chunks(buf, false) {
		u, done, err = a.Feed(r)
		require.NoError(t, err)
	}
	require.True(t, done)
	assert.Equal(t, 12, u.Rows)
	assert.Equal(t, message, u.Message(0))
}

func TestAssemblerUnexpectedChunk(t *testing.T) {
	a := NewAssembler(protocol.Display11x44)
	_, _, err := a.Feed(make([]byte, 64))
	assert.ErrorIs(t, err, ErrUnexpectedChunk)

	// a new header restarts the upload
	buf := upload(t, bytes.Repeat([]byte{1}, 11*10))
	reports := chunks(buf, false)
	_, done, err := a.Feed(reports[0])
	require.NoError(t, err)
	assert.False(t, done)
	for _, r := range chunks(upload(t, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}), false) {
		_, done, err = a.Feed(r)
		require.NoError(t, err)
	}
	assert.True(t, done)
}
