package glyph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupFont(t *testing.T) {
	g, err := Default.Lookup('_', nil)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Width)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0xff}, g.Columns)

	g, err = Default.Lookup('A', nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x38, 0x6c, 0xc6, 0xc6, 0xfe, 0xc6, 0xc6, 0xc6, 0xc6, 0x00}, g.Columns)
}

func TestLookupLaterRowWins(t *testing.T) {
	// space appears three times in the charmap, only the last row is blank
	g, err := Default.Lookup(' ', nil)
	require.NoError(t, err)
	assert.Equal(t, make([]byte, Rows), g.Columns)
}

func TestLookupUnknown(t *testing.T) {
	_, err := Default.Lookup('€', nil)
	assert.ErrorIs(t, err, ErrUnknownGlyph)

	_, err = Default.Lookup('\x05', []Glyph{Empty})
	assert.ErrorIs(t, err, ErrUnknownGlyph)
}

func TestLookupControlCodes(t *testing.T) {
	ball, err := Default.Named("ball")
	require.NoError(t, err)
	g, err := Default.Lookup('\x1e', nil)
	require.NoError(t, err)
	assert.Equal(t, ball, g)

	img := Glyph{Columns: make([]byte, 2*Rows), Width: 2}
	g, err = Default.Lookup('\x01', []Glyph{Empty, img})
	require.NoError(t, err)
	assert.Equal(t, img, g)
}

func TestIcons(t *testing.T) {
	names := Default.Names()
	require.Len(t, names, 11)
	assert.Equal(t, "ball", names[0])
	assert.Equal(t, "owncloud", names[len(names)-1])

	for _, name := range names {
		g, err := Default.Named(name)
		require.NoError(t, err, name)
		assert.Len(t, g.Columns, g.Width*Rows, name)
		code, ok := Default.Code(name)
		require.True(t, ok)
		assert.Less(t, code, rune(32))
	}

	g, err := Default.Named("bicycle")
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width)

	_, err = Default.Named("nope")
	assert.ErrorIs(t, err, ErrUnknownGlyph)
}
