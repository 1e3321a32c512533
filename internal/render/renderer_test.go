package render

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/neuroplastio/neio-badge/internal/glyph"
)

var (
	colonColumn = []byte{0x00, 0x00, 0x00, 0x18, 0x18, 0x00, 0x00, 0x18, 0x18, 0x00, 0x00}
	aColumn     = []byte{0x00, 0x00, 0x00, 0x00, 0x78, 0x0c, 0x7c, 0xcc, 0xcc, 0x76, 0x00}
	heartColumn = []byte{0x00, 0x00, 0x6c, 0x92, 0x82, 0x82, 0x44, 0x28, 0x10, 0x00, 0x00}
)

func concat(cols ...[]byte) []byte {
	var out []byte
	for _, c := range cols {
		out = append(out, c...)
	}
	return out
}

// writePNG stores an image whose pixel (x, y) is lit when on(x, y).
func writePNG(t *testing.T, name string, width, height int, on func(x, y int) bool) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.RGBA{A: 0xff}
			if on(x, y) {
				c = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
			}
			img.Set(x, y, c)
		}
	}
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestParseMarkup(t *testing.T) {
	type testCase struct {
		input    string
		expected []string
	}
	testCases := []testCase{
		{input: "", expected: nil},
		{input: "abc", expected: []string{"abc"}},
		{input: "a::b", expected: []string{"a", "::", "b"}},
		{input: "I :heart: Go", expected: []string{"I ", ":heart:", " Go"}},
		{input: "a:b", expected: []string{"a", ":", "b"}},
		{input: ":a:b:", expected: []string{":a:", "b", ":"}},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			m, err := ParseMarkup(tc.input)
			require.NoError(t, err)
			var actual []string
			for _, seg := range m.Segments {
				switch {
				case seg.Ref != nil:
					actual = append(actual, *seg.Ref)
				case seg.Text != nil:
					actual = append(actual, *seg.Text)
				case seg.Colon:
					actual = append(actual, ":")
				}
			}
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestRenderText(t *testing.T) {
	r := New(zap.NewNop())

	b, err := r.Render("a")
	require.NoError(t, err)
	assert.Equal(t, 1, b.Columns)
	assert.Equal(t, aColumn, b.Data)

	b, err = r.Render("a::a")
	require.NoError(t, err)
	assert.Equal(t, 3, b.Columns)
	assert.Equal(t, concat(aColumn, colonColumn, aColumn), b.Data)

	b, err = r.Render("a:a")
	require.NoError(t, err)
	assert.Equal(t, concat(aColumn, colonColumn, aColumn), b.Data)

	b, err = r.Render("")
	require.NoError(t, err)
	assert.Equal(t, 0, b.Columns)
}

func TestRenderIcons(t *testing.T) {
	r := New(zap.NewNop())

	b, err := r.Render(":heart:")
	require.NoError(t, err)
	assert.Equal(t, 1, b.Columns)
	assert.Equal(t, heartColumn, b.Data)

	b, err = r.Render("\x1b")
	require.NoError(t, err)
	assert.Equal(t, heartColumn, b.Data)

	ball, err := glyph.Default.Named("ball")
	require.NoError(t, err)
	b, err = r.Render("a:ball:")
	require.NoError(t, err)
	assert.Equal(t, 1+ball.Width, b.Columns)
	assert.Len(t, b.Data, b.Columns*glyph.Rows)

	_, err = r.Render(":nosuchicon:")
	assert.ErrorIs(t, err, glyph.ErrUnknownGlyph)

	_, err = r.Render("€")
	assert.ErrorIs(t, err, glyph.ErrUnknownGlyph)
}

func TestRenderSlots(t *testing.T) {
	r := New(zap.NewNop())

	b, err := r.Render(":0:")
	require.NoError(t, err)
	assert.Equal(t, 0, b.Columns)

	_, err = r.Render(":1:")
	assert.ErrorIs(t, err, glyph.ErrUnknownGlyph)

	_, err = r.Render("\x01")
	assert.ErrorIs(t, err, glyph.ErrUnknownGlyph)
}

func TestRenderIdempotent(t *testing.T) {
	r := New(zap.NewNop())

	for _, text := range []string{"Hello", ":heart:", "10:30 ::"} {
		first, err := r.Render(text)
		require.NoError(t, err)
		slots := r.Preloaded()

		second, err := r.Render(text)
		require.NoError(t, err)
		assert.Equal(t, first.Columns, second.Columns, text)
		assert.Equal(t, first.Data, second.Data, text)
		assert.Equal(t, slots, r.Preloaded(), text)
	}

	heart, err := glyph.Default.Named("heart")
	require.NoError(t, err)
	b, err := r.Render(":heart:")
	require.NoError(t, err)
	assert.Equal(t, heart.Columns, b.Data)
}

func TestRenderImageReference(t *testing.T) {
	path := writePNG(t, "dot.png", 3, 11, func(x, y int) bool { return x == 0 && y == 5 })
	r := New(zap.NewNop())

	b, err := r.Render("a:" + path + ":")
	require.NoError(t, err)
	assert.Equal(t, 2, b.Columns)
	assert.Equal(t, byte(0x80), b.Data[11+5])
	assert.Equal(t, 2, r.Preloaded())

	b, err = r.Render(":1:\x01")
	require.NoError(t, err)
	assert.Equal(t, 2, b.Columns)
	assert.Equal(t, byte(0x80), b.Data[5])
	assert.Equal(t, byte(0x80), b.Data[11+5])

	// a second reference loads the file into a new slot
	_, err = r.Render(":" + path + ":")
	require.NoError(t, err)
	assert.Equal(t, 3, r.Preloaded())
}

func TestPreload(t *testing.T) {
	path := writePNG(t, "bar.png", 8, 11, func(x, y int) bool { return true })
	r := New(zap.NewNop())
	assert.False(t, r.UnusedPreloads())

	require.NoError(t, r.Preload(path))
	assert.True(t, r.UnusedPreloads())

	_, err := r.Render("a:heart:")
	require.NoError(t, err)
	assert.True(t, r.UnusedPreloads())

	b, err := r.Render("\x01")
	require.NoError(t, err)
	assert.False(t, r.UnusedPreloads())
	assert.Equal(t, 1, b.Columns)
	for _, v := range b.Data {
		assert.Equal(t, byte(0xff), v)
	}
}

func TestRenderImage(t *testing.T) {
	// 10 pixels wide: pads to two columns
	path := writePNG(t, "diag.png", 10, 11, func(x, y int) bool { return x == y })
	r := New(zap.NewNop())

	b, err := r.RenderImage(path)
	require.NoError(t, err)
	require.Equal(t, 2, b.Columns)
	require.Len(t, b.Data, 22)
	for row := 0; row < 8; row++ {
		assert.Equal(t, byte(0x80)>>row, b.Data[row], "row %d", row)
	}
	assert.Equal(t, byte(0x80), b.Data[11+8])
	assert.Equal(t, byte(0x40), b.Data[11+9])
	assert.Equal(t, byte(0x00), b.Data[11+10])
}

func TestRenderImageGray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 11))
	img.SetGray(0, 0, color.Gray{Y: 128})
	img.SetGray(1, 0, color.Gray{Y: 127})
	b, err := imageBitmap(img)
	require.NoError(t, err)
	assert.Equal(t, byte(0x80), b.Data[0])

	rgb := image.NewNRGBA(image.Rect(0, 0, 2, 11))
	rgb.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 128, B: 0, A: 255})
	rgb.SetNRGBA(1, 0, color.NRGBA{R: 255, G: 126, B: 0, A: 255})
	b, err = imageBitmap(rgb)
	require.NoError(t, err)
	assert.Equal(t, byte(0x80), b.Data[0])
}

func TestRenderImageHeight(t *testing.T) {
	path := writePNG(t, "tall.png", 8, 12, func(x, y int) bool { return true })
	r := New(zap.NewNop())
	_, err := r.RenderImage(path)
	assert.ErrorIs(t, err, ErrImageFormat)

	_, err = r.Render(":" + path + ":")
	assert.ErrorIs(t, err, ErrImageFormat)

	notImage := filepath.Join(t.TempDir(), "text.txt")
	require.NoError(t, os.WriteFile(notImage, []byte("hello"), 0o644))
	_, err = r.RenderImage(notImage)
	assert.ErrorIs(t, err, ErrImageFormat)
}

func TestBitmap(t *testing.T) {
	path := writePNG(t, "img.png", 16, 11, func(x, y int) bool { return false })
	r := New(zap.NewNop())

	b, err := r.Bitmap(path)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Columns)

	b, err = r.Bitmap("aa")
	require.NoError(t, err)
	assert.Equal(t, concat(aColumn, aColumn), b.Data)
}

func TestSketch(t *testing.T) {
	r := New(zap.NewNop())
	b, err := r.Render("::")
	require.NoError(t, err)
	sketch := Sketch(b)
	require.Len(t, sketch, glyph.Rows)
	assert.Equal(t, "........", sketch[0])
	assert.Equal(t, "...##...", sketch[3])
	assert.Equal(t, "...##...", sketch[8])
}
