package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/neuroplastio/neio-badge/internal/glyph"
	"github.com/neuroplastio/neio-badge/pkg/bits"
)

var ErrImageFormat = errors.New("unsupported image")

// threshold above which a pixel is lit
const threshold = 127

func loadImage(path string) (Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return Bitmap{}, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return Bitmap{}, fmt.Errorf("%w: %s: %w", ErrImageFormat, path, err)
	}
	b, err := imageBitmap(img)
	if err != nil {
		return Bitmap{}, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// imageBitmap packs an 11 pixel tall image into byte-columns of 8 pixels,
// padding the last column with unlit pixels.
func imageBitmap(img image.Image) (Bitmap, error) {
	bounds := img.Bounds()
	if bounds.Dy() != glyph.Rows {
		return Bitmap{}, fmt.Errorf("%w: image height must be %dpx, seen %d", ErrImageFormat, glyph.Rows, bounds.Dy())
	}
	width := bounds.Dx()
	cols := (width + 7) / 8
	data := make([]byte, cols*glyph.Rows)
	for row := 0; row < glyph.Rows; row++ {
		for x := 0; x < width; x++ {
			if !lit(img.At(bounds.Min.X+x, bounds.Min.Y+row)) {
				continue
			}
			col := x / 8
			bits.New(data[col*glyph.Rows+row:col*glyph.Rows+row+1], 0).SetMSB(x % 8)
		}
	}
	return Bitmap{Data: data, Columns: cols}, nil
}

func lit(c color.Color) bool {
	switch c := c.(type) {
	case color.Gray:
		return c.Y > threshold
	case color.Gray16:
		return c.Y>>8 > threshold
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return int(n.R)+int(n.G)+int(n.B) > 3*threshold
}
