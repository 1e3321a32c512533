package render

import (
	"strings"

	"github.com/neuroplastio/neio-badge/internal/glyph"
	"github.com/neuroplastio/neio-badge/pkg/bits"
)

// Sketch renders a bitmap in ASCII, one string per pixel row.
func Sketch(b Bitmap) []string {
	return SketchData(b.Data)
}

// SketchData draws raw column-major data. A trailing partial column is
// ignored.
func SketchData(data []byte) []string {
	cols := len(data) / glyph.Rows
	sketch := make([]string, glyph.Rows)
	for row := 0; row < glyph.Rows; row++ {
		var line strings.Builder
		for col := 0; col < cols; col++ {
			v := bits.New(data[col*glyph.Rows+row:col*glyph.Rows+row+1], 0)
			for x := 0; x < 8; x++ {
				if v.IsSetMSB(x) {
					line.WriteByte('#')
				} else {
					line.WriteByte('.')
				}
			}
		}
		sketch[row] = line.String()
	}
	return sketch
}
