// Package render turns message text and image files into badge bitmaps.
//
// Text may reference built-in icons and images with a colon notation:
// "::" is a literal colon, ":heart:" a built-in icon, ":logo.png:" an image
// file and ":1:" the first preloaded image.
package render

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/neuroplastio/neio-badge/internal/glyph"
)

// Bitmap is column-major badge data: every byte-column holds glyph.Rows
// bytes, the most significant bit being the leftmost pixel.
type Bitmap struct {
	Data    []byte
	Columns int
}

func (b Bitmap) glyph() glyph.Glyph {
	return glyph.Glyph{Columns: b.Data, Width: b.Columns}
}

// Renderer keeps the preloaded image slots. Slot 0 is always empty, so
// the first loaded image is referenced as ":1:" or "\x01". Slots are only
// ever appended.
type Renderer struct {
	log       *zap.Logger
	table     *glyph.Table
	preloaded []glyph.Glyph
	unused    bool
}

func New(log *zap.Logger) *Renderer {
	return &Renderer{
		log:       log,
		table:     glyph.Default,
		preloaded: []glyph.Glyph{glyph.Empty},
	}
}

// Preload appends an image to the slot table. Deprecated: reference
// images with ":file.png:" instead.
func (r *Renderer) Preload(path string) error {
	b, err := r.RenderImage(path)
	if err != nil {
		return err
	}
	r.preloaded = append(r.preloaded, b.glyph())
	r.unused = true
	return nil
}

// UnusedPreloads reports whether images were preloaded but no rendered
// text referenced any slot since.
func (r *Renderer) UnusedPreloads() bool {
	return r.unused
}

// Preloaded is the number of occupied slots, including the empty slot 0.
func (r *Renderer) Preloaded() int {
	return len(r.preloaded)
}

// Bitmap renders arg as an image when it names an existing file and as
// text otherwise.
func (r *Renderer) Bitmap(arg string) (Bitmap, error) {
	if _, err := os.Stat(arg); err == nil {
		return r.RenderImage(arg)
	}
	return r.Render(arg)
}

func (r *Renderer) RenderImage(path string) (Bitmap, error) {
	b, err := loadImage(path)
	if err != nil {
		return Bitmap{}, err
	}
	r.log.Debug("Loaded image", zap.String("path", path), zap.Int("columns", b.Columns))
	return b, nil
}

func isDecimal(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func isImageRef(name string) bool {
	return name != "" && !isDecimal(name) && strings.Contains(name, ".")
}

func (r *Renderer) Render(text string) (Bitmap, error) {
	markup, err := ParseMarkup(text)
	if err != nil {
		return Bitmap{}, fmt.Errorf("failed to parse %q: %w", text, err)
	}

	// Images are loaded before any glyph is resolved.
	slots := make(map[int]int)
	for i, seg := range markup.Segments {
		if seg.Ref == nil || !isImageRef(seg.Name()) {
			continue
		}
		b, err := r.RenderImage(seg.Name())
		if err != nil {
			return Bitmap{}, err
		}
		r.preloaded = append(r.preloaded, b.glyph())
		slots[i] = len(r.preloaded) - 1
	}

	var out Bitmap
	add := func(g glyph.Glyph) {
		out.Data = append(out.Data, g.Columns...)
		out.Columns += g.Width
	}
	for i, seg := range markup.Segments {
		switch {
		case seg.Colon:
			g, err := r.table.Lookup(':', nil)
			if err != nil {
				return Bitmap{}, err
			}
			add(g)
		case seg.Text != nil:
			for _, c := range *seg.Text {
				g, err := r.table.Lookup(c, r.preloaded)
				if err != nil {
					return Bitmap{}, err
				}
				if c < 32 && !r.table.IsIcon(c) {
					r.unused = false
				}
				add(g)
			}
		default:
			g, err := r.resolve(seg.Name(), slots, i)
			if err != nil {
				return Bitmap{}, err
			}
			add(g)
		}
	}
	return out, nil
}

func (r *Renderer) resolve(name string, slots map[int]int, segment int) (glyph.Glyph, error) {
	switch {
	case name == "":
		return r.table.Lookup(':', nil)
	case isDecimal(name):
		n, err := strconv.Atoi(name)
		if err != nil || n >= len(r.preloaded) {
			return glyph.Glyph{}, fmt.Errorf("%w: no preloaded image :%s:", glyph.ErrUnknownGlyph, name)
		}
		r.unused = false
		return r.preloaded[n], nil
	case isImageRef(name):
		r.unused = false
		return r.preloaded[slots[segment]], nil
	default:
		return r.table.Named(name)
	}
}
