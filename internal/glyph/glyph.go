// Package glyph holds the badge font and the built-in icons.
//
// Bitmaps are column-major: every byte-column is Rows bytes, one byte per
// pixel row, with the most significant bit as the leftmost pixel.
package glyph

import (
	"errors"
	"fmt"
)

// Rows is the height of every glyph in pixels.
const Rows = 11

var ErrUnknownGlyph = errors.New("unknown glyph")

type Glyph struct {
	Columns []byte
	Width   int
}

// Empty is the glyph stored in preloaded slot 0.
var Empty = Glyph{}

type Table struct {
	chars  map[rune]Glyph
	named  map[string]Glyph
	codes  map[rune]Glyph
	names  []string
	byCode map[string]rune
}

// Default is built once from the font and icon data.
var Default = newTable()

func newTable() *Table {
	t := &Table{
		chars:  make(map[rune]Glyph),
		named:  make(map[string]Glyph),
		codes:  make(map[rune]Glyph),
		byCode: make(map[string]rune),
	}
	row := 0
	for _, group := range charmap {
		for _, r := range group {
			t.chars[r] = Glyph{
				Columns: font11[row*Rows : (row+1)*Rows],
				Width:   1,
			}
			row++
		}
	}
	for _, ic := range icons {
		g := Glyph{
			Columns: ic.columns,
			Width:   len(ic.columns) / Rows,
		}
		t.named[ic.name] = g
		t.codes[ic.code] = g
		t.byCode[ic.name] = ic.code
		t.names = append(t.names, ic.name)
	}
	return t
}

// Lookup returns the glyph of r. Control characters select a built-in icon
// by its code or, failing that, the preloaded image with the same index.
func (t *Table) Lookup(r rune, preloaded []Glyph) (Glyph, error) {
	if r < 32 {
		if g, ok := t.codes[r]; ok {
			return g, nil
		}
		if int(r) < len(preloaded) {
			return preloaded[r], nil
		}
		return Glyph{}, fmt.Errorf("%w: control character 0x%02x has no icon or preloaded image", ErrUnknownGlyph, r)
	}
	g, ok := t.chars[r]
	if !ok {
		return Glyph{}, fmt.Errorf("%w: %q", ErrUnknownGlyph, r)
	}
	return g, nil
}

// IsIcon reports whether the control character r selects a built-in icon.
func (t *Table) IsIcon(r rune) bool {
	_, ok := t.codes[r]
	return ok
}

// Named returns the built-in icon called name.
func (t *Table) Named(name string) (Glyph, error) {
	g, ok := t.named[name]
	if !ok {
		return Glyph{}, fmt.Errorf("%w: no icon named %q", ErrUnknownGlyph, name)
	}
	return g, nil
}

// Code returns the control character that selects the icon called name.
func (t *Table) Code(name string) (rune, bool) {
	r, ok := t.byCode[name]
	return r, ok
}

// Names lists the built-in icon names in declaration order.
func (t *Table) Names() []string {
	names := make([]string, len(t.names))
	copy(names, t.names)
	return names
}
