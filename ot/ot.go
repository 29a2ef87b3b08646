package ot

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Font is an in-memory representation of one font binary (TTF or OTF).
//
// The zero value is not usable; construct instances with Load or Parse.
// Fields and table views are read-only after parsing.
type Font struct {
	Fontname string     // full font name (name ID 4)
	Binary   []byte     // raw data
	face     *font.Face // go-text face: cmap lookups, glyph metrics, shaping
	ld       *opentype.Loader
}

// Load reads a font binary from a file and parses it.
func Load(fontfile string) (*Font, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := Parse(bytez)
	if err != nil {
		return nil, fmt.Errorf("cannot parse font %s: %w", fontfile, err)
	}
	return f, nil
}

// Parse parses a font binary from memory. The data must not change
// afterwards for the font to stay usable.
func Parse(data []byte) (*Font, error) {
	f := &Font{Binary: data}
	var err error
	if f.face, err = font.ParseTTF(bytes.NewReader(data)); err != nil {
		return nil, err
	}
	if f.ld, err = opentype.NewLoader(bytes.NewReader(data)); err != nil {
		return nil, err
	}
	f.Fontname = f.NameRecords()[sfnt.NameIDFull]
	tracer().Debugf("loaded and parsed SFNT %s", f.Fontname)
	return f, nil
}

// Face returns the underlying go-text face, e.g. as shaping input.
func (f *Font) Face() *font.Face {
	if f == nil {
		return nil
	}
	return f.face
}

// table returns the raw bytes of the font table with the given 4-letter
// tag, or nil if the font has no such table.
func (f *Font) table(tag string) []byte {
	if f == nil || f.ld == nil {
		return nil
	}
	b, err := f.ld.RawTableTo(opentype.MustNewTag(tag), nil)
	if err != nil {
		tracer().Debugf("font %s has no table %s", f.Fontname, tag)
		return nil
	}
	return b
}
