/*
Package layout is the shaping collaborator of the validation harness: it
runs text through the HarfBuzz shaping engine of go-text/typesetting and
reports the advance of every output glyph.

The harness only ever counts and compares advances (ligature formation
shows up as a shorter advance list), so nothing beyond the shaped glyph
stream is exposed.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package layout

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/math/fixed"
)

// tracer writes to trace with key 'roboto.layout'
func tracer() tracing.Trace {
	return tracing.Select("roboto.layout")
}

// shapeSize is the em size used for shaping runs. The harness compares
// advance counts and relative widths, which are independent of size.
const shapeSize = 128

// Advances shapes text as one left-to-right run with the font read from
// fontfile and returns the X advance of every output glyph, in 26.6 fixed
// point and output order.
func Advances(text string, fontfile string) ([]fixed.Int26_6, error) {
	data, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot parse font %s: %w", fontfile, err)
	}
	return AdvancesWithFace(text, face), nil
}

// AdvancesWithFace shapes text with an already parsed face. See Advances.
func AdvancesWithFace(text string, face *font.Face) []fixed.Int26_6 {
	if face == nil || text == "" {
		return nil
	}
	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      fixed.I(shapeSize),
	}
	output := (&shaping.HarfbuzzShaper{}).Shape(input)
	advances := make([]fixed.Int26_6, len(output.Glyphs))
	for i, g := range output.Glyphs {
		advances[i] = g.XAdvance
	}
	tracer().Debugf("shaped %q into %d glyphs", text, len(advances))
	return advances
}
