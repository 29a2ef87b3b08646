package check

import (
	"fmt"

	roboto "github.com/googlefonts/roboto-2"
	"github.com/googlefonts/roboto-2/fontload"
)

// digits are the ten decimal digits, probed in code point order.
const digits = "0123456789"

// DigitWidths checks that all ten decimal digits share exactly one advance
// width, so numbers align in columns.
func DigitWidths(f fontload.LoadedFont) error {
	widths := make(map[float32][]rune)
	for _, d := range digits {
		w, ok := f.Font.AdvanceWidth(d)
		if !ok {
			return fmt.Errorf("%s: digit %q is not mapped", f.Font.Fontname, d)
		}
		widths[w] = append(widths[w], d)
	}
	if len(widths) != 1 {
		return fmt.Errorf("%s: digits have %d distinct advance widths %v",
			f.Font.Fontname, len(widths), widths)
	}
	return nil
}

// VerticalLimits checks head.yMin and head.yMax against the family's pinned
// values.
func VerticalLimits(f fontload.LoadedFont) error {
	head, ok := f.Font.HeadInfo()
	if !ok {
		return fmt.Errorf("%s: cannot decode table head", f.Font.Fontname)
	}
	if head.YMin != roboto.YMin {
		return fmt.Errorf("%s: yMin is %d, want %d", f.Font.Fontname, head.YMin, roboto.YMin)
	}
	if head.YMax != roboto.YMax {
		return fmt.Errorf("%s: yMax is %d, want %d", f.Font.Fontname, head.YMax, roboto.YMax)
	}
	return nil
}

// LineMetrics checks ascent, descent and line gap of table hhea against the
// family's pinned values.
func LineMetrics(f fontload.LoadedFont) error {
	hhea, ok := f.Font.HHeaInfo()
	if !ok {
		return fmt.Errorf("%s: cannot decode table hhea", f.Font.Fontname)
	}
	if hhea.Ascender != roboto.Ascent {
		return fmt.Errorf("%s: ascent is %d, want %d", f.Font.Fontname, hhea.Ascender, roboto.Ascent)
	}
	if hhea.Descender != roboto.Descent {
		return fmt.Errorf("%s: descent is %d, want %d", f.Font.Fontname, hhea.Descender, roboto.Descent)
	}
	if hhea.LineGap != roboto.LineGap {
		return fmt.Errorf("%s: line gap is %d, want %d", f.Font.Fontname, hhea.LineGap, roboto.LineGap)
	}
	return nil
}
