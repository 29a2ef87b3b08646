package roboto

import "strings"

// WeightName is a weight designator as it appears in the family's font
// names, e.g. the "Bold" in "Roboto Bold Italic".
type WeightName string

// The weight designators used by the family.
const (
	Thin    WeightName = "Thin"
	Light   WeightName = "Light"
	Regular WeightName = "Regular"
	Medium  WeightName = "Medium"
	Bold    WeightName = "Bold"
	Black   WeightName = "Black"
)

// Weights maps weight names onto OS/2 usWeightClass values. Note that the
// family ships Thin with a class of 250, not the usual 100.
var Weights = map[WeightName]uint16{
	Thin:    250,
	Light:   300,
	Regular: 400,
	Medium:  500,
	Bold:    700,
	Black:   900,
}

// weightNames in the order they are probed by ExtractWeightName.
var weightNames = []WeightName{Thin, Light, Regular, Medium, Bold, Black}

// ExtractWeightName extracts the weight part from a full font name. A
// designator counts only when it starts the name or follows a space; names
// without one are Regular.
func ExtractWeightName(fontName string) WeightName {
	for i := range fontName {
		if i > 0 && fontName[i-1] != ' ' {
			continue
		}
		for _, w := range weightNames {
			if strings.HasPrefix(fontName[i:], string(w)) {
				return w
			}
		}
	}
	return Regular
}

// Style is a structured descriptor of one font's design coordinates,
// computed once at discovery time from the font's full name and consumed by
// all validators.
type Style struct {
	Weight    WeightName
	Bold      bool // name contains "Bold" or "Black"
	Italic    bool // name contains "Italic"
	Condensed bool // name contains "Condensed"
}

// ClassifyStyle derives a Style from a full font name. Matching is plain
// substring search, pinned to this family's naming convention.
func ClassifyStyle(fontName string) Style {
	return Style{
		Weight:    ExtractWeightName(fontName),
		Bold:      strings.Contains(fontName, "Bold") || strings.Contains(fontName, "Black"),
		Italic:    strings.Contains(fontName, "Italic"),
		Condensed: strings.Contains(fontName, "Condensed"),
	}
}

// MacStyle returns the expected head.macStyle bits for this style: bit 0
// for bold, bit 1 for italic.
func (s Style) MacStyle() uint16 {
	var bits uint16
	if s.Bold {
		bits |= 0x01
	}
	if s.Italic {
		bits |= 0x02
	}
	return bits
}

// PostItalicAngle returns the expected post-table italic angle for this
// style, in degrees.
func (s Style) PostItalicAngle() float64 {
	if s.Italic {
		return ItalicAngle
	}
	return 0.0
}
