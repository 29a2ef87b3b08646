package check

import (
	"fmt"

	roboto "github.com/googlefonts/roboto-2"
	"github.com/googlefonts/roboto-2/fontload"
)

// LegacyPUA checks that the grandfathered private-use code points remain
// mapped by the font.
func LegacyPUA(f fontload.LoadedFont) error {
	for _, r := range roboto.LegacyPUA {
		if !f.Font.HasCodePoint(r) {
			return fmt.Errorf("%s: legacy private-use code point %#U is missing", f.Font.Fontname, r)
		}
	}
	return nil
}

// NoOtherPUA checks that no private-use code point outside the legacy set
// is mapped by the font.
func NoOtherPUA(f fontload.LoadedFont) error {
	if extras := puaExtras(f.Font.HasCodePoint); len(extras) > 0 {
		return fmt.Errorf("%s: %d unexpected private-use code points, first is %#U",
			f.Font.Fontname, len(extras), extras[0])
	}
	return nil
}

// puaExtras scans the private use areas with the given code point predicate
// and returns every mapped code point outside the legacy set, in ascending
// order.
func puaExtras(mapped func(rune) bool) []rune {
	var extras []rune
	for _, pua := range roboto.PUARanges {
		for r := pua[0]; r <= pua[1]; r++ {
			if mapped(r) && !roboto.IsLegacyPUA(r) {
				extras = append(extras, r)
			}
		}
	}
	return extras
}

// NoUnassignedChars checks that code points without a Unicode assignment
// stay unmapped.
func NoUnassignedChars(f fontload.LoadedFont) error {
	for _, r := range roboto.UnassignedChars {
		if f.Font.HasCodePoint(r) {
			return fmt.Errorf("%s: unassigned code point %#U is mapped", f.Font.Fontname, r)
		}
	}
	return nil
}

// SoundRecordingCopyright checks that U+2117 SOUND RECORDING COPYRIGHT is
// mapped by the font.
func SoundRecordingCopyright(f fontload.LoadedFont) error {
	if !f.Font.HasCodePoint(roboto.SoundRecordingCopyright) {
		return fmt.Errorf("%s: %#U not found", f.Font.Fontname, roboto.SoundRecordingCopyright)
	}
	return nil
}
