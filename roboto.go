package roboto

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'roboto.family'
func tracer() tracing.Trace {
	return tracing.Select("roboto.family")
}

// Fixed expected values for every binary of the family.
const (
	// Copyright is the exact name-table copyright record (name ID 0).
	Copyright = "Copyright 2011 Google Inc. All Rights Reserved."

	// VendorID is the OS/2 achVendID carried by all Google-built binaries.
	VendorID = "GOOG"

	// ItalicAngle is the post-table italic angle of the italic fonts,
	// in degrees. Upright fonts carry an angle of 0.
	ItalicAngle = -12.0
)

// Vertical metrics, pinned to the Roboto v1 values. Android requires them,
// and web fonts expect them.
const (
	YMin    int16 = -555
	YMax    int16 = 2163
	Ascent  int16 = 1900
	Descent int16 = -500
	LineGap int16 = 0
)

// LegacyPUA are private-use code points shipped by early releases of the
// family. They must remain mapped in every rebuild.
var LegacyPUA = []rune{0xEE01, 0xEE02, 0xF6C3}

// UnassignedChars are code points without a Unicode assignment which earlier
// builds mapped by accident. They must stay unmapped.
var UnassignedChars = []rune{0x2072, 0x2073, 0x208F}

// SoundRecordingCopyright (U+2117) must be mapped by every font.
const SoundRecordingCopyright rune = 0x2117

// PUARanges are the private use areas of the Unicode standard: the BMP PUA
// and supplementary planes 15 and 16, as inclusive code point ranges.
var PUARanges = [][2]rune{
	{0xE000, 0xF8FF},
	{0xF0000, 0x10FFFF},
}

// IsPUA reports whether r lies in one of the private use areas.
func IsPUA(r rune) bool {
	for _, pua := range PUARanges {
		if r >= pua[0] && r <= pua[1] {
			return true
		}
	}
	return false
}

// IsLegacyPUA reports whether r is one of the grandfathered private-use
// code points of the family.
func IsLegacyPUA(r rune) bool {
	for _, legacy := range LegacyPUA {
		if r == legacy {
			return true
		}
	}
	return false
}
