package ot

// HasCodePoint reports whether the font's character map assigns a glyph to
// code point r.
func (f *Font) HasCodePoint(r rune) bool {
	if f == nil || f.face == nil {
		return false
	}
	_, ok := f.face.NominalGlyph(r)
	return ok
}

// CodePointsIn scans the inclusive code point range [lo, hi] and returns
// the mapped code points, in ascending order.
func (f *Font) CodePointsIn(lo, hi rune) []rune {
	var mapped []rune
	for r := lo; r <= hi; r++ {
		if f.HasCodePoint(r) {
			mapped = append(mapped, r)
		}
	}
	return mapped
}
