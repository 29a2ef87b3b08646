package ot

import "encoding/binary"

// HHeaTableInfo is a typed view over the line metrics of OpenType table
// 'hhea'.
type HHeaTableInfo struct {
	Ascender  int16
	Descender int16
	LineGap   int16
}

const hheaTableSize = 36

// HHeaInfo decodes table 'hhea'. Returns (zero, false) if the table is
// missing or too short.
func (f *Font) HHeaInfo() (HHeaTableInfo, bool) {
	var info HHeaTableInfo
	b := f.table("hhea")
	if len(b) < hheaTableSize {
		return info, false
	}
	info.Ascender = int16(binary.BigEndian.Uint16(b[4:6]))
	info.Descender = int16(binary.BigEndian.Uint16(b[6:8]))
	info.LineGap = int16(binary.BigEndian.Uint16(b[8:10]))
	return info, true
}

// OS2TableInfo is a typed view over the licensing and weight fields of
// OpenType table 'OS/2'.
type OS2TableInfo struct {
	Version       uint16
	USWeightClass uint16
	FsType        uint16 // embedding permissions; 0 = installable
	AchVendID     string // 4-character vendor tag
}

// os2TableSizeV0 is the size of an OS/2 table of version 0; all fields
// decoded here live within it.
const os2TableSizeV0 = 78

// OS2Info decodes table 'OS/2'. Returns (zero, false) if the table is
// missing or too short.
func (f *Font) OS2Info() (OS2TableInfo, bool) {
	var info OS2TableInfo
	b := f.table("OS/2")
	if len(b) < os2TableSizeV0 {
		return info, false
	}
	info.Version = binary.BigEndian.Uint16(b[0:2])
	info.USWeightClass = binary.BigEndian.Uint16(b[4:6])
	info.FsType = binary.BigEndian.Uint16(b[8:10])
	info.AchVendID = string(b[58:62])
	return info, true
}

// AdvanceWidth returns the horizontal advance, in font units, of the glyph
// the character map assigns to code point r. The second return value is
// false when r is not mapped.
func (f *Font) AdvanceWidth(r rune) (float32, bool) {
	if f == nil || f.face == nil {
		return 0, false
	}
	gid, ok := f.face.NominalGlyph(r)
	if !ok {
		return 0, false
	}
	return f.face.HorizontalAdvance(gid), true
}
