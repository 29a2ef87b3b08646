package ot

import "encoding/binary"

// HeadTableInfo is a typed view over the subset of OpenType table 'head'
// consumed by the validators. Values are decoded directly from the raw
// table bytes.
type HeadTableInfo struct {
	FontRevision uint32 // 16.16 fixed-point revision number
	UnitsPerEm   uint16
	YMin         int16
	YMax         int16
	MacStyle     uint16 // bit 0 = bold, bit 1 = italic
}

const headTableSize = 54

// HeadInfo decodes table 'head'. Returns (zero, false) if the table is
// missing or too short.
func (f *Font) HeadInfo() (HeadTableInfo, bool) {
	var info HeadTableInfo
	b := f.table("head")
	if len(b) < headTableSize {
		return info, false
	}
	info.FontRevision = binary.BigEndian.Uint32(b[4:8])
	info.UnitsPerEm = binary.BigEndian.Uint16(b[18:20])
	info.YMin = int16(binary.BigEndian.Uint16(b[38:40]))
	info.YMax = int16(binary.BigEndian.Uint16(b[42:44]))
	info.MacStyle = binary.BigEndian.Uint16(b[44:46])
	return info, true
}

// PostTableInfo is a typed view over the header of OpenType table 'post'.
type PostTableInfo struct {
	ItalicAngle  float64 // degrees, counter-clockwise from vertical
	IsFixedPitch bool
}

const postHeaderSize = 32

// PostInfo decodes the header of table 'post'. The italic angle is stored
// as 16.16 fixed-point and converted to degrees.
func (f *Font) PostInfo() (PostTableInfo, bool) {
	var info PostTableInfo
	b := f.table("post")
	if len(b) < postHeaderSize {
		return info, false
	}
	angle := int32(binary.BigEndian.Uint32(b[4:8]))
	info.ItalicAngle = float64(angle) / 65536.0
	info.IsFixedPitch = binary.BigEndian.Uint32(b[12:16]) != 0
	return info, true
}
