package ot

func u16(b []byte) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])<<0
}
