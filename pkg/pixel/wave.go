package pixel

// Triwave8 is a triangle wave over one 8-bit period: 0 at 0, 254 at 127,
// back down to 0 at 255.
func Triwave8(in uint8) uint8 {
	if in&0x80 != 0 {
		in = 255 - in
	}
	return in << 1
}

// Scale8 scales i by scale/256, keeping i when scale is 255
func Scale8(i, scale uint8) uint8 {
	return uint8((uint16(i) * (1 + uint16(scale))) >> 8)
}

// Dim8Raw squares a value on the 8-bit scale, a cheap gamma curve
func Dim8Raw(x uint8) uint8 {
	return Scale8(x, x)
}
