package pixel

// Palette16 is an ordered set of 16 HSV stops spread evenly across the 8-bit
// index space, 16 indices per stop.
type Palette16 [16]HSV

// band names a contiguous run of palette stops
type band struct {
	Name  string
	First int
	Last  int
}

// Lookup maps an 8-bit index onto the palette. Indices within a band blend
// from that band's stop toward the next one; the last band holds the final
// stop so that 255 resolves to it exactly.
func (p *Palette16) Lookup(index uint8) RGB {
	return p.LookupHSV(index).RGB()
}

// LookupHSV is Lookup without the final RGB conversion
func (p *Palette16) LookupHSV(index uint8) HSV {
	stop := int(index >> 4)
	frac := int(index & 0x0F)

	from := p[stop]
	if stop == len(p)-1 || frac == 0 {
		return from
	}
	to := p[stop+1]

	return HSV{
		H: lerpHue(from.H, to.H, frac),
		S: lerp8(from.S, to.S, frac),
		V: lerp8(from.V, to.V, frac),
	}
}

// lerp8 moves frac/16 of the way from a to b
func lerp8(a, b uint8, frac int) uint8 {
	return uint8(int(a) + (int(b)-int(a))*frac/16)
}

// lerpHue interpolates along the shorter arc of the hue wheel
func lerpHue(a, b uint8, frac int) uint8 {
	delta := int(int8(b - a))
	return uint8(int(a) + delta*frac/16)
}

// ChristmasPalette is green ambient light with candles and decorations
var ChristmasPalette = Palette16{
	// ambient 0-127
	{90, 255, 160},
	{96, 255, 150},
	{96, 255, 140},
	{105, 255, 160},
	{90, 255, 160},
	{96, 255, 150},
	{96, 255, 140},
	{105, 255, 160},

	// accent-high 128-191
	{40, 255, 150},
	{60, 255, 220},
	{64, 255, 230},
	{70, 255, 160},

	// accent-special 192-255
	{0, 255, 255},
	{224, 255, 255},
	{192, 255, 255},
	{160, 255, 255},
}

// christmasBands describes the stop ranges of ChristmasPalette
var christmasBands = []band{
	{Name: "ambient", First: 0, Last: 7},
	{Name: "accent-high", First: 8, Last: 11},
	{Name: "accent-special", First: 12, Last: 15},
}

// bandOf returns the name of the band a palette index falls into
func bandOf(bands []band, index uint8) string {
	stop := int(index >> 4)
	for _, b := range bands {
		if stop >= b.First && stop <= b.Last {
			return b.Name
		}
	}
	return ""
}
