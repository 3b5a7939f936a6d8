// Package pixel holds the color model shared by the animations: 8-bit RGB and
// HSV triples, a 16 stop HSV palette and the integer wave helpers used to
// shape intensities.
package pixel

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a color with three 8-bit channels. The zero value is "off".
type RGB struct {
	R, G, B uint8
}

// Off is an unlit LED
var Off = RGB{}

// HSV is a color on the 256 step hue wheel used throughout the animations.
// Saturation and value are 0-255.
type HSV struct {
	H, S, V uint8
}

// Hex returns the color as #RRGGBB
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// IsOff reports whether every channel is zero
func (c RGB) IsOff() bool {
	return c == Off
}

// Scale dims every channel by scale/256 (scale 255 keeps the color)
func (c RGB) Scale(scale uint8) RGB {
	return RGB{Scale8(c.R, scale), Scale8(c.G, scale), Scale8(c.B, scale)}
}

// RGBToHSV converts a color to HSV on the 256 step wheel
func RGBToHSV(c RGB) HSV {
	cf := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	h, s, v := cf.Hsv()

	return HSV{
		H: uint8(int(h*256/360+0.5) & 0xFF),
		S: unit8(s),
		V: unit8(v),
	}
}

// RGB converts the color back to 8-bit RGB
func (c HSV) RGB() RGB {
	if c.V == 0 {
		return Off
	}
	cf := colorful.Hsv(float64(c.H)*360/256, float64(c.S)/255, float64(c.V)/255)
	r, g, b := cf.Clamped().RGB255()
	return RGB{r, g, b}
}

func unit8(f float64) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 1:
		return 255
	}
	return uint8(f*255 + 0.5)
}
