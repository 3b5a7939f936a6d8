package raster

import (
	"image"
	"io"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/fkcurrie/led-animator/pkg/pixel"
)

// RenderSVG rasterizes an SVG icon to the given height, the width following
// the aspect ratio of its view box. Transparent areas come out off.
func RenderSVG(in io.Reader, height int) (*Raster, error) {
	if height <= 0 {
		return nil, decodeErrorf("unsupported target height %d", height)
	}

	icon, err := oksvg.ReadIconStream(in, oksvg.WarnErrorMode)
	if err != nil {
		return nil, &DecodeError{Reason: "failed to parse svg", Err: err}
	}
	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		return nil, decodeErrorf("svg has an empty view box")
	}

	width := int(math.Ceil(icon.ViewBox.W * float64(height) / icon.ViewBox.H))
	if width <= 0 || width > maxDimension {
		return nil, decodeErrorf("unsupported rendered width %d", width)
	}

	icon.SetTarget(0, 0, float64(width), float64(height))
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1)

	r := New(width, height)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			// Premultiplied, so compositing over black is just the channels
			c := img.RGBAAt(col, row)
			r.Pix[row][col] = pixel.RGB{R: c.R, G: c.G, B: c.B}
		}
	}
	return r, nil
}
