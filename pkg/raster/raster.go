// Package raster decodes image assets into rectangular pixel buffers the
// scrolling animation copies onto the matrix.
package raster

import (
	"fmt"

	"github.com/fkcurrie/led-animator/pkg/pixel"
)

// FallbackColor fills the raster substituted for an asset that failed to load
var FallbackColor = pixel.RGB{R: 0x40, G: 0x40, B: 0x40}

// Raster is a decoded image, Pix[row][col] with row 0 at the top
type Raster struct {
	Width  int
	Height int
	Pix    [][]pixel.RGB
}

// New allocates an all-off raster
func New(width, height int) *Raster {
	r := &Raster{Width: width, Height: height, Pix: make([][]pixel.RGB, height)}
	for row := range r.Pix {
		r.Pix[row] = make([]pixel.RGB, width)
	}
	return r
}

// Solid is a raster filled with a single color
func Solid(width, height int, c pixel.RGB) *Raster {
	r := New(width, height)
	for _, line := range r.Pix {
		for col := range line {
			line[col] = c
		}
	}
	return r
}

// At returns the pixel at (row, col)
func (r *Raster) At(row, col int) pixel.RGB {
	return r.Pix[row][col]
}

// DecodeError is returned for any asset that is missing, unreadable,
// truncated or in a format that is not supported
type DecodeError struct {
	Name   string
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	msg := "failed to decode"
	if e.Name != "" {
		msg += " " + e.Name
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func decodeErrorf(format string, args ...interface{}) *DecodeError {
	return &DecodeError{Reason: fmt.Sprintf(format, args...)}
}
