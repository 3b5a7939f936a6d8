package animation

import (
	"fmt"

	"github.com/fkcurrie/led-animator/pkg/pixel"
)

const (
	// StartThreshold is the chance out of 65536 per tick that an idle row
	// launches a new dot
	StartThreshold = 400
	// DefaultTrailHue is a violet on the 256 step wheel
	DefaultTrailHue = 204
)

// Trails runs one dot per row from left to right, a dimming tail behind it
// and a short brightening head in front.
type Trails struct {
	cols        int
	tailLength  int
	headLength  int
	minPosition int
	maxPosition int

	positions   []int
	intensities []uint8
	hue         uint8
	src         Source
}

// NewTrails creates the animation for a rows x cols matrix. Tail and head
// lengths must both be at least one.
func NewTrails(rows, cols, tailLength, headLength int, src Source) (*Trails, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid dimensions: %dx%d", rows, cols)
	}
	if tailLength < 1 || headLength < 1 {
		return nil, fmt.Errorf("tail and head lengths must be at least 1, got %d and %d", tailLength, headLength)
	}

	t := &Trails{
		cols:        cols,
		tailLength:  tailLength,
		headLength:  headLength,
		minPosition: -headLength,
		maxPosition: cols + tailLength,
		positions:   make([]int, rows),
		intensities: Falloff(tailLength, headLength),
		hue:         DefaultTrailHue,
		src:         src,
	}
	for row := range t.positions {
		t.positions[row] = t.minPosition - 1
	}
	return t, nil
}

// Falloff samples a triangle wave across the tail, dot and head, brightest
// at the dot itself. The result has tailLength+1+headLength entries.
func Falloff(tailLength, headLength int) []uint8 {
	intensities := make([]uint8, 0, tailLength+1+headLength)
	for i := 0; i <= tailLength; i++ {
		intensities = append(intensities, pixel.Dim8Raw(pixel.Triwave8(uint8(i*80/tailLength+47))))
	}
	for i := 1; i <= headLength; i++ {
		intensities = append(intensities, pixel.Dim8Raw(pixel.Triwave8(uint8(127+i*80/headLength))))
	}
	return intensities
}

// Name identifies the animation
func (t *Trails) Name() string { return "trails" }

// SetHue sets the hue every dot is drawn in
func (t *Trails) SetHue(hue uint8) { t.hue = hue }

// Hue returns the current dot hue
func (t *Trails) Hue() uint8 { return t.hue }

// Position returns the column of the dot in a row
func (t *Trails) Position(row int) int { return t.positions[row] }

// Active reports whether the dot of a row is running
func (t *Trails) Active(row int) bool { return t.positions[row] >= t.minPosition }

// Bounds returns the first and last positions a running dot takes
func (t *Trails) Bounds() (min, max int) { return t.minPosition, t.maxPosition }

// Intensities returns a copy of the falloff curve
func (t *Trails) Intensities() []uint8 {
	return append([]uint8(nil), t.intensities...)
}

// Advance moves every running dot one column, starts some idle ones and
// paints the frame
func (t *Trails) Advance(f pixel.Frame) {
	for row, position := range t.positions {
		if position >= t.minPosition {
			if position < t.maxPosition {
				position++
			} else {
				position = t.minPosition - 1
			}
		}
		if position < t.minPosition && random16(t.src) < StartThreshold {
			position = t.minPosition
		}
		t.positions[row] = position
	}

	for row := range f {
		if row >= len(t.positions) || !t.Active(row) {
			for col := range f[row] {
				f[row][col] = pixel.Off
			}
			continue
		}

		position := t.positions[row]
		for col := range f[row] {
			i := col - position + t.tailLength
			if i >= 0 && i < len(t.intensities) {
				f[row][col] = pixel.HSV{H: t.hue, S: 255, V: t.intensities[i]}.RGB()
			} else {
				f[row][col] = pixel.Off
			}
		}
	}
}
