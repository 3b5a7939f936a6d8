package animation

import (
	"github.com/fkcurrie/led-animator/pkg/pixel"
)

// Warmth thresholds and jump targets for the twinkle field. Probabilities
// are out of 65536 per cell per tick.
const (
	// AccentWarmth is where the ambient band ends and the accent band starts
	AccentWarmth = 128
	// InitialWarmth is the ambient value every cell starts at
	InitialWarmth = 63

	// LightThreshold is the chance an ambient cell lights a candle
	LightThreshold = 100
	// CandleWarmth is where a lit candle jumps to
	CandleWarmth = 160

	// BlowOutThreshold is the chance an accent cell is blown out
	BlowOutThreshold = 200
	// EmberWarmth is where a blown out candle drops to
	EmberWarmth = 31
)

// Twinkle is a field of softly flickering ambient light in which candles are
// randomly lit and blown out. Each cell keeps a warmth value that is looked
// up in a palette to get its color.
type Twinkle struct {
	warmth  [][]uint8
	palette pixel.Palette16
	src     Source
}

// NewTwinkle creates a twinkle field for a rows x cols matrix
func NewTwinkle(rows, cols int, palette pixel.Palette16, src Source) *Twinkle {
	warmth := make([][]uint8, rows)
	for row := range warmth {
		warmth[row] = make([]uint8, cols)
		for col := range warmth[row] {
			warmth[row][col] = InitialWarmth
		}
	}
	return &Twinkle{
		warmth:  warmth,
		palette: palette,
		src:     src,
	}
}

// Name identifies the animation
func (t *Twinkle) Name() string { return "twinkle" }

// Warmth returns the current warmth of one cell
func (t *Twinkle) Warmth(row, col int) uint8 {
	return t.warmth[row][col]
}

// Advance evolves every cell and paints the frame
func (t *Twinkle) Advance(f pixel.Frame) {
	for _, line := range t.warmth {
		for col := range line {
			line[col] = t.step(line[col])
		}
	}

	for row := range f {
		for col := range f[row] {
			if row < len(t.warmth) && col < len(t.warmth[row]) {
				f[row][col] = t.palette.Lookup(t.warmth[row][col])
			} else {
				f[row][col] = pixel.Off
			}
		}
	}
}

func (t *Twinkle) step(w uint8) uint8 {
	// uint8 arithmetic wraps, cycling the value through the whole palette
	if w < AccentWarmth {
		w += uint8(t.src.IntN(3) - 1)
	} else {
		w += uint8(t.src.IntN(9) - 4)
	}

	if w < AccentWarmth && random16(t.src) < LightThreshold {
		w = CandleWarmth
	}
	if w >= AccentWarmth && random16(t.src) < BlowOutThreshold {
		w = EmberWarmth
	}
	return w
}
