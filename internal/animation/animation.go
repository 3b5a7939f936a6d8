/*
Package animation contains the frame generators that draw onto the logical
LED matrix, one frame per tick, and the scheduler choosing which of them runs.
*/
package animation

import (
	log "github.com/mgutz/logxi/v1"

	"github.com/fkcurrie/led-animator/pkg/pixel"
)

var logger = log.New("animation")

// Generator is a stateful animation. Advance moves the animation on by one
// frame and assigns every cell of f; it must not keep f after returning.
type Generator interface {
	Name() string
	Advance(f pixel.Frame)
}

// HueSetter is implemented by generators that can be tinted from outside
type HueSetter interface {
	SetHue(hue uint8)
}

// Source is the random number source driving the stochastic animations.
// *math/rand/v2.Rand satisfies it.
type Source interface {
	// IntN returns a value in [0, n)
	IntN(n int) int
}

// random16 mirrors a uniformly distributed 16-bit draw, the resolution the
// per tick probabilities are expressed in
func random16(src Source) int {
	return src.IntN(1 << 16)
}
