package types

import "github.com/fkcurrie/led-animator/pkg/pixel"

// Driver pushes a physical LED buffer to the hardware
type Driver interface {
	// Show writes one frame, indexed by physical LED position
	Show(buf []pixel.RGB) error
	// Close releases the output
	Close() error
}
