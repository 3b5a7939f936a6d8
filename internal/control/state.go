// Package control collects the commands produced outside the render loop
// (color, power, mode and image requests) and hands them to the loop as one
// consistent snapshot per tick.
package control

import (
	"sync"

	"github.com/fkcurrie/led-animator/pkg/pixel"
)

// DefaultColor is the violet the display starts with
var DefaultColor = pixel.RGB{R: 0x9A, G: 0x03, B: 0xAC}

// Commands is the command state a single frame is computed against
type Commands struct {
	Color     pixel.RGB
	PowerOn   bool
	NextMode  bool
	NextImage bool
}

// State is written by any number of producers and read once per tick by the
// render loop
type State struct {
	mu  sync.Mutex
	cmd Commands
}

// NewState starts powered on with the default color
func NewState() *State {
	return &State{cmd: Commands{Color: DefaultColor, PowerOn: true}}
}

// SetColor records the latest requested color
func (s *State) SetColor(c pixel.RGB) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cmd.Color = c
}

// SetPower switches the display on or off
func (s *State) SetPower(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cmd.PowerOn = on
}

// TogglePower flips the power state and returns the new one
func (s *State) TogglePower() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cmd.PowerOn = !s.cmd.PowerOn
	return s.cmd.PowerOn
}

// RequestNextMode asks for the next animation, once
func (s *State) RequestNextMode() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cmd.NextMode = true
}

// RequestNextImage asks the scroller for its next image, once
func (s *State) RequestNextImage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cmd.NextImage = true
}

// Snapshot returns the current commands and consumes the one-shot requests
func (s *State) Snapshot() Commands {
	s.mu.Lock()
	defer s.mu.Unlock()

	cmd := s.cmd
	s.cmd.NextMode = false
	s.cmd.NextImage = false
	return cmd
}
