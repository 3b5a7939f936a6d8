package animation

import (
	"fmt"
	"time"
)

// DefaultFPS is used for entries registered without a frame rate
const DefaultFPS = 30

// Entry is a generator together with the frame rate it looks best at
type Entry struct {
	Generator Generator
	FPS       int
}

// Scheduler holds the generators in the order the mode button cycles them
type Scheduler struct {
	entries []Entry
	active  int
}

// NewScheduler creates a scheduler with the first entry active
func NewScheduler(entries ...Entry) (*Scheduler, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("scheduler needs at least one animation")
	}

	s := &Scheduler{entries: make([]Entry, len(entries))}
	for i, e := range entries {
		if e.Generator == nil {
			return nil, fmt.Errorf("animation %d is nil", i)
		}
		if e.FPS <= 0 {
			e.FPS = DefaultFPS
		}
		s.entries[i] = e
	}
	return s, nil
}

// Active returns the generator to run this tick
func (s *Scheduler) Active() Generator {
	return s.entries[s.active].Generator
}

// Index is the position of the active generator
func (s *Scheduler) Index() int {
	return s.active
}

// Len is the number of generators
func (s *Scheduler) Len() int {
	return len(s.entries)
}

// Names lists the generators in cycling order
func (s *Scheduler) Names() []string {
	names := make([]string, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.Generator.Name()
	}
	return names
}

// SelectNext activates the following generator, wrapping after the last
func (s *Scheduler) SelectNext() Generator {
	s.active = (s.active + 1) % len(s.entries)
	logger.Info("animation selected", "name", s.Active().Name())
	return s.Active()
}

// Select activates the generator with the given name
func (s *Scheduler) Select(name string) error {
	for i, e := range s.entries {
		if e.Generator.Name() == name {
			s.active = i
			return nil
		}
	}
	return fmt.Errorf("unknown animation %q", name)
}

// FPS is the target frame rate of the active generator
func (s *Scheduler) FPS() int {
	return s.entries[s.active].FPS
}

// FrameInterval is the time budget of one frame of the active generator
func (s *Scheduler) FrameInterval() time.Duration {
	return time.Second / time.Duration(s.FPS())
}

// SetHue tints every generator that accepts a hue
func (s *Scheduler) SetHue(hue uint8) {
	for _, e := range s.entries {
		if hs, ok := e.Generator.(HueSetter); ok {
			hs.SetHue(hue)
		}
	}
}
