package control

import (
	"fmt"
	"time"

	log "github.com/mgutz/logxi/v1"
	"github.com/warthog618/go-gpiocdev"

	"github.com/fkcurrie/led-animator/internal/types"
)

var logger = log.New("control")

// Action is what pressing a button does
type Action int

const (
	TogglePower Action = iota
	NextMode
	NextImage
)

func (a Action) String() string {
	switch a {
	case TogglePower:
		return "toggle-power"
	case NextMode:
		return "next-mode"
	case NextImage:
		return "next-image"
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// Buttons watches momentary push buttons wired between a GPIO line and
// ground and turns presses into commands
type Buttons struct {
	state   *State
	actions map[int]Action
	lines   map[int]*gpiocdev.Line
}

// NewButtons requests an input line for every configured pin. Pins that are
// zero or negative are left unused.
func NewButtons(cfg types.ButtonsConfig, state *State) (*Buttons, error) {
	actions, err := buttonActions(cfg)
	if err != nil {
		return nil, err
	}

	// actions is read by the event handler from the first request on and
	// must not change after this point
	b := &Buttons{
		state:   state,
		actions: actions,
		lines:   make(map[int]*gpiocdev.Line),
	}

	debounce := time.Duration(cfg.DebounceMs) * time.Millisecond
	if debounce <= 0 {
		debounce = 20 * time.Millisecond
	}

	for pin, action := range actions {
		line, err := gpiocdev.RequestLine(cfg.Chip, pin,
			gpiocdev.AsInput,
			gpiocdev.WithPullUp,
			gpiocdev.WithFallingEdge,
			gpiocdev.WithDebounce(debounce),
			gpiocdev.WithEventHandler(b.handle))
		if err != nil {
			// Clean up any lines we've already requested
			b.Close()
			return nil, fmt.Errorf("failed to request %s pin %d on %s: %w", action, pin, cfg.Chip, err)
		}
		b.lines[pin] = line
		logger.Info("button ready", "action", action, "chip", cfg.Chip, "pin", pin)
	}

	return b, nil
}

// buttonActions maps each configured pin to its action
func buttonActions(cfg types.ButtonsConfig) (map[int]Action, error) {
	actions := make(map[int]Action)
	for _, p := range []struct {
		action Action
		pin    int
	}{
		{TogglePower, cfg.PowerPin},
		{NextMode, cfg.ModePin},
		{NextImage, cfg.ImagePin},
	} {
		if p.pin <= 0 {
			continue
		}
		if other, dup := actions[p.pin]; dup {
			return nil, fmt.Errorf("pin %d used for both %s and %s", p.pin, other, p.action)
		}
		actions[p.pin] = p.action
	}
	return actions, nil
}

func (b *Buttons) handle(evt gpiocdev.LineEvent) {
	if evt.Type != gpiocdev.LineEventFallingEdge {
		return
	}
	action, ok := b.actions[evt.Offset]
	if !ok {
		return
	}

	logger.Debug("button pressed", "action", action, "pin", evt.Offset)
	switch action {
	case TogglePower:
		on := b.state.TogglePower()
		logger.Info("power toggled", "on", on)
	case NextMode:
		b.state.RequestNextMode()
	case NextImage:
		b.state.RequestNextImage()
	}
}

// Close releases all GPIO lines
func (b *Buttons) Close() error {
	for pin, line := range b.lines {
		if line != nil {
			if err := line.Close(); err != nil {
				logger.Warn("failed to close line", "pin", pin, "err", err)
			}
		}
	}

	// Clear the map
	b.lines = make(map[int]*gpiocdev.Line)
	return nil
}
