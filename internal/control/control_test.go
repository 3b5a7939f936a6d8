package control

import (
	"reflect"
	"sync"
	"testing"

	"github.com/warthog618/go-gpiocdev"

	"github.com/fkcurrie/led-animator/internal/types"
	"github.com/fkcurrie/led-animator/pkg/pixel"
)

func TestStateDefaults(t *testing.T) {
	cmd := NewState().Snapshot()
	if !cmd.PowerOn {
		t.Error("new state is powered off")
	}
	if cmd.Color != DefaultColor {
		t.Errorf("Color = %v, want %v", cmd.Color, DefaultColor)
	}
	if cmd.NextMode || cmd.NextImage {
		t.Errorf("new state has pending requests: %+v", cmd)
	}
}

func TestSnapshotConsumesRequests(t *testing.T) {
	s := NewState()
	s.RequestNextMode()
	s.RequestNextImage()
	s.SetColor(pixel.RGB{R: 1})
	s.SetPower(false)

	first := s.Snapshot()
	if !first.NextMode || !first.NextImage {
		t.Errorf("first snapshot = %+v, want both requests", first)
	}
	if first.PowerOn || first.Color != (pixel.RGB{R: 1}) {
		t.Errorf("first snapshot = %+v", first)
	}

	second := s.Snapshot()
	if second.NextMode || second.NextImage {
		t.Errorf("second snapshot = %+v, requests must be consumed", second)
	}
	if second.PowerOn || second.Color != (pixel.RGB{R: 1}) {
		t.Errorf("second snapshot lost level state: %+v", second)
	}
}

func TestStateConcurrency(t *testing.T) {
	s := NewState()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.SetColor(pixel.RGB{R: uint8(i), G: uint8(j)})
				s.RequestNextImage()
				s.Snapshot()
			}
		}(i)
	}
	wg.Wait()
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		payload string
		want    pixel.RGB
		wantErr bool
	}{
		{"#9A03AC", pixel.RGB{R: 0x9A, G: 0x03, B: 0xAC}, false},
		{"#ffffff", pixel.RGB{R: 255, G: 255, B: 255}, false},
		{"00ff00", pixel.RGB{G: 255}, false},
		{" #000000\n", pixel.RGB{}, false},
		{"#12345", pixel.RGB{}, true},
		{"#GG0000", pixel.RGB{}, true},
		{"", pixel.RGB{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.payload, func(t *testing.T) {
			got, err := ParseColor(tt.payload)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.payload, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.payload, got, tt.want)
			}
		})
	}
}

func TestParsePower(t *testing.T) {
	tests := []struct {
		payload string
		want    bool
		wantErr bool
	}{
		{"ON", true, false},
		{"off", false, false},
		{" On ", true, false},
		{"1", false, true},
	}
	for _, tt := range tests {
		got, err := ParsePower(tt.payload)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParsePower(%q) = %v, %v", tt.payload, got, err)
		}
	}
}

func TestButtonHandler(t *testing.T) {
	s := NewState()
	b := &Buttons{
		state:   s,
		actions: map[int]Action{5: TogglePower, 6: NextMode, 13: NextImage},
		lines:   map[int]*gpiocdev.Line{},
	}

	b.handle(gpiocdev.LineEvent{Offset: 6, Type: gpiocdev.LineEventFallingEdge})
	b.handle(gpiocdev.LineEvent{Offset: 13, Type: gpiocdev.LineEventRisingEdge})
	cmd := s.Snapshot()
	if !cmd.NextMode || cmd.NextImage {
		t.Errorf("snapshot = %+v, want only a mode request", cmd)
	}

	b.handle(gpiocdev.LineEvent{Offset: 5, Type: gpiocdev.LineEventFallingEdge})
	if s.Snapshot().PowerOn {
		t.Error("power still on after toggle")
	}
	b.handle(gpiocdev.LineEvent{Offset: 99, Type: gpiocdev.LineEventFallingEdge})
	b.handle(gpiocdev.LineEvent{Offset: 13, Type: gpiocdev.LineEventFallingEdge})
	cmd = s.Snapshot()
	if cmd.PowerOn || !cmd.NextImage {
		t.Errorf("snapshot = %+v, want power off and an image request", cmd)
	}

	if err := b.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestNewButtonsUnused(t *testing.T) {
	b, err := NewButtons(types.ButtonsConfig{Chip: "gpiochip0"}, NewState())
	if err != nil {
		t.Fatalf("NewButtons() without pins error = %v", err)
	}
	if len(b.lines) != 0 {
		t.Errorf("requested %d lines, want none", len(b.lines))
	}
}

func TestActionString(t *testing.T) {
	if NextImage.String() != "next-image" || Action(9).String() != "action(9)" {
		t.Errorf("unexpected action names %s %s", NextImage, Action(9))
	}
}

func TestButtonActions(t *testing.T) {
	tests := []struct {
		name    string
		cfg     types.ButtonsConfig
		want    map[int]Action
		wantErr bool
	}{
		{
			name: "all buttons",
			cfg:  types.ButtonsConfig{PowerPin: 5, ModePin: 6, ImagePin: 13},
			want: map[int]Action{5: TogglePower, 6: NextMode, 13: NextImage},
		},
		{
			name: "unused pins skipped",
			cfg:  types.ButtonsConfig{PowerPin: 0, ModePin: 6, ImagePin: -1},
			want: map[int]Action{6: NextMode},
		},
		{
			name:    "shared pin",
			cfg:     types.ButtonsConfig{PowerPin: 5, ModePin: 6, ImagePin: 5},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buttonActions(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("buttonActions() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) && !tt.wantErr {
				t.Errorf("buttonActions() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewButtonsSharedPin(t *testing.T) {
	cfg := types.ButtonsConfig{Chip: "gpiochip0", PowerPin: 7, ModePin: 7}
	if _, err := NewButtons(cfg, NewState()); err == nil {
		t.Error("NewButtons() with a shared pin did not return error")
	}
}

// Events arrive on the gpio library's goroutines, one per line
func TestButtonHandlerConcurrent(t *testing.T) {
	actions, err := buttonActions(types.ButtonsConfig{PowerPin: 5, ModePin: 6, ImagePin: 13})
	if err != nil {
		t.Fatalf("buttonActions() error = %v", err)
	}
	s := NewState()
	b := &Buttons{state: s, actions: actions, lines: map[int]*gpiocdev.Line{}}

	var wg sync.WaitGroup
	for _, pin := range []int{5, 6, 13} {
		wg.Add(1)
		go func(pin int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				b.handle(gpiocdev.LineEvent{Offset: pin, Type: gpiocdev.LineEventFallingEdge})
			}
		}(pin)
	}
	wg.Wait()

	// 100 toggles leave the power where it started
	cmd := s.Snapshot()
	if !cmd.PowerOn || !cmd.NextMode || !cmd.NextImage {
		t.Errorf("snapshot = %+v", cmd)
	}
}
