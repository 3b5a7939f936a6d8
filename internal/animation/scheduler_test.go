package animation

import (
	"testing"
	"time"

	"github.com/fkcurrie/led-animator/pkg/pixel"
)

func newTestScheduler(t *testing.T) (*Scheduler, *Trails) {
	t.Helper()
	trails, err := NewTrails(2, 4, 2, 1, never)
	if err != nil {
		t.Fatalf("NewTrails() error = %v", err)
	}
	s, err := NewScheduler(
		Entry{Generator: NewTwinkle(2, 4, pixel.ChristmasPalette, never), FPS: 20},
		Entry{Generator: trails, FPS: 50},
		Entry{Generator: NewScroller(2, 4, mapLoader{}, nil)},
	)
	if err != nil {
		t.Fatalf("NewScheduler() error = %v", err)
	}
	return s, trails
}

func TestSchedulerSelectNext(t *testing.T) {
	s, _ := newTestScheduler(t)

	want := []string{"trails", "scroller", "twinkle", "trails"}
	if s.Active().Name() != "twinkle" {
		t.Fatalf("Active() = %s, want twinkle", s.Active().Name())
	}
	for _, name := range want {
		if got := s.SelectNext().Name(); got != name {
			t.Errorf("SelectNext() = %s, want %s", got, name)
		}
	}
	if s.Index() != 1 {
		t.Errorf("Index() = %d, want 1", s.Index())
	}
}

func TestSchedulerFrameRate(t *testing.T) {
	s, _ := newTestScheduler(t)

	tests := []struct {
		fps      int
		interval time.Duration
	}{
		{20, 50 * time.Millisecond},
		{50, 20 * time.Millisecond},
		{DefaultFPS, time.Second / DefaultFPS},
	}
	for i, tt := range tests {
		if s.FPS() != tt.fps {
			t.Errorf("%s FPS() = %d, want %d", s.Active().Name(), s.FPS(), tt.fps)
		}
		if s.FrameInterval() != tt.interval {
			t.Errorf("%s FrameInterval() = %v, want %v", s.Active().Name(), s.FrameInterval(), tt.interval)
		}
		if i < len(tests)-1 {
			s.SelectNext()
		}
	}
}

func TestSchedulerSelect(t *testing.T) {
	s, _ := newTestScheduler(t)
	if err := s.Select("scroller"); err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if s.Active().Name() != "scroller" {
		t.Errorf("Active() = %s, want scroller", s.Active().Name())
	}
	if err := s.Select("plasma"); err == nil {
		t.Error("Select() of an unknown animation did not return error")
	}

	names := s.Names()
	if len(names) != 3 || names[0] != "twinkle" || names[2] != "scroller" {
		t.Errorf("Names() = %v", names)
	}
}

func TestSchedulerSetHue(t *testing.T) {
	s, trails := newTestScheduler(t)
	s.SetHue(42)
	if trails.Hue() != 42 {
		t.Errorf("trails hue = %d, want 42", trails.Hue())
	}
}

func TestNewSchedulerErrors(t *testing.T) {
	if _, err := NewScheduler(); err == nil {
		t.Error("NewScheduler() without entries did not return error")
	}
	if _, err := NewScheduler(Entry{}); err == nil {
		t.Error("NewScheduler() with a nil generator did not return error")
	}
}
