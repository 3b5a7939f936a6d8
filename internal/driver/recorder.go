package driver

import (
	"sync"

	log "github.com/mgutz/logxi/v1"

	"github.com/fkcurrie/led-animator/pkg/pixel"
)

var logger = log.New("driver")

// Recorder keeps the frames it is shown in memory. A limit of zero keeps
// only the latest frame.
type Recorder struct {
	limit int

	mu     sync.Mutex
	frames [][]pixel.RGB
	shown  uint64
}

// NewRecorder keeps up to limit frames, dropping the oldest
func NewRecorder(limit int) *Recorder {
	if limit <= 0 {
		limit = 1
	}
	return &Recorder{limit: limit}
}

// Show stores a copy of buf
func (r *Recorder) Show(buf []pixel.RGB) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.frames = append(r.frames, append([]pixel.RGB(nil), buf...))
	if len(r.frames) > r.limit {
		r.frames = r.frames[len(r.frames)-r.limit:]
	}
	r.shown++
	return nil
}

// Frames returns the stored frames, oldest first
func (r *Recorder) Frames() [][]pixel.RGB {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]pixel.RGB(nil), r.frames...)
}

// Last returns the latest frame, or nil before the first Show
func (r *Recorder) Last() []pixel.RGB {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.frames) == 0 {
		return nil
	}
	return r.frames[len(r.frames)-1]
}

// Shown counts every frame shown, including dropped ones
func (r *Recorder) Shown() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.shown
}

// Close does nothing
func (r *Recorder) Close() error { return nil }
