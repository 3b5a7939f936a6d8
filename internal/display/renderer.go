package display

import (
	"context"
	"sync"
	"time"

	log "github.com/mgutz/logxi/v1"

	"github.com/fkcurrie/led-animator/internal/animation"
	"github.com/fkcurrie/led-animator/internal/control"
	"github.com/fkcurrie/led-animator/internal/types"
	"github.com/fkcurrie/led-animator/pkg/ledmap"
	"github.com/fkcurrie/led-animator/pkg/pixel"
)

var logger = log.New("display")

// CommandSource hands out the external commands, once per tick
type CommandSource interface {
	Snapshot() control.Commands
}

// Renderer handles the display rendering logic. Tick and Start must be
// called from a single goroutine; Status is safe from any.
type Renderer struct {
	mapper    *ledmap.Map
	scheduler *animation.Scheduler
	scroller  *animation.Scroller
	commands  CommandSource
	driver    types.Driver

	frame pixel.Frame
	buf   []pixel.RGB

	color  pixel.RGB
	tinted bool

	mu     sync.RWMutex
	status types.Status
}

// NewRenderer creates a new renderer instance. scroller may be nil when no
// image animation is scheduled, driver may be nil when frames are only
// pulled through Tick.
func NewRenderer(mapper *ledmap.Map, scheduler *animation.Scheduler, scroller *animation.Scroller,
	commands CommandSource, driver types.Driver) *Renderer {
	return &Renderer{
		mapper:    mapper,
		scheduler: scheduler,
		scroller:  scroller,
		commands:  commands,
		driver:    driver,
		frame:     pixel.NewFrame(mapper.Rows(), mapper.Cols()),
		buf:       make([]pixel.RGB, mapper.Len()),
	}
}

// Tick computes one frame and returns the physical buffer. The buffer is
// reused by the next Tick.
func (r *Renderer) Tick() []pixel.RGB {
	cmd := r.commands.Snapshot()

	if cmd.NextMode {
		r.scheduler.SelectNext()
	}
	if cmd.NextImage && r.scroller != nil {
		// Failures are logged by the scroller, which falls back to a solid raster
		_ = r.scroller.LoadNext()
	}

	if !r.tinted || cmd.Color != r.color {
		r.scheduler.SetHue(pixel.RGBToHSV(cmd.Color).H)
		r.color = cmd.Color
		r.tinted = true
	}

	if cmd.PowerOn {
		r.frame.Clear()
		r.scheduler.Active().Advance(r.frame)
		r.mapper.Project(r.frame, r.buf)
	} else {
		for i := range r.buf {
			r.buf[i] = pixel.Off
		}
	}

	r.updateStatus(cmd)
	return r.buf
}

func (r *Renderer) updateStatus(cmd control.Commands) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.status.Mode = r.scheduler.Active().Name()
	if r.scroller != nil {
		r.status.Image = r.scroller.Current()
	}
	r.status.Power = cmd.PowerOn
	r.status.Color = cmd.Color.Hex()
	r.status.Frames++
}

// Status reports what the renderer last drew
func (r *Renderer) Status() types.Status {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.status
}

// Start runs the frame loop until ctx is cancelled. Every frame is paced
// to the frame rate of the active animation.
func (r *Renderer) Start(ctx context.Context) error {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			start := time.Now()
			buf := r.Tick()
			if r.driver != nil {
				if err := r.driver.Show(buf); err != nil {
					logger.Warn("failed to show frame", "err", err)
				}
			}

			wait := r.scheduler.FrameInterval() - time.Since(start)
			if wait < 0 {
				logger.Debug("frame overran", "mode", r.scheduler.Active().Name(), "by", -wait)
				wait = 0
			}
			timer.Reset(wait)
		}
	}
}
