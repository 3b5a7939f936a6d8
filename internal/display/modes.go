package display

import (
	"fmt"

	"github.com/fkcurrie/led-animator/internal/animation"
	"github.com/fkcurrie/led-animator/internal/types"
	"github.com/fkcurrie/led-animator/pkg/pixel"
)

// DefaultScrollFPS is the scroller's frame rate when none is configured
const DefaultScrollFPS = 15

// NewScheduler builds the animations named in cfg.Modes, in that order. The
// scroller is returned as well when it is one of them.
func NewScheduler(cfg types.AnimationConfig, rows, cols int, loader animation.ImageLoader,
	images []string, src animation.Source) (*animation.Scheduler, *animation.Scroller, error) {
	var (
		entries  []animation.Entry
		scroller *animation.Scroller
	)

	for _, mode := range cfg.Modes {
		switch mode {
		case "twinkle":
			entries = append(entries, animation.Entry{
				Generator: animation.NewTwinkle(rows, cols, pixel.ChristmasPalette, src),
				FPS:       cfg.FPS,
			})
		case "trails":
			trails, err := animation.NewTrails(rows, cols, cfg.TrailTail, cfg.TrailHead, src)
			if err != nil {
				return nil, nil, err
			}
			entries = append(entries, animation.Entry{Generator: trails, FPS: cfg.FPS})
		case "scroller":
			if scroller != nil {
				return nil, nil, fmt.Errorf("scroller listed twice")
			}
			fps := cfg.ScrollFPS
			if fps <= 0 {
				fps = DefaultScrollFPS
			}
			scroller = animation.NewScroller(rows, cols, loader, images)
			entries = append(entries, animation.Entry{Generator: scroller, FPS: fps})
		default:
			return nil, nil, fmt.Errorf("unknown animation mode %q", mode)
		}
	}

	sched, err := animation.NewScheduler(entries...)
	if err != nil {
		return nil, nil, err
	}
	return sched, scroller, nil
}
