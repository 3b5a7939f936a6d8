package animation

import (
	"errors"

	"github.com/fkcurrie/led-animator/pkg/pixel"
	"github.com/fkcurrie/led-animator/pkg/raster"
)

// ErrEmptyAssetList is reported when there is no image to scroll
var ErrEmptyAssetList = errors.New("no image assets discovered")

// ImageLoader fetches and decodes an image asset by name. *raster.Loader
// satisfies it.
type ImageLoader interface {
	Load(name string) (*raster.Raster, error)
}

// Scroller moves an image across the matrix from right to left, starting
// just outside the right edge and leaving completely on the left before it
// comes back in.
type Scroller struct {
	rows, cols int

	loader  ImageLoader
	names   []string
	current int
	loaded  string

	picture *raster.Raster
	offset  int
}

// NewScroller creates the animation and loads the first of names. Without
// any names it scrolls the fallback raster.
func NewScroller(rows, cols int, loader ImageLoader, names []string) *Scroller {
	s := &Scroller{
		rows:   rows,
		cols:   cols,
		loader: loader,
		names:  append([]string(nil), names...),
	}
	s.useFallback()

	if len(s.names) == 0 {
		logger.Warn("nothing to scroll", "err", ErrEmptyAssetList)
		return s
	}
	_ = s.LoadImage(s.names[0])
	return s
}

// Name identifies the animation
func (s *Scroller) Name() string { return "scroller" }

// Current is the name of the loaded image, empty when the fallback is shown
func (s *Scroller) Current() string { return s.loaded }

// Offset is the matrix column the left edge of the image is drawn at
func (s *Scroller) Offset() int { return s.offset }

// Picture is the raster being scrolled
func (s *Scroller) Picture() *raster.Raster { return s.picture }

// Names returns the images LoadNext cycles through
func (s *Scroller) Names() []string {
	return append([]string(nil), s.names...)
}

// LoadImage decodes the named image and restarts the scroll from the right.
// When the image cannot be used a solid fallback raster is shown instead and
// the decode error is returned for information only.
func (s *Scroller) LoadImage(name string) error {
	var (
		r   *raster.Raster
		err error
	)
	if s.loader == nil {
		err = &raster.DecodeError{Name: name, Reason: "no loader"}
	} else {
		r, err = s.loader.Load(name)
	}

	if err != nil {
		logger.Warn("image could not be loaded, using fallback", "image", name, "err", err)
		s.useFallback()
		return err
	}

	logger.Info("image loaded", "image", name, "width", r.Width, "height", r.Height)
	s.picture = r
	s.loaded = name
	s.offset = s.cols
	return nil
}

// LoadNext moves on to the next image, wrapping after the last one
func (s *Scroller) LoadNext() error {
	if len(s.names) == 0 {
		logger.Warn("nothing to scroll", "err", ErrEmptyAssetList)
		s.useFallback()
		return ErrEmptyAssetList
	}

	s.current = (s.current + 1) % len(s.names)
	return s.LoadImage(s.names[s.current])
}

func (s *Scroller) useFallback() {
	s.picture = raster.Solid(s.cols, s.rows, raster.FallbackColor)
	s.loaded = ""
	s.offset = s.cols
}

// Advance scrolls one column to the left and paints the visible part
func (s *Scroller) Advance(f pixel.Frame) {
	if s.offset > -s.picture.Width {
		s.offset--
	} else {
		s.offset = s.cols
	}

	// Columns of the picture hidden off the left edge, and where on the
	// matrix the visible part starts
	skip, dest := 0, s.offset
	if s.offset < 0 {
		skip, dest = -s.offset, 0
	}

	for row := range f {
		line := f[row]
		for col := range line {
			line[col] = pixel.Off
		}
		if row >= s.picture.Height || skip >= s.picture.Width || dest >= len(line) {
			continue
		}
		copy(line[dest:], s.picture.Pix[row][skip:])
	}
}
