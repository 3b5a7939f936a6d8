// Package driver pushes physical LED buffers to the hardware: a fadecandy
// (or any Open Pixel Control server) over TCP, WS281x strips driven through
// an SPI port, or memory for tests and offline rendering.
package driver

import (
	"fmt"

	"github.com/fkcurrie/led-animator/internal/types"
	"github.com/fkcurrie/led-animator/pkg/pixel"
)

// New opens the driver named in cfg for a matrix of leds pixels
func New(cfg types.OutputConfig, leds int) (types.Driver, error) {
	switch cfg.Driver {
	case "opc":
		d, err := NewOPC(cfg.Server, cfg.Channel, cfg.Brightness)
		if err != nil {
			return nil, err
		}
		return d, nil
	case "spi":
		d, err := NewNRZ(cfg.SPIPort, leds, cfg.Brightness)
		if err != nil {
			return nil, err
		}
		return d, nil
	case "none", "":
		return NewRecorder(0), nil
	}
	return nil, fmt.Errorf("unknown driver %q", cfg.Driver)
}

// dim scales src into dst. Zero brightness is treated as full.
func dim(dst, src []pixel.RGB, brightness uint8) []pixel.RGB {
	dst = dst[:0]
	if brightness == 0 || brightness == 255 {
		return append(dst, src...)
	}
	for _, c := range src {
		dst = append(dst, c.Scale(brightness))
	}
	return dst
}
