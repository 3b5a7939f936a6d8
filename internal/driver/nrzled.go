package driver

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/host/v3"

	"github.com/fkcurrie/led-animator/pkg/pixel"
)

// NRZ drives a WS281x strip from the MOSI pin of an SPI port
type NRZ struct {
	port       spi.PortCloser
	dev        *nrzled.Dev
	brightness uint8
	raw        []byte
	scaled     []pixel.RGB
}

// NewNRZ opens the named SPI port, or the first one when name is empty
func NewNRZ(name string, leds int, brightness uint8) (*NRZ, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize periph host: %w", err)
	}

	port, err := spireg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open SPI port %q: %w", name, err)
	}

	dev, err := nrzled.NewSPI(port, &nrzled.Opts{
		NumPixels: leds,
		Channels:  3,
		Freq:      2500 * physic.KiloHertz,
	})
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("failed to create nrzled device: %w", err)
	}
	logger.Info("spi led strip ready", "port", name, "leds", leds)

	return &NRZ{
		port:       port,
		dev:        dev,
		brightness: brightness,
		raw:        make([]byte, leds*3),
	}, nil
}

// Show writes buf to the strip
func (n *NRZ) Show(buf []pixel.RGB) error {
	n.scaled = dim(n.scaled, buf, n.brightness)
	pack(n.raw, n.scaled)
	if _, err := n.dev.Write(n.raw); err != nil {
		return fmt.Errorf("failed to write %d leds: %w", len(buf), err)
	}
	return nil
}

// Close turns the strip off and releases the port
func (n *NRZ) Close() error {
	if err := n.dev.Halt(); err != nil {
		logger.Warn("failed to halt strip", "err", err)
	}
	return n.port.Close()
}

// pack lays colors out as consecutive R, G, B bytes. Pixels beyond either
// slice are left alone.
func pack(raw []byte, buf []pixel.RGB) {
	for i, c := range buf {
		if 3*i+2 >= len(raw) {
			return
		}
		raw[3*i], raw[3*i+1], raw[3*i+2] = c.R, c.G, c.B
	}
}
