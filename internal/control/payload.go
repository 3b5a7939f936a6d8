package control

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fkcurrie/led-animator/pkg/pixel"
)

// ParseColor reads a color payload of the form "#RRGGBB"
func ParseColor(payload string) (pixel.RGB, error) {
	s := strings.TrimSpace(payload)
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return pixel.RGB{}, fmt.Errorf("invalid color %q: want #RRGGBB", payload)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return pixel.RGB{}, fmt.Errorf("invalid color %q: %w", payload, err)
	}
	return pixel.RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// ParsePower reads an "ON" or "OFF" payload
func ParsePower(payload string) (bool, error) {
	switch strings.ToUpper(strings.TrimSpace(payload)) {
	case "ON":
		return true, nil
	case "OFF":
		return false, nil
	}
	return false, fmt.Errorf("invalid power state %q: want ON or OFF", payload)
}
