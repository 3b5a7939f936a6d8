package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/fkcurrie/led-animator/internal/types"
	"github.com/fkcurrie/led-animator/pkg/ledmap"
)

// Modes lists the animation names a config may refer to
var Modes = []string{"twinkle", "trails", "scroller"}

// Drivers lists the supported output drivers
var Drivers = []string{"opc", "spi", "none"}

// Config represents the application configuration
type Config struct {
	Matrix    types.MatrixConfig    `json:"matrix" yaml:"matrix"`
	Animation types.AnimationConfig `json:"animation" yaml:"animation"`
	Output    types.OutputConfig    `json:"output" yaml:"output"`
	Buttons   types.ButtonsConfig   `json:"buttons" yaml:"buttons"`
	HTTP      types.HTTPConfig      `json:"http" yaml:"http"`
}

// LoadConfig loads the configuration from a file. Files ending in .yaml or
// .yml are read as YAML, everything else as JSON. Fields the file leaves out
// keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, config)
	default:
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return config, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Matrix: types.MatrixConfig{
			Rows:   8,
			Cols:   32,
			Wiring: ledmap.DefaultWiring.String(),
		},
		Animation: types.AnimationConfig{
			Modes:     []string{"twinkle", "trails", "scroller"},
			FPS:       30,
			ScrollFPS: 15,
			TrailTail: 5,
			TrailHead: 2,
			AssetDir:  "images",
		},
		Output: types.OutputConfig{
			Driver:     "none",
			Server:     "localhost:7890",
			SPIPort:    "",
			Brightness: 64,
		},
		Buttons: types.ButtonsConfig{
			Chip:       "gpiochip0",
			PowerPin:   5,
			ModePin:    6,
			ImagePin:   13,
			DebounceMs: 20,
		},
		HTTP: types.HTTPConfig{
			Port: 8080,
		},
	}
}

// Validate reports the first setting that cannot be used
func (c *Config) Validate() error {
	if c.Matrix.Rows <= 0 || c.Matrix.Cols <= 0 {
		return fmt.Errorf("invalid matrix size %dx%d", c.Matrix.Rows, c.Matrix.Cols)
	}
	if _, err := ledmap.ParseWiring(c.Matrix.Wiring); err != nil {
		return err
	}

	if len(c.Animation.Modes) == 0 {
		return fmt.Errorf("no animation modes configured")
	}
	for _, mode := range c.Animation.Modes {
		if !contains(Modes, mode) {
			return fmt.Errorf("unknown animation mode %q, want one of %v", mode, Modes)
		}
	}
	if c.Animation.FPS < 0 || c.Animation.ScrollFPS < 0 {
		return fmt.Errorf("invalid frame rate %d/%d", c.Animation.FPS, c.Animation.ScrollFPS)
	}
	if c.Animation.TrailTail < 1 || c.Animation.TrailHead < 1 {
		return fmt.Errorf("invalid trail length tail=%d head=%d", c.Animation.TrailTail, c.Animation.TrailHead)
	}

	if !contains(Drivers, c.Output.Driver) {
		return fmt.Errorf("unknown driver %q, want one of %v", c.Output.Driver, Drivers)
	}
	if c.Output.Driver == "opc" && c.Output.Server == "" {
		return fmt.Errorf("opc driver needs a server address")
	}

	if c.HTTP.Port < 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid http port %d", c.HTTP.Port)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
