package types

// Status is what the renderer reports to the status endpoint
type Status struct {
	Mode   string `json:"mode"`
	Image  string `json:"image,omitempty"`
	Power  bool   `json:"power"`
	Color  string `json:"color"`
	Frames uint64 `json:"frames"`
}

// MatrixConfig represents the configuration for the LED matrix
type MatrixConfig struct {
	Rows   int    `json:"rows" yaml:"rows"`
	Cols   int    `json:"cols" yaml:"cols"`
	Wiring string `json:"wiring" yaml:"wiring"`
}

// AnimationConfig represents the configuration for the animations
type AnimationConfig struct {
	Modes     []string `json:"modes" yaml:"modes"`
	FPS       int      `json:"fps" yaml:"fps"`
	ScrollFPS int      `json:"scroll_fps" yaml:"scroll_fps"`
	TrailTail int      `json:"trail_tail" yaml:"trail_tail"`
	TrailHead int      `json:"trail_head" yaml:"trail_head"`
	AssetDir  string   `json:"asset_dir" yaml:"asset_dir"`
	Seed      uint64   `json:"seed" yaml:"seed"`
}

// OutputConfig selects and configures the LED driver
type OutputConfig struct {
	Driver     string `json:"driver" yaml:"driver"`
	Server     string `json:"server" yaml:"server"`
	Channel    uint8  `json:"channel" yaml:"channel"`
	SPIPort    string `json:"spi_port" yaml:"spi_port"`
	Brightness uint8  `json:"brightness" yaml:"brightness"`
}

// ButtonsConfig represents the GPIO push buttons
type ButtonsConfig struct {
	Enabled    bool   `json:"enabled" yaml:"enabled"`
	Chip       string `json:"chip" yaml:"chip"`
	PowerPin   int    `json:"power_pin" yaml:"power_pin"`
	ModePin    int    `json:"mode_pin" yaml:"mode_pin"`
	ImagePin   int    `json:"image_pin" yaml:"image_pin"`
	DebounceMs int    `json:"debounce_ms" yaml:"debounce_ms"`
}

// HTTPConfig represents the status endpoint
type HTTPConfig struct {
	Port int `json:"port" yaml:"port"`
}
