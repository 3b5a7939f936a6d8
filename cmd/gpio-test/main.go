package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/karlmutch/envflag"
	log "github.com/mgutz/logxi/v1"

	"github.com/fkcurrie/led-animator/internal/config"
	"github.com/fkcurrie/led-animator/internal/control"
)

var (
	logger = log.New("gpio-test")

	configPath = flag.String("config", "", "Configuration file holding the button pins, defaults are used when empty")
	chip       = flag.String("chip", "", "GPIO chip, overrides the config file")
)

// Watches the push buttons and logs every command they produce, without
// driving any LEDs
func main() {
	if !flag.Parsed() {
		envflag.Parse()
	}

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			logger.Fatal("failed to load config", "path", *configPath, "err", err)
		}
		cfg = loaded
	}
	if *chip != "" {
		cfg.Buttons.Chip = *chip
	}

	// Set up signal handler for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting button test", "chip", cfg.Buttons.Chip,
		"power", cfg.Buttons.PowerPin, "mode", cfg.Buttons.ModePin, "image", cfg.Buttons.ImagePin)

	state := control.NewState()
	buttons, err := control.NewButtons(cfg.Buttons, state)
	if err != nil {
		logger.Fatal("failed to request buttons", "err", err)
	}
	defer buttons.Close()

	last := state.Snapshot()
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-sigChan:
			logger.Info("shutting down")
			return
		case <-ticker.C:
			cmd := state.Snapshot()
			if cmd.PowerOn != last.PowerOn {
				logger.Info("power", "on", cmd.PowerOn)
			}
			if cmd.NextMode {
				logger.Info("next mode requested")
			}
			if cmd.NextImage {
				logger.Info("next image requested")
			}
			last = cmd
		}
	}
}
