package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"github.com/go-stack/stack"
	"github.com/karlmutch/envflag"
	"github.com/karlmutch/errors"
	log "github.com/mgutz/logxi/v1"

	"github.com/fkcurrie/led-animator/internal/config"
	"github.com/fkcurrie/led-animator/internal/control"
	"github.com/fkcurrie/led-animator/internal/discovery"
	"github.com/fkcurrie/led-animator/internal/display"
	"github.com/fkcurrie/led-animator/internal/driver"
	"github.com/fkcurrie/led-animator/pkg/ledmap"
	"github.com/fkcurrie/led-animator/pkg/pixel"
	"github.com/fkcurrie/led-animator/pkg/raster"
)

var (
	logger = log.New("ledmatrix")

	configPath = flag.String("config", "ledmatrix.yaml", "Configuration file, JSON or YAML")
	port       = flag.Int("port", 0, "Port for the status endpoint, overrides the config file")
	outputName = flag.String("driver", "", "LED driver (opc, spi, none), overrides the config file")
	assetDir   = flag.String("assets", "", "Image directory, overrides the config file")
	verbose    = flag.Bool("v", false, "When enabled will print debug logging")
)

func usage() {
	fmt.Fprintln(os.Stderr, path.Base(os.Args[0]))
	fmt.Fprintln(os.Stderr, "usage: ", os.Args[0], "[options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "ledmatrix animates an LED matrix and drives it over OPC or SPI")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "")
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "options can also be extracted from environment variables by changing dashes '-' to underscores and using upper case.")
	fmt.Fprintln(os.Stderr, "log levels are handled by the LOGXI env variables, these are documented at https://github.com/mgutz/logxi")
}

func init() {
	flag.Usage = usage
}

func main() {
	if !flag.Parsed() {
		envflag.Parse()
	}
	if *verbose {
		logger.SetLevel(log.LevelDebug)
	}

	if err := run(); err != nil {
		logger.Fatal("ledmatrix stopped", "err", err)
	}
}

func loadConfig() (*config.Config, errors.Error) {
	cfg, errGo := config.LoadConfig(*configPath)
	switch {
	case os.IsNotExist(errGo):
		logger.Warn("config file not found, using defaults", "path", *configPath)
		cfg = config.DefaultConfig()
	case errGo != nil:
		return nil, errors.Wrap(errGo).With("path", *configPath).With("stack", stack.Trace().TrimRuntime())
	}

	if *port != 0 {
		cfg.HTTP.Port = *port
	}
	if *outputName != "" {
		cfg.Output.Driver = *outputName
	}
	if *assetDir != "" {
		cfg.Animation.AssetDir = *assetDir
	}

	if errGo := cfg.Validate(); errGo != nil {
		return nil, errors.Wrap(errGo).With("path", *configPath).With("stack", stack.Trace().TrimRuntime())
	}
	return cfg, nil
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	wiring, errGo := ledmap.ParseWiring(cfg.Matrix.Wiring)
	if errGo != nil {
		return errors.Wrap(errGo).With("stack", stack.Trace().TrimRuntime())
	}
	mapper, errGo := ledmap.New(cfg.Matrix.Rows, cfg.Matrix.Cols, wiring)
	if errGo != nil {
		return errors.Wrap(errGo).With("wiring", wiring.String()).With("stack", stack.Trace().TrimRuntime())
	}
	logger.Info("matrix ready", "rows", cfg.Matrix.Rows, "cols", cfg.Matrix.Cols, "wiring", wiring.String())

	// Create context that can be cancelled
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assets := os.DirFS(cfg.Animation.AssetDir)
	images, errGo := discovery.NewScanner(assets).Scan(ctx)
	if errGo != nil {
		logger.Warn("no images available", "dir", cfg.Animation.AssetDir, "err", errGo)
	}

	seed := cfg.Animation.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	src := rand.New(rand.NewPCG(seed, seed>>1))

	loader := &raster.Loader{FS: assets, Height: cfg.Matrix.Rows}
	scheduler, scroller, errGo := display.NewScheduler(cfg.Animation, cfg.Matrix.Rows, cfg.Matrix.Cols, loader, images, src)
	if errGo != nil {
		return errors.Wrap(errGo).With("stack", stack.Trace().TrimRuntime())
	}

	out, errGo := driver.New(cfg.Output, mapper.Len())
	if errGo != nil {
		return errors.Wrap(errGo).With("driver", cfg.Output.Driver).With("stack", stack.Trace().TrimRuntime())
	}
	defer out.Close()

	state := control.NewState()
	if cfg.Buttons.Enabled {
		buttons, errGo := control.NewButtons(cfg.Buttons, state)
		if errGo != nil {
			return errors.Wrap(errGo).With("chip", cfg.Buttons.Chip).With("stack", stack.Trace().TrimRuntime())
		}
		defer buttons.Close()
	}

	renderer := display.NewRenderer(mapper, scheduler, scroller, state, out)

	// Create HTTP server
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(renderer.Status()); err != nil {
			logger.Warn("failed to write status", "err", err)
		}
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: mux,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("status server failed", "addr", server.Addr, "err", err)
		}
	}()

	rendered := make(chan struct{})
	go func() {
		defer close(rendered)
		if err := renderer.Start(ctx); err != nil && err != context.Canceled {
			logger.Error("renderer stopped", "err", err)
		}
	}()
	logger.Info("animating", "modes", scheduler.Names(), "images", len(images), "driver", cfg.Output.Driver)

	// Handle shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	<-sigChan
	logger.Info("shutting down")

	// Shutdown HTTP server
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("failed to shutdown server", "err", err)
	}

	cancel()
	<-rendered

	// Leave the matrix dark
	if errGo := out.Show(make([]pixel.RGB, mapper.Len())); errGo != nil {
		logger.Warn("failed to blank the matrix", "err", errGo)
	}
	return nil
}
