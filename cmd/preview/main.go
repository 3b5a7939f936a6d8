package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"math/rand/v2"
	"os"
	"path"
	"path/filepath"

	"github.com/go-stack/stack"
	"github.com/karlmutch/envflag"
	"github.com/karlmutch/errors"
	log "github.com/mgutz/logxi/v1"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/fkcurrie/led-animator/internal/config"
	"github.com/fkcurrie/led-animator/internal/control"
	"github.com/fkcurrie/led-animator/internal/discovery"
	"github.com/fkcurrie/led-animator/internal/display"
	"github.com/fkcurrie/led-animator/pkg/ledmap"
	"github.com/fkcurrie/led-animator/pkg/pixel"
	"github.com/fkcurrie/led-animator/pkg/raster"
)

var (
	logger = log.New("preview")

	configPath = flag.String("config", "", "Configuration file, JSON or YAML, defaults are used when empty")
	mode       = flag.String("mode", "twinkle", "Animation to render")
	frames     = flag.Int("frames", 30, "Number of frames to render")
	outDir     = flag.String("out", "preview", "Directory the bitmaps are written to")
	zoom       = flag.Int("zoom", 8, "Pixels per LED in the written bitmaps")
	colorHex   = flag.String("color", control.DefaultColor.Hex(), "Requested color, #RRGGBB")
	seed       = flag.Uint64("seed", 1, "Random seed")
	verbose    = flag.Bool("v", false, "When enabled will print debug logging")
)

func usage() {
	fmt.Fprintln(os.Stderr, path.Base(os.Args[0]))
	fmt.Fprintln(os.Stderr, "usage: ", os.Args[0], "[options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "preview renders frames of one animation to bitmap files without any LED hardware")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "")
	flag.PrintDefaults()
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
		logger.Fatal("preview failed", "err", err)
	}
}

func run() errors.Error {
	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, errGo := config.LoadConfig(*configPath)
		if errGo != nil {
			return errors.Wrap(errGo).With("path", *configPath).With("stack", stack.Trace().TrimRuntime())
		}
		cfg = loaded
	}
	cfg.Animation.Modes = []string{*mode}
	if errGo := cfg.Validate(); errGo != nil {
		return errors.Wrap(errGo).With("stack", stack.Trace().TrimRuntime())
	}

	requested, errGo := control.ParseColor(*colorHex)
	if errGo != nil {
		return errors.Wrap(errGo).With("stack", stack.Trace().TrimRuntime())
	}

	rows, cols := cfg.Matrix.Rows, cfg.Matrix.Cols
	// Row by row so the buffer reads like the logical frame
	mapper, errGo := ledmap.New(rows, cols, ledmap.Wiring{Layout: ledmap.Progressive, Axis: ledmap.Rows, Start: ledmap.TopLeft})
	if errGo != nil {
		return errors.Wrap(errGo).With("stack", stack.Trace().TrimRuntime())
	}

	assets := os.DirFS(cfg.Animation.AssetDir)
	images, errGo := discovery.NewScanner(assets).Scan(context.Background())
	if errGo != nil {
		logger.Warn("no images available", "dir", cfg.Animation.AssetDir, "err", errGo)
	}

	src := rand.New(rand.NewPCG(*seed, *seed>>1))
	loader := &raster.Loader{FS: assets, Height: rows}
	scheduler, scroller, errGo := display.NewScheduler(cfg.Animation, rows, cols, loader, images, src)
	if errGo != nil {
		return errors.Wrap(errGo).With("mode", *mode).With("stack", stack.Trace().TrimRuntime())
	}

	state := control.NewState()
	state.SetColor(requested)
	renderer := display.NewRenderer(mapper, scheduler, scroller, state, nil)

	if errGo := os.MkdirAll(*outDir, 0o755); errGo != nil {
		return errors.Wrap(errGo).With("dir", *outDir).With("stack", stack.Trace().TrimRuntime())
	}

	for i := 0; i < *frames; i++ {
		buf := renderer.Tick()
		name := filepath.Join(*outDir, fmt.Sprintf("%s-%04d.bmp", *mode, i))
		if err := write(name, buf, rows, cols, *zoom); err != nil {
			return err
		}
	}

	logger.Info("preview written", "mode", *mode, "frames", *frames, "dir", *outDir)
	return nil
}

// write stores one frame enlarged by zoom. A zoom of one keeps the frame at
// LED resolution.
func write(name string, buf []pixel.RGB, rows, cols, zoom int) errors.Error {
	r := raster.New(cols, rows)
	for row := 0; row < rows; row++ {
		copy(r.Pix[row], buf[row*cols:(row+1)*cols])
	}

	if zoom <= 1 {
		if errGo := os.WriteFile(name, raster.Encode(r), 0o644); errGo != nil {
			return errors.Wrap(errGo).With("file", name).With("stack", stack.Trace().TrimRuntime())
		}
		return nil
	}

	small := image.NewRGBA(image.Rect(0, 0, cols, rows))
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c := r.Pix[row][col]
			small.Set(col, row, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		}
	}
	large := image.NewRGBA(image.Rect(0, 0, cols*zoom, rows*zoom))
	draw.NearestNeighbor.Scale(large, large.Bounds(), small, small.Bounds(), draw.Src, nil)

	f, errGo := os.Create(name)
	if errGo != nil {
		return errors.Wrap(errGo).With("file", name).With("stack", stack.Trace().TrimRuntime())
	}
	defer f.Close()

	if errGo := bmp.Encode(f, large); errGo != nil {
		return errors.Wrap(errGo).With("file", name).With("stack", stack.Trace().TrimRuntime())
	}
	return nil
}
