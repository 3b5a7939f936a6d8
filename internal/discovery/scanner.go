package discovery

import (
	"context"
	"fmt"
	"io/fs"
	"sort"

	log "github.com/mgutz/logxi/v1"

	"github.com/fkcurrie/led-animator/pkg/raster"
)

var logger = log.New("discovery")

// Scanner finds the images the scroller can show
type Scanner struct {
	fsys fs.FS
}

// NewScanner creates a scanner over an asset directory
func NewScanner(fsys fs.FS) *Scanner {
	return &Scanner{
		fsys: fsys,
	}
}

// Scan lists the supported image files at the top of the asset directory in
// name order. Subdirectories and other files are skipped.
func (s *Scanner) Scan(ctx context.Context) ([]string, error) {
	entries, err := fs.ReadDir(s.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read asset directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		// Check if context is cancelled
		select {
		case <-ctx.Done():
			return names, ctx.Err()
		default:
		}

		if entry.IsDir() {
			continue
		}
		if !raster.Supported(entry.Name()) {
			logger.Debug("skipping file", "name", entry.Name())
			continue
		}
		names = append(names, entry.Name())
	}

	sort.Strings(names)
	logger.Info("assets found", "count", len(names))
	return names, nil
}
