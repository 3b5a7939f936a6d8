package raster

import (
	"bytes"
	"io/fs"
	"path"
	"strings"
)

// Extensions the Loader knows how to decode
var Extensions = []string{".bmp", ".svg"}

// Supported reports whether name has an extension the Loader can decode
func Supported(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Loader reads image assets by name from a file system. Height is the
// target height for vector assets, normally the matrix row count.
type Loader struct {
	FS     fs.FS
	Height int
}

// Load reads and decodes one asset. Every failure is a *DecodeError.
func (l *Loader) Load(name string) (*Raster, error) {
	if l == nil || l.FS == nil {
		return nil, &DecodeError{Name: name, Reason: "no asset file system"}
	}

	// Asset names may be given with a leading slash
	clean := strings.TrimPrefix(path.Clean("/"+name), "/")

	data, err := fs.ReadFile(l.FS, clean)
	if err != nil {
		return nil, &DecodeError{Name: name, Reason: "failed to read", Err: err}
	}

	var r *Raster
	switch strings.ToLower(path.Ext(clean)) {
	case ".bmp":
		r, err = Decode(data)
	case ".svg":
		r, err = RenderSVG(bytes.NewReader(data), l.Height)
	default:
		return nil, &DecodeError{Name: name, Reason: "unsupported asset type"}
	}

	if err != nil {
		if de, ok := err.(*DecodeError); ok {
			de.Name = name
			return nil, de
		}
		return nil, &DecodeError{Name: name, Reason: "failed to decode", Err: err}
	}
	return r, nil
}
