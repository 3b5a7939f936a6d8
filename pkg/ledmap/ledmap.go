// Package ledmap translates logical (row, col) matrix addresses into the
// physical index of the LED on the strip, for panels wired in rows or
// columns, progressively or snaking back and forth.
package ledmap

import (
	"fmt"
	"strings"

	"github.com/google/shlex"

	"github.com/fkcurrie/led-animator/pkg/pixel"
)

// Layout is how consecutive lines of LEDs are chained
type Layout string

const (
	// Progressive lines all run in the same direction
	Progressive Layout = "progressive"
	// Serpentine lines alternate direction
	Serpentine Layout = "serpentine"
)

// Axis is the direction a single line of LEDs runs
type Axis string

const (
	Rows    Axis = "rows"
	Columns Axis = "columns"
)

// Corner is where physical index 0 sits
type Corner string

const (
	TopLeft     Corner = "top-left"
	TopRight    Corner = "top-right"
	BottomLeft  Corner = "bottom-left"
	BottomRight Corner = "bottom-right"
)

// Wiring describes how the strip is laid across the matrix. When Table is
// set it is used verbatim, Table[row][col] being the physical index.
type Wiring struct {
	Layout Layout
	Axis   Axis
	Start  Corner
	Table  [][]int
}

// DefaultWiring is a serpentine panel chained along rows from the top left
var DefaultWiring = Wiring{Layout: Serpentine, Axis: Rows, Start: TopLeft}

// ConfigError reports a wiring description that cannot drive the matrix
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid wiring: " + e.Reason
}

func configErrorf(format string, args ...interface{}) error {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}

// ParseWiring reads a description such as "serpentine columns top-left".
// Words may come in any order, anything left out keeps the DefaultWiring value.
func ParseWiring(desc string) (Wiring, error) {
	w := DefaultWiring

	words, err := shlex.Split(desc)
	if err != nil {
		return w, configErrorf("failed to split %q: %v", desc, err)
	}

	for _, word := range words {
		switch v := strings.ToLower(word); v {
		case string(Progressive), string(Serpentine):
			w.Layout = Layout(v)
		case string(Rows), string(Columns):
			w.Axis = Axis(v)
		case string(TopLeft), string(TopRight), string(BottomLeft), string(BottomRight):
			w.Start = Corner(v)
		default:
			return w, configErrorf("unknown wiring word %q", word)
		}
	}
	return w, nil
}

// String renders the description in the form ParseWiring accepts
func (w Wiring) String() string {
	if w.Table != nil {
		return "table"
	}
	return fmt.Sprintf("%s %s %s", w.Layout, w.Axis, w.Start)
}

// Map is the immutable logical to physical lookup table
type Map struct {
	rows, cols int
	index      [][]int
}

// New builds the lookup table for a rows x cols matrix. The result is always
// a bijection onto [0, rows*cols); anything else is a *ConfigError.
func New(rows, cols int, w Wiring) (*Map, error) {
	if rows <= 0 || cols <= 0 {
		return nil, configErrorf("matrix dimensions must be positive, got %dx%d", rows, cols)
	}

	var (
		index [][]int
		err   error
	)
	if w.Table != nil {
		index, err = fromTable(rows, cols, w.Table)
	} else {
		index, err = generate(rows, cols, w)
	}
	if err != nil {
		return nil, err
	}

	if err := checkBijection(rows, cols, index); err != nil {
		return nil, err
	}

	return &Map{rows: rows, cols: cols, index: index}, nil
}

func fromTable(rows, cols int, table [][]int) ([][]int, error) {
	if len(table) != rows {
		return nil, configErrorf("table has %d rows, matrix has %d", len(table), rows)
	}
	index := make([][]int, rows)
	for row := range table {
		if len(table[row]) != cols {
			return nil, configErrorf("table row %d has %d columns, matrix has %d", row, len(table[row]), cols)
		}
		index[row] = append([]int(nil), table[row]...)
	}
	return index, nil
}

func generate(rows, cols int, w Wiring) ([][]int, error) {
	switch w.Layout {
	case Progressive, Serpentine:
	default:
		return nil, configErrorf("unknown layout %q", w.Layout)
	}
	if w.Axis != Rows && w.Axis != Columns {
		return nil, configErrorf("unknown axis %q", w.Axis)
	}

	var fromBottom, fromRight bool
	switch w.Start {
	case TopLeft:
	case TopRight:
		fromRight = true
	case BottomLeft:
		fromBottom = true
	case BottomRight:
		fromBottom, fromRight = true, true
	default:
		return nil, configErrorf("unknown start corner %q", w.Start)
	}

	index := make([][]int, rows)
	for row := range index {
		index[row] = make([]int, cols)
		for col := range index[row] {
			// Normalise so that (0,0) is the start corner
			y, x := row, col
			if fromBottom {
				y = rows - 1 - row
			}
			if fromRight {
				x = cols - 1 - col
			}

			// line is which strip segment, pos how far along it
			line, pos, length := y, x, cols
			if w.Axis == Columns {
				line, pos, length = x, y, rows
			}
			if w.Layout == Serpentine && line%2 == 1 {
				pos = length - 1 - pos
			}
			index[row][col] = line*length + pos
		}
	}
	return index, nil
}

func checkBijection(rows, cols int, index [][]int) error {
	n := rows * cols
	seen := make([]bool, n)
	for row := range index {
		for col, i := range index[row] {
			if i < 0 || i >= n {
				return configErrorf("index %d at (%d,%d) is outside [0,%d)", i, row, col, n)
			}
			if seen[i] {
				return configErrorf("index %d is used more than once", i)
			}
			seen[i] = true
		}
	}
	return nil
}

// Rows returns the logical row count
func (m *Map) Rows() int { return m.rows }

// Cols returns the logical column count
func (m *Map) Cols() int { return m.cols }

// Len is the number of physical LEDs
func (m *Map) Len() int { return m.rows * m.cols }

// Index returns the physical index of a logical cell
func (m *Map) Index(row, col int) int {
	return m.index[row][col]
}

// Project copies a logical frame into dst in physical order. dst must hold
// at least Len() colors; cells outside the frame are left alone.
func (m *Map) Project(f pixel.Frame, dst []pixel.RGB) {
	for row := 0; row < m.rows && row < len(f); row++ {
		line := f[row]
		for col := 0; col < m.cols && col < len(line); col++ {
			dst[m.index[row][col]] = line[col]
		}
	}
}
