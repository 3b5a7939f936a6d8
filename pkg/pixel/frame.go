package pixel

// Frame is the logical matrix: rows of colors addressed as f[row][col]
type Frame [][]RGB

// NewFrame allocates an all-off frame
func NewFrame(rows, cols int) Frame {
	f := make(Frame, rows)
	for row := range f {
		f[row] = make([]RGB, cols)
	}
	return f
}

// Rows returns the number of rows
func (f Frame) Rows() int {
	return len(f)
}

// Cols returns the number of columns
func (f Frame) Cols() int {
	if len(f) == 0 {
		return 0
	}
	return len(f[0])
}

// Fill sets every cell to c
func (f Frame) Fill(c RGB) {
	for _, row := range f {
		for col := range row {
			row[col] = c
		}
	}
}

// Clear turns every cell off
func (f Frame) Clear() {
	f.Fill(Off)
}
