package match3

import "fmt"

// Grid is a fixed-size two-dimensional container addressed by (column, row).
// Cells are stored in row-major order: index = row*Columns + column.
// Every cell is either empty or holds exactly one value; emptiness is tracked
// separately from the value so the zero value of T is a valid element.
type Grid[T any] struct {
	cols  int
	rows  int
	cells []T
	set   []bool
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid[T any](cols, rows int) *Grid[T] {
	if cols <= 0 || rows <= 0 {
		panic(fmt.Sprintf("match3: invalid grid size %dx%d", cols, rows))
	}
	return &Grid[T]{
		cols:  cols,
		rows:  rows,
		cells: make([]T, cols*rows),
		set:   make([]bool, cols*rows),
	}
}

// Columns returns the grid width.
func (g *Grid[T]) Columns() int {
	return g.cols
}

// Rows returns the grid height.
func (g *Grid[T]) Rows() int {
	return g.rows
}

// InBounds reports whether (col, row) addresses a cell of the grid.
func (g *Grid[T]) InBounds(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}

// index converts a coordinate to a flat array index.
// Out-of-bounds coordinates are a caller bug and panic.
func (g *Grid[T]) index(col, row int) int {
	if !g.InBounds(col, row) {
		panic(fmt.Sprintf("match3: cell (%d,%d) out of bounds %dx%d", col, row, g.cols, g.rows))
	}
	return row*g.cols + col
}

// Get returns the value at (col, row) and whether the cell is occupied.
func (g *Grid[T]) Get(col, row int) (T, bool) {
	i := g.index(col, row)
	return g.cells[i], g.set[i]
}

// Has reports whether the cell at (col, row) is occupied.
func (g *Grid[T]) Has(col, row int) bool {
	return g.set[g.index(col, row)]
}

// Set stores v at (col, row), replacing any previous value.
func (g *Grid[T]) Set(col, row int, v T) {
	i := g.index(col, row)
	g.cells[i] = v
	g.set[i] = true
}

// Clear empties the cell at (col, row). Clearing an empty cell is a no-op.
func (g *Grid[T]) Clear(col, row int) {
	i := g.index(col, row)
	var zero T
	g.cells[i] = zero
	g.set[i] = false
}

// Count returns the number of occupied cells.
func (g *Grid[T]) Count() int {
	n := 0
	for _, ok := range g.set {
		if ok {
			n++
		}
	}
	return n
}

// Reset empties every cell.
func (g *Grid[T]) Reset() {
	var zero T
	for i := range g.cells {
		g.cells[i] = zero
		g.set[i] = false
	}
}
