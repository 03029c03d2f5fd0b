// Package t2048 implements the 2048 sliding-tile puzzle: an N×N grid,
// the move-and-merge engine, tile spawning, terminal detection and a
// session that ties them together. Presentation layers drive a Session
// and only read its state.
package t2048

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// Grid size limits. The menus offer SupportedSizes; the core accepts the
// wider range so small boards can be used in tests and custom configs.
const (
	MinGridSize     = 2
	MaxGridSize     = 8
	DefaultGridSize = 4
)

// SupportedSizes are the grid sizes offered by the menus.
var SupportedSizes = []int{4, 5, 6}

// ErrInvalidSize is returned for grid sizes outside [MinGridSize, MaxGridSize].
var ErrInvalidSize = errors.New("invalid grid size")

// ErrInvalidTile is returned when a grid holds a value that is neither zero
// nor a power of two >= 2.
var ErrInvalidTile = errors.New("invalid tile value")

// Cell is a grid coordinate. X is the column, Y is the row; Y grows downward.
type Cell struct {
	X, Y int
}

// Grid is a square board of tile values. Zero marks an empty cell.
type Grid struct {
	size  int
	cells []int
}

// NewGrid creates an empty size×size grid.
func NewGrid(size int) (Grid, error) {
	if !ValidSize(size) {
		return Grid{}, fmt.Errorf("t2048: %w: %d (want %d..%d)", ErrInvalidSize, size, MinGridSize, MaxGridSize)
	}
	return Grid{size: size, cells: make([]int, size*size)}, nil
}

// GridFromRows builds a grid from row-major values.
// The rows must form a square of a valid size and hold valid tiles.
func GridFromRows(rows [][]int) (Grid, error) {
	g, err := NewGrid(len(rows))
	if err != nil {
		return Grid{}, err
	}
	for y, row := range rows {
		if len(row) != g.size {
			return Grid{}, fmt.Errorf("t2048: row %d has %d cells, want %d", y, len(row), g.size)
		}
		copy(g.cells[y*g.size:], row)
	}
	if err := g.Validate(); err != nil {
		return Grid{}, err
	}
	return g, nil
}

// ValidSize reports whether size is accepted by the core.
func ValidSize(size int) bool {
	return size >= MinGridSize && size <= MaxGridSize
}

// Size returns the edge length of the grid.
func (g Grid) Size() int {
	return g.size
}

// InBounds reports whether (x, y) lies on the grid.
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.size && y < g.size
}

// At returns the value at (x, y), or 0 outside the grid.
func (g Grid) At(x, y int) int {
	if !g.InBounds(x, y) {
		return 0
	}
	return g.cells[y*g.size+x]
}

// Set stores v at (x, y). Out-of-bounds writes are ignored.
func (g Grid) Set(x, y, v int) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.size+x] = v
}

func (g Grid) index(x, y int) int {
	return y*g.size + x
}

// Clone returns an independent copy.
func (g Grid) Clone() Grid {
	cells := make([]int, len(g.cells))
	copy(cells, g.cells)
	return Grid{size: g.size, cells: cells}
}

// Equal reports whether both grids have the same size and values.
func (g Grid) Equal(o Grid) bool {
	if g.size != o.size {
		return false
	}
	for i, v := range g.cells {
		if o.cells[i] != v {
			return false
		}
	}
	return true
}

// EmptyCells returns the empty cells in row-major order.
func (g Grid) EmptyCells() []Cell {
	var cells []Cell
	for y := range g.size {
		for x := range g.size {
			if g.cells[g.index(x, y)] == 0 {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// HasEmptyCell reports whether at least one cell is empty.
func (g Grid) HasEmptyCell() bool {
	for _, v := range g.cells {
		if v == 0 {
			return true
		}
	}
	return false
}

// TileCount returns the number of non-empty cells.
func (g Grid) TileCount() int {
	n := 0
	for _, v := range g.cells {
		if v != 0 {
			n++
		}
	}
	return n
}

// Sum returns the total of all tile values.
func (g Grid) Sum() int {
	s := 0
	for _, v := range g.cells {
		s += v
	}
	return s
}

// MaxTile returns the highest tile value, 0 for an empty grid.
func (g Grid) MaxTile() int {
	m := 0
	for _, v := range g.cells {
		if v > m {
			m = v
		}
	}
	return m
}

// Rows returns a row-major copy of the values.
func (g Grid) Rows() [][]int {
	rows := make([][]int, g.size)
	for y := range g.size {
		rows[y] = make([]int, g.size)
		copy(rows[y], g.cells[y*g.size:(y+1)*g.size])
	}
	return rows
}

// Validate checks that every value is zero or a power of two >= 2.
func (g Grid) Validate() error {
	for i, v := range g.cells {
		if !validTile(v) {
			return fmt.Errorf("t2048: %w: %d at (%d,%d)", ErrInvalidTile, v, i%g.size, i/g.size)
		}
	}
	return nil
}

func validTile(v int) bool {
	return v == 0 || (v >= 2 && bits.OnesCount(uint(v)) == 1)
}

// String renders the grid as right-aligned rows, "." for empty cells.
func (g Grid) String() string {
	width := len(strconv.Itoa(g.MaxTile()))
	var b strings.Builder
	for y := range g.size {
		for x := range g.size {
			if x > 0 {
				b.WriteByte(' ')
			}
			s := "."
			if v := g.At(x, y); v != 0 {
				s = strconv.Itoa(v)
			}
			b.WriteString(strings.Repeat(" ", max(0, width-len(s))))
			b.WriteString(s)
		}
		if y < g.size-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
