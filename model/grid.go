package model

import (
	"crypto/md5"
	"fmt"
)

// Grid is a bounded square lattice of cells, true meaning alive
type Grid struct {
	size  int
	cells [][]bool
}

// NewGrid creates an all-dead grid with size rows and size columns.
// Callers validate the size up front, see utils.Config.Validate.
func NewGrid(size int) *Grid {
	cells := make([][]bool, size)
	for i := range cells {
		cells[i] = make([]bool, size)
	}
	return &Grid{
		size:  size,
		cells: cells,
	}
}

// Size returns the edge length of the grid
func (g *Grid) Size() int {
	return g.size
}

// reset resizes the grid and kills every cell, reusing storage when it fits
func (g *Grid) reset(size int) {
	g.size = size

	if len(g.cells) != size {
		g.cells = make([][]bool, size)
	}
	for i := range g.cells {
		if len(g.cells[i]) != size {
			g.cells[i] = make([]bool, size)
		} else {
			clear(g.cells[i])
		}
	}
}

// Clear kills all cells
func (g *Grid) Clear() {
	for row := range g.size {
		clear(g.cells[row])
	}
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// Set sets a cell to alive (true) or dead (false). Out of range coordinates are ignored.
func (g *Grid) Set(row, col int, alive bool) {
	if g.inBounds(row, col) {
		g.cells[row][col] = alive
	}
}

// Toggle flips a cell between alive and dead
func (g *Grid) Toggle(row, col int) {
	if g.inBounds(row, col) {
		g.cells[row][col] = !g.cells[row][col]
	}
}

// Get returns the state of a cell. Anything outside the grid is dead.
func (g *Grid) Get(row, col int) bool {
	if !g.inBounds(row, col) {
		return false
	}
	return g.cells[row][col]
}

// CountNeighbors counts living cells in the Moore neighborhood of (row, col).
// The grid does not wrap: neighbors past an edge are skipped, so corners see
// at most 3 and other edge cells at most 5.
func (g *Grid) CountNeighbors(row, col int) int {
	count := 0

	minRow := max(0, row-1)
	maxRow := min(g.size-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.size-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue
			}
			if g.cells[r][c] {
				count++
			}
		}
	}

	return count
}

// CountAlive returns the total number of living cells
func (g *Grid) CountAlive() (count int) {
	for row := range g.size {
		for col := range g.size {
			if g.cells[row][col] {
				count++
			}
		}
	}
	return
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	next := NewGrid(g.size)
	for row := range g.size {
		copy(next.cells[row], g.cells[row])
	}
	return next
}

// Equal reports whether both grids have the same size and the same live cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.size != other.size {
		return false
	}
	for row := range g.size {
		for col := range g.size {
			if g.cells[row][col] != other.cells[row][col] {
				return false
			}
		}
	}
	return true
}

// Hash returns an MD5 digest of the cell states, used for cycle detection
func (g *Grid) Hash() string {
	h := md5.New()
	buf := make([]byte, g.size)
	for row := range g.size {
		for col, alive := range g.cells[row] {
			buf[col] = 0
			if alive {
				buf[col] = 1
			}
		}
		h.Write(buf)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
