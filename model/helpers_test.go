package model

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

// gridFrom builds a grid from rows of '.' (dead) and 'X' (alive)
func gridFrom(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g := NewGrid(len(rows))
	for row, line := range rows {
		require.Len(t, line, len(rows), "row %d is not square", row)
		for col, ch := range line {
			g.Set(row, col, ch == 'X')
		}
	}
	return g
}

func aliveCells(g *Grid) []Offset {
	var out []Offset
	for row := range g.Size() {
		for col := range g.Size() {
			if g.Get(row, col) {
				out = append(out, Offset{Row: row, Col: col})
			}
		}
	}
	return out
}

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}
