package model

import "github.com/sheikhrachel/go-lifesim/rules"

// Step computes the next generation into a freshly allocated grid.
// The input grid is only read.
func Step(g *Grid) *Grid {
	return StepPooled(g, nil)
}

// StepPooled is Step with the destination taken from pool. A nil pool allocates.
//
// Every cell reads its neighbors from g and writes only its own cell of the
// destination, so no updated state can leak into later cells of the same pass.
func StepPooled(g *Grid, pool *GridPool) *Grid {
	var next *Grid
	if pool != nil {
		next = pool.Get(g.size)
	} else {
		next = NewGrid(g.size)
	}

	for row := range g.size {
		for col := range g.size {
			next.cells[row][col] = rules.ApplyConwayRules(g.CountNeighbors(row, col), g.cells[row][col])
		}
	}

	return next
}
