package rules

const (
	// BirthNeighbors is the exact neighbour count that brings a dead cell to life.
	BirthNeighbors = 3
	// MinSurvivalNeighbors and MaxSurvivalNeighbors bound the counts a live cell survives with.
	MinSurvivalNeighbors = 2
	MaxSurvivalNeighbors = 3
)

/*
ApplyConwayRules returns the next state of a cell under the B3/S23 rule.

A live cell survives with 2 or 3 live neighbors, a dead cell is born with exactly 3,
every other cell is dead in the next generation.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors >= MinSurvivalNeighbors && neighbors <= MaxSurvivalNeighbors
	}
	return neighbors == BirthNeighbors
}
