package model

// PopulationTracker keeps the generation counter and one live-cell sample per generation.
// The counter always equals the number of samples.
type PopulationTracker struct {
	history []int
}

// Record appends the population of g and advances the generation counter
func (t *PopulationTracker) Record(g *Grid) {
	t.history = append(t.history, g.CountAlive())
}

// Reset clears the history and the generation counter
func (t *PopulationTracker) Reset() {
	t.history = nil
}

// Generation is the number of generations recorded since the last reset
func (t *PopulationTracker) Generation() int {
	return len(t.history)
}

// History returns a copy of the samples in chronological order
func (t *PopulationTracker) History() []int {
	return append([]int{}, t.history...)
}

// Latest returns the most recent sample, 0 before the first generation
func (t *PopulationTracker) Latest() int {
	if len(t.history) == 0 {
		return 0
	}
	return t.history[len(t.history)-1]
}

// Peak returns the largest sample, 0 before the first generation
func (t *PopulationTracker) Peak() (peak int) {
	for _, v := range t.history {
		peak = max(peak, v)
	}
	return
}
