package model

// historyDepth is how many generation hashes the detector keeps
const historyDepth = 5

// CycleDetector spots still lifes and short oscillators from recent grid hashes
type CycleDetector struct {
	history  []string
	stagnant bool
}

// Observe records g as the newest generation and updates Stagnant.
// The grid counts as stagnant when it repeats any of the previous three generations.
func (d *CycleDetector) Observe(g *Grid) {
	hash := g.Hash()

	d.stagnant = false
	for i := len(d.history) - 1; i >= 0 && i >= len(d.history)-3; i-- {
		if d.history[i] == hash {
			d.stagnant = true
			break
		}
	}

	d.history = append(d.history, hash)
	if len(d.history) > historyDepth {
		d.history = d.history[1:]
	}
}

// Stagnant reports whether the last observed grid repeated a recent one
func (d *CycleDetector) Stagnant() bool {
	return d.stagnant
}

// Reset forgets all observed generations
func (d *CycleDetector) Reset() {
	d.history = nil
	d.stagnant = false
}
