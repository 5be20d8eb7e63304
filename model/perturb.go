package model

import "math/rand/v2"

// DefaultPerturbCount is how many cells a perturbation toggles
const DefaultPerturbCount = 5

// Perturb flips count uniformly chosen cells, with replacement, and returns the
// picked coordinates in order. A cell picked twice ends up unchanged.
func Perturb(g *Grid, rng *rand.Rand, count int) []Offset {
	if count <= 0 || g.size == 0 {
		return nil
	}

	picked := make([]Offset, 0, count)
	for range count {
		o := Offset{Row: rng.IntN(g.size), Col: rng.IntN(g.size)}
		g.Toggle(o.Row, o.Col)
		picked = append(picked, o)
	}
	return picked
}
