package model

import "math/rand/v2"

// Offset is a (row, col) position relative to the grid origin
type Offset struct {
	Row, Col int
}

// Pattern is a named set of cells to bring to life
type Pattern struct {
	Name    string
	Offsets []Offset
}

// The shapes are kept as-is; they are seed data, not the canonical forms their names suggest.
var patterns = []Pattern{
	{Name: "Glider", Offsets: []Offset{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}},
	{Name: "Pulsar", Offsets: []Offset{{14, 12}, {12, 14}, {14, 14}, {16, 14}, {14, 16}}},
	{Name: "Spaceship", Offsets: []Offset{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}},
}

// Patterns returns a copy of the built-in patterns in their fixed order
func Patterns() []Pattern {
	out := make([]Pattern, len(patterns))
	for i, p := range patterns {
		out[i] = p.clone()
	}
	return out
}

// PatternByName looks up a built-in pattern
func PatternByName(name string) (Pattern, bool) {
	for _, p := range patterns {
		if p.Name == name {
			return p.clone(), true
		}
	}
	return Pattern{}, false
}

func (p Pattern) clone() Pattern {
	return Pattern{Name: p.Name, Offsets: append([]Offset(nil), p.Offsets...)}
}

// wrap reduces v into [0, n) for any sign of v
func wrap(v, n int) int {
	return (v%n + n) % n
}

// Seed brings every cell of the pattern to life on top of the current state.
// Offsets are reduced modulo the grid size, so any coordinate is valid.
func Seed(g *Grid, p Pattern) {
	if g.size == 0 {
		return
	}
	for _, o := range p.Offsets {
		g.cells[wrap(o.Row, g.size)][wrap(o.Col, g.size)] = true
	}
}

// SeedRandom seeds g with a uniformly chosen built-in pattern and returns it
func SeedRandom(g *Grid, rng *rand.Rand) Pattern {
	p := patterns[rng.IntN(len(patterns))].clone()
	Seed(g, p)
	return p
}
