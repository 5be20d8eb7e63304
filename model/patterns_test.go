package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternsAreCopies(t *testing.T) {
	ps := Patterns()
	require.Len(t, ps, 3)
	assert.Equal(t, []string{"Glider", "Pulsar", "Spaceship"}, []string{ps[0].Name, ps[1].Name, ps[2].Name})

	ps[0].Offsets[0] = Offset{Row: 40, Col: 40}
	glider, ok := PatternByName("Glider")
	require.True(t, ok)
	assert.Equal(t, Offset{Row: 1, Col: 0}, glider.Offsets[0])

	_, ok = PatternByName("Gosper")
	assert.False(t, ok)
}

func TestSeedPlacesOffsets(t *testing.T) {
	g := NewGrid(50)
	pulsar, _ := PatternByName("Pulsar")
	Seed(g, pulsar)

	want := []Offset{{12, 14}, {14, 12}, {14, 14}, {14, 16}, {16, 14}}
	assert.Equal(t, want, aliveCells(g))
}

func TestSeedWrapsOffsets(t *testing.T) {
	g := NewGrid(5)
	Seed(g, Pattern{Name: "wrap", Offsets: []Offset{{-1, 0}, {7, 12}, {-6, -11}}})

	want := []Offset{{2, 2}, {4, 0}, {4, 4}}
	assert.Equal(t, want, aliveCells(g))
}

func TestSeedIsAdditive(t *testing.T) {
	g := NewGrid(10)
	g.Set(9, 9, true)
	glider, _ := PatternByName("Glider")
	Seed(g, glider)
	Seed(g, glider)

	assert.True(t, g.Get(9, 9))
	assert.Equal(t, 6, g.CountAlive())
}

func TestSeedRandomUsesEveryPattern(t *testing.T) {
	rng := testRand()
	seen := map[string]bool{}
	for range 100 {
		g := NewGrid(50)
		p := SeedRandom(g, rng)
		assert.Equal(t, len(p.Offsets), g.CountAlive(), p.Name)
		seen[p.Name] = true
	}
	assert.Len(t, seen, 3)
}
