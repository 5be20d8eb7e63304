package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPopulationTracker(t *testing.T) {
	var tracker PopulationTracker
	assert.Zero(t, tracker.Generation())
	assert.Zero(t, tracker.Latest())
	assert.Zero(t, tracker.Peak())
	assert.Empty(t, tracker.History())

	g := NewGrid(5)
	g.Set(0, 0, true)
	tracker.Record(g)
	g.Set(1, 1, true)
	g.Set(2, 2, true)
	tracker.Record(g)
	g.Clear()
	tracker.Record(g)

	assert.Equal(t, 3, tracker.Generation())
	assert.Equal(t, []int{1, 3, 0}, tracker.History())
	assert.Zero(t, tracker.Latest())
	assert.Equal(t, 3, tracker.Peak())

	history := tracker.History()
	history[0] = 99
	assert.Equal(t, 1, tracker.History()[0])

	tracker.Reset()
	assert.Zero(t, tracker.Generation())
	assert.Empty(t, tracker.History())
}
