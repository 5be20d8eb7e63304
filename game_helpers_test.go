package main

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-lifesim/model"
	"github.com/sheikhrachel/go-lifesim/utils"
)

func TestKeyAction(t *testing.T) {
	tests := []struct {
		name  string
		key   *tcell.EventKey
		event model.Event
		quit  bool
		ok    bool
	}{
		{name: "space", key: tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), event: model.EventTogglePause, ok: true},
		{name: "reset", key: tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), event: model.EventReset, ok: true},
		{name: "perturb", key: tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), event: model.EventPerturb, ok: true},
		{name: "quit", key: tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), quit: true, ok: true},
		{name: "escape", key: tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), quit: true, ok: true},
		{name: "ignored", key: tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, quit, ok := keyAction(tt.key)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.quit, quit)
			if ok && !quit {
				assert.Equal(t, tt.event, event)
			}
		})
	}
}

func TestDrainEvents(t *testing.T) {
	events := make(chan model.Event, 4)
	assert.Empty(t, drainEvents(events))

	events <- model.EventTogglePause
	events <- model.EventPerturb
	assert.Equal(t, []model.Event{model.EventTogglePause, model.EventPerturb}, drainEvents(events))
	assert.Empty(t, drainEvents(events))
}

func TestInitializeGame(t *testing.T) {
	session, stats, err := initializeGame(utils.DefaultConfig(), model.WithRand(rand.New(rand.NewPCG(3, 4))))
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, model.Paused, session.State())
	assert.NotEmpty(t, session.Pattern())

	_, _, err = initializeGame(utils.Config{GridSize: -1})
	assert.Error(t, err)
}

func TestPlayRunsUntilQuit(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(160, 60)

	config := utils.DefaultConfig()
	session, stats, err := initializeGame(config, model.WithRand(rand.New(rand.NewPCG(3, 4))))
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- play(context.Background(), config, session, stats, screen)
	}()

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("play did not stop on quit")
	}
}

func TestPlayStopsOnCancel(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(160, 60)

	config := utils.DefaultConfig()
	session, stats, err := initializeGame(config, model.WithRand(rand.New(rand.NewPCG(3, 4))))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- play(ctx, config, session, stats, screen)
	}()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("play did not stop on cancel")
	}
}

func TestAdvanceResetsStats(t *testing.T) {
	session, stats, err := initializeGame(utils.DefaultConfig(), model.WithRand(rand.New(rand.NewPCG(3, 4))))
	require.NoError(t, err)

	advance(session, stats, []model.Event{model.EventTogglePause}, 100*time.Millisecond)
	advance(session, stats, nil, 100*time.Millisecond)
	require.Equal(t, 2, stats.TotalGenerations)
	require.NotZero(t, stats.AveragePopulation)

	advance(session, stats, []model.Event{model.EventReset}, 100*time.Millisecond)
	assert.Zero(t, session.Generation())
	assert.Zero(t, stats.TotalGenerations)
	assert.Zero(t, stats.AveragePopulation)

	// Reset stops the session; the toggle restarts it on the empty grid
	advance(session, stats, []model.Event{model.EventTogglePause}, 100*time.Millisecond)
	assert.Equal(t, 1, stats.TotalGenerations)
	assert.Zero(t, stats.AveragePopulation)
}
