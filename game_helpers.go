package main

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-lifesim/model"
	"github.com/sheikhrachel/go-lifesim/utils"
)

// errQuit ends the run when the user asks to leave
var errQuit = errors.New("quit requested")

// initializeGame builds and seeds the session
func initializeGame(config utils.Config, opts ...model.SessionOption) (*model.Session, *utils.Stats, error) {
	session, err := model.NewSession(config, opts...)
	if err != nil {
		return nil, nil, errors.Wrap(err, "[initializeGame] failed to create session")
	}
	session.Initialize()

	return session, utils.NewStats(), nil
}

// displayGameInfo shows the initial game information before the screen takes over
func displayGameInfo(config utils.Config, session *model.Session) {
	fmt.Printf("Grid: %dx%d | Pattern: %s | Initial living cells: %d\n",
		config.GridSize, config.GridSize, session.Pattern(), session.Population())
	fmt.Printf("Speed: %d ticks/sec | Paused until space is pressed\n", config.TicksPerSecond())
}

// displayFinalStats prints the run summary once the screen is released
func displayFinalStats(session *model.Session, stats *utils.Stats) {
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		session.Generation(), stats.Runtime().Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}

// keyAction maps a key press to a session event. quit is set for the exit keys,
// ok is false for keys the simulator ignores.
func keyAction(ev *tcell.EventKey) (event model.Event, quit, ok bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return 0, true, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return model.EventTogglePause, false, true
		case 'r', 'R':
			return model.EventReset, false, true
		case 'p', 'P':
			return model.EventPerturb, false, true
		case 'q', 'Q':
			return 0, true, true
		}
	}
	return 0, false, false
}

// readEvents forwards key presses to the tick loop. It only translates input and
// never touches the session.
func readEvents(ctx context.Context, screen tcell.Screen, events chan<- model.Event) error {
	for {
		ev := screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return nil
		}

		key, isKey := ev.(*tcell.EventKey)
		if !isKey {
			continue
		}
		event, quit, ok := keyAction(key)
		if quit {
			return errQuit
		}
		if !ok {
			continue
		}

		select {
		case events <- event:
		case <-ctx.Done():
			return nil
		}
	}
}

// drainEvents collects every event queued since the last tick without blocking
func drainEvents(events <-chan model.Event) []model.Event {
	var pending []model.Event
	for {
		select {
		case ev := <-events:
			pending = append(pending, ev)
		default:
			return pending
		}
	}
}

// advance runs one tick and keeps the stats in step with the session
func advance(session *model.Session, stats *utils.Stats, pending []model.Event, elapsed time.Duration) {
	if slices.Contains(pending, model.EventReset) {
		stats.Reset()
	}
	if session.Tick(pending...) {
		stats.Update(session.Generation(), session.Population(), elapsed)
	}
}

// runLoop owns the session: one tick per frame interval, then a redraw
func runLoop(
	ctx context.Context,
	config utils.Config,
	session *model.Session,
	renderer *model.TerminalRenderer,
	stats *utils.Stats,
	screen tcell.Screen,
	events <-chan model.Event,
) error {
	ticker := time.NewTicker(config.FrameInterval())
	defer ticker.Stop()

	lastFrameTime := time.Now()
	renderer.Draw(session, stats)

	for {
		select {
		case <-ctx.Done():
			// Wake the event reader so it can observe the cancellation
			_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
			return nil
		case <-ticker.C:
		}

		frameStart := time.Now()
		advance(session, stats, drainEvents(events), frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		renderer.Draw(session, stats)
	}
}
