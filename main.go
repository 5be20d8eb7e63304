package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-lifesim/model"
	"github.com/sheikhrachel/go-lifesim/utils"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("Error: %+v\n", err)
		os.Exit(1)
	}
}

func run() error {
	config := utils.DefaultConfig()

	// The renderer draws each generation before the next tick, so recycling is safe here
	session, stats, err := initializeGame(config, model.WithGridPool(model.NewGridPool()))
	if err != nil {
		return err
	}
	displayGameInfo(config, session)

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "[run] failed to create screen")
	}
	if err = screen.Init(); err != nil {
		return errors.Wrap(err, "[run] failed to initialize screen")
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = play(ctx, config, session, stats, screen)
	screen.Fini()
	if err != nil {
		return err
	}

	fmt.Println("🛑 Shutting down gracefully...")
	displayFinalStats(session, stats)
	return nil
}

// play runs the key reader and the tick loop until quit or cancellation
func play(
	ctx context.Context,
	config utils.Config,
	session *model.Session,
	stats *utils.Stats,
	screen tcell.Screen,
) error {
	var (
		eg, egCtx = errgroup.WithContext(ctx)
		events    = make(chan model.Event, 16)
		renderer  = model.NewTerminalRenderer(screen)
	)

	eg.Go(func() error {
		return readEvents(egCtx, screen, events)
	})
	eg.Go(func() error {
		return runLoop(egCtx, config, session, renderer, stats, screen, events)
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, errQuit) {
		return errors.Wrap(err, "[play] simulation stopped")
	}
	return nil
}
