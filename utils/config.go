package utils

import (
	"time"

	"github.com/pkg/errors"
)

const (
	// DefaultGridSize is the edge length of the square lattice.
	DefaultGridSize = 50
	// DefaultTickRate is added on top of BaseTickRate.
	DefaultTickRate = 5
	// BaseTickRate is the fixed part of the loop rate, in ticks per second.
	BaseTickRate = 30
)

// ErrInvalidConfig is the cause of every error returned by Config.Validate
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for the simulation
type Config struct {
	GridSize int `json:"grid_size"`
	TickRate int `json:"tick_rate"`
}

// DefaultConfig returns the fixed configuration the simulator runs with
func DefaultConfig() Config {
	return Config{
		GridSize: DefaultGridSize,
		TickRate: DefaultTickRate,
	}
}

// Validate reports a malformed configuration before any simulation state is created
func (c Config) Validate() error {
	if c.GridSize <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] grid size must be positive: %d", c.GridSize)
	}
	if c.TicksPerSecond() <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] tick rate %d leaves no ticks per second", c.TickRate)
	}
	return nil
}

// TicksPerSecond is the effective loop rate
func (c Config) TicksPerSecond() int {
	return BaseTickRate + c.TickRate
}

// FrameInterval is the time budget of a single tick
func (c Config) FrameInterval() time.Duration {
	tps := c.TicksPerSecond()
	if tps <= 0 {
		return time.Second
	}
	return time.Second / time.Duration(tps)
}
