package model

import (
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-lifesim/utils"
)

// State is where a session is in its lifecycle
type State int

const (
	StoppedInitial State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case StoppedInitial:
		return "Stopped"
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// Event is an input applied at the start of a tick
type Event int

const (
	EventTogglePause Event = iota
	EventReset
	EventPerturb
)

// Session owns the grid, the generation counter and the population history of one run.
// It is not safe for concurrent use; drive it from a single goroutine.
type Session struct {
	size         int
	perturbCount int
	rng          *rand.Rand
	pool         *GridPool

	grid     *Grid
	state    State
	pattern  string
	tracker  PopulationTracker
	detector CycleDetector
}

// SessionOption customises a Session
type SessionOption func(*Session)

// WithRand sets the random source used for seeding and perturbation
func WithRand(rng *rand.Rand) SessionOption {
	return func(s *Session) {
		s.rng = rng
	}
}

// WithGridPool recycles discarded generations through pool. Grids obtained from
// the session are then only valid until the next Tick.
func WithGridPool(pool *GridPool) SessionOption {
	return func(s *Session) {
		s.pool = pool
	}
}

// WithPerturbCount overrides how many cells Perturb toggles
func WithPerturbCount(count int) SessionOption {
	return func(s *Session) {
		s.perturbCount = count
	}
}

// NewSession validates cfg and returns a session holding an all-dead grid
func NewSession(cfg utils.Config, opts ...SessionOption) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "[NewSession] refusing to start")
	}

	s := &Session{
		size:         cfg.GridSize,
		perturbCount: DefaultPerturbCount,
		state:        StoppedInitial,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	s.grid = NewGrid(s.size)

	return s, nil
}

// Initialize starts over with a fresh grid seeded from a random pattern and leaves the session paused
func (s *Session) Initialize() *Grid {
	s.clearRun()
	s.pattern = SeedRandom(s.grid, s.rng).Name
	s.state = Paused
	return s.grid
}

// Reset clears the grid and all counters and returns the new empty grid
func (s *Session) Reset() *Grid {
	s.clearRun()
	s.state = StoppedInitial
	return s.grid
}

func (s *Session) clearRun() {
	s.grid = NewGrid(s.size)
	s.pattern = ""
	s.tracker.Reset()
	s.detector.Reset()
}

// TogglePause switches between running and paused. A stopped session starts running.
func (s *Session) TogglePause() {
	if s.state == Running {
		s.state = Paused
	} else {
		s.state = Running
	}
}

// Perturb toggles random cells of the current grid without advancing a generation
func (s *Session) Perturb() []Offset {
	return Perturb(s.grid, s.rng, s.perturbCount)
}

// Tick applies events in order and, when running, advances one generation.
// It reports whether a generation was produced. The next grid is freshly
// allocated unless the session was built WithGridPool.
func (s *Session) Tick(events ...Event) bool {
	for _, ev := range events {
		s.apply(ev)
	}

	if s.state != Running {
		return false
	}

	next := StepPooled(s.grid, s.pool)
	// nil pool keeps the previous grid intact for the caller
	GridToPool(s.grid, s.pool)
	s.grid = next

	s.tracker.Record(s.grid)
	s.detector.Observe(s.grid)
	return true
}

func (s *Session) apply(ev Event) {
	switch ev {
	case EventTogglePause:
		s.TogglePause()
	case EventReset:
		s.Reset()
	case EventPerturb:
		s.Perturb()
	}
}

// Grid returns the current grid
func (s *Session) Grid() *Grid {
	return s.grid
}

func (s *Session) State() State {
	return s.state
}

// Generation is the number of generations since the last reset
func (s *Session) Generation() int {
	return s.tracker.Generation()
}

// History returns the population of every generation since the last reset
func (s *Session) History() []int {
	return s.tracker.History()
}

// PeakPopulation is the largest recorded population, 0 when nothing was recorded
func (s *Session) PeakPopulation() int {
	return s.tracker.Peak()
}

// Population is the live-cell count of the current grid
func (s *Session) Population() int {
	return s.grid.CountAlive()
}

// Pattern names the pattern the grid was seeded with, empty after a reset
func (s *Session) Pattern() string {
	return s.pattern
}

// Stagnant reports whether the last generation repeated one of the previous three
func (s *Session) Stagnant() bool {
	return s.detector.Stagnant()
}
