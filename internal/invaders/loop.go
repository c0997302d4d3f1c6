package invaders

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/invaders/internal/core"
)

// Platform is the part of the windowing layer the loop samples each iteration.
type Platform interface {
	// Counter returns the monotonic performance counter.
	Counter() uint64
	// Frequency returns performance counter ticks per second.
	Frequency() uint64
	// Keys returns the current held-key state.
	Keys() core.KeyState
	// PollEvents drains the pending event queue.
	PollEvents() []core.Event
}

// Display is a Renderer that can show a finished frame.
// Present may block until vertical sync.
type Display interface {
	Renderer
	Present() error
}

// Stats summarises a run for the session history.
type Stats struct {
	Frames  uint64
	PeakFPS int
	Seconds float64
}

// Game ties the clock, input, simulation and composition together.
// It is not safe for concurrent use; one loop owns it.
type Game struct {
	state  *State
	clock  Clock
	stats  Stats
	logger *log.Logger
}

// NewGame builds the initial state. A nil logger uses log.Default().
func NewGame(s Settings, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	return &Game{
		state:  NewState(s),
		logger: logger,
	}
}

// State exposes the current state for inspection.
func (g *Game) State() *State {
	return g.state
}

// Stats returns counters for the run so far.
func (g *Game) Stats() Stats {
	return g.stats
}

// Frame runs one iteration without drawing: sample the clock, sample input,
// drain events, advance the simulation. Returns true once a quit is observed.
func (g *Game) Frame(p Platform) bool {
	sample := g.clock.Tick(p.Counter(), p.Frequency())
	g.state.Time = sample

	in := SampleInput(p.Keys())
	quit := false
	for _, ev := range p.PollEvents() {
		if in.Apply(ev) {
			quit = true
		}
	}
	g.state.Input = in

	Advance(g.state, in, sample.Delta)

	g.stats.Frames++
	g.stats.Seconds = sample.ElapsedExact
	if sample.FPSUpdated {
		g.stats.PeakFPS = core.Max(g.stats.PeakFPS, sample.FPS)
		g.logger.Debug("fps", "fps", sample.FPS, "elapsed", sample.Elapsed)
	}
	return quit
}

// Compose draws the current state onto r.
func (g *Game) Compose(r Renderer) {
	Compose(g.state, r, g.logger)
}

// Run loops Frame, Compose and Present until a quit is observed.
// Frame pacing is left to d.Present.
func (g *Game) Run(p Platform, d Display) error {
	for {
		quit := g.Frame(p)
		g.Compose(d)
		if err := d.Present(); err != nil {
			return fmt.Errorf("invaders: present failed: %w", err)
		}
		if quit {
			return nil
		}
	}
}
