// Package headless runs the game loop without a terminal or window.
// It backs the bench command and end-to-end loop tests.
package headless

import (
	"github.com/vovakirdan/invaders/internal/core"
	"github.com/vovakirdan/invaders/internal/platform/raster"
	"github.com/vovakirdan/invaders/internal/sprites"
)

// Platform feeds the loop a fixed key state and asks it to quit once a
// frame budget is spent.
type Platform struct {
	keys    core.KeySet
	limit   int
	polled  int
	counter func() uint64
	freq    uint64
}

// NewPlatform returns a platform that emits a quit event on iteration limit.
// A limit of 0 never quits.
func NewPlatform(limit int, keys core.KeySet) *Platform {
	if keys == nil {
		keys = core.KeySet{}
	}
	return &Platform{
		keys:    keys,
		limit:   limit,
		counter: core.PerformanceCounter,
		freq:    core.PerformanceFrequency(),
	}
}

// WithCounter replaces the performance counter, for deterministic runs.
func (p *Platform) WithCounter(counter func() uint64, frequency uint64) *Platform {
	p.counter = counter
	p.freq = frequency
	return p
}

// Counter returns the current counter value.
func (p *Platform) Counter() uint64 {
	return p.counter()
}

// Frequency returns counter ticks per second.
func (p *Platform) Frequency() uint64 {
	return p.freq
}

// Keys returns the fixed held-key state.
func (p *Platform) Keys() core.KeyState {
	return p.keys
}

// PollEvents returns a quit event once the frame budget is reached.
func (p *Platform) PollEvents() []core.Event {
	p.polled++
	if p.limit > 0 && p.polled >= p.limit {
		return []core.Event{{Kind: core.EventQuit}}
	}
	return nil
}

// Display is an offscreen render target that counts presented frames.
type Display struct {
	*raster.Renderer
	presented int
}

// NewDisplay allocates an offscreen backbuffer of the given logical size.
func NewDisplay(size core.Vec2i, sheet *sprites.Sheet) *Display {
	return &Display{Renderer: raster.New(core.NewCanvas(size.X, size.Y), sheet)}
}

// Present finishes the frame. Nothing is shown.
func (d *Display) Present() error {
	d.presented++
	return nil
}

// Presented returns the number of finished frames.
func (d *Display) Presented() int {
	return d.presented
}
