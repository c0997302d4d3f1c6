package invaders

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/invaders/internal/core"
)

// scriptedPlatform replays one counter value, key state and event batch per
// iteration.
type scriptedPlatform struct {
	counters []uint64
	keys     []core.KeySet
	events   [][]core.Event
	i        int
}

func (p *scriptedPlatform) Counter() uint64 {
	c := p.counters[p.i]
	return c
}

func (p *scriptedPlatform) Frequency() uint64 { return freq }

func (p *scriptedPlatform) Keys() core.KeyState {
	if p.i < len(p.keys) {
		return p.keys[p.i]
	}
	return core.KeySet{}
}

func (p *scriptedPlatform) PollEvents() []core.Event {
	var evs []core.Event
	if p.i < len(p.events) {
		evs = p.events[p.i]
	}
	p.i++
	return evs
}

func newTestGame() *Game {
	return NewGame(DefaultSettings(), log.New(&bytes.Buffer{}))
}

func TestGameFrameMovesShip(t *testing.T) {
	g := newTestGame()
	p := &scriptedPlatform{
		counters: []uint64{0, freq / 2},
		keys:     []core.KeySet{{}, {core.KeyLeft: true}},
	}
	start := g.State().Ship.Pos.X

	assert.False(t, g.Frame(p))
	assert.False(t, g.Frame(p))

	assert.Equal(t, start-80, g.State().Ship.Pos.X)
	assert.True(t, g.State().Input.Left.Down)
}

func TestGameFramePressedIsEdgeTriggered(t *testing.T) {
	g := newTestGame()
	p := &scriptedPlatform{
		counters: []uint64{0, 1, 2},
		keys:     []core.KeySet{{core.KeySpace: true}, {core.KeySpace: true}, {core.KeySpace: true}},
		events:   [][]core.Event{{{Kind: core.EventKeyDown, Key: core.KeySpace}}},
	}

	g.Frame(p)
	assert.True(t, g.State().Input.Shoot.Pressed)

	g.Frame(p)
	assert.False(t, g.State().Input.Shoot.Pressed, "press only lasts one iteration")
	assert.True(t, g.State().Input.Shoot.Down)
}

func TestGameRunUntilEscape(t *testing.T) {
	g := newTestGame()
	p := &scriptedPlatform{
		counters: []uint64{0, freq / 2, freq, freq + freq/2},
		events: [][]core.Event{
			nil,
			nil,
			nil,
			{{Kind: core.EventKeyDown, Key: core.KeyEscape}},
		},
	}
	r := newRecorder()

	require.NoError(t, g.Run(p, r))

	assert.Equal(t, 4, r.presents, "the quitting iteration is still drawn")
	stats := g.Stats()
	assert.Equal(t, uint64(4), stats.Frames)
	assert.Equal(t, 3, stats.PeakFPS)
	assert.InDelta(t, 1.5, stats.Seconds, 1e-9)
}

func TestGameRunQuitEvent(t *testing.T) {
	g := newTestGame()
	p := &scriptedPlatform{
		counters: []uint64{0},
		events:   [][]core.Event{{{Kind: core.EventQuit}}},
	}

	require.NoError(t, g.Run(p, newRecorder()))
	assert.Equal(t, uint64(1), g.Stats().Frames)
}

type failingDisplay struct{ *recorder }

func (failingDisplay) Present() error { return errors.New("device lost") }

func TestGameRunPresentError(t *testing.T) {
	g := newTestGame()
	p := &scriptedPlatform{counters: []uint64{0, 1, 2}}

	err := g.Run(p, failingDisplay{newRecorder()})
	assert.ErrorContains(t, err, "device lost")
}
