package tui

import (
	"time"

	"github.com/vovakirdan/invaders/internal/core"
)

// DefaultHoldWindow covers the gap between a terminal's initial key press and
// its first auto-repeat.
const DefaultHoldWindow = 550 * time.Millisecond

// HeldKeys approximates held-key state from press events.
// Terminals only report presses, so a key counts as down until hold has
// passed since its last press or auto-repeat.
type HeldKeys struct {
	hold time.Duration
	last map[core.Key]time.Time
	now  func() time.Time
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(hold time.Duration) *HeldKeys {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &HeldKeys{
		hold: hold,
		last: make(map[core.Key]time.Time),
		now:  time.Now,
	}
}

// Press records a press or auto-repeat of k.
func (h *HeldKeys) Press(k core.Key) {
	h.last[k] = h.now()
}

// Release forgets k immediately.
func (h *HeldKeys) Release(k core.Key) {
	delete(h.last, k)
}

// Down reports whether k was pressed within the hold window.
func (h *HeldKeys) Down(k core.Key) bool {
	at, ok := h.last[k]
	if !ok {
		return false
	}
	if h.now().Sub(at) >= h.hold {
		delete(h.last, k)
		return false
	}
	return true
}
