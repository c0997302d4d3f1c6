package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/invaders/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Shoot      key.Binding
	Escape     key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Shoot, k.Screenshot, k.Escape}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Shoot},
		{k.Screenshot, k.Escape, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Shoot: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "shoot"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// MapKey translates a key message into a platform key code.
// The first key of Left and Right reports the arrow code and any other key
// reports the letter code, so rebinding a KeyMap changes what the game reads.
// Returns core.KeyNone for keys the game does not read.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Key {
	switch {
	case key.Matches(msg, k.Left):
		return pick(msg, k.Left, core.KeyLeft, core.KeyA)
	case key.Matches(msg, k.Right):
		return pick(msg, k.Right, core.KeyRight, core.KeyD)
	case key.Matches(msg, k.Shoot):
		return core.KeySpace
	case key.Matches(msg, k.Escape):
		return core.KeyEscape
	}
	return core.KeyNone
}

// pick returns primary when msg is the first key of b and alt otherwise.
func pick(msg tea.KeyMsg, b key.Binding, primary, alt core.Key) core.Key {
	if keys := b.Keys(); len(keys) > 0 && msg.String() == keys[0] {
		return primary
	}
	return alt
}

// MapEvent translates a key message into a loop event.
// ok is false when the key is not bound.
func (k KeyMap) MapEvent(msg tea.KeyMsg) (ev core.Event, ok bool) {
	if key.Matches(msg, k.Quit) {
		return core.Event{Kind: core.EventQuit}, true
	}
	if kc := k.MapKey(msg); kc != core.KeyNone {
		return core.Event{Kind: core.EventKeyDown, Key: kc}, true
	}
	return core.Event{}, false
}
