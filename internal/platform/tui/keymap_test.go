package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/invaders/internal/core"
)

func TestKeyMapMapEvent(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Event
		ok   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.Event{Kind: core.EventKeyDown, Key: core.KeyLeft}, true},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.Event{Kind: core.EventKeyDown, Key: core.KeyRight}, true},
		{"a", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, core.Event{Kind: core.EventKeyDown, Key: core.KeyA}, true},
		{"d", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")}, core.Event{Kind: core.EventKeyDown, Key: core.KeyD}, true},
		{"space", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(" ")}, core.Event{Kind: core.EventKeyDown, Key: core.KeySpace}, true},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, core.Event{Kind: core.EventKeyDown, Key: core.KeyEscape}, true},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.Event{Kind: core.EventQuit}, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.Event{Kind: core.EventQuit}, true},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, core.Event{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := km.MapEvent(tt.msg)
			if ok != tt.ok || got != tt.want {
				t.Errorf("MapEvent(%q) = %+v, %v, expected %+v, %v", tt.msg.String(), got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestKeyMapRebinding(t *testing.T) {
	km := DefaultKeyMap()
	km.Left.SetKeys("h")
	km.Right.SetKeys("l", "right")
	km.Shoot.SetEnabled(false)

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Key
	}{
		{"h is the new left", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")}, core.KeyLeft},
		{"a is no longer bound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, core.KeyNone},
		{"l is the new right", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")}, core.KeyRight},
		{"right arrow is the alternate", tea.KeyMsg{Type: tea.KeyRight}, core.KeyD},
		{"disabled shoot", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(" ")}, core.KeyNone},
		{"escape unchanged", tea.KeyMsg{Type: tea.KeyEsc}, core.KeyEscape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}
