package core

// Key is a platform-neutral symbolic key code.
// Frontends translate their native key events into these.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyA
	KeyD
	KeySpace
	KeyEscape
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyA:
		return "A"
	case KeyD:
		return "D"
	case KeySpace:
		return "Space"
	case KeyEscape:
		return "Escape"
	default:
		return "None"
	}
}

// KeyState answers whether a key is currently held down.
type KeyState interface {
	Down(k Key) bool
}

// KeySet is a fixed KeyState, handy for tests and headless runs.
type KeySet map[Key]bool

// Down reports whether k is in the set.
func (s KeySet) Down(k Key) bool {
	return s[k]
}

// EventKind distinguishes platform events drained once per loop iteration.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventQuit
)

// Event is a single pending platform event.
type Event struct {
	Kind EventKind
	Key  Key // Set for EventKeyDown
}
