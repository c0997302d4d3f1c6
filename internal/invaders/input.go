package invaders

import "github.com/vovakirdan/invaders/internal/core"

// Intent is one named player intention with level and edge semantics.
type Intent struct {
	Down    bool // Held during this iteration
	Pressed bool // Went down during this iteration
}

// Consume reports and clears the edge-triggered flag.
func (i *Intent) Consume() bool {
	p := i.Pressed
	i.Pressed = false
	return p
}

// Input is the per-iteration input snapshot.
type Input struct {
	Left  Intent
	Right Intent
	Shoot Intent
}

// SampleInput builds a fresh snapshot from the held-key state.
// Pressed flags start cleared; Apply sets them from this iteration's events,
// so a press is visible for exactly one iteration.
func SampleInput(keys core.KeyState) Input {
	return Input{
		Left:  Intent{Down: keys.Down(core.KeyLeft) || keys.Down(core.KeyA)},
		Right: Intent{Down: keys.Down(core.KeyRight) || keys.Down(core.KeyD)},
		Shoot: Intent{Down: keys.Down(core.KeySpace)},
	}
}

// Apply folds one drained platform event into the snapshot.
// Returns true when the event asks the loop to quit.
func (in *Input) Apply(ev core.Event) bool {
	switch ev.Kind {
	case core.EventQuit:
		return true
	case core.EventKeyDown:
		switch ev.Key {
		case core.KeyLeft, core.KeyA:
			in.Left.Pressed = true
		case core.KeyRight, core.KeyD:
			in.Right.Pressed = true
		case core.KeySpace:
			in.Shoot.Pressed = true
		case core.KeyEscape:
			return true
		}
	}
	return false
}
