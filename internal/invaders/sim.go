package invaders

import (
	"math"

	"github.com/vovakirdan/invaders/internal/core"
)

// Advance moves the simulation forward by delta seconds.
//
// The ship moves at Tuning.ShipSpeed while left or right is held; holding both
// cancels out. Every alien drifts horizontally by sin(t + seq*PhaseStep), where
// t is the clock's whole elapsed seconds (or the exact elapsed time with
// Tuning.Smooth). The drift is per step, not scaled by delta.
func Advance(s *State, in Input, delta float64) {
	step := s.Tuning.ShipSpeed * delta
	if in.Left.Down {
		s.Ship.Pos.X -= step
	}
	if in.Right.Down {
		s.Ship.Pos.X += step
	}
	if s.Tuning.ClampShip {
		s.Ship.Pos.X = core.ClampF(s.Ship.Pos.X, 0, s.Tuning.ShipMaxX)
	}

	t := float64(s.Time.Elapsed)
	if s.Tuning.Smooth {
		t = s.Time.ElapsedExact
	}
	phase := s.Tuning.PhaseStep
	s.Aliens.Each(func(e *Entity) {
		e.Pos.X += math.Sin(t + float64(e.Seq)*phase)
	})
}
