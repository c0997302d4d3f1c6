package invaders

import "github.com/vovakirdan/invaders/internal/core"

// StageLayout places the alien grid on the backbuffer.
type StageLayout struct {
	Origin  core.Vec2 // Position of the top-left alien
	Spacing float64   // Distance between neighbouring aliens on both axes
}

// DefaultLayout returns the classic layout: origin (10, 32), 18px spacing.
func DefaultLayout() StageLayout {
	return StageLayout{Origin: core.Vec2{X: 10, Y: 32}, Spacing: 18}
}

// BuildStage lays out a rows x cols grid of aliens in row-major order.
// Row r uses kind r mod KindCount; sequence numbers count up in visitation order.
func BuildStage(rows, cols int, layout StageLayout) *Store {
	if rows < 1 || cols < 1 {
		return NewStore(0)
	}

	store := NewStore(rows * cols)
	seq := 0
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			offset := core.Vec2{X: float64(x) * layout.Spacing, Y: float64(y) * layout.Spacing}
			store.Append(Entity{
				Pos:  layout.Origin.Add(offset),
				Kind: Kind(y % KindCount),
				Seq:  seq,
			})
			seq++
		}
	}
	return store
}
