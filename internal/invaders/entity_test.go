package invaders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/invaders/internal/core"
)

func TestStoreAppendPreservesOrder(t *testing.T) {
	for _, initial := range []int{0, 1, 3, 40} {
		s := NewStore(initial)
		for i := 0; i < 100; i++ {
			s.Append(Entity{Seq: i, Pos: core.Vec2{X: float64(i), Y: -float64(i)}, Kind: Kind(i % KindCount)})
		}

		require.Equal(t, 100, s.Len(), "initial capacity %d", initial)
		for i := 0; i < s.Len(); i++ {
			e := s.At(i)
			assert.Equal(t, i, e.Seq)
			assert.Equal(t, core.Vec2{X: float64(i), Y: -float64(i)}, e.Pos)
			assert.Equal(t, Kind(i%KindCount), e.Kind)
		}
	}
}

func TestStoreDoublesCapacity(t *testing.T) {
	s := NewStore(2)
	caps := []int{}
	for i := 0; i < 9; i++ {
		s.Append(Entity{Seq: i})
		caps = append(caps, s.Cap())
	}

	assert.Equal(t, []int{2, 2, 4, 4, 8, 8, 8, 8, 16}, caps)
	assert.LessOrEqual(t, s.Len(), s.Cap())
}

func TestStoreZeroCapacityGrows(t *testing.T) {
	s := NewStore(0)
	s.Append(Entity{Seq: 7})

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 1, s.Cap())
	assert.Equal(t, 7, s.At(0).Seq)
}

func TestStoreEachMutatesInPlace(t *testing.T) {
	s := NewStore(4)
	for i := 0; i < 4; i++ {
		s.Append(Entity{Seq: i})
	}

	visited := []int{}
	s.Each(func(e *Entity) {
		visited = append(visited, e.Seq)
		e.Pos.X += 1
	})

	assert.Equal(t, []int{0, 1, 2, 3}, visited)
	for i := 0; i < 4; i++ {
		assert.Equal(t, 1.0, s.At(i).Pos.X)
	}
}

func TestKindTable(t *testing.T) {
	tests := []struct {
		kind   Kind
		name   string
		sprite core.Vec2i
	}{
		{KindPeach, "Peach", core.Vec2i{X: 1}},
		{KindPurple, "Purple", core.Vec2i{X: 2}},
		{KindBlue, "Blue", core.Vec2i{X: 3}},
		{KindPink, "Pink", core.Vec2i{X: 4}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.name, tc.kind.String())
			assert.Equal(t, tc.sprite, tc.kind.Info().Sprite)
			assert.Equal(t, core.Vec2i{X: 16, Y: 16}, tc.kind.Info().Size)
		})
	}
}

func TestSpriteCells(t *testing.T) {
	assert.Equal(t, []core.Vec2i{{X: 0}, {X: 1}, {X: 2}, {X: 3}, {X: 4}}, SpriteCells())
}

func TestShipRailMatchesFootprint(t *testing.T) {
	s := DefaultSettings()
	size := KindPeach.Info().Size

	assert.Equal(t, s.SpriteSize, size.X)
	assert.Equal(t, float64(s.Logical.X-size.X), s.Tuning.ShipMaxX,
		"a ship pinned at ShipMaxX should end exactly on the right edge")
}
