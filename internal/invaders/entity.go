package invaders

import (
	"github.com/vovakirdan/invaders/internal/config"
	"github.com/vovakirdan/invaders/internal/core"
)

// Kind is one of the decorative alien variants.
type Kind int

const (
	KindPeach Kind = iota
	KindPurple
	KindBlue
	KindPink
)

// KindCount is the number of alien variants.
const KindCount = 4

// KindInfo is the fixed footprint and sprite-sheet cell of a Kind.
type KindInfo struct {
	Size   core.Vec2i
	Sprite core.Vec2i
}

var footprint = core.Vec2i{X: config.FootprintSize, Y: config.FootprintSize}

var kindTable = [KindCount]KindInfo{
	KindPeach:  {Size: footprint, Sprite: core.Vec2i{X: 1, Y: 0}},
	KindPurple: {Size: footprint, Sprite: core.Vec2i{X: 2, Y: 0}},
	KindBlue:   {Size: footprint, Sprite: core.Vec2i{X: 3, Y: 0}},
	KindPink:   {Size: footprint, Sprite: core.Vec2i{X: 4, Y: 0}},
}

// ShipSprite is the sprite-sheet cell of the player ship.
var ShipSprite = core.Vec2i{X: 0, Y: 0}

// Info returns the footprint and sprite cell of the kind.
func (k Kind) Info() KindInfo {
	return kindTable[k]
}

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPeach:
		return "Peach"
	case KindPurple:
		return "Purple"
	case KindBlue:
		return "Blue"
	case KindPink:
		return "Pink"
	default:
		return "Unknown"
	}
}

// SpriteCells lists every sheet cell the game draws.
func SpriteCells() []core.Vec2i {
	cells := []core.Vec2i{ShipSprite}
	for _, info := range kindTable {
		cells = append(cells, info.Sprite)
	}
	return cells
}

// Entity is a decorative alien.
type Entity struct {
	Pos  core.Vec2
	Kind Kind
	Seq  int // Position in stage visitation order; drives the wave phase
}

// Store is the growable list of entities, kept in insertion order.
// When full it doubles its capacity; it never shrinks.
type Store struct {
	items []Entity
}

// NewStore creates an empty store with room for capacity entities.
func NewStore(capacity int) *Store {
	if capacity < 0 {
		capacity = 0
	}
	return &Store{items: make([]Entity, 0, capacity)}
}

// Append adds an entity at the end of the store.
func (s *Store) Append(e Entity) {
	if len(s.items) == cap(s.items) {
		grown := make([]Entity, len(s.items), core.Max(1, 2*cap(s.items)))
		copy(grown, s.items)
		s.items = grown
	}
	s.items = append(s.items, e)
}

// Len returns the number of stored entities.
func (s *Store) Len() int {
	return len(s.items)
}

// Cap returns the allocated capacity.
func (s *Store) Cap() int {
	return cap(s.items)
}

// At returns the entity at index i.
func (s *Store) At(i int) Entity {
	return s.items[i]
}

// Each calls fn for every entity in insertion order. fn may mutate the entity.
func (s *Store) Each(fn func(e *Entity)) {
	for i := range s.items {
		fn(&s.items[i])
	}
}
