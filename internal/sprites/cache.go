package sprites

import (
	"image"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/invaders/internal/core"
)

// Cache memoizes one value per sheet cell, such as a GPU sub-image.
// Cells are keyed by their row-major index on the sheet.
type Cache[T any] struct {
	sheet   *Sheet
	cols    int
	entries *intmap.Map[int, T]
	build   func(image.Rectangle) T
}

// NewCache creates a cache that calls build for a cell's pixel rectangle on
// first use.
func NewCache[T any](sheet *Sheet, build func(image.Rectangle) T) *Cache[T] {
	g := sheet.Grid()
	return &Cache[T]{
		sheet:   sheet,
		cols:    g.X,
		entries: intmap.New[int, T](g.X * g.Y),
		build:   build,
	}
}

// Get returns the cached value for cell, building it if needed.
func (c *Cache[T]) Get(cell core.Vec2i) (T, error) {
	rect, err := c.sheet.Cell(cell)
	if err != nil {
		var zero T
		return zero, err
	}
	k := cell.Y*c.cols + cell.X
	if v, ok := c.entries.Get(k); ok {
		return v, nil
	}
	v := c.build(rect)
	c.entries.Put(k, v)
	return v, nil
}

// Len returns the number of built entries.
func (c *Cache[T]) Len() int {
	return c.entries.Len()
}
