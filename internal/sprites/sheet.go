// Package sprites loads sprite sheets and addresses their fixed-size cells.
package sprites

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/vovakirdan/invaders/internal/core"
)

// ErrCellOutOfRange is returned when a cell lies outside the sheet.
var ErrCellOutOfRange = errors.New("sprites: cell out of range")

// Sheet is a decoded sprite sheet addressed in square cells.
type Sheet struct {
	img  image.Image
	cell int
}

// New wraps an already decoded image as a sheet of cell x cell sprites.
func New(img image.Image, cell int) (*Sheet, error) {
	if cell <= 0 {
		return nil, fmt.Errorf("sprites: invalid cell size %d", cell)
	}
	b := img.Bounds()
	if b.Dx() < cell || b.Dy() < cell {
		return nil, fmt.Errorf("sprites: sheet %dx%d smaller than one %dpx cell", b.Dx(), b.Dy(), cell)
	}
	return &Sheet{img: img, cell: cell}, nil
}

// Decode reads a PNG sprite sheet.
func Decode(r io.Reader, cell int) (*Sheet, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("sprites: cannot decode sheet: %w", err)
	}
	return New(img, cell)
}

// Load opens and decodes a PNG sprite sheet from disk.
func Load(path string, cell int) (*Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sprites: cannot open sheet: %w", err)
	}
	defer f.Close()

	sheet, err := Decode(f, cell)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sheet, nil
}

// CellSize returns the edge length of one cell in pixels.
func (s *Sheet) CellSize() int {
	return s.cell
}

// Grid returns the number of whole cells per row and column.
func (s *Sheet) Grid() core.Vec2i {
	b := s.img.Bounds()
	return core.Vec2i{X: b.Dx() / s.cell, Y: b.Dy() / s.cell}
}

// Cell returns the pixel rectangle of the cell at column c.X, row c.Y.
func (s *Sheet) Cell(c core.Vec2i) (image.Rectangle, error) {
	g := s.Grid()
	if c.X < 0 || c.Y < 0 || c.X >= g.X || c.Y >= g.Y {
		return image.Rectangle{}, fmt.Errorf("%w: (%d, %d) in %dx%d sheet", ErrCellOutOfRange, c.X, c.Y, g.X, g.Y)
	}
	min := s.img.Bounds().Min.Add(image.Pt(c.X*s.cell, c.Y*s.cell))
	return image.Rectangle{Min: min, Max: min.Add(image.Pt(s.cell, s.cell))}, nil
}

// Image returns the whole decoded sheet.
func (s *Sheet) Image() image.Image {
	return s.img
}

// Require checks that every listed cell exists on the sheet.
func (s *Sheet) Require(cells ...core.Vec2i) error {
	for _, c := range cells {
		if _, err := s.Cell(c); err != nil {
			return err
		}
	}
	return nil
}
