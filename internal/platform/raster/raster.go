// Package raster implements the game's Renderer in software on a core.Canvas.
// Sprites are blitted into the backbuffer; text is queued as overlay
// operations for the frontend to place with its own font.
package raster

import (
	"fmt"
	"image"

	"github.com/vovakirdan/invaders/internal/core"
	"github.com/vovakirdan/invaders/internal/invaders"
	"github.com/vovakirdan/invaders/internal/sprites"
)

// DefaultGlyph is the pixel size of one overlay character.
var DefaultGlyph = core.Vec2i{X: 6, Y: 16}

// TextOp is one queued overlay string in logical pixel coordinates.
type TextOp struct {
	X, Y int
	Text string
}

// Renderer draws sprites into a Canvas and collects text overlays.
// Clear starts a new frame and drops the previous overlays.
type Renderer struct {
	canvas *core.Canvas
	sheet  *sprites.Sheet
	glyph  core.Vec2i
	texts  []TextOp
}

// New creates a renderer over canvas using sprites from sheet.
func New(canvas *core.Canvas, sheet *sprites.Sheet) *Renderer {
	return &Renderer{
		canvas: canvas,
		sheet:  sheet,
		glyph:  DefaultGlyph,
	}
}

// SetGlyph changes the measured size of one overlay character.
// Non-positive components are ignored.
func (r *Renderer) SetGlyph(g core.Vec2i) {
	if g.X > 0 {
		r.glyph.X = g.X
	}
	if g.Y > 0 {
		r.glyph.Y = g.Y
	}
}

// Glyph returns the current overlay character size.
func (r *Renderer) Glyph() core.Vec2i {
	return r.glyph
}

// Size returns the canvas resolution.
func (r *Renderer) Size() core.Vec2i {
	return r.canvas.Size()
}

// Clear fills the canvas and discards queued text.
func (r *Renderer) Clear(c core.Color) {
	r.canvas.Clear(c)
	r.texts = r.texts[:0]
}

// DrawSprite blits one sheet cell. Cells are checked against the sheet at
// startup, so a missing cell draws nothing.
func (r *Renderer) DrawSprite(cell core.Vec2i, pos core.Vec2) {
	src, err := r.sheet.Cell(cell)
	if err != nil {
		return
	}
	r.canvas.Blit(r.sheet.Image(), src, image.Pt(int(pos.X), int(pos.Y)))
}

// TextSize measures text in the fixed-width overlay font.
func (r *Renderer) TextSize(text string) (w, h int) {
	return len([]rune(text)) * r.glyph.X, r.glyph.Y
}

// DrawText queues text for the overlay. Only printable ASCII is supported.
func (r *Renderer) DrawText(x, y int, text string) error {
	for _, c := range text {
		if c < ' ' || c > '~' {
			return fmt.Errorf("%w: %q", invaders.ErrGlyphUnsupported, c)
		}
	}
	r.texts = append(r.texts, TextOp{X: x, Y: y, Text: text})
	return nil
}

// Texts returns the overlays queued since the last Clear.
func (r *Renderer) Texts() []TextOp {
	return r.texts
}

// Canvas returns the backbuffer.
func (r *Renderer) Canvas() *core.Canvas {
	return r.canvas
}
