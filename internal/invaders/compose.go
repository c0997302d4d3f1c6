package invaders

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/invaders/internal/core"
)

// ErrGlyphUnsupported is returned by renderers whose font lacks a character.
var ErrGlyphUnsupported = errors.New("invaders: glyph not supported by font")

// Renderer is the drawing surface of the external rendering layer.
// Coordinates are in backbuffer (logical) pixels.
type Renderer interface {
	// Size returns the logical resolution.
	Size() core.Vec2i
	// Clear fills the backbuffer.
	Clear(c core.Color)
	// DrawSprite blits one sprite-sheet cell with its top-left corner at pos.
	DrawSprite(cell core.Vec2i, pos core.Vec2)
	// TextSize measures text as DrawText would render it.
	TextSize(text string) (w, h int)
	// DrawText rasterizes text with its top-left corner at (x, y).
	DrawText(x, y int, text string) error
}

// overlayMargin is the FPS counter's distance from the top-right corner.
const overlayMargin = 10

// Compose draws the current state. It only reads from s.
// A failing text overlay is logged and skipped for this frame.
func Compose(s *State, r Renderer, logger *log.Logger) {
	r.Clear(core.ColorBackdrop)
	r.DrawSprite(ShipSprite, s.Ship.Pos)

	s.Aliens.Each(func(e *Entity) {
		r.DrawSprite(e.Kind.Info().Sprite, e.Pos)
	})

	text := fmt.Sprintf("FPS: %d", s.Time.FPS)
	w, _ := r.TextSize(text)
	if err := r.DrawText(r.Size().X-w-overlayMargin, overlayMargin, text); err != nil {
		logger.Warn("fps overlay skipped", "err", err)
	}
}
