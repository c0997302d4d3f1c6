package tui

import (
	"math"

	"github.com/vovakirdan/invaders/internal/core"
	"github.com/vovakirdan/invaders/internal/platform/raster"
)

// halfBlock shows the top pixel as foreground and the bottom pixel as
// background, so one cell carries two vertically stacked pixels.
const halfBlock = '▀'

// Presenter fits the logical canvas into a cell screen, letterboxed and
// nearest-neighbour scaled.
type Presenter struct {
	screen  *core.Screen
	logical core.Vec2i
	scale   float64   // Screen pixels per logical pixel
	area    core.Rect // Cells covered by the canvas
}

// NewPresenter creates a presenter for a cols x rows cell screen.
func NewPresenter(cols, rows int, logical core.Vec2i) *Presenter {
	p := &Presenter{screen: core.NewScreen(cols, rows)}
	p.Resize(cols, rows, logical)
	return p
}

// Resize recomputes the scale for a new screen or canvas size.
func (p *Presenter) Resize(cols, rows int, logical core.Vec2i) {
	p.screen.Resize(cols, rows)
	p.logical = logical
	p.scale = 0
	p.area = core.Rect{}
	if logical.X <= 0 || logical.Y <= 0 || cols <= 0 || rows <= 0 {
		return
	}

	p.scale = math.Min(float64(cols)/float64(logical.X), float64(2*rows)/float64(logical.Y))
	w := int(float64(logical.X) * p.scale)
	h := int(float64(logical.Y) * p.scale / 2)
	p.area = core.NewRect((cols-w)/2, (rows-h)/2, w, h)
}

// Area returns the cells the canvas occupies; the rest is margin.
func (p *Presenter) Area() core.Rect {
	return p.area
}

// Glyph returns the logical pixel size of one terminal character.
func (p *Presenter) Glyph() core.Vec2i {
	if p.scale <= 0 {
		return raster.DefaultGlyph
	}
	return core.Vec2i{
		X: int(math.Ceil(1 / p.scale)),
		Y: int(math.Ceil(2 / p.scale)),
	}
}

// Screen returns the cell buffer written by Present.
func (p *Presenter) Screen() *core.Screen {
	return p.screen
}

// Present samples the canvas into the screen and overlays queued text.
func (p *Presenter) Present(c *core.Canvas, texts []raster.TextOp) {
	p.screen.Clear()
	if p.scale <= 0 {
		return
	}

	a := p.area
	for y := a.Y; y < a.Bottom(); y++ {
		cy := y - a.Y
		top := int(float64(2*cy) / p.scale)
		bottom := int(float64(2*cy+1) / p.scale)
		for x := a.X; x < a.Right(); x++ {
			sx := int(float64(x-a.X) / p.scale)
			p.screen.SetCell(x, y, core.Cell{
				Rune: halfBlock,
				Fg:   c.At(sx, top),
				Bg:   c.At(sx, bottom),
			})
		}
	}

	// Text anchored outside the canvas is not drawn into the margin.
	for _, t := range texts {
		col := a.X + int(float64(t.X)*p.scale)
		row := a.Y + int(float64(t.Y)*p.scale/2)
		if !a.Contains(col, row) {
			continue
		}
		p.screen.DrawText(col, row, t.Text, core.ColorWhite)
	}
}
