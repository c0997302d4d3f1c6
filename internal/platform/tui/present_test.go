package tui

import (
	"image/color"
	"strings"
	"testing"

	"github.com/vovakirdan/invaders/internal/core"
	"github.com/vovakirdan/invaders/internal/platform/raster"
)

var (
	red   = core.Color{R: 255}
	green = core.Color{G: 255}
	blue  = core.Color{B: 255}
)

// newStripedCanvas returns a 2x4 canvas with distinct colors in column 0.
func newStripedCanvas() *core.Canvas {
	c := core.NewCanvas(2, 4)
	c.Clear(core.ColorBackdrop)
	img := c.Image()
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(0, 1, color.RGBA{G: 255, A: 255})
	img.SetRGBA(0, 3, color.RGBA{B: 255, A: 255})
	return c
}

func TestPresenterHalfBlocks(t *testing.T) {
	p := NewPresenter(2, 2, core.Vec2i{X: 2, Y: 4})
	p.Present(newStripedCanvas(), nil)
	s := p.Screen()

	tests := []struct {
		x, y   int
		fg, bg core.Color
	}{
		{0, 0, red, green},
		{0, 1, core.ColorBackdrop, blue},
		{1, 0, core.ColorBackdrop, core.ColorBackdrop},
	}

	for _, tt := range tests {
		cell := s.GetCell(tt.x, tt.y)
		if cell.Rune != halfBlock || cell.Fg != tt.fg || cell.Bg != tt.bg {
			t.Errorf("GetCell(%d, %d) = %+v, expected half block %+v on %+v", tt.x, tt.y, cell, tt.fg, tt.bg)
		}
	}
}

func TestPresenterLetterbox(t *testing.T) {
	p := NewPresenter(4, 2, core.Vec2i{X: 2, Y: 4})
	p.Present(newStripedCanvas(), nil)
	s := p.Screen()

	if got := p.Area(); got != core.NewRect(1, 0, 2, 2) {
		t.Errorf("Area() = %+v, expected 2x2 cells at column 1", got)
	}
	if got := s.GetCell(0, 0); got.Rune != ' ' {
		t.Errorf("GetCell(0, 0) = %+v, expected blank margin", got)
	}
	if cell := s.GetCell(1, 0); cell.Fg != red || cell.Bg != green {
		t.Errorf("GetCell(1, 0) = %+v, expected canvas origin", cell)
	}
}

func TestPresenterText(t *testing.T) {
	p := NewPresenter(2, 2, core.Vec2i{X: 2, Y: 4})
	p.Present(newStripedCanvas(), []raster.TextOp{{X: 0, Y: 2, Text: "A"}})

	cell := p.Screen().GetCell(0, 1)
	if cell.Rune != 'A' || cell.Fg != core.ColorWhite || cell.Bg != blue {
		t.Errorf("GetCell(0, 1) = %+v, expected white 'A' on the canvas color", cell)
	}
}

func TestPresenterGlyph(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
		want       core.Vec2i
	}{
		{"one to one", 2, 2, core.Vec2i{X: 1, Y: 2}},
		{"downscaled", 1, 1, core.Vec2i{X: 2, Y: 4}},
		{"empty screen", 0, 0, raster.DefaultGlyph},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPresenter(tt.cols, tt.rows, core.Vec2i{X: 2, Y: 4})
			if got := p.Glyph(); got != tt.want {
				t.Errorf("Glyph() = %+v, expected %+v", got, tt.want)
			}
		})
	}
}

func TestPresenterTextOutsideCanvas(t *testing.T) {
	p := NewPresenter(4, 2, core.Vec2i{X: 2, Y: 4})
	p.Present(newStripedCanvas(), []raster.TextOp{{X: 3, Y: 0, Text: "Z"}})

	if got := p.Screen().String(); strings.ContainsRune(got, 'Z') {
		t.Errorf("text anchored past the canvas should be dropped, screen = %q", got)
	}
}
