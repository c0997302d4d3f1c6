package core

import (
	"fmt"
	"image/color"
)

// Color is an opaque 24-bit RGB color used by screen cells and the canvas.
type Color struct {
	R, G, B uint8
}

// Predefined colors.
var (
	ColorBlack    = Color{0, 0, 0}
	ColorWhite    = Color{255, 255, 255}
	ColorBackdrop = Color{20, 20, 20}
)

// RGBA converts the color to a fully opaque color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

// Hex returns the color as "#rrggbb", the form lipgloss accepts.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// FromColor converts any color.Color, dropping alpha.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}
