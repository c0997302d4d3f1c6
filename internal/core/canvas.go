package core

import (
	"image"
	"image/draw"
)

// Canvas is an off-screen pixel render target of fixed logical resolution.
// Frontends composite it onto the visible surface once per frame.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas allocates a canvas of the given logical size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Size returns the logical resolution of the canvas.
func (c *Canvas) Size() Vec2i {
	b := c.img.Bounds()
	return Vec2i{X: b.Dx(), Y: b.Dy()}
}

// Clear fills the whole canvas with a single color.
func (c *Canvas) Clear(col Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col.RGBA()), image.Point{}, draw.Src)
}

// Blit composites the src region of an image at dst, clipped to the canvas.
// Transparent source pixels leave the canvas untouched.
func (c *Canvas) Blit(src image.Image, srcRect image.Rectangle, dst image.Point) {
	r := image.Rectangle{Min: dst, Max: dst.Add(srcRect.Size())}
	draw.Draw(c.img, r, src, srcRect.Min, draw.Over)
}

// At returns the pixel color at (x, y), or black outside the canvas.
func (c *Canvas) At(x, y int) Color {
	if !(image.Point{X: x, Y: y}).In(c.img.Bounds()) {
		return ColorBlack
	}
	return FromColor(c.img.RGBAAt(x, y))
}

// Image exposes the backing image for frontends that upload it as a texture.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}
