package sprites

import (
	"image"
	"image/color"
)

// BuiltinCellSize is the cell size of the built-in sheet.
const BuiltinCellSize = 16

type glyph struct {
	color color.RGBA
	rows  [BuiltinCellSize]string
}

// Row 0 of the built-in sheet: ship, peach, purple, blue, pink.
var builtinGlyphs = []glyph{
	{
		color: color.RGBA{R: 90, G: 230, B: 110, A: 255},
		rows: [BuiltinCellSize]string{
			"................",
			"................",
			"................",
			"................",
			".......XX.......",
			".......XX.......",
			"......XXXX......",
			"......XXXX......",
			"..XXXXXXXXXXXX..",
			".XXXXXXXXXXXXXX.",
			".XXXXXXXXXXXXXX.",
			".XXXXXXXXXXXXXX.",
			".XXXXXXXXXXXXXX.",
			"................",
			"................",
			"................",
		},
	},
	{
		color: color.RGBA{R: 255, G: 190, B: 150, A: 255},
		rows: [BuiltinCellSize]string{
			"................",
			"................",
			"................",
			"................",
			".......XX.......",
			"......XXXX......",
			".....XXXXXX.....",
			"....XX.XX.XX....",
			"....XXXXXXXX....",
			"......X..X......",
			".....X.XX.X.....",
			"....X.X..X.X....",
			"................",
			"................",
			"................",
			"................",
		},
	},
	{
		color: color.RGBA{R: 170, G: 110, B: 230, A: 255},
		rows: [BuiltinCellSize]string{
			"................",
			"................",
			"................",
			"................",
			"....X......X....",
			".....X....X.....",
			"....XXXXXXXX....",
			"...XX.XXXX.XX...",
			"..XXXXXXXXXXXX..",
			"..X.XXXXXXXX.X..",
			"..X.X......X.X..",
			".....XX..XX.....",
			"................",
			"................",
			"................",
			"................",
		},
	},
	{
		color: color.RGBA{R: 90, G: 160, B: 255, A: 255},
		rows: [BuiltinCellSize]string{
			"................",
			"................",
			"................",
			"................",
			"......XXXX......",
			"...XXXXXXXXXX...",
			"..XXXXXXXXXXXX..",
			"..XXX..XX..XXX..",
			"..XXXXXXXXXXXX..",
			".....XX..XX.....",
			"....XX.XX.XX....",
			"..XX........XX..",
			"................",
			"................",
			"................",
			"................",
		},
	},
	{
		color: color.RGBA{R: 255, G: 120, B: 200, A: 255},
		rows: [BuiltinCellSize]string{
			"................",
			"................",
			"................",
			"................",
			".....XXXXXX.....",
			"...XXXXXXXXXX...",
			"..XX.XXXXXX.XX..",
			"..XXXXXXXXXXXX..",
			"....XX.XX.XX....",
			"...XX......XX...",
			"....XX....XX....",
			"................",
			"................",
			"................",
			"................",
			"................",
		},
	},
}

// Builtin returns the sheet compiled into the binary, used when no sprite
// sheet file is configured.
func Builtin() *Sheet {
	img := image.NewRGBA(image.Rect(0, 0, len(builtinGlyphs)*BuiltinCellSize, BuiltinCellSize))
	for i, g := range builtinGlyphs {
		ox := i * BuiltinCellSize
		for y, row := range g.rows {
			for x, ch := range row {
				if ch == 'X' {
					img.SetRGBA(ox+x, y, g.color)
				}
			}
		}
	}
	return &Sheet{img: img, cell: BuiltinCellSize}
}
