// Package termview previews hero frames in a terminal. Each cell shows two
// vertically stacked pixels using the upper half block, the top pixel as the
// foreground color and the bottom one as the background.
package termview

import (
	"image"

	"github.com/gdamore/tcell/v2"

	"github.com/Dany0257/3dcoaching/herocanvas"
)

// HalfBlock is the rune drawn in every cell.
const HalfBlock = '▀'

// PixelSize returns the frame size that maps one pixel column per cell and two
// pixel rows per cell for a screen of cols x rows cells.
func PixelSize(cols, rows int) (w, h int) {
	return max(cols, 0), max(rows, 0) * 2
}

// Blit draws img onto screen starting at the top-left cell, compositing
// translucent pixels over bg. Cells outside img are filled with bg. It does
// not call Show.
func Blit(screen tcell.Screen, img *image.RGBA, bg herocanvas.Color) {
	cols, rows := screen.Size()
	base := bg.NRGBA()
	bgColor := tcell.NewRGBColor(int32(base.R), int32(base.G), int32(base.B))
	b := img.Bounds()

	for y := range rows {
		for x := range cols {
			top := pixel(img, b.Min.X+x, b.Min.Y+2*y, base.R, base.G, base.B, bgColor)
			bottom := pixel(img, b.Min.X+x, b.Min.Y+2*y+1, base.R, base.G, base.B, bgColor)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			screen.SetContent(x, y, HalfBlock, nil, style)
		}
	}
}

// pixel returns the color of img at (x, y) composited over the background, or
// the background itself outside img.
func pixel(img *image.RGBA, x, y int, br, bg, bb uint8, fallback tcell.Color) tcell.Color {
	if !(image.Point{X: x, Y: y}).In(img.Rect) {
		return fallback
	}
	c := img.RGBAAt(x, y)
	inv := 255 - int32(c.A)
	r := int32(c.R) + int32(br)*inv/255
	g := int32(c.G) + int32(bg)*inv/255
	b := int32(c.B) + int32(bb)*inv/255
	return tcell.NewRGBColor(min(r, 255), min(g, 255), min(b, 255))
}
