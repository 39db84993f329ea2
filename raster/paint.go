package raster

import (
	"image"
	"image/color"

	"github.com/Dany0257/3dcoaching/herocanvas"
)

// source returns the image to composite for paint and the source point that
// aligns it with r.Min. Gradient images are addressed in device coordinates,
// so their source point is r.Min itself.
func source(paint herocanvas.Paint, inverse herocanvas.Matrix, alpha float64, r image.Rectangle) (image.Image, image.Point) {
	switch p := paint.(type) {
	case herocanvas.Color:
		c := p.Scale(alpha)
		if c.A <= 0 {
			return nil, image.Point{}
		}
		return image.NewUniform(c.NRGBA()), image.Point{}
	case *herocanvas.Gradient:
		if p == nil || len(p.Stops) == 0 {
			return nil, image.Point{}
		}
		return &gradientImage{g: p, inverse: inverse, alpha: alpha}, r.Min
	default:
		return nil, image.Point{}
	}
}

// gradientImage evaluates a gradient at pixel centers in device space.
type gradientImage struct {
	g       *herocanvas.Gradient
	inverse herocanvas.Matrix
	alpha   float64
}

func (gi *gradientImage) ColorModel() color.Model {
	return color.NRGBAModel
}

func (gi *gradientImage) Bounds() image.Rectangle {
	return image.Rectangle{Min: image.Point{X: -1e9, Y: -1e9}, Max: image.Point{X: 1e9, Y: 1e9}}
}

func (gi *gradientImage) At(x, y int) color.Color {
	ux, uy := gi.inverse.Apply(float64(x)+0.5, float64(y)+0.5)
	return gi.g.At(ux, uy).Scale(gi.alpha).NRGBA()
}
