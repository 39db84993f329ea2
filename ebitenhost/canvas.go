// Package ebitenhost runs the hero engine inside an Ebitengine window. Canvas
// draws herocanvas fills as antialiased triangle meshes into an offscreen
// image, and Game hosts the engine's frame loop on ebiten's update tick.
package ebitenhost

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Dany0257/3dcoaching/herocanvas"
)

var whitePixel *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white source image.
func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// Canvas is a herocanvas.Canvas backed by an offscreen *ebiten.Image.
type Canvas struct {
	img     *ebiten.Image
	w, h    int
	painter *herocanvas.Painter
	mesh    mesh
	op      ebiten.DrawTrianglesOptions
}

// NewCanvas creates a canvas of w x h pixels.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.painter = herocanvas.NewPainter(c)
	c.op.AntiAlias = true
	c.op.FillRule = ebiten.FillRuleNonZero
	c.op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	c.SetSize(w, h)
	return c
}

// SetSize replaces the backing image when the size changes. A zero-sized
// canvas has no image and ignores drawing.
func (c *Canvas) SetSize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	if w == c.w && h == c.h && (c.img != nil || w == 0 || h == 0) {
		return
	}
	if c.img != nil {
		c.img.Deallocate()
		c.img = nil
	}
	c.w, c.h = w, h
	if w > 0 && h > 0 {
		c.img = ebiten.NewImage(w, h)
	}
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() (w, h int) {
	return c.w, c.h
}

func (c *Canvas) Context() herocanvas.Context {
	return c.painter
}

// Image returns the backing image, or nil while the canvas is zero-sized.
func (c *Canvas) Image() *ebiten.Image {
	return c.img
}

func (c *Canvas) Clear() {
	if c.img != nil {
		c.img.Clear()
	}
}

// FillPolygons draws every polygon of one fill in as few DrawTriangles calls
// as the index range allows. The nonzero fill rule keeps overlapping
// polygons from blending twice.
func (c *Canvas) FillPolygons(polys [][]herocanvas.Vec2, paint herocanvas.Paint, inverse herocanvas.Matrix, alpha float64) {
	if c.img == nil || alpha <= 0 {
		return
	}
	c.mesh.reset()
	switch p := paint.(type) {
	case herocanvas.Color:
		col := p.Scale(alpha)
		if col.A <= 0 {
			return
		}
		for _, poly := range polys {
			if !c.mesh.room(len(poly)) {
				c.flush()
			}
			c.mesh.addFan(poly, col)
		}
	case *herocanvas.Gradient:
		if p == nil || len(p.Stops) == 0 {
			return
		}
		s := gradientShader{g: p, inverse: inverse, alpha: alpha}
		for _, poly := range polys {
			c.mesh.addGradientFan(poly, &s, c.flush)
		}
	default:
		return
	}
	c.flush()
}

func (c *Canvas) flush() {
	if c.mesh.empty() {
		return
	}
	c.img.DrawTriangles(c.mesh.verts, c.mesh.inds, ensureWhitePixel(), &c.op)
	c.mesh.reset()
}
