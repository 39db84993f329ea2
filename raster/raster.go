// Package raster draws hero frames in software into an *image.RGBA, using
// golang.org/x/image/vector for anti-aliased polygon coverage. It needs no
// GPU or window, which makes it the backend for snapshots, the terminal
// preview and pixel-level tests.
package raster

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/Dany0257/3dcoaching/herocanvas"
)

// Canvas is a herocanvas.Canvas backed by an RGBA image.
type Canvas struct {
	img     *image.RGBA
	painter *herocanvas.Painter

	z       *vector.Rasterizer
	mask    image.Alpha
	maskBuf []uint8

	// Clipped polygons of the fill in progress, stored back to back.
	flat  []herocanvas.Vec2
	lens  []int
	clipA []herocanvas.Vec2
	clipB []herocanvas.Vec2
}

// New creates a canvas of w x h pixels.
func New(w, h int) *Canvas {
	c := &Canvas{z: vector.NewRasterizer(1, 1)}
	c.painter = herocanvas.NewPainter(c)
	c.SetSize(w, h)
	return c
}

// SetSize reallocates the backing image. The new image is transparent.
func (c *Canvas) SetSize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	if c.img != nil && c.img.Rect.Dx() == w && c.img.Rect.Dy() == h {
		return
	}
	c.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

// Context returns the drawing context for this canvas.
func (c *Canvas) Context() herocanvas.Context {
	return c.painter
}

// Image returns the backing image. The pointer changes after SetSize.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Clear erases the image to transparent.
func (c *Canvas) Clear() {
	clear(c.img.Pix)
}

// FillPolygons rasterizes polys into a coverage mask sized to their clipped
// bounding box and composites paint through it.
func (c *Canvas) FillPolygons(polys [][]herocanvas.Vec2, paint herocanvas.Paint, inverse herocanvas.Matrix, alpha float64) {
	w, h := c.img.Rect.Dx(), c.img.Rect.Dy()
	if w == 0 || h == 0 || alpha <= 0 {
		return
	}

	// Clip every polygon to the image and orient it consistently so
	// overlapping polygons accumulate coverage instead of cancelling.
	c.flat = c.flat[:0]
	c.lens = c.lens[:0]
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, poly := range polys {
		out := c.clip(poly, float64(w), float64(h))
		if len(out) < 3 {
			continue
		}
		if herocanvas.SignedArea(out) < 0 {
			reverse(out)
		}
		for _, p := range out {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
		c.flat = append(c.flat, out...)
		c.lens = append(c.lens, len(out))
	}
	if len(c.lens) == 0 {
		return
	}
	r := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(c.img.Rect)
	if r.Empty() {
		return
	}

	src, sp := source(paint, inverse, alpha, r)
	if src == nil {
		return
	}
	c.rasterize(r)
	draw.DrawMask(c.img, r, src, sp, &c.mask, image.Point{}, draw.Over)
}

// rasterize renders the coverage of the pending polygons within r into
// c.mask, whose origin corresponds to r.Min.
func (c *Canvas) rasterize(r image.Rectangle) {
	mw, mh := r.Dx(), r.Dy()
	if cap(c.maskBuf) < mw*mh {
		c.maskBuf = make([]uint8, mw*mh)
	}
	c.maskBuf = c.maskBuf[:mw*mh]
	clear(c.maskBuf)
	c.mask = image.Alpha{Pix: c.maskBuf, Stride: mw, Rect: image.Rect(0, 0, mw, mh)}

	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	c.z.Reset(mw, mh)
	at := 0
	for _, n := range c.lens {
		pts := c.flat[at : at+n]
		at += n
		c.z.MoveTo(float32(pts[0].X-ox), float32(pts[0].Y-oy))
		for _, p := range pts[1:] {
			c.z.LineTo(float32(p.X-ox), float32(p.Y-oy))
		}
		c.z.ClosePath()
	}
	c.z.Draw(&c.mask, c.mask.Rect, image.Opaque, image.Point{})
}

// clip clips poly against the rectangle [0, w] x [0, h] with the
// Sutherland-Hodgman algorithm. The result aliases an internal buffer that is
// reused by the next call.
func (c *Canvas) clip(poly []herocanvas.Vec2, w, h float64) []herocanvas.Vec2 {
	in := append(c.clipA[:0], poly...)
	out := c.clipB[:0]
	edges := [4]struct {
		inside func(p herocanvas.Vec2) bool
		cross  func(a, b herocanvas.Vec2) herocanvas.Vec2
	}{
		{func(p herocanvas.Vec2) bool { return p.X >= 0 }, func(a, b herocanvas.Vec2) herocanvas.Vec2 { return crossX(a, b, 0) }},
		{func(p herocanvas.Vec2) bool { return p.X <= w }, func(a, b herocanvas.Vec2) herocanvas.Vec2 { return crossX(a, b, w) }},
		{func(p herocanvas.Vec2) bool { return p.Y >= 0 }, func(a, b herocanvas.Vec2) herocanvas.Vec2 { return crossY(a, b, 0) }},
		{func(p herocanvas.Vec2) bool { return p.Y <= h }, func(a, b herocanvas.Vec2) herocanvas.Vec2 { return crossY(a, b, h) }},
	}
	for _, e := range edges {
		out = out[:0]
		n := len(in)
		for i := range n {
			cur := in[i]
			prev := in[(i+n-1)%n]
			curIn, prevIn := e.inside(cur), e.inside(prev)
			switch {
			case curIn && prevIn:
				out = append(out, cur)
			case curIn && !prevIn:
				out = append(out, e.cross(prev, cur), cur)
			case !curIn && prevIn:
				out = append(out, e.cross(prev, cur))
			}
		}
		in, out = out, in
		if len(in) < 3 {
			break
		}
	}
	c.clipA, c.clipB = in[:0], out[:0]
	return in
}

// crossX returns the intersection of segment ab with the vertical line x.
func crossX(a, b herocanvas.Vec2, x float64) herocanvas.Vec2 {
	t := (x - a.X) / (b.X - a.X)
	return herocanvas.Vec2{X: x, Y: a.Y + (b.Y-a.Y)*t}
}

// crossY returns the intersection of segment ab with the horizontal line y.
func crossY(a, b herocanvas.Vec2, y float64) herocanvas.Vec2 {
	t := (y - a.Y) / (b.Y - a.Y)
	return herocanvas.Vec2{X: a.X + (b.X-a.X)*t, Y: y}
}

func reverse(pts []herocanvas.Vec2) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}
