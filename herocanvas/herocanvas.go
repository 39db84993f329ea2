package herocanvas

import (
	"image/color"
	"math/rand/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Backends premultiply at submission time.
type Color struct {
	R, G, B, A float64
}

// Transparent is the zero color.
var Transparent = Color{}

// WithAlpha returns c with its alpha replaced by a.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Scale returns c with its alpha multiplied by k.
func (c Color) Scale(k float64) Color {
	c.A *= k
	return c
}

// NRGBA converts c to an 8-bit straight-alpha color, clamping each component.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: unit8(c.R),
		G: unit8(c.G),
		B: unit8(c.B),
		A: unit8(c.A),
	}
}

// Premultiplied returns the color components multiplied by alpha, as expected
// by GPU vertex colors.
func (c Color) Premultiplied() (r, g, b, a float32) {
	a64 := clamp01(c.A)
	return float32(clamp01(c.R) * a64), float32(clamp01(c.G) * a64), float32(clamp01(c.B) * a64), float32(a64)
}

func unit8(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

// Vec2 is a 2D vector used for positions and offsets throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Range is a general-purpose min/max range used to randomize element
// parameters on reinitialization.
type Range struct {
	Min, Max float64
}

// Rand returns a random float64 in [Min, Max] drawn from rng.
func (r Range) Rand(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Variant selects one of the two element color families.
type Variant uint8

const (
	VariantNeutral Variant = iota // soft ivory
	VariantAccent                 // gold
)

// Color returns the base color of the variant.
func (v Variant) Color() Color {
	if v == VariantAccent {
		return PaletteGold
	}
	return PaletteIvory
}

// randomVariant returns VariantAccent with probability p.
func randomVariant(rng *rand.Rand, p float64) Variant {
	if rng.Float64() < p {
		return VariantAccent
	}
	return VariantNeutral
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// SignedArea returns the shoelace area of the closed polygon pts. It is
// positive when the points run clockwise on screen (Y down).
func SignedArea(pts []Vec2) float64 {
	var a float64
	n := len(pts)
	for i := range n {
		p, q := pts[i], pts[(i+1)%n]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}
