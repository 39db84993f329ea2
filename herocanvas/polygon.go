package herocanvas

import (
	"math"
	"math/rand/v2"
)

// DefaultPolygonMargin is how far past the surface edge a polygon may drift
// before it is reinitialized.
const DefaultPolygonMargin = 100

var (
	polygonSize    = Range{20, 90}
	polygonSpin    = Range{-0.005, 0.005}
	polygonOpacity = Range{0.03, 0.12}
	polygonDrift   = Range{-0.15, 0.15}
	polygonSides   = [...]int{3, 4, 6}
)

const polygonAccentChance = 0.5

// DriftingPolygon is a faint outlined triangle, square or hexagon that drifts
// and spins slowly behind everything else.
type DriftingPolygon struct {
	X, Y    float64
	Size    float64
	Angle   float64
	Spin    float64
	Opacity float64
	Sides   int
	VX, VY  float64
	Variant Variant
	// Margin pads the surface bounds for the out-of-bounds check.
	Margin float64
}

func (d *DriftingPolygon) Reset(rng *rand.Rand, w, h float64, _ bool) {
	if d.Margin <= 0 {
		d.Margin = DefaultPolygonMargin
	}
	d.X = rng.Float64() * w
	d.Y = rng.Float64() * h
	d.Size = polygonSize.Rand(rng)
	d.Angle = rng.Float64() * 2 * math.Pi
	d.Spin = polygonSpin.Rand(rng)
	d.Opacity = polygonOpacity.Rand(rng)
	d.Sides = polygonSides[rng.IntN(len(polygonSides))]
	d.VX = polygonDrift.Rand(rng)
	d.VY = polygonDrift.Rand(rng)
	d.Variant = randomVariant(rng, polygonAccentChance)
}

func (d *DriftingPolygon) Update(rng *rand.Rand, w, h float64) bool {
	d.X += d.VX
	d.Y += d.VY
	d.Angle += d.Spin
	if d.Outside(w, h) {
		d.Reset(rng, w, h, false)
		return true
	}
	return false
}

// Outside reports whether the polygon's center lies beyond the padded bounds.
func (d *DriftingPolygon) Outside(w, h float64) bool {
	m := d.Margin
	return d.X < -m || d.X > w+m || d.Y < -m || d.Y > h+m
}

func (d *DriftingPolygon) Draw(ctx Context) {
	c := d.Variant.Color()
	ctx.Save()
	ctx.Translate(d.X, d.Y)
	ctx.Rotate(d.Angle)
	ctx.SetGlobalAlpha(d.Opacity)
	ctx.BeginPath()
	PolygonPath(ctx, 0, 0, d.Size/2, d.Sides, 0)
	ctx.Fill(c.WithAlpha(0.35))
	ctx.Stroke(c, 1)
	ctx.Restore()
}
