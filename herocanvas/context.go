package herocanvas

import (
	"math"
	"sort"
)

// Context is the immediate-mode 2D drawing API the engine renders through.
// It mirrors the subset of an HTML canvas 2D context the hero needs: a
// transform and alpha state stack, path construction, and fills/strokes with
// solid or gradient paint.
//
// Path coordinates are transformed by the current matrix when they are added,
// so changing the transform mid-path affects only later points.
type Context interface {
	// Reset drops the state stack and current path and restores the identity
	// transform and full alpha.
	Reset()
	// Clear erases the whole surface to transparent.
	Clear()

	Save()
	Restore()
	Translate(x, y float64)
	Rotate(angle float64)
	Scale(sx, sy float64)
	SetGlobalAlpha(a float64)
	GlobalAlpha() float64

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Arc appends a circular arc from start to end (radians, clockwise in
	// screen space when end > start), connected to the current point.
	Arc(cx, cy, r, start, end float64)
	// Ellipse appends a closed axis-aligned ellipse as its own subpath.
	Ellipse(cx, cy, rx, ry float64)
	Rect(x, y, w, h float64)
	RoundRect(x, y, w, h, r float64)
	ClosePath()

	Fill(p Paint)
	Stroke(p Paint, width float64)
	// FillRect fills a rectangle without touching the current path.
	FillRect(x, y, w, h float64, p Paint)
}

// Canvas is a drawing surface handle: something with a resizable backing
// store and a Context that draws into it.
type Canvas interface {
	SetSize(w, h int)
	Context() Context
}

// Paint is either a solid Color or a *Gradient.
type Paint interface {
	isPaint()
}

func (Color) isPaint()     {}
func (*Gradient) isPaint() {}

// GradientKind distinguishes linear and radial gradients.
type GradientKind uint8

const (
	GradientLinear GradientKind = iota // along the segment (X0,Y0)-(X1,Y1)
	GradientRadial                     // from radius R0 to R1 around (X0,Y0)
)

// GradientStop is a color at an offset in [0, 1] along a gradient.
type GradientStop struct {
	Offset float64
	Color  Color
}

// Gradient is a multi-stop color ramp evaluated in user space (the transform
// current at fill time).
type Gradient struct {
	Kind   GradientKind
	X0, Y0 float64
	X1, Y1 float64
	R0, R1 float64
	Stops  []GradientStop
}

// NewLinearGradient creates a gradient running from (x0, y0) to (x1, y1).
func NewLinearGradient(x0, y0, x1, y1 float64) *Gradient {
	return &Gradient{Kind: GradientLinear, X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// NewRadialGradient creates a gradient centered on (cx, cy) running from
// radius r0 (offset 0) to r1 (offset 1).
func NewRadialGradient(cx, cy, r0, r1 float64) *Gradient {
	return &Gradient{Kind: GradientRadial, X0: cx, Y0: cy, R0: r0, R1: r1}
}

// AddStop inserts a color stop, keeping stops ordered by offset, and returns g
// for chaining.
func (g *Gradient) AddStop(offset float64, c Color) *Gradient {
	offset = clamp01(offset)
	i := sort.Search(len(g.Stops), func(i int) bool { return g.Stops[i].Offset > offset })
	g.Stops = append(g.Stops, GradientStop{})
	copy(g.Stops[i+1:], g.Stops[i:])
	g.Stops[i] = GradientStop{Offset: offset, Color: c}
	return g
}

// Offset returns the gradient parameter in [0, 1] for the user-space point.
func (g *Gradient) Offset(x, y float64) float64 {
	switch g.Kind {
	case GradientRadial:
		span := g.R1 - g.R0
		if span <= 0 {
			return 1
		}
		d := math.Hypot(x-g.X0, y-g.Y0)
		return clamp01((d - g.R0) / span)
	default:
		dx := g.X1 - g.X0
		dy := g.Y1 - g.Y0
		ln2 := dx*dx + dy*dy
		if ln2 == 0 {
			return 0
		}
		return clamp01(((x-g.X0)*dx + (y-g.Y0)*dy) / ln2)
	}
}

// ColorAt interpolates the stop colors at offset t.
func (g *Gradient) ColorAt(t float64) Color {
	n := len(g.Stops)
	if n == 0 {
		return Transparent
	}
	if t <= g.Stops[0].Offset {
		return g.Stops[0].Color
	}
	if t >= g.Stops[n-1].Offset {
		return g.Stops[n-1].Color
	}
	for i := 1; i < n; i++ {
		b := g.Stops[i]
		if t > b.Offset {
			continue
		}
		a := g.Stops[i-1]
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.Color
		}
		f := (t - a.Offset) / span
		return Color{
			R: lerp(a.Color.R, b.Color.R, f),
			G: lerp(a.Color.G, b.Color.G, f),
			B: lerp(a.Color.B, b.Color.B, f),
			A: lerp(a.Color.A, b.Color.A, f),
		}
	}
	return g.Stops[n-1].Color
}

// At evaluates the gradient at a user-space point.
func (g *Gradient) At(x, y float64) Color {
	return g.ColorAt(g.Offset(x, y))
}

// Backend is implemented by drawing surfaces that can fill device-space
// polygons. Painter does all path flattening and stroking and hands the
// result to a Backend.
type Backend interface {
	Clear()
	// FillPolygons fills every polygon with paint at the given global alpha.
	// Polygons are in device space and may overlap; inverse maps device space
	// back to the user space gradients are defined in. The slices are only
	// valid for the duration of the call.
	FillPolygons(polys [][]Vec2, paint Paint, inverse Matrix, alpha float64)
}

// PolygonPath appends a closed regular polygon with the given circumradius as
// a new subpath.
func PolygonPath(ctx Context, cx, cy, r float64, sides int, rotation float64) {
	if sides < 3 {
		return
	}
	for i := range sides {
		a := rotation + float64(i)*2*math.Pi/float64(sides)
		x := cx + math.Cos(a)*r
		y := cy + math.Sin(a)*r
		if i == 0 {
			ctx.MoveTo(x, y)
		} else {
			ctx.LineTo(x, y)
		}
	}
	ctx.ClosePath()
}

// Line strokes a single segment as its own path.
func Line(ctx Context, x0, y0, x1, y1 float64, p Paint, width float64) {
	ctx.BeginPath()
	ctx.MoveTo(x0, y0)
	ctx.LineTo(x1, y1)
	ctx.Stroke(p, width)
}

// Circle fills a circle as its own path.
func Circle(ctx Context, cx, cy, r float64, p Paint) {
	if r <= 0 {
		return
	}
	ctx.BeginPath()
	ctx.Ellipse(cx, cy, r, r)
	ctx.Fill(p)
}
