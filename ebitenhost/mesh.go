package ebitenhost

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Dany0257/3dcoaching/herocanvas"
)

const (
	// gradientMaxEdge is the longest triangle edge, in pixels, a gradient
	// fill is subdivided down to before per-vertex colors take over.
	gradientMaxEdge = 32
	// gradientMaxDepth bounds subdivision of huge triangles.
	gradientMaxDepth = 6

	// maxBatchVerts keeps indices within uint16.
	maxBatchVerts = math.MaxUint16
)

// mesh accumulates triangles for one DrawTriangles call.
type mesh struct {
	verts []ebiten.Vertex
	inds  []uint16
}

func (m *mesh) reset() {
	m.verts = m.verts[:0]
	m.inds = m.inds[:0]
}

func (m *mesh) empty() bool {
	return len(m.inds) == 0
}

// room reports whether n more vertices fit in the batch.
func (m *mesh) room(n int) bool {
	return len(m.verts)+n <= maxBatchVerts
}

func vertex(p herocanvas.Vec2, c herocanvas.Color) ebiten.Vertex {
	r, g, b, a := c.Premultiplied()
	return ebiten.Vertex{
		DstX: float32(p.X), DstY: float32(p.Y),
		SrcX: 0.5, SrcY: 0.5,
		ColorR: r, ColorG: g, ColorB: b, ColorA: a,
	}
}

// addFan appends poly as a triangle fan around its first point in a single
// color. Counter-clockwise polygons are emitted with flipped triangles so
// every polygon of a fill winds the same way under the nonzero rule.
// N points produce N vertices and 3*(N-2) indices.
func (m *mesh) addFan(poly []herocanvas.Vec2, c herocanvas.Color) {
	n := len(poly)
	if n < 3 {
		return
	}
	flip := herocanvas.SignedArea(poly) < 0
	base := uint16(len(m.verts))
	for _, p := range poly {
		m.verts = append(m.verts, vertex(p, c))
	}
	for i := 1; i < n-1; i++ {
		a, b := uint16(i), uint16(i+1)
		if flip {
			a, b = b, a
		}
		m.inds = append(m.inds, base, base+a, base+b)
	}
}

// gradientShader evaluates a gradient at device-space points.
type gradientShader struct {
	g       *herocanvas.Gradient
	inverse herocanvas.Matrix
	alpha   float64
}

func (s *gradientShader) at(p herocanvas.Vec2) herocanvas.Color {
	x, y := s.inverse.Apply(p.X, p.Y)
	return s.g.At(x, y).Scale(s.alpha)
}

// addGradientFan fans poly like addFan and then subdivides each triangle
// until its edges are short enough for linear vertex-color interpolation to
// track the gradient. Triangles that do not fit in the batch are passed to
// flush, which must draw and reset m.
func (m *mesh) addGradientFan(poly []herocanvas.Vec2, s *gradientShader, flush func()) {
	n := len(poly)
	if n < 3 {
		return
	}
	flip := herocanvas.SignedArea(poly) < 0
	for i := 1; i < n-1; i++ {
		b, c := poly[i], poly[i+1]
		if flip {
			b, c = c, b
		}
		m.subdivide(poly[0], b, c, 0, s, flush)
	}
}

func (m *mesh) subdivide(a, b, c herocanvas.Vec2, depth int, s *gradientShader, flush func()) {
	if depth < gradientMaxDepth && longestEdge(a, b, c) > gradientMaxEdge {
		ab := mid(a, b)
		bc := mid(b, c)
		ca := mid(c, a)
		m.subdivide(a, ab, ca, depth+1, s, flush)
		m.subdivide(ab, b, bc, depth+1, s, flush)
		m.subdivide(ca, bc, c, depth+1, s, flush)
		m.subdivide(ab, bc, ca, depth+1, s, flush)
		return
	}
	if !m.room(3) {
		flush()
	}
	base := uint16(len(m.verts))
	m.verts = append(m.verts, vertex(a, s.at(a)), vertex(b, s.at(b)), vertex(c, s.at(c)))
	m.inds = append(m.inds, base, base+1, base+2)
}

func mid(a, b herocanvas.Vec2) herocanvas.Vec2 {
	return herocanvas.Vec2{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

func longestEdge(a, b, c herocanvas.Vec2) float64 {
	return max(
		math.Hypot(b.X-a.X, b.Y-a.Y),
		math.Hypot(c.X-b.X, c.Y-b.Y),
		math.Hypot(a.X-c.X, a.Y-c.Y),
	)
}
