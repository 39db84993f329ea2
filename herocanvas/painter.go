package herocanvas

import "math"

// paintState is the portion of Painter saved by Save and restored by Restore.
type paintState struct {
	m     Matrix
	alpha float64
}

// subpath indexes a run of points in Painter.pts. The run ends where the next
// subpath starts (or at len(pts) for the last one).
type subpath struct {
	start  int
	closed bool
}

// Painter implements Context on top of a Backend. It flattens arcs and
// rounded corners into polylines in device space and turns strokes into
// quads, so backends only ever fill polygons.
//
// Buffers are reused between calls; steady-state drawing does not allocate.
type Painter struct {
	backend Backend
	state   paintState
	stack   []paintState

	pts  []Vec2
	subs []subpath

	polys [][]Vec2
	quads []Vec2
}

// NewPainter creates a Painter drawing into b.
func NewPainter(b Backend) *Painter {
	return &Painter{
		backend: b,
		state:   paintState{m: Identity, alpha: 1},
		pts:     make([]Vec2, 0, 256),
		subs:    make([]subpath, 0, 16),
	}
}

// Matrix returns the current transform.
func (p *Painter) Matrix() Matrix {
	return p.state.m
}

func (p *Painter) Reset() {
	p.state = paintState{m: Identity, alpha: 1}
	p.stack = p.stack[:0]
	p.BeginPath()
}

func (p *Painter) Clear() {
	p.backend.Clear()
}

func (p *Painter) Save() {
	p.stack = append(p.stack, p.state)
}

// Restore pops the last saved state. Unbalanced calls are ignored.
func (p *Painter) Restore() {
	n := len(p.stack)
	if n == 0 {
		return
	}
	p.state = p.stack[n-1]
	p.stack = p.stack[:n-1]
}

func (p *Painter) Translate(x, y float64) {
	p.state.m = p.state.m.Translate(x, y)
}

func (p *Painter) Rotate(angle float64) {
	p.state.m = p.state.m.Rotate(angle)
}

func (p *Painter) Scale(sx, sy float64) {
	p.state.m = p.state.m.Scale(sx, sy)
}

// SetGlobalAlpha sets the alpha applied to every subsequent fill and stroke.
// Values are clamped to [0, 1]; NaN is treated as 0.
func (p *Painter) SetGlobalAlpha(a float64) {
	if math.IsNaN(a) {
		a = 0
	}
	p.state.alpha = clamp01(a)
}

func (p *Painter) GlobalAlpha() float64 {
	return p.state.alpha
}

func (p *Painter) BeginPath() {
	p.pts = p.pts[:0]
	p.subs = p.subs[:0]
}

func (p *Painter) MoveTo(x, y float64) {
	p.subs = append(p.subs, subpath{start: len(p.pts)})
	p.pts = append(p.pts, p.device(x, y))
}

func (p *Painter) LineTo(x, y float64) {
	if len(p.subs) == 0 {
		p.MoveTo(x, y)
		return
	}
	last := &p.subs[len(p.subs)-1]
	if last.closed {
		// A closed subpath is finished; continue from its first point.
		first := p.pts[last.start]
		p.subs = append(p.subs, subpath{start: len(p.pts)})
		p.pts = append(p.pts, first)
	}
	p.pts = append(p.pts, p.device(x, y))
}

func (p *Painter) ClosePath() {
	if len(p.subs) == 0 {
		return
	}
	p.subs[len(p.subs)-1].closed = true
}

func (p *Painter) Arc(cx, cy, r, start, end float64) {
	if r <= 0 {
		return
	}
	n := p.arcSegments(r, math.Abs(end-start))
	for i := 0; i <= n; i++ {
		a := start + (end-start)*float64(i)/float64(n)
		x := cx + math.Cos(a)*r
		y := cy + math.Sin(a)*r
		if i == 0 && (len(p.subs) == 0 || p.subs[len(p.subs)-1].closed) {
			p.MoveTo(x, y)
			continue
		}
		p.LineTo(x, y)
	}
}

func (p *Painter) Ellipse(cx, cy, rx, ry float64) {
	if rx <= 0 || ry <= 0 {
		return
	}
	n := p.arcSegments(math.Max(rx, ry), 2*math.Pi)
	p.subs = append(p.subs, subpath{start: len(p.pts), closed: true})
	for i := range n {
		a := 2 * math.Pi * float64(i) / float64(n)
		p.pts = append(p.pts, p.device(cx+math.Cos(a)*rx, cy+math.Sin(a)*ry))
	}
}

func (p *Painter) Rect(x, y, w, h float64) {
	p.subs = append(p.subs, subpath{start: len(p.pts), closed: true})
	p.pts = append(p.pts,
		p.device(x, y),
		p.device(x+w, y),
		p.device(x+w, y+h),
		p.device(x, y+h),
	)
}

// roundRectCornerSegments is the number of segments per rounded corner.
const roundRectCornerSegments = 6

func (p *Painter) RoundRect(x, y, w, h, r float64) {
	r = math.Min(r, math.Min(math.Abs(w), math.Abs(h))/2)
	if r <= 0 {
		p.Rect(x, y, w, h)
		return
	}
	p.subs = append(p.subs, subpath{start: len(p.pts), closed: true})
	corners := [4]struct{ cx, cy, a0 float64 }{
		{x + w - r, y + r, -math.Pi / 2},
		{x + w - r, y + h - r, 0},
		{x + r, y + h - r, math.Pi / 2},
		{x + r, y + r, math.Pi},
	}
	for _, c := range corners {
		for i := 0; i <= roundRectCornerSegments; i++ {
			a := c.a0 + (math.Pi/2)*float64(i)/roundRectCornerSegments
			p.pts = append(p.pts, p.device(c.cx+math.Cos(a)*r, c.cy+math.Sin(a)*r))
		}
	}
}

// Fill fills every subpath of the current path, implicitly closing open ones.
func (p *Painter) Fill(paint Paint) {
	if !p.visible(paint) {
		return
	}
	p.polys = p.polys[:0]
	for i := range p.subs {
		run := p.run(i)
		if len(run) >= 3 {
			p.polys = append(p.polys, run)
		}
	}
	if len(p.polys) == 0 {
		return
	}
	p.backend.FillPolygons(p.polys, paint, p.state.m.Invert(), p.state.alpha)
}

// Stroke outlines every subpath with quads of the given user-space width.
// Strokes wider than two device pixels get octagonal joins so polylines do not
// show notches at their corners.
func (p *Painter) Stroke(paint Paint, width float64) {
	if width <= 0 || !p.visible(paint) {
		return
	}
	half := width * p.state.m.ScaleFactor() / 2
	if half <= 0 {
		return
	}
	joins := half >= 1

	// Count points first so quads never reallocates while polys slices into it.
	need := 0
	for i := range p.subs {
		run := p.run(i)
		segs := len(run) - 1
		if p.subs[i].closed && len(run) > 2 {
			segs++
		}
		if segs <= 0 {
			continue
		}
		need += segs * 4
		if joins {
			need += len(run) * 8
		}
	}
	if need == 0 {
		return
	}
	if cap(p.quads) < need {
		p.quads = make([]Vec2, 0, need)
	}
	p.quads = p.quads[:0]
	p.polys = p.polys[:0]

	for i := range p.subs {
		run := p.run(i)
		closed := p.subs[i].closed && len(run) > 2
		n := len(run)
		segs := n - 1
		if closed {
			segs = n
		}
		for s := 0; s < segs; s++ {
			a := run[s]
			b := run[(s+1)%n]
			dx := b.X - a.X
			dy := b.Y - a.Y
			ln := math.Sqrt(dx*dx + dy*dy)
			if ln < 1e-9 {
				continue
			}
			nx := -dy / ln * half
			ny := dx / ln * half
			at := len(p.quads)
			p.quads = append(p.quads,
				Vec2{a.X + nx, a.Y + ny},
				Vec2{b.X + nx, b.Y + ny},
				Vec2{b.X - nx, b.Y - ny},
				Vec2{a.X - nx, a.Y - ny},
			)
			p.polys = append(p.polys, p.quads[at:at+4])
		}
		if !joins || segs < 2 {
			continue
		}
		first, last := 1, n-1
		if closed {
			first, last = 0, n
		}
		for v := first; v < last; v++ {
			c := run[v]
			at := len(p.quads)
			for k := range 8 {
				a := float64(k) * math.Pi / 4
				p.quads = append(p.quads, Vec2{c.X + math.Cos(a)*half, c.Y + math.Sin(a)*half})
			}
			p.polys = append(p.polys, p.quads[at:at+8])
		}
	}
	if len(p.polys) == 0 {
		return
	}
	p.backend.FillPolygons(p.polys, paint, p.state.m.Invert(), p.state.alpha)
}

func (p *Painter) FillRect(x, y, w, h float64, paint Paint) {
	if w == 0 || h == 0 || !p.visible(paint) {
		return
	}
	np, ns := len(p.pts), len(p.subs)
	p.Rect(x, y, w, h)
	p.polys = append(p.polys[:0], p.pts[np:])
	p.backend.FillPolygons(p.polys, paint, p.state.m.Invert(), p.state.alpha)
	p.pts = p.pts[:np]
	p.subs = p.subs[:ns]
}

// device maps a user-space point through the current transform.
func (p *Painter) device(x, y float64) Vec2 {
	dx, dy := p.state.m.Apply(x, y)
	return Vec2{dx, dy}
}

// run returns the points of subpath i.
func (p *Painter) run(i int) []Vec2 {
	end := len(p.pts)
	if i+1 < len(p.subs) {
		end = p.subs[i+1].start
	}
	return p.pts[p.subs[i].start:end]
}

// visible reports whether drawing with paint at the current alpha can change
// any pixel.
func (p *Painter) visible(paint Paint) bool {
	if p.state.alpha <= 0 || paint == nil {
		return false
	}
	if c, ok := paint.(Color); ok && c.A <= 0 {
		return false
	}
	return true
}

// arcSegments picks a segment count for an arc of radius r spanning sweep
// radians, scaled by the current transform.
func (p *Painter) arcSegments(r, sweep float64) int {
	full := int(r*p.state.m.ScaleFactor()*0.5) + 12
	full = min(max(full, 12), 96)
	n := int(math.Ceil(float64(full) * sweep / (2 * math.Pi)))
	return max(n, 2)
}
