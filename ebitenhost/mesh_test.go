package ebitenhost

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Dany0257/3dcoaching/herocanvas"
)

func square(x, y, s float64) []herocanvas.Vec2 {
	return []herocanvas.Vec2{{X: x, Y: y}, {X: x + s, Y: y}, {X: x + s, Y: y + s}, {X: x, Y: y + s}}
}

func triArea(m *mesh, i int) float64 {
	a := m.verts[m.inds[i]]
	b := m.verts[m.inds[i+1]]
	c := m.verts[m.inds[i+2]]
	return float64((b.DstX-a.DstX)*(c.DstY-a.DstY)-(c.DstX-a.DstX)*(b.DstY-a.DstY)) / 2
}

func TestAddFanCounts(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		wantVerts int
		wantInds  int
	}{
		{"triangle", 3, 3, 3},
		{"square", 4, 4, 6},
		{"hexagon", 6, 6, 12},
		{"degenerate", 2, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var poly []herocanvas.Vec2
			for i := range tt.n {
				a := float64(i) * 2 * math.Pi / float64(tt.n)
				poly = append(poly, herocanvas.Vec2{X: math.Cos(a) * 10, Y: math.Sin(a) * 10})
			}
			var m mesh
			m.addFan(poly, herocanvas.PaletteGold)
			if len(m.verts) != tt.wantVerts {
				t.Errorf("verts = %d, want %d", len(m.verts), tt.wantVerts)
			}
			if len(m.inds) != tt.wantInds {
				t.Errorf("inds = %d, want %d", len(m.inds), tt.wantInds)
			}
		})
	}
}

func TestAddFanOffsetsIndices(t *testing.T) {
	var m mesh
	m.addFan(square(0, 0, 1), herocanvas.PaletteGold)
	m.addFan(square(5, 5, 1), herocanvas.PaletteGold)
	for i := 6; i < len(m.inds); i++ {
		if m.inds[i] < 4 {
			t.Fatalf("inds[%d] = %d, want index into second polygon", i, m.inds[i])
		}
	}
}

func TestAddFanNormalizesWinding(t *testing.T) {
	cw := square(0, 0, 10)
	ccw := []herocanvas.Vec2{cw[3], cw[2], cw[1], cw[0]}

	var m mesh
	m.addFan(cw, herocanvas.PaletteGold)
	m.addFan(ccw, herocanvas.PaletteGold)
	for i := 0; i < len(m.inds); i += 3 {
		if triArea(&m, i) <= 0 {
			t.Errorf("triangle %d has area %v, want positive", i/3, triArea(&m, i))
		}
	}
}

func TestVertexPremultiplies(t *testing.T) {
	v := vertex(herocanvas.Vec2{X: 1, Y: 2}, herocanvas.Color{R: 1, G: 0.5, B: 0, A: 0.5})
	if v.ColorR != 0.5 || v.ColorG != 0.25 || v.ColorB != 0 || v.ColorA != 0.5 {
		t.Errorf("color = (%v,%v,%v,%v), want premultiplied (0.5,0.25,0,0.5)", v.ColorR, v.ColorG, v.ColorB, v.ColorA)
	}
	if v.SrcX != 0.5 || v.SrcY != 0.5 {
		t.Errorf("src = (%v,%v), want white pixel center", v.SrcX, v.SrcY)
	}
}

func TestGradientFanSubdivides(t *testing.T) {
	g := herocanvas.NewLinearGradient(0, 0, 256, 0).
		AddStop(0, herocanvas.Color{R: 1, A: 1}).
		AddStop(1, herocanvas.Color{B: 1, A: 1})
	s := gradientShader{g: g, inverse: herocanvas.Identity, alpha: 1}

	var m mesh
	m.addGradientFan(square(0, 0, 256), &s, func() { t.Fatal("unexpected flush") })

	var total float64
	for i := 0; i < len(m.inds); i += 3 {
		a := m.verts[m.inds[i]]
		b := m.verts[m.inds[i+1]]
		c := m.verts[m.inds[i+2]]
		pa := herocanvas.Vec2{X: float64(a.DstX), Y: float64(a.DstY)}
		pb := herocanvas.Vec2{X: float64(b.DstX), Y: float64(b.DstY)}
		pc := herocanvas.Vec2{X: float64(c.DstX), Y: float64(c.DstY)}
		if e := longestEdge(pa, pb, pc); e > gradientMaxEdge {
			t.Fatalf("edge %v longer than %v", e, gradientMaxEdge)
		}
		total += triArea(&m, i)
	}
	if math.Abs(total-256*256) > 1e-6 {
		t.Errorf("covered area = %v, want %v", total, 256*256)
	}

	// Left edge vertices are red, right edge vertices blue.
	for _, v := range m.verts {
		switch v.DstX {
		case 0:
			if v.ColorR < 0.99 || v.ColorB > 0.01 {
				t.Errorf("vertex at x=0 = (%v,%v), want red", v.ColorR, v.ColorB)
			}
		case 256:
			if v.ColorB < 0.99 || v.ColorR > 0.01 {
				t.Errorf("vertex at x=256 = (%v,%v), want blue", v.ColorR, v.ColorB)
			}
		}
	}
}

func TestGradientFanFlushesWhenFull(t *testing.T) {
	g := herocanvas.NewRadialGradient(0, 0, 0, 10).
		AddStop(0, herocanvas.PaletteGold).
		AddStop(1, herocanvas.PaletteNavy)
	s := gradientShader{g: g, inverse: herocanvas.Identity, alpha: 1}

	var m mesh
	m.verts = make([]ebiten.Vertex, maxBatchVerts-1)
	flushes := 0
	m.addGradientFan(square(0, 0, 4), &s, func() {
		flushes++
		m.reset()
	})
	if flushes != 1 {
		t.Errorf("flushes = %d, want 1", flushes)
	}
	if len(m.verts) != 6 {
		t.Errorf("verts after flush = %d, want 6", len(m.verts))
	}
}

func TestViewportHeroBounds(t *testing.T) {
	v := &Viewport{Width: 800, Height: 600}
	if _, _, ok := v.HeroBounds(); ok {
		t.Error("no hero height should report !ok")
	}
	v.HeroHeight = 400
	w, h, ok := v.HeroBounds()
	if !ok || w != 800 || h != 400 {
		t.Errorf("HeroBounds = (%v, %v, %v), want (800, 400, true)", w, h, ok)
	}
	v.HeroHeight = 900
	if _, h, _ := v.HeroBounds(); h != 600 {
		t.Errorf("hero taller than window: h = %v, want 600", h)
	}
}
