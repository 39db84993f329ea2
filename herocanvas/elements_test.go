package herocanvas

import (
	"math/rand/v2"
	"testing"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestTrailCapAndEviction(t *testing.T) {
	tr := NewTrail(3)
	for i := range 3 {
		tr.Push(Vec2{X: float64(i)})
	}
	if tr.Len() != 3 {
		t.Fatalf("Len = %d, want 3", tr.Len())
	}
	if tr.At(0).X != 0 {
		t.Errorf("oldest = %v, want 0", tr.At(0).X)
	}

	tr.Push(Vec2{X: 3})
	if tr.Len() != 3 {
		t.Fatalf("Len after overflow = %d, want 3", tr.Len())
	}
	for i, want := range []float64{1, 2, 3} {
		if got := tr.At(i).X; got != want {
			t.Errorf("At(%d) = %v, want %v", i, got, want)
		}
	}
	if head, ok := tr.Head(); !ok || head.X != 3 {
		t.Errorf("Head = %v, %v; want 3, true", head, ok)
	}

	tr.Clear()
	if tr.Len() != 0 || tr.Cap() != 3 {
		t.Errorf("after Clear Len=%d Cap=%d, want 0 and 3", tr.Len(), tr.Cap())
	}
	if _, ok := tr.Head(); ok {
		t.Error("Head on empty trail should report !ok")
	}
}

func TestTrailNeverExceedsCap(t *testing.T) {
	tr := NewTrail(DefaultTrailCap)
	for i := range 500 {
		tr.Push(Vec2{X: float64(i)})
		if tr.Len() > DefaultTrailCap {
			t.Fatalf("Len = %d after %d pushes", tr.Len(), i+1)
		}
	}
	if tr.At(0).X != 500-DefaultTrailCap {
		t.Errorf("oldest = %v, want %v", tr.At(0).X, 500-DefaultTrailCap)
	}
}

func TestFreshParticle(t *testing.T) {
	rng := testRNG()
	var p AmbientParticle
	p.Reset(rng, 800, 600, false)
	if p.Age != 0 {
		t.Fatalf("Age = %d, want 0", p.Age)
	}
	if p.Y != 600 {
		t.Errorf("Y = %v, want bottom edge 600", p.Y)
	}
	if p.X < 0 || p.X > 800 {
		t.Errorf("X = %v, want within [0, 800]", p.X)
	}
	if p.MaxLife < int(particleLifetime.Min) || p.MaxLife > int(particleLifetime.Max) {
		t.Errorf("MaxLife = %d out of range", p.MaxLife)
	}

	// Keep it in bounds so only age can expire it.
	life := p.MaxLife
	for i := 1; i <= life; i++ {
		p.X, p.Y = 400, 300
		if p.Update(rng, 800, 600) {
			t.Fatalf("reinitialized at age %d before lifetime %d", i, life)
		}
	}
	p.X, p.Y = 400, 300
	if !p.Update(rng, 800, 600) {
		t.Fatal("not reinitialized once age exceeded lifetime")
	}
	if p.Age != 0 || p.Y != 600 {
		t.Errorf("after respawn Age=%d Y=%v, want 0 and 600", p.Age, p.Y)
	}
}

func TestParticleOutOfBoundsRespawnsSameUpdate(t *testing.T) {
	rng := testRNG()
	var p AmbientParticle
	p.Reset(rng, 800, 600, true)
	p.Y = -500
	if !p.Update(rng, 800, 600) {
		t.Fatal("out-of-bounds particle was not reinitialized")
	}
	if p.Age != 0 || p.Y != 600 {
		t.Errorf("Age=%d Y=%v, want fresh particle at the bottom", p.Age, p.Y)
	}
}

func TestParticleFade(t *testing.T) {
	p := AmbientParticle{MaxLife: 100}
	assertNear(t, "birth", p.Fade(), 0)
	p.Age = 50
	assertNear(t, "midlife", p.Fade(), 1)
	p.Age = 100
	if p.Fade() > 1e-9 {
		t.Errorf("death fade = %v, want 0", p.Fade())
	}
}

func TestStreakCompletesAndResets(t *testing.T) {
	rng := testRNG()
	s := LightStreak{Trail: NewTrail(5)}
	s.Reset(rng, 800, 600, false)
	if s.Progress != 0 {
		t.Fatalf("Progress = %v, want 0", s.Progress)
	}
	if s.Start.Y != 600 {
		t.Errorf("Start.Y = %v, want bottom edge", s.Start.Y)
	}
	s.Speed = 0.25
	for i := 1; i <= 3; i++ {
		if s.Update(rng, 800, 600) {
			t.Fatalf("reset early at step %d", i)
		}
	}
	if s.Trail.Len() != 3 {
		t.Errorf("trail len = %d, want 3", s.Trail.Len())
	}
	if !s.Update(rng, 800, 600) {
		t.Fatal("progress reached 1 without reset")
	}
	if s.Progress != 0 || s.Trail.Len() != 0 {
		t.Errorf("after reset Progress=%v trail=%d, want 0 and 0", s.Progress, s.Trail.Len())
	}
	if s.Trail.Cap() != 5 {
		t.Errorf("trail cap = %d, want 5 kept", s.Trail.Cap())
	}
}

func TestStreakPathEndpoints(t *testing.T) {
	s := LightStreak{
		Start:   Vec2{X: 100, Y: 600},
		Control: Vec2{X: 150, Y: 300},
		Target:  Vec2{X: 200, Y: 50},
	}
	p0 := s.Point(0)
	p1 := s.Point(1)
	assertNear(t, "start x", p0.X, 100)
	assertNear(t, "start y", p0.Y, 600)
	if abs := p1.X - 200; abs > 1e-4 || abs < -1e-4 {
		t.Errorf("end x = %v, want 200", p1.X)
	}
	if abs := p1.Y - 50; abs > 1e-4 || abs < -1e-4 {
		t.Errorf("end y = %v, want 50", p1.Y)
	}
}

func TestStreakTrailStaysCapped(t *testing.T) {
	rng := testRNG()
	s := LightStreak{Trail: NewTrail(DefaultTrailCap)}
	s.Reset(rng, 800, 600, false)
	s.Speed = 0.001
	for range 500 {
		s.Update(rng, 800, 600)
		if s.Trail.Len() > DefaultTrailCap {
			t.Fatalf("trail len %d exceeds cap", s.Trail.Len())
		}
	}
}

func TestPolygonOutside(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 400, 300, false},
		{"inside margin left", -99, 300, false},
		{"past margin left", -101, 300, true},
		{"past margin right", 901, 300, true},
		{"past margin top", 400, -101, true},
		{"past margin bottom", 400, 701, true},
		{"corner inside margin", 899, 699, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DriftingPolygon{X: tt.x, Y: tt.y, Margin: DefaultPolygonMargin}
			if got := d.Outside(800, 600); got != tt.want {
				t.Errorf("Outside = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPolygonRespawnsSameUpdate(t *testing.T) {
	rng := testRNG()
	var d DriftingPolygon
	d.Reset(rng, 800, 600, true)
	switch d.Sides {
	case 3, 4, 6:
	default:
		t.Fatalf("Sides = %d, want 3, 4 or 6", d.Sides)
	}
	d.X = 2000
	if !d.Update(rng, 800, 600) {
		t.Fatal("polygon past margin was not reinitialized")
	}
	if d.Outside(800, 600) {
		t.Errorf("reinitialized polygon at (%v, %v) is still outside", d.X, d.Y)
	}
}

func TestPoolCountsRespawns(t *testing.T) {
	rng := testRNG()
	p := NewPool[DriftingPolygon](4, nil)
	p.Spawn(rng, 800, 600)
	if p.Len() != 4 {
		t.Fatalf("Len = %d, want 4", p.Len())
	}
	p.At(1).X = -1000
	p.At(3).Y = 5000
	p.Update(rng, 800, 600)
	if p.Respawns() != 2 {
		t.Errorf("Respawns = %d, want 2", p.Respawns())
	}
}

func TestPoolSetupRunsOncePerSlot(t *testing.T) {
	calls := 0
	p := NewPool(3, func(s *LightStreak) {
		calls++
		s.Trail = NewTrail(7)
	})
	if calls != 3 {
		t.Errorf("setup calls = %d, want 3", calls)
	}
	p.Spawn(testRNG(), 100, 100)
	if c := p.At(2).Trail.Cap(); c != 7 {
		t.Errorf("trail cap = %d, want 7", c)
	}
}

func TestPoolNegativeSize(t *testing.T) {
	if p := NewPool[AmbientParticle](-5, nil); p.Len() != 0 {
		t.Errorf("Len = %d, want 0", p.Len())
	}
}

func TestPoolUpdateDoesNotAllocate(t *testing.T) {
	rng := testRNG()
	polys := NewPool[DriftingPolygon](20, nil)
	streaks := NewPool(20, func(s *LightStreak) { s.Trail = NewTrail(DefaultTrailCap) })
	polys.Spawn(rng, 800, 600)
	streaks.Spawn(rng, 800, 600)
	allocs := testing.AllocsPerRun(200, func() {
		polys.Update(rng, 800, 600)
		streaks.Update(rng, 800, 600)
	})
	if allocs > 0 {
		t.Errorf("Update allocated %v times per run, want 0", allocs)
	}
}

func BenchmarkParticlePoolStep(b *testing.B) {
	rng := testRNG()
	r := NewRecorder(1280, 720)
	ctx := r.Context()
	p := NewPool[AmbientParticle](80, nil)
	p.Spawn(rng, 1280, 720)
	for b.Loop() {
		p.Step(ctx, rng, 1280, 720)
		r.Reset()
	}
}
