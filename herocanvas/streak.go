package herocanvas

import (
	"math/rand/v2"

	"github.com/tanema/gween/ease"
)

// DefaultTrailCap is the number of recent positions a streak remembers.
const DefaultTrailCap = 60

var (
	streakSpeed   = Range{0.003, 0.008}
	streakOpacity = Range{0.25, 0.7}
	streakWidth   = Range{0.6, 2.2}
)

const streakAccentChance = 0.6

// LightStreak is a glowing trail that climbs from the bottom edge toward a
// point near the top along a gently curved path.
type LightStreak struct {
	Start, Control, Target Vec2
	// Progress is the path parameter in [0, 1]; reaching 1 reinitializes the
	// streak.
	Progress float64
	Speed    float64
	Opacity  float64
	Width    float64
	Variant  Variant
	Trail    Trail
}

// Reset picks a new path. Initial streaks start part-way along their path so
// the first frames are not empty.
func (s *LightStreak) Reset(rng *rand.Rand, w, h float64, initial bool) {
	if s.Trail.Cap() == 0 {
		s.Trail = NewTrail(DefaultTrailCap)
	}
	s.Start = Vec2{X: rng.Float64() * w, Y: h}
	s.Target = Vec2{
		X: s.Start.X + (rng.Float64()-0.5)*w*0.5,
		Y: rng.Float64() * h * 0.25,
	}
	mid := Vec2{X: (s.Start.X + s.Target.X) / 2, Y: (s.Start.Y + s.Target.Y) / 2}
	s.Control = Vec2{X: mid.X + (rng.Float64()-0.5)*w*0.2, Y: mid.Y}
	s.Progress = 0
	if initial {
		s.Progress = rng.Float64() * 0.5
	}
	s.Speed = streakSpeed.Rand(rng)
	s.Opacity = streakOpacity.Rand(rng)
	s.Width = streakWidth.Rand(rng)
	s.Variant = randomVariant(rng, streakAccentChance)
	s.Trail.Clear()
}

func (s *LightStreak) Update(rng *rand.Rand, w, h float64) bool {
	s.Progress += s.Speed
	if s.Progress >= 1 {
		s.Reset(rng, w, h, false)
		return true
	}
	s.Trail.Push(s.Point(s.Progress))
	return false
}

// Point returns the position on the streak's path at parameter p. The path is
// a quadratic Bézier traversed with sine easing, so streaks accelerate off the
// bottom edge and settle as they near the top.
func (s *LightStreak) Point(p float64) Vec2 {
	t := float64(ease.InOutSine(float32(clamp01(p)), 0, 1, 1))
	u := 1 - t
	return Vec2{
		X: u*u*s.Start.X + 2*u*t*s.Control.X + t*t*s.Target.X,
		Y: u*u*s.Start.Y + 2*u*t*s.Control.Y + t*t*s.Target.Y,
	}
}

func (s *LightStreak) Draw(ctx Context) {
	n := s.Trail.Len()
	if n < 2 {
		return
	}
	c := s.Variant.Color()
	ctx.Save()
	for i := 1; i < n; i++ {
		a := s.Trail.At(i - 1)
		b := s.Trail.At(i)
		ctx.SetGlobalAlpha(s.Opacity * float64(i) / float64(n))
		Line(ctx, a.X, a.Y, b.X, b.Y, c, s.Width)
	}
	if head, ok := s.Trail.Head(); ok {
		ctx.SetGlobalAlpha(s.Opacity)
		Circle(ctx, head.X, head.Y, s.Width*2.5, c.WithAlpha(0.35))
		Circle(ctx, head.X, head.Y, s.Width, PaletteIvory)
	}
	ctx.Restore()
}
