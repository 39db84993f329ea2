package herocanvas

import (
	"math"
	"math/rand/v2"

	"github.com/aquilax/go-perlin"
)

// Ambient particle tuning. Velocities are pixels per frame; lifetimes are in
// frames.
var (
	particleDriftX   = Range{-0.2, 0.2}
	particleRise     = Range{0.2, 0.8}
	particleRadius   = Range{0.6, 2.4}
	particleOpacity  = Range{0.15, 0.65}
	particleLifetime = Range{240, 720}
)

const (
	particleAccentChance = 0.3
	particleSway         = 0.15
	particleEdgePad      = 20
)

// swayNoise perturbs horizontal drift so particles meander instead of moving
// in straight lines. Fixed seed: the field is shared and stateless.
var swayNoise = perlin.NewPerlin(2, 2, 3, 1337)

// AmbientParticle is a slow-rising dust mote. It is reinitialized at the
// bottom edge once its age exceeds MaxLife or it leaves the surface.
type AmbientParticle struct {
	X, Y    float64
	VX, VY  float64
	Radius  float64
	Opacity float64
	Variant Variant
	Age     int
	MaxLife int

	noiseOffset float64
}

// Reset places the particle anywhere on the surface when initial is true and
// along the bottom edge otherwise.
func (p *AmbientParticle) Reset(rng *rand.Rand, w, h float64, initial bool) {
	p.X = rng.Float64() * w
	if initial {
		p.Y = rng.Float64() * h
	} else {
		p.Y = h
	}
	p.VX = particleDriftX.Rand(rng)
	p.VY = -particleRise.Rand(rng)
	p.Radius = particleRadius.Rand(rng)
	p.Opacity = particleOpacity.Rand(rng)
	p.Variant = randomVariant(rng, particleAccentChance)
	p.Age = 0
	p.MaxLife = int(particleLifetime.Rand(rng))
	p.noiseOffset = rng.Float64() * 1000
}

func (p *AmbientParticle) Update(rng *rand.Rand, w, h float64) bool {
	p.Age++
	sway := swayNoise.Noise1D(p.noiseOffset+float64(p.Age)*0.01) * particleSway
	p.X += p.VX + sway
	p.Y += p.VY
	if p.Age > p.MaxLife || p.outside(w, h) {
		p.Reset(rng, w, h, false)
		return true
	}
	return false
}

func (p *AmbientParticle) outside(w, h float64) bool {
	pad := p.Radius*4 + particleEdgePad
	return p.Y < -pad || p.Y > h+pad || p.X < -pad || p.X > w+pad
}

// Fade returns the lifetime envelope: a sine arch that is 0 at birth and
// death and 1 halfway through.
func (p *AmbientParticle) Fade() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return math.Sin(math.Pi * clamp01(float64(p.Age)/float64(p.MaxLife)))
}

func (p *AmbientParticle) Draw(ctx Context) {
	a := p.Opacity * p.Fade()
	if a <= 0 {
		return
	}
	c := p.Variant.Color()
	ctx.Save()
	ctx.SetGlobalAlpha(a)
	Circle(ctx, p.X, p.Y, p.Radius*2.5, c.WithAlpha(0.2))
	Circle(ctx, p.X, p.Y, p.Radius, c)
	ctx.Restore()
}
