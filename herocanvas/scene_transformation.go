package herocanvas

import (
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/tanema/gween/ease"
)

const (
	swarmParticles = 120
	swarmTurns     = 0.35 // radians between consecutive particles
	swarmSpin      = 0.01 // radians per frame
	ringCount      = 4
	ringPeriod     = 180 // frames per pulse
)

// swarmNoise jitters swarm radii. Seeded so the swarm is the same on every
// run for a given frame.
var swarmNoise = perlin.NewPerlin(2, 2, 3, 42)

func renderTransformation(ctx Context, w, h, t float64) {
	sceneBackground(ctx, w, h, PaletteMidnight, PaletteNavy.Blend(PaletteGold, 0.12))

	cx, cy := w/2, h*0.55
	maxR := min(w, h) * 0.42
	scale := figureScale(w, h)

	// Concentric rings that swell outward and fade as they grow.
	ctx.Save()
	base := ctx.GlobalAlpha()
	for i := range ringCount {
		phase := math.Mod(t+float64(i)*ringPeriod/ringCount, ringPeriod)
		grow := float64(ease.OutSine(float32(phase), 0, 1, ringPeriod))
		r := maxR * (0.25 + 0.75*grow)
		ctx.SetGlobalAlpha(base * 0.5 * (1 - grow))
		ctx.BeginPath()
		ctx.Ellipse(cx, cy, r, r)
		ctx.Stroke(PaletteGold, 2)
	}
	ctx.Restore()

	// Spiral swarm: outer particles lag behind inner ones and shift from navy
	// to gold as they approach the center.
	for i := range swarmParticles {
		f := float64(i) / swarmParticles
		a := float64(i)*swarmTurns + t*swarmSpin*(1.5-f)
		jitter := swarmNoise.Noise2D(float64(i)*0.1, t*0.01) * maxR * 0.08
		r := f*maxR + jitter
		c := PaletteGoldLight.Blend(PaletteSlate, f)
		Circle(ctx, cx+math.Cos(a)*r, cy+math.Sin(a)*r, 1+2*(1-f), c.WithAlpha(0.8))
	}

	DrawBurst(ctx, cx, cy, maxR*0.8, 0.8, t)
	DrawFigure(ctx, cx, cy+30*scale, scale*1.3, FigureGold, 0)
}
