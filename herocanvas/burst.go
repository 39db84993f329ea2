package herocanvas

import "math"

const (
	burstRays     = 16
	burstRaySpin  = 0.003 // radians per frame
	burstRayWidth = 0.06  // half-angle of each ray, radians
)

// DrawBurst draws a radial glow with slowly rotating rays centered on
// (cx, cy). t is the frame clock.
func DrawBurst(ctx Context, cx, cy, radius, alpha, t float64) {
	if radius <= 0 || alpha <= 0 {
		return
	}
	ctx.Save()
	ctx.SetGlobalAlpha(ctx.GlobalAlpha() * alpha)

	glow := NewRadialGradient(cx, cy, 0, radius*0.6).
		AddStop(0, PaletteGoldLight.WithAlpha(0.45)).
		AddStop(0.5, PaletteGold.WithAlpha(0.15)).
		AddStop(1, PaletteGold.WithAlpha(0))
	ctx.BeginPath()
	ctx.Ellipse(cx, cy, radius*0.6, radius*0.6)
	ctx.Fill(glow)

	ray := PaletteGold.WithAlpha(0.12)
	spin := t * burstRaySpin
	ctx.BeginPath()
	for i := range burstRays {
		a := spin + float64(i)*2*math.Pi/burstRays
		ctx.MoveTo(cx, cy)
		ctx.LineTo(cx+math.Cos(a-burstRayWidth)*radius, cy+math.Sin(a-burstRayWidth)*radius)
		ctx.LineTo(cx+math.Cos(a+burstRayWidth)*radius, cy+math.Sin(a+burstRayWidth)*radius)
		ctx.ClosePath()
	}
	ctx.Fill(ray)
	ctx.Restore()
}
