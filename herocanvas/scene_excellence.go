package herocanvas

import "math"

const (
	excellenceBars     = 5
	excellenceRows     = 3
	excellenceRowSeats = 9
)

func renderExcellence(ctx Context, w, h, t float64) {
	sceneBackground(ctx, w, h, PaletteMidnight, PaletteNavy)
	scale := figureScale(w, h)

	// Presentation screen with a bar chart that grows and settles.
	sx, sy := w*0.3, h*0.1
	sw, sh := w*0.4, h*0.33
	ctx.BeginPath()
	ctx.RoundRect(sx, sy, sw, sh, 6*scale)
	ctx.Fill(PaletteSteel.WithAlpha(0.9))
	ctx.Stroke(PaletteSlate, 2)
	barW := sw / (excellenceBars*2 + 1)
	for i := range excellenceBars {
		grow := 0.5 + 0.5*math.Sin(t*0.02+float64(i)*0.7)
		bh := sh * 0.7 * (0.3 + 0.7*hash01(i, 21)) * (0.6 + 0.4*grow)
		bx := sx + barW*(float64(i)*2+1)
		ctx.FillRect(bx, sy+sh*0.9-bh, barW, bh, PaletteGold.WithAlpha(0.85))
	}

	// Spotlight cone from the ceiling onto the speaker.
	spx, spy := w*0.5, h*0.66
	cone := NewLinearGradient(spx, 0, spx, spy).
		AddStop(0, PaletteGoldLight.WithAlpha(0.35)).
		AddStop(1, PaletteGoldLight.WithAlpha(0.05))
	ctx.BeginPath()
	ctx.MoveTo(spx-w*0.02, 0)
	ctx.LineTo(spx+w*0.02, 0)
	ctx.LineTo(spx+w*0.1, spy)
	ctx.LineTo(spx-w*0.1, spy)
	ctx.ClosePath()
	ctx.Fill(cone)
	ctx.BeginPath()
	ctx.Ellipse(spx, spy, w*0.1, h*0.02)
	ctx.Fill(PaletteGoldLight.WithAlpha(0.2))

	DrawFigure(ctx, spx, spy, scale*1.1, FigureGold, 0)

	// Audience rows, smaller and dimmer toward the back.
	ctx.Save()
	base := ctx.GlobalAlpha()
	for r := range excellenceRows {
		depth := float64(excellenceRows-1-r) / excellenceRows
		y := h * (0.82 + 0.07*float64(r))
		fs := scale * (0.55 + 0.15*float64(r))
		ctx.SetGlobalAlpha(base * (0.5 + 0.5*(1-depth)))
		step := w / (excellenceRowSeats + 1)
		offset := 0.0
		if r%2 == 1 {
			offset = step / 2
		}
		for c := range excellenceRowSeats {
			DrawFigure(ctx, step*float64(c+1)+offset-step/4, y, fs, FigureStanding, 0)
		}
	}
	ctx.Restore()
}
