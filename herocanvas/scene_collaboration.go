package herocanvas

import "math"

const collaborationSeats = 6

func renderCollaboration(ctx Context, w, h, t float64) {
	sceneBackground(ctx, w, h, PaletteMidnight, PaletteSteel)

	cx, cy := w/2, h*0.62
	rx, ry := w*0.16, h*0.07
	scale := figureScale(w, h)

	// Seats sit on a wider ellipse around the table; back-row figures are
	// drawn first so the table covers their legs.
	var seats [collaborationSeats]Vec2
	for i := range seats {
		a := -math.Pi/2 + float64(i)*2*math.Pi/collaborationSeats
		seats[i] = Vec2{X: cx + math.Cos(a)*rx*1.5, Y: cy + math.Sin(a)*ry*2.2}
	}

	// Pulsing links from each seat to the center.
	ctx.Save()
	base := ctx.GlobalAlpha()
	for i, s := range seats {
		pulse := 0.3 + 0.3*math.Sin(t*0.05+float64(i))
		ctx.SetGlobalAlpha(base * pulse)
		Line(ctx, s.X, s.Y-30*scale, cx, cy, PaletteGoldLight, 1.5)
	}
	ctx.Restore()

	for i, s := range seats {
		if s.Y < cy {
			style := FigureStanding
			if i%2 == 1 {
				style = FigureWalking
			}
			DrawFigure(ctx, s.X, s.Y, scale*0.85, style, 0)
		}
	}

	ctx.BeginPath()
	ctx.Ellipse(cx, cy, rx, ry)
	ctx.Fill(PaletteSteel.Blend(PaletteEmber, 0.3))
	ctx.Stroke(PaletteGold.WithAlpha(0.5), 1.5)

	for _, s := range seats {
		if s.Y >= cy {
			DrawFigure(ctx, s.X, s.Y, scale, FigureStanding, 0)
		}
	}

	glow := 6 + 3*math.Sin(t*0.08)
	Circle(ctx, cx, cy, glow*2, PaletteGold.WithAlpha(0.2))
	Circle(ctx, cx, cy, glow, PaletteGoldLight)
}
