package herocanvas

import "math"

// FigureStyle selects how DrawFigure renders a silhouette.
type FigureStyle uint8

const (
	FigureStanding FigureStyle = iota // arms at sides, legs together
	FigureWalking                     // limbs swing with phase
	FigureGold                        // standing pose in gold with a halo
)

// figureHeight is the silhouette height in user units at scale 1.
const figureHeight = 60

// DrawFigure draws a humanoid silhouette with its feet at (x, y). At scale 1
// the figure is figureHeight units tall. phase drives the walking cycle and is
// ignored by the other styles.
func DrawFigure(ctx Context, x, y, scale float64, style FigureStyle, phase float64) {
	if scale <= 0 {
		return
	}
	body := PaletteSlate.Blend(PaletteIvory, 0.35)
	if style == FigureGold {
		body = PaletteGold
	}

	ctx.Save()
	ctx.Translate(x, y)
	ctx.Scale(scale, scale)

	if style == FigureGold {
		halo := NewRadialGradient(0, -32, 0, 48).
			AddStop(0, PaletteGoldLight.WithAlpha(0.55)).
			AddStop(1, PaletteGold.WithAlpha(0))
		ctx.BeginPath()
		ctx.Ellipse(0, -32, 48, 48)
		ctx.Fill(halo)
	}

	var legSwing, armSwing float64
	if style == FigureWalking {
		legSwing = math.Sin(phase) * 7
		armSwing = -math.Sin(phase) * 6
	}

	// Legs from the hip to the feet.
	Line(ctx, -2, -24, -3+legSwing, 0, body, 4)
	Line(ctx, 2, -24, 3-legSwing, 0, body, 4)

	// Torso.
	ctx.BeginPath()
	ctx.RoundRect(-6, -46, 12, 24, 4)
	ctx.Fill(body)

	// Arms from the shoulders.
	Line(ctx, -6, -43, -9+armSwing, -26, body, 3)
	Line(ctx, 6, -43, 9-armSwing, -26, body, 3)

	// Head.
	Circle(ctx, 0, -53, 5.5, body)

	ctx.Restore()
}
