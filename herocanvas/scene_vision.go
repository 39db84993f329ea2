package herocanvas

import "math"

const (
	visionNodes   = 14
	visionWalkers = 4
)

func renderVision(ctx Context, w, h, t float64) {
	sceneBackground(ctx, w, h, PaletteMidnight, PaletteNavy)

	var nodes [visionNodes]Vec2
	for i := range nodes {
		bx := hash01(i, 11) * w
		by := hash01(i, 12) * h * 0.55
		nodes[i] = Vec2{
			X: bx + math.Sin(t*0.01+float64(i))*w*0.02,
			Y: by + math.Cos(t*0.013+float64(i)*1.7)*h*0.02,
		}
	}
	DrawNetwork(ctx, nodes[:], min(w, h)*0.3, 0.8)

	DrawSkyline(ctx, w, h, 0.9)

	scale := figureScale(w, h)
	ground := h * 0.97
	span := w + 80*scale
	for i := range visionWalkers {
		speed := 0.6 + hash01(i, 13)*0.5
		x := math.Mod(t*speed*scale+hash01(i, 14)*span, span) - 40*scale
		DrawFigure(ctx, x, ground, scale*(0.9+0.2*hash01(i, 15)), FigureWalking, t*0.12+float64(i))
	}
}
