package herocanvas

func renderLeadership(ctx Context, w, h, t float64) {
	sceneBackground(ctx, w, h, PaletteNavy, PaletteMidnight.Blend(PaletteEmber, 0.15))

	cx := w / 2
	DrawBurst(ctx, cx, h*0.42, min(w, h)*0.45, 0.9, t)

	scale := figureScale(w, h)
	floor := h * 0.72
	spacing := w * 0.14
	DrawFigure(ctx, cx-spacing, floor, scale*1.1, FigureStanding, 0)
	DrawFigure(ctx, cx+spacing, floor, scale*1.1, FigureStanding, 0)
	DrawFigure(ctx, cx, floor, scale*1.25, FigureGold, 0)

	// Meeting table in front of the figures.
	tableW := w * 0.5
	tableH := h * 0.035
	top := floor - 20*scale
	wood := PaletteSteel.Blend(PaletteEmber, 0.25)
	ctx.BeginPath()
	ctx.RoundRect(cx-tableW/2, top, tableW, tableH, tableH/3)
	ctx.Fill(wood)
	legH := h * 0.1
	for _, lx := range [...]float64{cx - tableW*0.42, cx + tableW*0.42} {
		ctx.FillRect(lx-3*scale, top+tableH, 6*scale, legH, wood)
	}
}
