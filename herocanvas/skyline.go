package herocanvas

// Skyline layout.
const (
	skylineBuildings = 14
	windowW          = 4
	windowH          = 6
	windowGapX       = 6
	windowGapY       = 8
	windowInset      = 5
	windowLitPercent = 40
)

// WindowLit reports whether the window at (row, col) of the given building is
// lit. The result is a pure function of its inputs so the skyline looks the
// same on every frame.
func WindowLit(building, row, col int) bool {
	return hash3(building, row, col)%100 < windowLitPercent
}

// skylineBuilding returns the x, width and height of building i for a w x h
// surface.
func skylineBuilding(i int, w, h float64) (x, bw, bh float64) {
	slot := w / skylineBuildings
	bw = slot * (0.7 + 0.3*hash01(i, 1))
	bh = h * (0.16 + 0.3*hash01(i, 2))
	x = float64(i)*slot + (slot-bw)/2
	return x, bw, bh
}

// DrawSkyline draws a row of buildings along the bottom of a w x h surface,
// with a deterministic pattern of lit windows.
func DrawSkyline(ctx Context, w, h, alpha float64) {
	if w <= 0 || h <= 0 || alpha <= 0 {
		return
	}
	wall := PaletteNavy.Blend(PaletteSteel, 0.4)
	lit := PaletteGoldLight.WithAlpha(0.7)

	ctx.Save()
	ctx.SetGlobalAlpha(ctx.GlobalAlpha() * alpha)
	for i := range skylineBuildings {
		x, bw, bh := skylineBuilding(i, w, h)
		top := h - bh
		ctx.FillRect(x, top, bw, bh, wall)

		cols := int((bw - 2*windowInset + windowGapX - windowW) / windowGapX)
		rows := int((bh - 2*windowInset + windowGapY - windowH) / windowGapY)
		for r := range rows {
			for c := range cols {
				if !WindowLit(i, r, c) {
					continue
				}
				wx := x + windowInset + float64(c)*windowGapX
				wy := top + windowInset + float64(r)*windowGapY
				ctx.FillRect(wx, wy, windowW, windowH, lit)
			}
		}
	}
	ctx.Restore()
}
