package herocanvas

import "math"

// EdgeOpacity returns the opacity of a network edge between nodes dist apart.
// Edges exist only for dist < threshold; their opacity falls linearly from
// peak at distance 0 to 0 at the threshold.
func EdgeOpacity(dist, threshold, peak float64) (float64, bool) {
	if threshold <= 0 || dist < 0 || dist >= threshold {
		return 0, false
	}
	return peak * (1 - dist/threshold), true
}

// networkEdgeAlpha is the opacity of an edge between coincident nodes.
const networkEdgeAlpha = 0.5

// DrawNetwork draws nodes as small dots and links every pair closer than
// threshold with an edge whose opacity fades with distance.
func DrawNetwork(ctx Context, nodes []Vec2, threshold, alpha float64) {
	if alpha <= 0 {
		return
	}
	base := ctx.GlobalAlpha() * alpha
	ctx.Save()
	for i := range nodes {
		for j := i + 1; j < len(nodes); j++ {
			d := math.Hypot(nodes[i].X-nodes[j].X, nodes[i].Y-nodes[j].Y)
			op, ok := EdgeOpacity(d, threshold, networkEdgeAlpha)
			if !ok {
				continue
			}
			ctx.SetGlobalAlpha(base * op)
			Line(ctx, nodes[i].X, nodes[i].Y, nodes[j].X, nodes[j].Y, PaletteGoldLight, 1)
		}
	}
	ctx.SetGlobalAlpha(base)
	for _, n := range nodes {
		Circle(ctx, n.X, n.Y, 4, PaletteGold.WithAlpha(0.25))
		Circle(ctx, n.X, n.Y, 2, PaletteGoldLight)
	}
	ctx.Restore()
}
