package herocanvas

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Site palette. Everything the engine draws is tinted from these.
var (
	PaletteMidnight  = MustHex("#050d1f")
	PaletteNavy      = MustHex("#0b1a33")
	PaletteSteel     = MustHex("#1d3157")
	PaletteSlate     = MustHex("#8a9bb8")
	PaletteIvory     = MustHex("#f5f1e6")
	PaletteGold      = MustHex("#d4af37")
	PaletteGoldLight = MustHex("#f1d98a")
	PaletteEmber     = MustHex("#b8742a")
)

// Hex parses a "#rrggbb" or "#rgb" string into an opaque Color.
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

// MustHex is like Hex but panics on malformed input. Intended for package-level
// palette definitions.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Blend mixes c toward o by t in CIE L*a*b* space, which keeps the midpoint of
// navy-to-gold shifts from going muddy. Alpha is interpolated linearly.
func (c Color) Blend(o Color, t float64) Color {
	t = clamp01(t)
	a := colorful.Color{R: c.R, G: c.G, B: c.B}
	b := colorful.Color{R: o.R, G: o.G, B: o.B}
	m := a.BlendLab(b, t).Clamped()
	return Color{R: m.R, G: m.G, B: m.B, A: lerp(c.A, o.A, t)}
}
