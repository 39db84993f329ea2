package herocanvas

import "math"

// Viewport reports the dimensions the hero is laid out in.
type Viewport interface {
	// HeroBounds returns the rendered size of the hero section. ok is false
	// when the section is absent or not laid out yet.
	HeroBounds() (w, h float64, ok bool)
	// WindowSize returns the size of the window or viewport.
	WindowSize() (w, h float64)
}

// FixedViewport is a Viewport with a mutable window size and no hero section.
// Change W and H, then call Engine.Resize.
type FixedViewport struct {
	W, H float64
}

func (v *FixedViewport) HeroBounds() (float64, float64, bool) { return 0, 0, false }
func (v *FixedViewport) WindowSize() (float64, float64)       { return v.W, v.H }

// Surface tracks the drawing surface size. Elements and scenes read Size every
// frame, so a Resize takes effect on the very next frame.
type Surface struct {
	canvas   Canvas
	viewport Viewport
	w, h     float64
}

// NewSurface sizes canvas from vp immediately.
func NewSurface(canvas Canvas, vp Viewport) *Surface {
	s := &Surface{canvas: canvas, viewport: vp}
	s.Resize()
	return s
}

// Resize recomputes the size from the hero section, falling back to the
// window, and resizes the canvas to match. Negative or NaN dimensions become
// zero; a zero-sized surface is valid and draws nothing.
func (s *Surface) Resize() {
	var w, h float64
	if s.viewport != nil {
		hw, hh, ok := s.viewport.HeroBounds()
		if ok && hw > 0 && hh > 0 {
			w, h = hw, hh
		} else {
			w, h = s.viewport.WindowSize()
		}
	}
	s.w, s.h = sanitizeDim(w), sanitizeDim(h)
	if s.canvas != nil {
		s.canvas.SetSize(int(s.w), int(s.h))
	}
}

// Size returns the current surface width and height in pixels.
func (s *Surface) Size() (w, h float64) {
	return s.w, s.h
}

func sanitizeDim(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return math.Floor(v)
}
