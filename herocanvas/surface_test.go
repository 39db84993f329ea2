package herocanvas

import (
	"math"
	"testing"
)

type heroViewport struct {
	heroW, heroH float64
	hasHero      bool
	winW, winH   float64
}

func (v *heroViewport) HeroBounds() (float64, float64, bool) { return v.heroW, v.heroH, v.hasHero }
func (v *heroViewport) WindowSize() (float64, float64)       { return v.winW, v.winH }

func TestSurfaceResize(t *testing.T) {
	tests := []struct {
		name         string
		vp           heroViewport
		wantW, wantH float64
	}{
		{"hero section", heroViewport{heroW: 900, heroH: 500, hasHero: true, winW: 1200, winH: 800}, 900, 500},
		{"no hero", heroViewport{winW: 1200, winH: 800}, 1200, 800},
		{"empty hero", heroViewport{heroW: 0, heroH: 0, hasHero: true, winW: 640, winH: 480}, 640, 480},
		{"fractional", heroViewport{winW: 640.7, winH: 480.2}, 640, 480},
		{"negative", heroViewport{winW: -10, winH: 20}, 0, 20},
		{"nan", heroViewport{winW: math.NaN(), winH: 20}, 0, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := NewRecorder(0, 0)
			vp := tt.vp
			s := NewSurface(rec, &vp)
			w, h := s.Size()
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Size = %vx%v, want %vx%v", w, h, tt.wantW, tt.wantH)
			}
			if rec.W != int(tt.wantW) || rec.H != int(tt.wantH) {
				t.Errorf("canvas = %dx%d, want %vx%v", rec.W, rec.H, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestSurfaceNilViewport(t *testing.T) {
	s := NewSurface(NewRecorder(5, 5), nil)
	if w, h := s.Size(); w != 0 || h != 0 {
		t.Errorf("Size = %vx%v, want 0x0", w, h)
	}
}

func TestQueueHostPumpsOnlyQueuedCallbacks(t *testing.T) {
	var host QueueHost
	calls := 0
	var tick func()
	tick = func() {
		calls++
		host.RequestFrame(tick)
	}
	host.RequestFrame(tick)

	if ran := host.Pump(); ran != 1 {
		t.Errorf("Pump ran %d, want 1", ran)
	}
	if calls != 1 || host.Pending() != 1 {
		t.Errorf("calls=%d pending=%d, want 1 and 1", calls, host.Pending())
	}
	if ran := host.PumpN(5); ran != 5 || calls != 6 {
		t.Errorf("PumpN ran %d calls=%d, want 5 and 6", ran, calls)
	}
}

func TestQueueHostEmpty(t *testing.T) {
	var host QueueHost
	if host.Pump() != 0 || host.PumpN(3) != 0 {
		t.Error("empty host ran callbacks")
	}
}
