package herocanvas

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTransitionAlpha(t *testing.T) {
	tests := []struct {
		elapsed, duration int
		want              float64
	}{
		{0, 420, 0},
		{21, 420, 0.5},
		{42, 420, 1},
		{210, 420, 1},
		{378, 420, 1},
		{399, 420, 0.5},
		{420, 420, 0},
		{5, 100, 0.5},
		{95, 100, 0.5},
		{10, 0, 1},
	}
	for _, tt := range tests {
		got := TransitionAlpha(tt.elapsed, tt.duration)
		if math.Abs(got-tt.want) > 1e-6 {
			t.Errorf("TransitionAlpha(%d, %d) = %v, want %v", tt.elapsed, tt.duration, got, tt.want)
		}
	}
}

func TestTransitionAlphaBounds(t *testing.T) {
	for e := 0; e <= 420; e++ {
		a := TransitionAlpha(e, 420)
		if a < 0 || a > 1 {
			t.Fatalf("TransitionAlpha(%d) = %v out of [0, 1]", e, a)
		}
	}
}

func TestTransitionAlphaRampMonotonic(t *testing.T) {
	prev := -1.0
	for e := 0; e <= 42; e++ {
		a := TransitionAlpha(e, 420)
		if a < prev {
			t.Fatalf("ramp up decreased at %d: %v < %v", e, a, prev)
		}
		prev = a
	}
	for e := 378; e <= 420; e++ {
		a := TransitionAlpha(e, 420)
		if a > prev {
			t.Fatalf("ramp down increased at %d: %v > %v", e, a, prev)
		}
		prev = a
	}
}

func TestTransitionAlphaEase(t *testing.T) {
	// Eased ramps still start at 0 and reach 1.
	assertNear(t, "start", TransitionAlphaEase(0, 420, ease.InOutSine), 0)
	assertNear(t, "middle", TransitionAlphaEase(200, 420, ease.InOutSine), 1)
	if got := TransitionAlphaEase(21, 420, nil); math.Abs(got-0.5) > 1e-6 {
		t.Errorf("nil ease = %v, want linear 0.5", got)
	}
}

func TestSchedulerAfterNFrames(t *testing.T) {
	for _, n := range []int{0, 1, 419, 420, 421, 839, 840, 2099, 2100, 2101, 5000} {
		s := NewSceneScheduler(DefaultSceneFrames)
		for range n {
			s.Advance()
		}
		wantScene := SceneKind((n / DefaultSceneFrames) % SceneCount)
		wantElapsed := n % DefaultSceneFrames
		if s.Current() != wantScene {
			t.Errorf("after %d frames scene = %v, want %v", n, s.Current(), wantScene)
		}
		if s.Elapsed() != wantElapsed {
			t.Errorf("after %d frames elapsed = %d, want %d", n, s.Elapsed(), wantElapsed)
		}
		if s.Frames() != uint64(n) {
			t.Errorf("after %d frames Frames() = %d", n, s.Frames())
		}
	}
}

func TestSchedulerWrapsAfterLastScene(t *testing.T) {
	s := NewSceneScheduler(2)
	var seen []SceneKind
	for range 12 {
		seen = append(seen, s.Current())
		s.Advance()
	}
	want := []SceneKind{
		SceneVision, SceneVision,
		SceneLeadership, SceneLeadership,
		SceneCollaboration, SceneCollaboration,
		SceneExcellence, SceneExcellence,
		SceneTransformation, SceneTransformation,
		SceneVision, SceneVision,
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("frame %d scene = %v, want %v", i, seen[i], want[i])
		}
	}
}

func TestSchedulerDefaultDuration(t *testing.T) {
	if s := NewSceneScheduler(0); s.Duration != DefaultSceneFrames {
		t.Errorf("Duration = %d, want %d", s.Duration, DefaultSceneFrames)
	}
}

func TestSceneKindString(t *testing.T) {
	tests := map[SceneKind]string{
		SceneVision:         "vision",
		SceneLeadership:     "leadership",
		SceneCollaboration:  "collaboration",
		SceneExcellence:     "excellence",
		SceneTransformation: "transformation",
		SceneKind(9):        "unknown",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("SceneKind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
