package herocanvas

import "github.com/tanema/gween/ease"

// DefaultSceneFrames is how many frames each scene stays active.
const DefaultSceneFrames = 420

// transitionFraction is the share of a scene's duration spent fading in, and
// again fading out.
const transitionFraction = 0.1

// TransitionAlpha returns the opacity of a scene elapsed frames into a scene
// lasting duration frames: a linear ramp up over the first tenth, fully
// opaque through the middle, and a ramp down over the last tenth.
func TransitionAlpha(elapsed, duration int) float64 {
	return TransitionAlphaEase(elapsed, duration, ease.Linear)
}

// TransitionAlphaEase is TransitionAlpha with the ramps shaped by fn.
func TransitionAlphaEase(elapsed, duration int, fn ease.TweenFunc) float64 {
	if duration <= 0 {
		return 1
	}
	if fn == nil {
		fn = ease.Linear
	}
	p := float64(elapsed) / float64(duration)
	switch {
	case p < transitionFraction:
		return clamp01(float64(fn(float32(p), 0, 1, transitionFraction)))
	case p > 1-transitionFraction:
		return clamp01(float64(fn(float32(1-p), 0, 1, transitionFraction)))
	default:
		return 1
	}
}

// SceneScheduler is the animation clock: a global frame counter plus the
// active scene and the frames elapsed within it. It cycles forever and takes
// no external input.
type SceneScheduler struct {
	// Duration is the number of frames per scene.
	Duration int
	// Ease shapes the fade ramps. Nil means linear.
	Ease ease.TweenFunc

	frames  uint64
	elapsed int
	current SceneKind
}

// NewSceneScheduler creates a scheduler starting at SceneVision.
func NewSceneScheduler(duration int) *SceneScheduler {
	if duration <= 0 {
		duration = DefaultSceneFrames
	}
	return &SceneScheduler{Duration: duration, Ease: ease.Linear}
}

// Advance counts one frame. When the active scene has run for Duration frames
// the next scene becomes active and its elapsed count restarts at zero.
func (s *SceneScheduler) Advance() {
	s.frames++
	s.elapsed++
	if s.elapsed >= s.Duration {
		s.elapsed = 0
		s.current = s.current.Next()
	}
}

// Frames returns the global frame count.
func (s *SceneScheduler) Frames() uint64 {
	return s.frames
}

// Elapsed returns the frames elapsed in the active scene.
func (s *SceneScheduler) Elapsed() int {
	return s.elapsed
}

// Current returns the active scene.
func (s *SceneScheduler) Current() SceneKind {
	return s.current
}

// Alpha returns the active scene's transition opacity.
func (s *SceneScheduler) Alpha() float64 {
	return TransitionAlphaEase(s.elapsed, s.Duration, s.Ease)
}
