package herocanvas

import (
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"os"
	"time"
)

// Engine owns every piece of mutable animation state: the clock, the three
// element pools, the surface and the random source. Construct one per page
// (or window); instances are independent.
//
// Engine is not safe for concurrent use. Frames, resizes and Stop must all
// happen on the goroutine that drives the host.
type Engine struct {
	cfg     Config
	canvas  Canvas
	surface *Surface
	rng     *rand.Rand
	clock   *SceneScheduler

	particles *Pool[AmbientParticle, *AmbientParticle]
	streaks   *Pool[LightStreak, *LightStreak]
	polygons  *Pool[DriftingPolygon, *DriftingPolygon]

	vignette     *Gradient
	vignetteW    float64
	vignetteH    float64
	vignetteDark float64

	host    FrameRequester
	tickFn  func()
	running bool
	skipped uint64

	logger *log.Logger
	debug  bool
}

// New creates an engine drawing into canvas, sized from vp. If canvas is nil
// the engine is disabled: Start never schedules and Frame does nothing.
func New(canvas Canvas, vp Viewport, cfg Config) *Engine {
	cfg = cfg.withDefaults()
	e := &Engine{
		cfg:    cfg,
		logger: log.New(os.Stderr, "[herocanvas] ", log.LstdFlags),
		debug:  cfg.Debug,
	}
	if canvas == nil {
		return e
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	e.canvas = canvas
	e.surface = NewSurface(canvas, vp)
	e.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	e.clock = NewSceneScheduler(cfg.SceneFrames)

	e.particles = NewPool[AmbientParticle](cfg.Particles, nil)
	e.streaks = NewPool(cfg.Streaks, func(s *LightStreak) {
		s.Trail = NewTrail(cfg.TrailCap)
	})
	e.polygons = NewPool(cfg.Polygons, func(d *DriftingPolygon) {
		d.Margin = cfg.PolygonMargin
	})

	w, h := e.surface.Size()
	e.particles.Spawn(e.rng, w, h)
	e.streaks.Spawn(e.rng, w, h)
	e.polygons.Spawn(e.rng, w, h)

	e.tickFn = e.tick
	return e
}

// Enabled reports whether the engine has a canvas to draw on.
func (e *Engine) Enabled() bool {
	return e.canvas != nil
}

// SetLogger replaces the logger used for skipped frames and debug output.
func (e *Engine) SetLogger(l *log.Logger) {
	if l != nil {
		e.logger = l
	}
}

// SetDebugMode enables or disables periodic frame statistics.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// Start registers the frame loop with host. Each callback draws one frame and
// requests the next. Calling Start on a running or disabled engine does
// nothing.
func (e *Engine) Start(host FrameRequester) {
	if !e.Enabled() || e.running || host == nil {
		return
	}
	e.host = host
	e.running = true
	host.RequestFrame(e.tickFn)
}

// Stop ends the frame loop. The callback already queued with the host, if
// any, runs once more as a no-op and does not reschedule.
func (e *Engine) Stop() {
	e.running = false
}

// Running reports whether the frame loop is scheduled.
func (e *Engine) Running() bool {
	return e.running
}

func (e *Engine) tick() {
	if !e.running {
		return
	}
	if err := e.Frame(); err != nil {
		e.logger.Printf("skipped frame: %v", err)
	}
	if e.running {
		e.host.RequestFrame(e.tickFn)
	}
}

// Resize re-reads the viewport and resizes the canvas. Element positions are
// left untouched; elements that end up out of bounds reinitialize themselves
// on their next update.
func (e *Engine) Resize() {
	if !e.Enabled() {
		return
	}
	e.surface.Resize()
}

// Size returns the current surface size.
func (e *Engine) Size() (w, h float64) {
	if !e.Enabled() {
		return 0, 0
	}
	return e.surface.Size()
}

// Scheduler exposes the animation clock for inspection.
func (e *Engine) Scheduler() *SceneScheduler {
	return e.clock
}

// Particles, Streaks and Polygons expose the pools for inspection.
func (e *Engine) Particles() *Pool[AmbientParticle, *AmbientParticle] { return e.particles }
func (e *Engine) Streaks() *Pool[LightStreak, *LightStreak]           { return e.streaks }
func (e *Engine) Polygons() *Pool[DriftingPolygon, *DriftingPolygon]  { return e.polygons }

// Skipped returns how many frames failed to draw.
func (e *Engine) Skipped() uint64 {
	return e.skipped
}

// Frame advances the clock and draws one frame: the active scene at its
// transition alpha, then particles, streaks and polygons, then the vignette.
//
// A panic raised while drawing is recovered and returned as an error; the
// clock has already advanced, so a bad frame is skipped rather than retried.
func (e *Engine) Frame() error {
	if !e.Enabled() {
		return nil
	}
	e.clock.Advance()
	if err := e.draw(); err != nil {
		e.skipped++
		return err
	}
	return nil
}

func (e *Engine) draw() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("draw frame %d: %v", e.clock.Frames(), r)
		}
	}()

	var stats debugStats
	var t0 time.Time
	debugFrame := e.debug && e.clock.Frames()%uint64(e.cfg.DebugEvery) == 0
	if debugFrame {
		t0 = time.Now()
	}

	ctx := e.canvas.Context()
	w, h := e.surface.Size()
	ctx.Reset()
	ctx.Clear()

	e.clock.Current().Render(ctx, w, h, float64(e.clock.Frames()), e.clock.Alpha())

	if debugFrame {
		stats.sceneTime = time.Since(t0)
		t0 = time.Now()
	}

	e.particles.Step(ctx, e.rng, w, h)
	e.streaks.Step(ctx, e.rng, w, h)
	e.polygons.Step(ctx, e.rng, w, h)

	if debugFrame {
		stats.poolTime = time.Since(t0)
		t0 = time.Now()
	}

	e.drawVignette(ctx, w, h)

	if debugFrame {
		stats.vignetteTime = time.Since(t0)
		stats.respawns = e.particles.Respawns() + e.streaks.Respawns() + e.polygons.Respawns()
		e.debugLog(stats)
	}
	return nil
}

// drawVignette darkens the corners with a radial gradient. The gradient is
// rebuilt only when the surface size changes.
func (e *Engine) drawVignette(ctx Context, w, h float64) {
	dark := e.cfg.Vignette
	if w <= 0 || h <= 0 || dark <= 0 {
		return
	}
	if e.vignette == nil || e.vignetteW != w || e.vignetteH != h || e.vignetteDark != dark {
		r := math.Hypot(w, h) / 2
		e.vignette = NewRadialGradient(w/2, h/2, 0, r).
			AddStop(0, PaletteMidnight.WithAlpha(0)).
			AddStop(0.4, PaletteMidnight.WithAlpha(0)).
			AddStop(1, PaletteMidnight.WithAlpha(dark))
		e.vignetteW, e.vignetteH, e.vignetteDark = w, h, dark
	}
	ctx.SetGlobalAlpha(1)
	ctx.FillRect(0, 0, w, h, e.vignette)
}
