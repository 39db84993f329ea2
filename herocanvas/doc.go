// Package herocanvas renders the animated hero background of the 3D Coaching
// site: three pools of independently animated elements (ambient particles,
// light streaks and drifting polygons) layered over a rotating sequence of
// five vector illustrations, finished with a vignette.
//
// The engine never talks to a window or a GPU directly. It draws through the
// immediate-mode [Context] returned by a [Canvas], sizes itself from a
// [Viewport], and is driven by a [FrameRequester] that invokes one callback
// per display refresh:
//
//	canvas := raster.New(800, 600)
//	eng := herocanvas.New(canvas, &herocanvas.FixedViewport{W: 800, H: 600}, herocanvas.DefaultConfig())
//	host := &herocanvas.QueueHost{}
//	eng.Start(host)
//	for range 420 {
//		host.Pump()
//	}
//
// Backends live in sibling packages: ebitenhost draws with [Ebitengine] and
// owns the window loop, raster draws into an [image.RGBA] in software.
//
// # Timing
//
// All motion is counted in frames, not seconds. Each scene stays active for
// [Config.SceneFrames] frames (420 by default) and fades in and out over the
// first and last tenth of that window.
//
// # Pools
//
// Pools are fixed-size arenas. Elements that expire or drift out of bounds
// are reinitialized in place on the update that notices it, so the pool never
// grows or shrinks after [New].
//
// [Ebitengine]: https://ebitengine.org
package herocanvas
