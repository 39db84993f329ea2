package herocanvas

import "time"

// debugStats holds per-frame timing and pool metrics.
// Only populated when the engine is in debug mode.
type debugStats struct {
	sceneTime    time.Duration
	poolTime     time.Duration
	vignetteTime time.Duration
	respawns     uint64
}

// debugLog prints timing and pool stats through the engine logger.
func (e *Engine) debugLog(stats debugStats) {
	total := stats.sceneTime + stats.poolTime + stats.vignetteTime
	e.logger.Printf("frame %d | scene %s alpha %.2f | scene: %v | pools: %v | vignette: %v | total: %v",
		e.clock.Frames(), e.clock.Current(), e.clock.Alpha(),
		stats.sceneTime, stats.poolTime, stats.vignetteTime, total)
	e.logger.Printf("particles: %d | streaks: %d | polygons: %d | respawns: %d | skipped frames: %d",
		e.particles.Len(), e.streaks.Len(), e.polygons.Len(), stats.respawns, e.skipped)
}
