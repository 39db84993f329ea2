package herocanvas

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config tunes pool sizes, timing and debug output. The zero value is not
// useful; start from DefaultConfig or LoadConfigFromEnv.
type Config struct {
	// Particles, Streaks and Polygons are the fixed pool sizes.
	Particles int `env:"HEROCANVAS_PARTICLES" envDefault:"80"`
	Streaks   int `env:"HEROCANVAS_STREAKS"   envDefault:"12"`
	Polygons  int `env:"HEROCANVAS_POLYGONS"  envDefault:"14"`

	// SceneFrames is how long each scene stays active, in frames.
	SceneFrames int `env:"HEROCANVAS_SCENE_FRAMES" envDefault:"420"`
	// TrailCap bounds the number of points a light streak remembers.
	TrailCap int `env:"HEROCANVAS_TRAIL_CAP" envDefault:"60"`
	// PolygonMargin is how far polygons may drift past the edges.
	PolygonMargin float64 `env:"HEROCANVAS_POLYGON_MARGIN" envDefault:"100"`
	// Vignette is the corner darkness in [0, 1].
	Vignette float64 `env:"HEROCANVAS_VIGNETTE" envDefault:"0.55"`

	// Seed fixes the random sequence. Zero picks a random seed.
	Seed uint64 `env:"HEROCANVAS_SEED"`

	// Debug logs frame statistics every DebugEvery frames.
	Debug      bool `env:"HEROCANVAS_DEBUG"`
	DebugEvery int  `env:"HEROCANVAS_DEBUG_EVERY" envDefault:"120"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		Particles:     80,
		Streaks:       12,
		Polygons:      14,
		SceneFrames:   DefaultSceneFrames,
		TrailCap:      DefaultTrailCap,
		PolygonMargin: DefaultPolygonMargin,
		Vignette:      0.55,
		DebugEvery:    120,
	}
}

// LoadConfigFromEnv reads HEROCANVAS_* variables on top of DefaultConfig.
func LoadConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse env: %w", err)
	}
	return cfg.withDefaults(), nil
}

// withDefaults replaces out-of-range values with their defaults. Pool sizes
// may be zero (an empty pool) but not negative.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	c.Particles = max(c.Particles, 0)
	c.Streaks = max(c.Streaks, 0)
	c.Polygons = max(c.Polygons, 0)
	if c.SceneFrames <= 0 {
		c.SceneFrames = d.SceneFrames
	}
	if c.TrailCap <= 0 {
		c.TrailCap = d.TrailCap
	}
	if c.PolygonMargin <= 0 {
		c.PolygonMargin = d.PolygonMargin
	}
	c.Vignette = clamp01(c.Vignette)
	if c.DebugEvery <= 0 {
		c.DebugEvery = d.DebugEvery
	}
	return c
}
