package herocanvas

import (
	"strings"
	"testing"
)

func TestLoadConfigFromEnvDefaults(t *testing.T) {
	cfg, err := LoadConfigFromEnv()
	if err != nil {
		t.Fatalf("LoadConfigFromEnv: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("cfg = %+v, want defaults %+v", cfg, DefaultConfig())
	}
}

func TestLoadConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("HEROCANVAS_PARTICLES", "12")
	t.Setenv("HEROCANVAS_SCENE_FRAMES", "60")
	t.Setenv("HEROCANVAS_VIGNETTE", "0.2")
	t.Setenv("HEROCANVAS_SEED", "99")
	t.Setenv("HEROCANVAS_DEBUG", "true")

	cfg, err := LoadConfigFromEnv()
	if err != nil {
		t.Fatalf("LoadConfigFromEnv: %v", err)
	}
	if cfg.Particles != 12 || cfg.SceneFrames != 60 || cfg.Seed != 99 || !cfg.Debug {
		t.Errorf("cfg = %+v", cfg)
	}
	assertNear(t, "vignette", cfg.Vignette, 0.2)
	if cfg.Streaks != 12 || cfg.Polygons != 14 {
		t.Errorf("unset fields changed: streaks=%d polygons=%d", cfg.Streaks, cfg.Polygons)
	}
}

func TestLoadConfigFromEnvClamps(t *testing.T) {
	t.Setenv("HEROCANVAS_SCENE_FRAMES", "0")
	t.Setenv("HEROCANVAS_TRAIL_CAP", "-4")
	t.Setenv("HEROCANVAS_VIGNETTE", "3")
	t.Setenv("HEROCANVAS_POLYGONS", "-1")

	cfg, err := LoadConfigFromEnv()
	if err != nil {
		t.Fatalf("LoadConfigFromEnv: %v", err)
	}
	if cfg.SceneFrames != DefaultSceneFrames || cfg.TrailCap != DefaultTrailCap {
		t.Errorf("frames=%d trail=%d, want defaults", cfg.SceneFrames, cfg.TrailCap)
	}
	assertNear(t, "vignette", cfg.Vignette, 1)
	if cfg.Polygons != 0 {
		t.Errorf("polygons = %d, want 0", cfg.Polygons)
	}
}

func TestLoadConfigFromEnvInvalid(t *testing.T) {
	t.Setenv("HEROCANVAS_PARTICLES", "lots")
	_, err := LoadConfigFromEnv()
	if err == nil {
		t.Fatal("expected error for non-numeric particle count")
	}
	if !strings.Contains(err.Error(), "parse env") {
		t.Errorf("err = %v, want parse env prefix", err)
	}
}
