package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultMatchesEmbedded(t *testing.T) {
	loaded, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// The embedded YAML and the hardcoded fallback must agree.
	if loaded != Default() {
		t.Errorf("embedded defaults differ from hardcoded: %+v vs %+v", loaded, Default())
	}
}

func TestDefaultValues(t *testing.T) {
	cfg := Default()

	if cfg.Screen.Width != 80 || cfg.Screen.Height != 50 {
		t.Errorf("unexpected screen size %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Physics.Gravity != 0.2 {
		t.Errorf("gravity = %v, expected 0.2", cfg.Physics.Gravity)
	}
	if cfg.Physics.FlapVelocity != -2.0 {
		t.Errorf("flap velocity = %v, expected -2.0", cfg.Physics.FlapVelocity)
	}
	if cfg.Physics.FrameDurationMs != 75.0 {
		t.Errorf("frame duration = %v, expected 75", cfg.Physics.FrameDurationMs)
	}
	if cfg.Obstacles.SpawnIntervalMs != 1500 {
		t.Errorf("spawn interval = %v, expected 1500", cfg.Obstacles.SpawnIntervalMs)
	}
	if cfg.Obstacles.CullMargin != 20 {
		t.Errorf("cull margin = %v, expected 20", cfg.Obstacles.CullMargin)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")

	data := []byte("physics:\n  gravity: 0.5\nscreen:\n  width: 100\n  height: 40\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("cannot write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Physics.Gravity != 0.5 {
		t.Errorf("gravity = %v, expected 0.5", cfg.Physics.Gravity)
	}
	if cfg.Screen.Width != 100 {
		t.Errorf("width = %d, expected 100", cfg.Screen.Width)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with missing custom path should fail")
	}
}
