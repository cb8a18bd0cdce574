package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := Default()
	if *cfg != *def {
		t.Fatalf("cfg = %+v; want defaults %+v", cfg, def)
	}
}

func TestLoadLayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[display]
width = 80

[fishing]
base_chance = 0.5

[timing]
response_threshold = 2000000000
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Display.Width != 80 {
		t.Fatalf("width = %d; want 80", cfg.Display.Width)
	}
	if cfg.Fishing.BaseChance != 0.5 {
		t.Fatalf("base chance = %v; want 0.5", cfg.Fishing.BaseChance)
	}
	if cfg.Timing.ResponseThreshold != 2*time.Second {
		t.Fatalf("threshold = %v; want 2s", cfg.Timing.ResponseThreshold)
	}

	// Untouched sections keep their defaults.
	if cfg.Display.Height != Default().Display.Height {
		t.Fatalf("height = %d; want default", cfg.Display.Height)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("display = ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("malformed config loaded without error")
	}
}
