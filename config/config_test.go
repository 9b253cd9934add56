package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Plane.Width != 35 || cfg.Plane.Height != 20 {
		t.Errorf("expected 35x20 plane, got %gx%g", cfg.Plane.Width, cfg.Plane.Height)
	}
	if cfg.Plane.SegmentsX != 128 || cfg.Plane.SegmentsY != 128 {
		t.Errorf("expected 128x128 segments, got %dx%d", cfg.Plane.SegmentsX, cfg.Plane.SegmentsY)
	}
	if cfg.Interaction.Radius != 3.0 {
		t.Errorf("expected radius 3.0, got %g", cfg.Interaction.Radius)
	}
	if cfg.Interaction.Smoothing != 0.1 {
		t.Errorf("expected smoothing 0.1, got %g", cfg.Interaction.Smoothing)
	}
	if cfg.Points.BaseSize != 3.0 || cfg.Points.ReferenceDistance != 15.0 {
		t.Errorf("expected point base 3.0 / ref dist 15.0, got %g / %g",
			cfg.Points.BaseSize, cfg.Points.ReferenceDistance)
	}
}

func TestDerivedValues(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := (cfg.Plane.SegmentsX + 1) * (cfg.Plane.SegmentsY + 1)
	if cfg.Derived.VertexCount != want {
		t.Errorf("expected %d vertices, got %d", want, cfg.Derived.VertexCount)
	}
	if cfg.Derived.HalfWidth != cfg.Plane.Width/2 {
		t.Errorf("expected half width %g, got %g", cfg.Plane.Width/2, cfg.Derived.HalfWidth)
	}
}

func TestLoadOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	data := []byte("wave:\n  amplitude: 2.5\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Wave.Amplitude != 2.5 {
		t.Errorf("expected overridden amplitude 2.5, got %g", cfg.Wave.Amplitude)
	}
	// Untouched fields keep defaults
	if cfg.Interaction.Radius != 3.0 {
		t.Errorf("expected default radius 3.0, got %g", cfg.Interaction.Radius)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero plane width", func(c *Config) { c.Plane.Width = 0 }},
		{"zero segments", func(c *Config) { c.Plane.SegmentsX = 0 }},
		{"zero radius", func(c *Config) { c.Interaction.Radius = 0 }},
		{"smoothing above one", func(c *Config) { c.Interaction.Smoothing = 1.5 }},
		{"zero smoothing", func(c *Config) { c.Interaction.Smoothing = 0 }},
		{"zero base size", func(c *Config) { c.Points.BaseSize = 0 }},
		{"zero reference distance", func(c *Config) { c.Points.ReferenceDistance = 0 }},
		{"zero camera distance", func(c *Config) { c.Camera.Distance = 0 }},
		{"inverted pitch range", func(c *Config) { c.Camera.PitchMin = 2; c.Camera.PitchMax = 1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load("")
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load round trip: %v", err)
	}
	if back.Wave != cfg.Wave || back.Interaction != cfg.Interaction {
		t.Error("round trip changed parameters")
	}
}
