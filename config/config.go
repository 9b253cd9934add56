// Package config provides configuration loading and access for the particle field.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all particle field configuration parameters.
type Config struct {
	Screen      ScreenConfig      `yaml:"screen"`
	Plane       PlaneConfig       `yaml:"plane"`
	Wave        WaveConfig        `yaml:"wave"`
	Interaction InteractionConfig `yaml:"interaction"`
	Points      PointsConfig      `yaml:"points"`
	Camera      CameraConfig      `yaml:"camera"`
	Telemetry   TelemetryConfig   `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// PlaneConfig holds the lattice geometry: plane extents in world units and
// subdivision counts. Vertex count is (SegmentsX+1) * (SegmentsY+1).
type PlaneConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	SegmentsX int     `yaml:"segments_x"`
	SegmentsY int     `yaml:"segments_y"`
}

// WaveConfig holds the base wave parameters.
type WaveConfig struct {
	Speed     float64 `yaml:"speed"`
	Frequency float64 `yaml:"frequency"`
	Amplitude float64 `yaml:"amplitude"`

	// Simplex noise layer on top of the two-sine base wave.
	// Strength 0 disables it.
	NoiseDensity  float64 `yaml:"noise_density"`
	NoiseStrength float64 `yaml:"noise_strength"`
}

// InteractionConfig holds pointer ripple parameters.
type InteractionConfig struct {
	Radius         float64 `yaml:"radius"`          // world units; ripple influence is zero beyond this
	RippleFreq     float64 `yaml:"ripple_freq"`     // spatial frequency k
	RippleSpeed    float64 `yaml:"ripple_speed"`    // temporal frequency omega
	RippleStrength float64 `yaml:"ripple_strength"` // peak ripple amplitude
	Smoothing      float64 `yaml:"smoothing"`       // per-frame hover intensity lerp factor
}

// PointsConfig holds per-point rendering parameters.
type PointsConfig struct {
	BaseSize          float64     `yaml:"base_size"`
	ReferenceDistance float64     `yaml:"reference_distance"`
	Color             ColorConfig `yaml:"color"`
}

// ColorConfig is an RGB triple with components in [0, 1].
type ColorConfig struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
}

// CameraConfig holds the restricted orbit camera settings.
// Angles and ranges are in radians; fov_y is in degrees to match raylib.
type CameraConfig struct {
	Distance float64 `yaml:"distance"`
	FovY     float64 `yaml:"fov_y"`
	Yaw      float64 `yaml:"yaw"`
	Pitch    float64 `yaml:"pitch"`
	YawRange float64 `yaml:"yaw_range"` // max deviation from initial yaw, each direction
	PitchMin float64 `yaml:"pitch_min"`
	PitchMax float64 `yaml:"pitch_max"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"` // seconds per stats window
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	VertexCount int     // (SegmentsX+1) * (SegmentsY+1)
	HalfWidth   float64 // Plane.Width / 2; pointer x projection scale
	HalfHeight  float64 // Plane.Height / 2; pointer y projection scale
	ScreenW32   float32
	ScreenH32   float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// Validate checks that loaded parameters are usable. The field math divides
// by the interaction radius and the reference distance, so zeros are rejected
// here instead of surfacing as NaN geometry at runtime.
func (c *Config) Validate() error {
	if c.Plane.Width <= 0 || c.Plane.Height <= 0 {
		return fmt.Errorf("config: plane extents must be positive, got %gx%g", c.Plane.Width, c.Plane.Height)
	}
	if c.Plane.SegmentsX < 1 || c.Plane.SegmentsY < 1 {
		return fmt.Errorf("config: plane subdivisions must be >= 1, got %dx%d", c.Plane.SegmentsX, c.Plane.SegmentsY)
	}
	if c.Interaction.Radius <= 0 {
		return fmt.Errorf("config: interaction radius must be positive, got %g", c.Interaction.Radius)
	}
	if c.Interaction.Smoothing <= 0 || c.Interaction.Smoothing > 1 {
		return fmt.Errorf("config: smoothing must be in (0, 1], got %g", c.Interaction.Smoothing)
	}
	if c.Points.BaseSize <= 0 {
		return fmt.Errorf("config: point base size must be positive, got %g", c.Points.BaseSize)
	}
	if c.Points.ReferenceDistance <= 0 {
		return fmt.Errorf("config: reference distance must be positive, got %g", c.Points.ReferenceDistance)
	}
	if c.Camera.Distance <= 0 {
		return fmt.Errorf("config: camera distance must be positive, got %g", c.Camera.Distance)
	}
	if c.Camera.PitchMin > c.Camera.PitchMax {
		return fmt.Errorf("config: pitch_min %g exceeds pitch_max %g", c.Camera.PitchMin, c.Camera.PitchMax)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.VertexCount = (c.Plane.SegmentsX + 1) * (c.Plane.SegmentsY + 1)
	c.Derived.HalfWidth = c.Plane.Width / 2
	c.Derived.HalfHeight = c.Plane.Height / 2
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
