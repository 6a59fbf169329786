// Package config provides configuration loading and access for the
// visualizer.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all visualizer configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Galaxy    GalaxyConfig    `yaml:"galaxy"`
	Animation AnimationConfig `yaml:"animation"`
	Audio     AudioConfig     `yaml:"audio"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// GalaxyConfig holds the structural generation parameters. Changing any of
// these at runtime regenerates the point cloud.
type GalaxyConfig struct {
	ArmCount      int         `yaml:"arm_count"`      // spiral arms, >= 2
	ArmWidth      float64     `yaml:"arm_width"`      // radial jitter per arm, [0,1]
	SpiralFactor  float64     `yaml:"spiral_factor"`  // winding turns center to edge
	ParticleCount int         `yaml:"particle_count"` // points generated
	Size          float64     `yaml:"size"`           // outer disk radius, world units
	Randomness    float64     `yaml:"randomness"`     // structure-independent jitter, [0,1]
	ColorShift    float64     `yaml:"color_shift"`    // gradient progression with radius, [0,1]
	CoreColor     ColorConfig `yaml:"core_color"`
	ArmColor      ColorConfig `yaml:"arm_color"`
}

// AnimationConfig holds parameters read live each frame. Changing these
// never regenerates the cloud.
type AnimationConfig struct {
	RotationSpeed   float64 `yaml:"rotation_speed"`   // radians per second
	PulseIntensity  float64 `yaml:"pulse_intensity"`  // breathing amplitude
	AudioReactivity float64 `yaml:"audio_reactivity"` // loudness gain
	CoreSize        float64 `yaml:"core_size"`        // glow radius, world units
	CoreIntensity   float64 `yaml:"core_intensity"`   // glow base brightness
	DustDensity     float64 `yaml:"dust_density"`     // dust haze alpha, [0,1]
}

// AudioConfig holds playback and analysis settings.
type AudioConfig struct {
	RingSize   int     `yaml:"ring_size"`   // tap ring buffer, samples
	WindowSize int     `yaml:"window_size"` // samples analyzed per frame
	Smoothing  float64 `yaml:"smoothing"`   // band smoothing factor, [0,1)
}

// TelemetryConfig holds frame statistics parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`          // seconds per stats window
	PerfCollectorWindow int     `yaml:"perf_collector_window"` // frames averaged for perf
}

// ColorConfig is an RGB triple with channels in [0,1].
type ColorConfig struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults
// if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into the same struct - only overwrites fields present
		// in the file.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate rejects parameter values the generator cannot work with.
func (c *Config) validate() error {
	g := c.Galaxy
	switch {
	case g.ArmCount < 2:
		return fmt.Errorf("galaxy.arm_count must be >= 2, got %d", g.ArmCount)
	case g.ParticleCount < 1:
		return fmt.Errorf("galaxy.particle_count must be > 0, got %d", g.ParticleCount)
	case g.Size <= 0:
		return fmt.Errorf("galaxy.size must be > 0, got %v", g.Size)
	case g.SpiralFactor <= 0:
		return fmt.Errorf("galaxy.spiral_factor must be > 0, got %v", g.SpiralFactor)
	}
	return nil
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
