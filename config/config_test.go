package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading embedded defaults: %v", err)
	}

	if cfg.Galaxy.ArmCount != 5 {
		t.Errorf("arm_count = %d, want 5", cfg.Galaxy.ArmCount)
	}
	if cfg.Galaxy.ParticleCount != 100000 {
		t.Errorf("particle_count = %d, want 100000", cfg.Galaxy.ParticleCount)
	}
	if cfg.Galaxy.Size != 1000 {
		t.Errorf("size = %v, want 1000", cfg.Galaxy.Size)
	}
	if cfg.Screen.TargetFPS != 60 {
		t.Errorf("target_fps = %d, want 60", cfg.Screen.TargetFPS)
	}
	if cfg.Audio.Smoothing <= 0 || cfg.Audio.Smoothing >= 1 {
		t.Errorf("smoothing = %v, want inside (0,1)", cfg.Audio.Smoothing)
	}
}

func TestLoadOverridesOnlyPresentFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yaml")
	body := "galaxy:\n  arm_count: 3\n  particle_count: 5000\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading override: %v", err)
	}

	if cfg.Galaxy.ArmCount != 3 {
		t.Errorf("arm_count = %d, want 3", cfg.Galaxy.ArmCount)
	}
	if cfg.Galaxy.ParticleCount != 5000 {
		t.Errorf("particle_count = %d, want 5000", cfg.Galaxy.ParticleCount)
	}
	// Untouched fields keep their defaults.
	if cfg.Galaxy.SpiralFactor != 1.5 {
		t.Errorf("spiral_factor = %v, want default 1.5", cfg.Galaxy.SpiralFactor)
	}
	if cfg.Animation.RotationSpeed != 0.05 {
		t.Errorf("rotation_speed = %v, want default 0.05", cfg.Animation.RotationSpeed)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"arm count below two", "galaxy:\n  arm_count: 1\n"},
		{"zero particles", "galaxy:\n  particle_count: 0\n"},
		{"negative size", "galaxy:\n  size: -10\n"},
		{"zero spiral factor", "galaxy:\n  spiral_factor: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tt.body), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Galaxy.ArmCount = 7

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("writing snapshot: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("reloading snapshot: %v", err)
	}
	if back.Galaxy.ArmCount != 7 {
		t.Errorf("round-tripped arm_count = %d, want 7", back.Galaxy.ArmCount)
	}
}
