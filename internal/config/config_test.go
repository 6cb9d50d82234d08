package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/binarylab/internal/dynamo"
	"github.com/san-kum/binarylab/internal/orbit"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Orbit.SemiMajorAxis != 5 {
		t.Errorf("expected a=5, got %f", cfg.Orbit.SemiMajorAxis)
	}
	if cfg.Roche.Resolution != 200 {
		t.Errorf("expected resolution 200, got %d", cfg.Roche.Resolution)
	}
	if cfg.Spin.Distance != 120 {
		t.Errorf("expected spin distance 120, got %f", cfg.Spin.Distance)
	}
	if f, _ := cfg.OrbitFrame(); f != orbit.Inertial {
		t.Errorf("expected inertial frame, got %v", f)
	}
}

func TestLoad_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binary.yaml")
	data := []byte("orbit:\n  eccentricity: 0.4\n  frame: observer\ndisk:\n  temperature: 2.5e6\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Orbit.Eccentricity != 0.4 || cfg.Orbit.Frame != "observer" {
		t.Errorf("orbit section not applied: %+v", cfg.Orbit)
	}
	if cfg.Orbit.SemiMajorAxis != 5 {
		t.Errorf("unset field lost its default: a=%f", cfg.Orbit.SemiMajorAxis)
	}
	if cfg.Disk.Temperature != 2.5e6 || cfg.Disk.Mass != 100 {
		t.Errorf("disk section wrong: %+v", cfg.Disk)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("orbit: [1, 2"), 0644)
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	cfg := GetPreset("orbit", "rotating")
	cfg.Roche.Resolution = 64

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *got != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		param  string
	}{
		{"eccentricity", func(c *Config) { c.Orbit.Eccentricity = 1 }, "eccentricity"},
		{"dt", func(c *Config) { c.Orbit.Dt = 0 }, "dt"},
		{"steps", func(c *Config) { c.Orbit.Steps = 0 }, "steps"},
		{"roche mass", func(c *Config) { c.Roche.M2 = 0 }, "m2"},
		{"resolution", func(c *Config) { c.Roche.Resolution = 1 }, "resolution"},
		{"disk temperature", func(c *Config) { c.Disk.Temperature = -1 }, "temperature"},
		{"disk radius", func(c *Config) { c.Disk.Radius = 0 }, "radius"},
		{"spin distance", func(c *Config) { c.Spin.Distance = 0 }, "distance"},
		{"lock", func(c *Config) { c.Spin.Lock = "wobbly" }, "lock_state"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			var pe *dynamo.ParameterError
			if !errors.As(err, &pe) {
				t.Fatalf("expected ParameterError, got %v", err)
			}
			if pe.Name != tt.param {
				t.Errorf("expected parameter %q, got %q", tt.param, pe.Name)
			}
		})
	}

	cfg := DefaultConfig()
	cfg.Orbit.Frame = "galactic"
	if err := cfg.Validate(); !errors.Is(err, dynamo.ErrUnknownFrame) {
		t.Errorf("expected unknown frame, got %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("orbit", "eccentric")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Orbit.Eccentricity != 0.6 {
		t.Errorf("expected e=0.6, got %f", cfg.Orbit.Eccentricity)
	}

	cfg.Orbit.Eccentricity = 0
	if GetPreset("orbit", "eccentric").Orbit.Eccentricity != 0.6 {
		t.Error("modifying a returned preset changed the registry")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("orbit", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "circular") != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestPresetsValid(t *testing.T) {
	for _, model := range Models() {
		for _, name := range ListPresets(model) {
			if err := GetPreset(model, name).Validate(); err != nil {
				t.Errorf("preset %s/%s invalid: %v", model, name, err)
			}
		}
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("roche")
	if len(presets) == 0 {
		t.Fatal("expected presets for roche")
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] > presets[i] {
			t.Errorf("presets not sorted: %v", presets)
		}
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent model")
	}
}
