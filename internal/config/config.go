package config

import (
	"fmt"
	"os"

	"github.com/san-kum/binarylab/internal/disk"
	"github.com/san-kum/binarylab/internal/dynamo"
	"github.com/san-kum/binarylab/internal/orbit"
	"github.com/san-kum/binarylab/internal/roche"
	"github.com/san-kum/binarylab/internal/spin"
	"github.com/san-kum/binarylab/internal/trail"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDt          = 0.016
	DefaultSteps       = 1000
	DefaultFrame       = "inertial"
	DefaultDiskRadius  = 101.0
	DefaultSpinFrame   = "observer"
	DefaultLockState   = "synchronous"
	DefaultTrailLength = trail.DefaultCapacity
)

type Config struct {
	Orbit OrbitConfig `yaml:"orbit"`
	Roche RocheConfig `yaml:"roche"`
	Disk  DiskConfig  `yaml:"disk"`
	Spin  SpinConfig  `yaml:"spin"`
}

type OrbitConfig struct {
	SemiMajorAxis float64 `yaml:"semi_major_axis"`
	Eccentricity  float64 `yaml:"eccentricity"`
	MassRatio     float64 `yaml:"mass_ratio"`
	Speed         float64 `yaml:"speed"`
	Frame         string  `yaml:"frame"`
	Dt            float64 `yaml:"dt"`
	Steps         int     `yaml:"steps"`
	TrailLength   int     `yaml:"trail_length"`
}

type RocheConfig struct {
	M1         float64 `yaml:"m1"`
	M2         float64 `yaml:"m2"`
	Separation float64 `yaml:"separation"`
	Omega      float64 `yaml:"omega"`
	Resolution int     `yaml:"resolution"`
}

type DiskConfig struct {
	Temperature         float64 `yaml:"temperature"`
	MeanMolecularWeight float64 `yaml:"mu"`
	Mass                float64 `yaml:"mass"`
	Radius              float64 `yaml:"radius"`
}

type SpinConfig struct {
	PrimaryMass   float64 `yaml:"primary_mass"`
	CompanionMass float64 `yaml:"companion_mass"`
	Distance      float64 `yaml:"distance"`
	Lock          string  `yaml:"lock"`
	Frame         string  `yaml:"frame"`
}

func DefaultConfig() *Config {
	op := orbit.DefaultParams()
	rp := roche.DefaultParams()
	dp := disk.DefaultParams()
	sys := spin.DefaultSystem()

	return &Config{
		Orbit: OrbitConfig{
			SemiMajorAxis: op.SemiMajorAxis,
			Eccentricity:  op.Eccentricity,
			MassRatio:     op.MassRatio,
			Speed:         op.Rate,
			Frame:         DefaultFrame,
			Dt:            DefaultDt,
			Steps:         DefaultSteps,
			TrailLength:   DefaultTrailLength,
		},
		Roche: RocheConfig{
			M1:         rp.M1,
			M2:         rp.M2,
			Separation: rp.Separation,
			Omega:      rp.Omega,
			Resolution: roche.DefaultResolution,
		},
		Disk: DiskConfig{
			Temperature:         dp.Temperature,
			MeanMolecularWeight: dp.MeanMolecularWeight,
			Mass:                dp.Mass,
			Radius:              DefaultDiskRadius,
		},
		Spin: SpinConfig{
			PrimaryMass:   sys.PrimaryMass,
			CompanionMass: sys.CompanionMass,
			Distance:      sys.Distance,
			Lock:          DefaultLockState,
			Frame:         DefaultSpinFrame,
		},
	}
}

// Load reads a YAML file on top of the defaults, so a file may set only
// the fields it cares about.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) OrbitParams() orbit.Params {
	return orbit.Params{
		SemiMajorAxis: c.Orbit.SemiMajorAxis,
		Eccentricity:  c.Orbit.Eccentricity,
		MassRatio:     c.Orbit.MassRatio,
		Rate:          c.Orbit.Speed,
	}
}

func (c *Config) OrbitFrame() (orbit.Frame, error) {
	return orbit.ParseFrame(c.Orbit.Frame)
}

func (c *Config) RocheParams() roche.Params {
	return roche.Params{
		M1:         c.Roche.M1,
		M2:         c.Roche.M2,
		Separation: c.Roche.Separation,
		Omega:      c.Roche.Omega,
	}
}

func (c *Config) DiskParams() disk.Params {
	return disk.Params{
		Temperature:         c.Disk.Temperature,
		MeanMolecularWeight: c.Disk.MeanMolecularWeight,
		Mass:                c.Disk.Mass,
	}
}

func (c *Config) SpinSystem() spin.System {
	return spin.System{
		PrimaryMass:   c.Spin.PrimaryMass,
		CompanionMass: c.Spin.CompanionMass,
		Distance:      c.Spin.Distance,
	}
}

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	if err := c.OrbitParams().Validate(); err != nil {
		return fmt.Errorf("orbit: %w", err)
	}
	if _, err := c.OrbitFrame(); err != nil {
		return fmt.Errorf("orbit: %w", err)
	}
	if !(c.Orbit.Dt > 0) {
		return fmt.Errorf("orbit: %w", dynamo.NewParameterError("dt", c.Orbit.Dt, "must be positive"))
	}
	if c.Orbit.Steps <= 0 {
		return fmt.Errorf("orbit: %w", dynamo.NewParameterError("steps", float64(c.Orbit.Steps), "must be positive"))
	}
	if c.Orbit.TrailLength < 0 {
		return fmt.Errorf("orbit: %w", dynamo.NewParameterError("trail_length", float64(c.Orbit.TrailLength), "must not be negative"))
	}

	if err := c.RocheParams().Validate(); err != nil {
		return fmt.Errorf("roche: %w", err)
	}
	if c.Roche.Resolution < 2 {
		return fmt.Errorf("roche: %w", dynamo.NewParameterError("resolution", float64(c.Roche.Resolution), "need at least 2 points per axis"))
	}

	if err := c.DiskParams().Validate(); err != nil {
		return fmt.Errorf("disk: %w", err)
	}
	if !(c.Disk.Radius > 0) {
		return fmt.Errorf("disk: %w", dynamo.NewParameterError("radius", c.Disk.Radius, "must be positive"))
	}

	if err := c.SpinSystem().Validate(); err != nil {
		return fmt.Errorf("spin: %w", err)
	}
	if _, err := spin.ParseLockState(c.Spin.Lock); err != nil {
		return fmt.Errorf("spin: %w", err)
	}
	if _, err := spin.ParseFrame(c.Spin.Frame); err != nil {
		return fmt.Errorf("spin: %w", err)
	}
	return nil
}
