package orbit

import (
	"math"

	"github.com/san-kum/binarylab/internal/dynamo"
)

const (
	DefaultSemiMajorAxis = 5.0
	DefaultEccentricity  = 0.0
	DefaultMassRatio     = 1.0
	DefaultRate          = 1.0

	// MaxEccentricity bounds interactive input; the model itself accepts e < 1.
	MaxEccentricity = 0.9
)

// Params is an immutable orbit configuration.
type Params struct {
	SemiMajorAxis float64 // a > 0
	Eccentricity  float64 // e in [0, 1)
	MassRatio     float64 // q = m2/m1 > 0
	Rate          float64 // angular rate; magnitude is playback speed
}

func DefaultParams() Params {
	return Params{
		SemiMajorAxis: DefaultSemiMajorAxis,
		Eccentricity:  DefaultEccentricity,
		MassRatio:     DefaultMassRatio,
		Rate:          DefaultRate,
	}
}

// Mu returns the secondary's share of the total mass, q/(1+q).
func (p Params) Mu() float64 {
	return p.MassRatio / (1 + p.MassRatio)
}

// Validate rejects configurations that would produce degenerate geometry.
func (p Params) Validate() error {
	switch {
	case !(p.SemiMajorAxis > 0) || math.IsInf(p.SemiMajorAxis, 0):
		return dynamo.NewParameterError("semi_major_axis", p.SemiMajorAxis, "must be positive and finite")
	case !(p.Eccentricity >= 0 && p.Eccentricity < 1):
		return dynamo.NewParameterError("eccentricity", p.Eccentricity, "must be in [0, 1)")
	case !(p.MassRatio > 0) || math.IsInf(p.MassRatio, 0):
		return dynamo.NewParameterError("mass_ratio", p.MassRatio, "must be positive and finite")
	case math.IsNaN(p.Rate) || math.IsInf(p.Rate, 0):
		return dynamo.NewParameterError("rate", p.Rate, "must be finite")
	}
	return nil
}
