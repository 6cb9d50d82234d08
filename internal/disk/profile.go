// Package disk evaluates the normalised vertical density profile of a thin,
// vertically isothermal accretion disk.
//
// Radius x and height z are in units of the Schwarzschild radius rs. The
// scale height uses sqrt(G·M / (x·rs)³) exactly as the reference model does,
// even though it mixes the dimensionless x with the physical rs; changing it
// would shift the calibrated profile.
package disk

import (
	"math"

	"github.com/san-kum/binarylab/internal/dynamo"
)

// CGS constants. These are fixed by the reference model.
const (
	Boltzmann    = 1.3807e-16    // erg/K
	HydrogenMass = 1.6735575e-24 // g
	Gravitation  = 6.67e-8       // cm³ g⁻¹ s⁻²
	LightSpeed   = 2.99792458e10 // cm/s
	SolarMass    = 1.989e33      // g
)

// UnderflowLimit is the smallest exponent passed to exp; anything lower
// reports zero density.
const UnderflowLimit = -700.0

const (
	DefaultTemperature         = 1e7
	DefaultMeanMolecularWeight = 1.0
	DefaultMass                = 100.0
)

// Params describes the disk and its central object.
type Params struct {
	Temperature         float64 // K
	MeanMolecularWeight float64 // in hydrogen masses
	Mass                float64 // solar masses
}

func DefaultParams() Params {
	return Params{
		Temperature:         DefaultTemperature,
		MeanMolecularWeight: DefaultMeanMolecularWeight,
		Mass:                DefaultMass,
	}
}

func (p Params) Validate() error {
	switch {
	case !(p.Temperature > 0) || math.IsInf(p.Temperature, 0):
		return dynamo.NewParameterError("temperature", p.Temperature, "must be positive and finite")
	case !(p.MeanMolecularWeight > 0) || math.IsInf(p.MeanMolecularWeight, 0):
		return dynamo.NewParameterError("mean_molecular_weight", p.MeanMolecularWeight, "must be positive and finite")
	case !(p.Mass > 0) || math.IsInf(p.Mass, 0):
		return dynamo.NewParameterError("mass", p.Mass, "must be positive and finite")
	}
	return nil
}

// SchwarzschildRadius returns 2GM/c² in cm for a mass in solar masses.
func SchwarzschildRadius(mass float64) float64 {
	return 2 * Gravitation * mass * SolarMass / (LightSpeed * LightSpeed)
}

// ScaleHeight returns sqrt(G·M / (x·rs)³). x must be positive.
func ScaleHeight(x, mass float64) float64 {
	rs := SchwarzschildRadius(mass)
	return math.Sqrt(Gravitation * mass * SolarMass / math.Pow(x*rs, 3))
}

// Exponent returns −H²·μ·mH·(z·rs)² / (2·kB·T).
func Exponent(x, z float64, p Params) float64 {
	rs := SchwarzschildRadius(p.Mass)
	h := ScaleHeight(x, p.Mass)
	zr := z * rs
	return -h * h * p.MeanMolecularWeight * HydrogenMass * zr * zr / (2 * Boltzmann * p.Temperature)
}

// Density returns ρ(x, z)/ρ(x, 0). Radii at or below zero, non-finite
// exponents and exponents under UnderflowLimit yield 0.
func Density(x, z float64, p Params) float64 {
	if !(x > 0) {
		return 0
	}
	e := Exponent(x, z, p)
	if math.IsNaN(e) || math.IsInf(e, 0) || e < UnderflowLimit {
		return 0
	}
	return math.Exp(e)
}

// VerticalProfile samples Density at radius x for each height.
func VerticalProfile(p Params, x float64, heights []float64) []float64 {
	out := make([]float64, len(heights))
	for i, z := range heights {
		out[i] = Density(x, z, p)
	}
	return out
}

// Evaluate samples the density on radii × heights. Values[j][i] holds the
// cell at (radii[i], heights[j]).
func Evaluate(p Params, radii, heights []float64) (*dynamo.Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(radii) == 0 || len(heights) == 0 {
		return nil, dynamo.ErrEmptyDomain
	}
	for _, x := range radii {
		if !(x > 0) {
			return nil, dynamo.NewParameterError("radius", x, "must be positive")
		}
	}

	g := dynamo.NewGrid(radii, heights)
	for j, z := range heights {
		row := g.Values[j]
		for i, x := range radii {
			row[i] = Density(x, z, p)
		}
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// DefaultRadii returns x = 1, 101, …, 9901.
func DefaultRadii() []float64 {
	out := make([]float64, 100)
	for i := range out {
		out[i] = float64(i*100 + 1)
	}
	return out
}

// DefaultHeights returns 100 evenly spaced heights on [−5000, 5000].
func DefaultHeights() []float64 {
	z, _ := dynamo.Axis(-5000, 5000, 100)
	return z
}
