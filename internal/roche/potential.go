package roche

import (
	"math"

	"github.com/san-kum/binarylab/internal/dynamo"
)

const (
	// G is the gravitational constant in model units.
	G = 1.0

	// Epsilon is the clamp radius around each point mass.
	Epsilon = 0.05

	// Sentinel replaces the raw potential inside the clamp radius.
	Sentinel = 20.0

	// CompressFloor is the lower bound of the compressed output.
	CompressFloor = 1e-6

	DefaultResolution = 200
)

// Params describes the binary whose potential is sampled.
type Params struct {
	M1         float64
	M2         float64
	Separation float64
	Omega      float64
}

func DefaultParams() Params {
	return Params{M1: 1, M2: 1, Separation: 1, Omega: 1}
}

func (p Params) Validate() error {
	switch {
	case !(p.M1 > 0) || math.IsInf(p.M1, 0):
		return dynamo.NewParameterError("m1", p.M1, "must be positive and finite")
	case !(p.M2 > 0) || math.IsInf(p.M2, 0):
		return dynamo.NewParameterError("m2", p.M2, "must be positive and finite")
	case !(p.Separation > 0) || math.IsInf(p.Separation, 0):
		return dynamo.NewParameterError("separation", p.Separation, "must be positive and finite")
	case math.IsNaN(p.Omega) || math.IsInf(p.Omega, 0):
		return dynamo.NewParameterError("omega", p.Omega, "must be finite")
	}
	return nil
}

// MassPositions returns the x coordinates of both masses; the centre of
// mass sits at the origin.
func MassPositions(p Params) (x1, x2 float64) {
	total := p.M1 + p.M2
	return -p.Separation * p.M2 / total, p.Separation * p.M1 / total
}

// Potential returns the raw effective potential at (x, y), or Sentinel when
// the point lies within Epsilon of either mass.
func Potential(p Params, x, y float64) float64 {
	x1, x2 := MassPositions(p)
	r1 := math.Hypot(x-x1, y)
	r2 := math.Hypot(x-x2, y)
	if r1 < Epsilon || r2 < Epsilon {
		return Sentinel
	}
	return -G*p.M1/r1 - G*p.M2/r2 - 0.5*p.Omega*p.Omega*(x*x+y*y)
}

// Compress maps a potential to max(log10|v|, CompressFloor). A zero
// potential maps to the floor.
func Compress(v float64) float64 {
	return math.Max(math.Log10(math.Abs(v)), CompressFloor)
}
