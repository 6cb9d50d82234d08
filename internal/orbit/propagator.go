package orbit

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// State is the mutable phase of a running orbit.
type State struct {
	Theta float64 // true anomaly, radians, unwrapped
	Time  float64 // simulated time, scaled by the playback rate
}

// Propagate advances the phase by Rate·dt. Simulated time advances by the
// same scaled amount so that time-driven frames move at playback speed.
func Propagate(s State, dt float64, p Params) State {
	step := p.Rate * dt
	return State{
		Theta: s.Theta + step,
		Time:  s.Time + step,
	}
}

// Separation evaluates the conic orbit equation at true anomaly theta.
// The denominator is at least 1-e, which is positive for valid Params.
func Separation(theta float64, p Params) float64 {
	e := p.Eccentricity
	return p.SemiMajorAxis * (1 - e*e) / (1 + e*math.Cos(theta))
}

// RelativePosition returns the secondary's position relative to the primary.
func RelativePosition(theta float64, p Params) mgl64.Vec2 {
	r := Separation(theta, p)
	sin, cos := math.Sincos(theta)
	return mgl64.Vec2{r * cos, r * sin}
}

// Periapsis is the closest approach, r(0).
func Periapsis(p Params) float64 {
	return p.SemiMajorAxis * (1 - p.Eccentricity)
}

// Apoapsis is the farthest separation, r(π).
func Apoapsis(p Params) float64 {
	return p.SemiMajorAxis * (1 + p.Eccentricity)
}
