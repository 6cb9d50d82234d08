// Package orbit propagates a two-body relative orbit and places both bodies
// in a chosen reference frame.
//
// The relative orbit is the closed-form conic r = a(1-e²)/(1+e·cos θ). Phase
// advances linearly with the playback rate; no force integration is done.
//
//	s = orbit.Propagate(s, dt, p)
//	rel := orbit.RelativePosition(s.Theta, p)
//	pos := orbit.Transform(rel, p.Mu(), s.Theta, orbit.Observer, s.Time)
package orbit
