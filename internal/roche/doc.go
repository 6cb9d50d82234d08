// Package roche evaluates the effective potential of a co-rotating binary
// and estimates its Lagrange points.
//
// The potential is sampled on a square grid and, by default, compressed to
// max(log10|φ|, 1e-6) so consumers can normalise colours directly. Points
// closer than [Epsilon] to either mass take the fixed [Sentinel] value
// instead of the divergent raw potential.
//
// The Lagrange estimates are first-order approximations with a fixed −a/2
// shift. They are not the exact equilibrium solution.
package roche
