package metrics

import "github.com/san-kum/binarylab/internal/orbit"

// Metric accumulates a scalar over the ticks of a run.
type Metric interface {
	Name() string
	Observe(p orbit.Params, s orbit.State, pos orbit.Positions)
	Value() float64
	Reset()
}

// Standard returns the metrics reported by a headless run.
func Standard() []Metric {
	return []Metric{
		NewSeparationMin(),
		NewSeparationMax(),
		NewSeparationMean(),
		NewCOMDrift(),
	}
}
