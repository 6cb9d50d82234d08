package metrics

import (
	"math"

	"github.com/san-kum/binarylab/internal/orbit"
)

// Separation is computed from the orbit rather than from pos, since the
// observer frame shifts the bodies apart by its drift term.

type SeparationMin struct {
	name    string
	min     float64
	samples int
}

func NewSeparationMin() *SeparationMin {
	return &SeparationMin{name: "separation_min"}
}

func (m *SeparationMin) Name() string { return m.name }

func (m *SeparationMin) Observe(p orbit.Params, s orbit.State, pos orbit.Positions) {
	r := orbit.Separation(s.Theta, p)
	if m.samples == 0 || r < m.min {
		m.min = r
	}
	m.samples++
}

func (m *SeparationMin) Value() float64 { return m.min }

func (m *SeparationMin) Reset() {
	m.min = 0
	m.samples = 0
}

type SeparationMax struct {
	name string
	max  float64
}

func NewSeparationMax() *SeparationMax {
	return &SeparationMax{name: "separation_max"}
}

func (m *SeparationMax) Name() string { return m.name }

func (m *SeparationMax) Observe(p orbit.Params, s orbit.State, pos orbit.Positions) {
	m.max = math.Max(m.max, orbit.Separation(s.Theta, p))
}

func (m *SeparationMax) Value() float64 { return m.max }

func (m *SeparationMax) Reset() { m.max = 0 }

// SeparationMean is the average separation per tick, not per unit time.
type SeparationMean struct {
	name    string
	sum     float64
	samples int
}

func NewSeparationMean() *SeparationMean {
	return &SeparationMean{name: "separation_mean"}
}

func (m *SeparationMean) Name() string { return m.name }

func (m *SeparationMean) Observe(p orbit.Params, s orbit.State, pos orbit.Positions) {
	m.sum += orbit.Separation(s.Theta, p)
	m.samples++
}

func (m *SeparationMean) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *SeparationMean) Reset() {
	m.sum = 0
	m.samples = 0
}
