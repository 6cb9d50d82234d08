package metrics

import (
	"math"

	"github.com/san-kum/binarylab/internal/orbit"
)

// COMDrift tracks the largest distance of the barycentre of the observed
// bodies from the origin, after mapping them back to the inertial frame.
// Correct positions keep it at rounding level.
type COMDrift struct {
	name     string
	maxDrift float64
}

func NewCOMDrift() *COMDrift {
	return &COMDrift{name: "com_drift"}
}

func (c *COMDrift) Name() string { return c.name }

func (c *COMDrift) Observe(p orbit.Params, s orbit.State, pos orbit.Positions) {
	inertial := orbit.ToInertial(pos, s.Theta, s.Time)
	drift := orbit.Barycenter(inertial.Primary, inertial.Secondary, p.Mu()).Len()
	c.maxDrift = math.Max(c.maxDrift, drift)
}

func (c *COMDrift) Value() float64 { return c.maxDrift }

func (c *COMDrift) Reset() { c.maxDrift = 0 }
