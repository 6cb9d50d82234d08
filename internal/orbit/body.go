package orbit

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// BodyID is a stable identifier for a tracked point.
type BodyID int

const (
	BodyPrimary BodyID = iota
	BodySecondary
	BodyCenterOfMass
	BodyObserverCOM

	NumBodies = int(BodyObserverCOM) + 1
)

var bodyNames = [...]string{
	BodyPrimary:      "primary",
	BodySecondary:    "secondary",
	BodyCenterOfMass: "com",
	BodyObserverCOM:  "observer_com",
}

func (id BodyID) String() string {
	if id < 0 || int(id) >= len(bodyNames) {
		return fmt.Sprintf("BodyID(%d)", int(id))
	}
	return bodyNames[id]
}

// AllBodies lists every BodyID.
func AllBodies() []BodyID {
	return []BodyID{BodyPrimary, BodySecondary, BodyCenterOfMass, BodyObserverCOM}
}

// Body is a point mass placed by a frame transform.
type Body struct {
	ID       BodyID
	Mass     float64
	Position mgl64.Vec2
	Rotation float64 // spin angle, rendering only
}

// Bodies returns the two massive bodies for positions, with m1 = 1 and
// m2 = MassRatio.
func Bodies(p Params, pos Positions) [2]Body {
	return [2]Body{
		{ID: BodyPrimary, Mass: 1, Position: pos.Primary},
		{ID: BodySecondary, Mass: p.MassRatio, Position: pos.Secondary},
	}
}
