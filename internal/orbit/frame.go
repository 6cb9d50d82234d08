package orbit

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/binarylab/internal/dynamo"
)

// Frame selects the reference frame bodies are reported in.
type Frame int

const (
	// Inertial keeps the centre of mass fixed at the origin.
	Inertial Frame = iota
	// CoRotating turns with the binary so a circular orbit appears stationary.
	CoRotating
	// Observer superimposes a sinusoidal drift on the two bodies.
	Observer
)

// ObserverDrift is the amplitude of the observer-frame x drift.
const ObserverDrift = 0.5

var frameNames = [...]string{
	Inertial:   "inertial",
	CoRotating: "corotating",
	Observer:   "observer",
}

var frameAliases = map[string]Frame{
	"inertial":       Inertial,
	"com":            Inertial,
	"center-of-mass": Inertial,
	"centre-of-mass": Inertial,
	"corotating":     CoRotating,
	"co-rotating":    CoRotating,
	"rotating":       CoRotating,
	"observer":       Observer,
}

func (f Frame) String() string {
	if f < 0 || int(f) >= len(frameNames) {
		return fmt.Sprintf("Frame(%d)", int(f))
	}
	return frameNames[f]
}

// Valid reports whether f is one of the declared frames.
func (f Frame) Valid() bool {
	return f >= Inertial && f <= Observer
}

// Next cycles through the frames in declaration order.
func (f Frame) Next() Frame {
	return (f + 1) % Frame(len(frameNames))
}

// Frames lists every frame in declaration order.
func Frames() []Frame {
	return []Frame{Inertial, CoRotating, Observer}
}

// ParseFrame resolves a frame name, case-insensitively.
func ParseFrame(name string) (Frame, error) {
	f, ok := frameAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Inertial, fmt.Errorf("%w: %q", dynamo.ErrUnknownFrame, name)
	}
	return f, nil
}

// Positions is the result of one frame transform.
type Positions struct {
	Frame     Frame
	Primary   mgl64.Vec2
	Secondary mgl64.Vec2
	// CenterOfMass is the barycentre; the origin in every frame.
	CenterOfMass mgl64.Vec2
	// ObserverCOM is the drifting centre marker, set in the Observer frame only.
	ObserverCOM    mgl64.Vec2
	HasObserverCOM bool
}

// Get returns the position of a tracked body.
func (p Positions) Get(id BodyID) (mgl64.Vec2, bool) {
	switch id {
	case BodyPrimary:
		return p.Primary, true
	case BodySecondary:
		return p.Secondary, true
	case BodyCenterOfMass:
		return p.CenterOfMass, true
	case BodyObserverCOM:
		return p.ObserverCOM, p.HasObserverCOM
	}
	return mgl64.Vec2{}, false
}

// Transform places both bodies in frame f given the relative position rel,
// mass fraction mu, current true anomaly theta and simulated time t.
func Transform(rel mgl64.Vec2, mu, theta float64, f Frame, t float64) Positions {
	pos := Positions{
		Frame:     f,
		Primary:   rel.Mul(-mu),
		Secondary: rel.Mul(1 - mu),
	}

	switch f {
	case CoRotating:
		rot := mgl64.Rotate2D(-theta)
		pos.Primary = rot.Mul2x1(pos.Primary)
		pos.Secondary = rot.Mul2x1(pos.Secondary)
	case Observer:
		drift := ObserverDrift * math.Sin(t)
		pos.Primary[0] += drift
		pos.Secondary[0] -= drift
		pos.ObserverCOM = pos.Primary.Mul(mu).Add(pos.Secondary.Mul(1 - mu))
		pos.HasObserverCOM = true
	}

	return pos
}

// ToInertial maps positions produced by Transform in any frame back to the
// inertial frame. Only the two bodies are mapped.
func ToInertial(pos Positions, theta, t float64) Positions {
	out := Positions{Frame: Inertial, Primary: pos.Primary, Secondary: pos.Secondary}

	switch pos.Frame {
	case CoRotating:
		rot := mgl64.Rotate2D(theta)
		out.Primary = rot.Mul2x1(out.Primary)
		out.Secondary = rot.Mul2x1(out.Secondary)
	case Observer:
		drift := ObserverDrift * math.Sin(t)
		out.Primary[0] -= drift
		out.Secondary[0] += drift
	}

	return out
}

// Barycenter returns the mass-weighted centre of the two bodies, where mu is
// the secondary's share of the total mass.
func Barycenter(primary, secondary mgl64.Vec2, mu float64) mgl64.Vec2 {
	return primary.Mul(1 - mu).Add(secondary.Mul(mu))
}

// Tracked lists the bodies that carry a trail in frame f. The co-rotating
// frame has no centre-of-mass trail.
func Tracked(f Frame) []BodyID {
	switch f {
	case CoRotating:
		return []BodyID{BodyPrimary, BodySecondary}
	case Observer:
		return []BodyID{BodyPrimary, BodySecondary, BodyCenterOfMass, BodyObserverCOM}
	default:
		return []BodyID{BodyPrimary, BodySecondary, BodyCenterOfMass}
	}
}
