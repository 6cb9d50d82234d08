// Package spin lays out a star and a companion in three frames for a chosen
// tidal-locking state. Rotation angles are for display only; the orbit is a
// fixed circle advanced by a constant angle per tick.
package spin

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/binarylab/internal/dynamo"
	"github.com/san-kum/binarylab/internal/orbit"
)

// AngleStep is the orbital angle advanced per tick.
const AngleStep = 0.01

// LockState is the companion's spin relative to its orbit.
type LockState int

const (
	Synchronous LockState = iota
	Static
	Retrograde
)

var lockNames = [...]string{
	Synchronous: "synchronous",
	Static:      "static",
	Retrograde:  "retrograde",
}

func (l LockState) String() string {
	if l < 0 || int(l) >= len(lockNames) {
		return fmt.Sprintf("LockState(%d)", int(l))
	}
	return lockNames[l]
}

func LockStates() []LockState { return []LockState{Synchronous, Static, Retrograde} }

func ParseLockState(name string) (LockState, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range lockNames {
		if s == n {
			return LockState(i), nil
		}
	}
	return Synchronous, dynamo.NewParameterError("lock_state", math.NaN(), fmt.Sprintf("unknown %q", name))
}

// Frame is the viewpoint for the spin layout.
type Frame int

const (
	Observer Frame = iota
	CenterOfMass
	CoRotating
)

var frameNames = [...]string{
	Observer:     "observer",
	CenterOfMass: "center-of-mass",
	CoRotating:   "corotating",
}

func (f Frame) String() string {
	if f < 0 || int(f) >= len(frameNames) {
		return fmt.Sprintf("Frame(%d)", int(f))
	}
	return frameNames[f]
}

func Frames() []Frame { return []Frame{Observer, CenterOfMass, CoRotating} }

func ParseFrame(name string) (Frame, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "observer":
		return Observer, nil
	case "center-of-mass", "centre-of-mass", "com":
		return CenterOfMass, nil
	case "corotating", "co-rotating":
		return CoRotating, nil
	}
	return Observer, fmt.Errorf("%w: %q", dynamo.ErrUnknownFrame, name)
}

// System is the star-companion pair.
type System struct {
	PrimaryMass   float64
	CompanionMass float64
	Distance      float64
}

func DefaultSystem() System {
	return System{PrimaryMass: 1, CompanionMass: 1, Distance: 120}
}

func (s System) Validate() error {
	switch {
	case !(s.PrimaryMass > 0):
		return dynamo.NewParameterError("primary_mass", s.PrimaryMass, "must be positive")
	case !(s.CompanionMass > 0):
		return dynamo.NewParameterError("companion_mass", s.CompanionMass, "must be positive")
	case !(s.Distance > 0):
		return dynamo.NewParameterError("distance", s.Distance, "must be positive")
	}
	return nil
}

// Scene is one frame's layout. Guides are radii of dashed reference circles
// centred on the origin.
type Scene struct {
	Frame     Frame
	Primary   orbit.Body
	Companion orbit.Body
	COM       mgl64.Vec2
	Guides    []float64
}

// inertialSpin is the companion's spin angle in a non-rotating frame.
func inertialSpin(lock LockState, angle float64) float64 {
	switch lock {
	case Static:
		return 0
	case Retrograde:
		return -angle
	default:
		return angle
	}
}

// Layout places both bodies for the given orbital angle.
func Layout(sys System, f Frame, lock LockState, angle float64) Scene {
	total := sys.PrimaryMass + sys.CompanionMass
	d := sys.Distance
	sin, cos := math.Sincos(angle)
	dir := mgl64.Vec2{cos, sin}

	sc := Scene{
		Frame:     f,
		Primary:   orbit.Body{ID: orbit.BodyPrimary, Mass: sys.PrimaryMass},
		Companion: orbit.Body{ID: orbit.BodySecondary, Mass: sys.CompanionMass},
	}

	switch f {
	case Observer:
		sc.Companion.Position = dir.Mul(d)
		sc.Primary.Rotation = angle
		sc.Companion.Rotation = inertialSpin(lock, angle)
		sc.COM = dir.Mul(0.5 * d)
		sc.Guides = []float64{d, 0.5 * d}

	case CenterOfMass:
		primaryOffset := sys.CompanionMass / total * d
		companionOffset := sys.PrimaryMass / total * d
		sc.Primary.Position = dir.Mul(-primaryOffset)
		sc.Companion.Position = dir.Mul(companionOffset)
		sc.Primary.Rotation = angle
		sc.Companion.Rotation = inertialSpin(lock, angle)
		sc.Guides = []float64{primaryOffset}

	case CoRotating:
		sc.Primary.Position = mgl64.Vec2{-d / 2, 0}
		sc.Companion.Position = mgl64.Vec2{d / 2, 0}
		sc.Companion.Rotation = inertialSpin(lock, angle) - angle
		sc.COM = mgl64.Vec2{
			(sys.CompanionMass*sc.Primary.Position[0] + sys.PrimaryMass*sc.Companion.Position[0]) / total,
			0,
		}
	}

	return sc
}

// Ticker advances the orbital angle by AngleStep per call.
type Ticker struct {
	Angle float64
}

func (t *Ticker) Step() float64 {
	t.Angle += AngleStep
	return t.Angle
}

func (t *Ticker) Reset() { t.Angle = 0 }
