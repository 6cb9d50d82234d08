package spin

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/binarylab/internal/dynamo"
)

func TestLayout_CoRotatingSpins(t *testing.T) {
	sys := DefaultSystem()
	angle := 1.3

	tests := []struct {
		lock LockState
		want float64
	}{
		{Synchronous, 0},
		{Static, -angle},
		{Retrograde, -2 * angle},
	}

	for _, tt := range tests {
		t.Run(tt.lock.String(), func(t *testing.T) {
			sc := Layout(sys, CoRotating, tt.lock, angle)
			if math.Abs(sc.Companion.Rotation-tt.want) > 1e-12 {
				t.Errorf("companion spin = %f, want %f", sc.Companion.Rotation, tt.want)
			}
			if sc.Primary.Rotation != 0 {
				t.Errorf("primary spin = %f, want 0", sc.Primary.Rotation)
			}
			if sc.Primary.Position != (mgl64.Vec2{-60, 0}) || sc.Companion.Position != (mgl64.Vec2{60, 0}) {
				t.Errorf("bodies moved: %v %v", sc.Primary.Position, sc.Companion.Position)
			}
		})
	}
}

func TestLayout_InertialSpins(t *testing.T) {
	angle := 0.8
	want := map[LockState]float64{Synchronous: angle, Static: 0, Retrograde: -angle}

	for _, f := range []Frame{Observer, CenterOfMass} {
		for lock, spin := range want {
			sc := Layout(DefaultSystem(), f, lock, angle)
			if sc.Companion.Rotation != spin {
				t.Errorf("%v/%v: companion spin = %f, want %f", f, lock, sc.Companion.Rotation, spin)
			}
			if sc.Primary.Rotation != angle {
				t.Errorf("%v/%v: primary spin = %f, want %f", f, lock, sc.Primary.Rotation, angle)
			}
		}
	}
}

func TestLayout_SynchronousFacesPrimary(t *testing.T) {
	// A synchronously locked companion keeps the same face toward the
	// primary: its spin relative to the line of centres is constant.
	sys := DefaultSystem()
	for _, angle := range []float64{0, 0.5, 2, 4} {
		sc := Layout(sys, CenterOfMass, Synchronous, angle)
		rel := sc.Companion.Position.Sub(sc.Primary.Position)
		facing := sc.Companion.Rotation - math.Atan2(rel[1], rel[0])
		facing = math.Remainder(facing, 2*math.Pi)
		if math.Abs(facing) > 1e-9 {
			t.Errorf("angle=%f: companion turned %f relative to the primary", angle, facing)
		}
	}
}

func TestLayout_Positions(t *testing.T) {
	sys := System{PrimaryMass: 3, CompanionMass: 1, Distance: 100}
	angle := math.Pi / 2

	com := Layout(sys, CenterOfMass, Static, angle)
	if !vecNear(com.Primary.Position, mgl64.Vec2{0, -25}, 1e-9) {
		t.Errorf("primary = %v, want (0, -25)", com.Primary.Position)
	}
	if !vecNear(com.Companion.Position, mgl64.Vec2{0, 75}, 1e-9) {
		t.Errorf("companion = %v, want (0, 75)", com.Companion.Position)
	}
	if com.COM != (mgl64.Vec2{}) {
		t.Errorf("COM = %v, want origin", com.COM)
	}
	if len(com.Guides) != 1 || com.Guides[0] != 25 {
		t.Errorf("guides = %v", com.Guides)
	}

	obs := Layout(sys, Observer, Static, angle)
	if obs.Primary.Position != (mgl64.Vec2{}) {
		t.Errorf("observer primary = %v, want origin", obs.Primary.Position)
	}
	if math.Abs(obs.Companion.Position.Len()-100) > 1e-9 {
		t.Errorf("observer companion at distance %f", obs.Companion.Position.Len())
	}
	if math.Abs(obs.COM.Len()-50) > 1e-9 {
		t.Errorf("observer COM marker at %f, want 50", obs.COM.Len())
	}

	rot := Layout(sys, CoRotating, Static, angle)
	if math.Abs(rot.COM[0]-(1*-50+3*50)/4.0) > 1e-12 {
		t.Errorf("co-rotating COM = %v", rot.COM)
	}
}

func TestParse(t *testing.T) {
	for _, l := range LockStates() {
		got, err := ParseLockState(l.String())
		if err != nil || got != l {
			t.Errorf("lock round trip failed for %v", l)
		}
	}
	if _, err := ParseLockState("tumbling"); !errors.Is(err, dynamo.ErrInvalidParameter) {
		t.Errorf("expected invalid parameter, got %v", err)
	}

	for _, f := range Frames() {
		got, err := ParseFrame(f.String())
		if err != nil || got != f {
			t.Errorf("frame round trip failed for %v", f)
		}
	}
	if _, err := ParseFrame("galactic"); !errors.Is(err, dynamo.ErrUnknownFrame) {
		t.Errorf("expected unknown frame, got %v", err)
	}
}

func TestTicker(t *testing.T) {
	var tk Ticker
	for i := 0; i < 100; i++ {
		tk.Step()
	}
	if math.Abs(tk.Angle-1.0) > 1e-9 {
		t.Errorf("angle after 100 steps = %f, want 1", tk.Angle)
	}
	tk.Reset()
	if tk.Angle != 0 {
		t.Error("reset did not zero the angle")
	}
}

func vecNear(a, b mgl64.Vec2, tol float64) bool {
	return math.Abs(a[0]-b[0]) <= tol && math.Abs(a[1]-b[1]) <= tol
}
