package viz

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/binarylab/internal/orbit"
	"github.com/san-kum/binarylab/internal/spin"
	"github.com/san-kum/binarylab/internal/trail"
)

// OrbitExtent is the world half-width needed to keep both bodies and the
// observer drift on screen.
func OrbitExtent(p orbit.Params) float64 {
	return orbit.Apoapsis(p) + orbit.ObserverDrift
}

// DrawOrbit plots the tracked trails, then the bodies in pos.
func DrawOrbit(c *Canvas, v Viewport, pos orbit.Positions, trails *trail.Set) {
	if trails != nil {
		for _, id := range orbit.Tracked(pos.Frame) {
			b := trails.Buffer(id)
			for i := 0; i < b.Len(); i++ {
				x, y := v.Project(b.At(i))
				c.Set(x, y)
			}
		}
	}

	x, y := v.Project(pos.Primary)
	c.Disc(x, y, 2)
	x, y = v.Project(pos.Secondary)
	c.Disc(x, y, 1)
	x, y = v.Project(pos.CenterOfMass)
	c.Set(x, y)
	if pos.HasObserverCOM {
		x, y = v.Project(pos.ObserverCOM)
		c.Set(x-1, y)
		c.Set(x+1, y)
		c.Set(x, y-1)
		c.Set(x, y+1)
	}
}

// DrawSpin draws the spin layout: guide circles, both bodies with a tick
// showing their rotation, and the centre-of-mass marker.
func DrawSpin(c *Canvas, sc spin.Scene, sys spin.System) Viewport {
	v := FitViewport(c, 0.75*sys.Distance)
	ox, oy := v.Project(mgl64.Vec2{})
	for _, r := range sc.Guides {
		c.Circle(ox, oy, r*v.Scale, true)
	}

	bodyRadius := 0.12 * sys.Distance
	for _, b := range []orbit.Body{sc.Primary, sc.Companion} {
		x, y := v.Project(b.Position)
		c.Circle(x, y, bodyRadius*v.Scale, false)
		sin, cos := math.Sincos(b.Rotation)
		tip := b.Position.Add(mgl64.Vec2{cos, sin}.Mul(bodyRadius))
		tx, ty := v.Project(tip)
		c.DrawLine(x, y, tx, ty)
	}

	x, y := v.Project(sc.COM)
	c.Disc(x, y, 1)
	return v
}
