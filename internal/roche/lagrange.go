package roche

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// LagrangePoints holds approximate L1..L5 and a grid half-extent that keeps
// all of them and both masses in view.
type LagrangePoints struct {
	L1, L2, L3, L4, L5 mgl64.Vec2
	Extent             float64
}

// EstimateLagrangePoints applies first-order formulas with μ = m2/(m1+m2):
//
//	xL1 = a(1 − 0.49 μ^⅓)   xL2 = a(1 + μ^⅓)   xL3 = −a(1 + (1−μ)^⅓)
//
// each shifted by xCM − a/2 with xCM = a(m1−m2)/(m1+m2). L4 and L5 sit at
// (xCM, ±a√3/2). Extent is 1.1 × max(|coordinates|, 2a).
func EstimateLagrangePoints(m1, m2, a float64) LagrangePoints {
	mu := m2 / (m1 + m2)
	xL1 := a * (1 - 0.49*math.Cbrt(mu))
	xL2 := a * (1 + math.Cbrt(mu))
	xL3 := -a * (1 + math.Cbrt(1-mu))
	xCM := a * (m1 - m2) / (m1 + m2)
	yL4 := a * math.Sqrt(3) / 2

	lp := LagrangePoints{
		L1: mgl64.Vec2{xCM + xL1 - a/2, 0},
		L2: mgl64.Vec2{xCM + xL2 - a/2, 0},
		L3: mgl64.Vec2{xCM + xL3 - a/2, 0},
		L4: mgl64.Vec2{xCM, yL4},
		L5: mgl64.Vec2{xCM, -yL4},
	}

	far := math.Max(math.Abs(lp.L1[0]), math.Abs(lp.L2[0]))
	far = math.Max(far, math.Abs(lp.L3[0]))
	far = math.Max(far, math.Abs(lp.L4[1]))
	far = math.Max(far, math.Abs(lp.L5[1]))
	lp.Extent = 1.1 * math.Max(far, 2*a)

	return lp
}

// Points returns L1..L5 in order.
func (lp LagrangePoints) Points() [5]mgl64.Vec2 {
	return [5]mgl64.Vec2{lp.L1, lp.L2, lp.L3, lp.L4, lp.L5}
}

// Domain is the square sampling region sized by Extent.
func (lp LagrangePoints) Domain() Domain {
	return Square(lp.Extent)
}
