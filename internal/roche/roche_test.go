package roche

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/binarylab/internal/dynamo"
)

func TestMassPositions(t *testing.T) {
	x1, x2 := MassPositions(Params{M1: 3, M2: 1, Separation: 2, Omega: 1})
	if math.Abs(x1+0.5) > 1e-12 || math.Abs(x2-1.5) > 1e-12 {
		t.Errorf("positions = (%f, %f), want (-0.5, 1.5)", x1, x2)
	}
	if math.Abs(3*x1+1*x2) > 1e-12 {
		t.Error("centre of mass not at origin")
	}
}

func TestPotential_SentinelAtMasses(t *testing.T) {
	p := DefaultParams()
	x1, x2 := MassPositions(p)

	for _, x := range []float64{x1, x2, x1 + 0.049, x2 - 0.03} {
		if v := Potential(p, x, 0); v != Sentinel {
			t.Errorf("Potential(%f, 0) = %f, want sentinel %f", x, v, Sentinel)
		}
		if c := Compress(Potential(p, x, 0)); math.Abs(c-math.Log10(Sentinel)) > 1e-12 {
			t.Errorf("compressed sentinel = %f, want log10(20)", c)
		}
	}
}

func TestPotential_Formula(t *testing.T) {
	p := Params{M1: 2, M2: 1, Separation: 1.5, Omega: 0.7}
	x, y := 1.3, -0.4
	x1, x2 := MassPositions(p)
	r1 := math.Hypot(x-x1, y)
	r2 := math.Hypot(x-x2, y)
	want := -2/r1 - 1/r2 - 0.5*0.49*(x*x+y*y)

	if got := Potential(p, x, y); math.Abs(got-want) > 1e-12 {
		t.Errorf("Potential = %f, want %f", got, want)
	}
}

func TestCompress(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-100, 2},
		{100, 2},
		{-1, CompressFloor},
		{0.5, CompressFloor},
		{0, CompressFloor},
		{Sentinel, math.Log10(Sentinel)},
	}
	for _, tt := range tests {
		if got := Compress(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Compress(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEvaluate_GridHitsMasses(t *testing.T) {
	p := DefaultParams()
	g, err := Evaluate(p, Square(1), 5)
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}

	// axis is {-1, -0.5, 0, 0.5, 1}; masses at ±0.5 on the middle row
	for _, col := range []int{1, 3} {
		if got := g.At(2, col); math.Abs(got-math.Log10(Sentinel)) > 1e-12 {
			t.Errorf("cell (2,%d) = %f, want log10(20)", col, got)
		}
	}
	if g.At(2, 2) == math.Log10(Sentinel) {
		t.Error("midpoint between masses should not be clamped")
	}
}

func TestEvaluate_Raw(t *testing.T) {
	p := DefaultParams()
	g, err := Evaluate(p, Square(2), 9, WithRaw())
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	want := Potential(p, g.X[0], g.Y[0])
	if g.At(0, 0) != want {
		t.Errorf("raw corner = %f, want %f", g.At(0, 0), want)
	}
	if g.At(0, 0) >= 0 {
		t.Error("raw potential far from masses should be negative")
	}
}

func TestEvaluate_ParallelMatchesSerial(t *testing.T) {
	p := Params{M1: 2.5, M2: 0.4, Separation: 1.7, Omega: 1.3}
	d := Square(3)

	serial, err := Evaluate(p, d, 64, WithMinChunk(1000))
	if err != nil {
		t.Fatal(err)
	}
	parallel, err := Evaluate(p, d, 64, WithMinChunk(1))
	if err != nil {
		t.Fatal(err)
	}

	for j := range serial.Values {
		for i := range serial.Values[j] {
			if serial.Values[j][i] != parallel.Values[j][i] {
				t.Fatalf("cell (%d,%d) differs: %f vs %f", j, i, serial.Values[j][i], parallel.Values[j][i])
			}
		}
	}
}

func TestEvaluate_Invalid(t *testing.T) {
	tests := []struct {
		name string
		p    Params
		d    Domain
		res  int
		want error
	}{
		{"zero mass", Params{M1: 0, M2: 1, Separation: 1, Omega: 1}, Square(1), 10, dynamo.ErrInvalidParameter},
		{"negative separation", Params{M1: 1, M2: 1, Separation: -1, Omega: 1}, Square(1), 10, dynamo.ErrInvalidParameter},
		{"resolution", DefaultParams(), Square(1), 1, dynamo.ErrInvalidParameter},
		{"empty domain", DefaultParams(), Square(0), 10, dynamo.ErrEmptyDomain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Evaluate(tt.p, tt.d, tt.res)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			if g != nil {
				t.Error("grid returned alongside error")
			}
		})
	}
}

func TestEstimateLagrangePoints_EqualMasses(t *testing.T) {
	lp := EstimateLagrangePoints(1, 1, 1)

	c := math.Cbrt(0.5)
	wantL1 := 1 - 0.49*c - 0.5
	if math.Abs(lp.L1[0]-wantL1) > 1e-12 || lp.L1[1] != 0 {
		t.Errorf("L1 = %v, want (%f, 0)", lp.L1, wantL1)
	}
	if math.Abs(lp.L1[0]-0.111) > 1e-3 {
		t.Errorf("L1.x = %f, want ≈0.111", lp.L1[0])
	}

	// The approximation is not mirror symmetric: the -a/2 shift moves L2
	// and L3 together, so L2.x + L3.x = -a for equal masses.
	if math.Abs(lp.L2[0]-(0.5+c)) > 1e-12 {
		t.Errorf("L2.x = %f, want %f", lp.L2[0], 0.5+c)
	}
	if math.Abs(lp.L3[0]-(-1.5-c)) > 1e-12 {
		t.Errorf("L3.x = %f, want %f", lp.L3[0], -1.5-c)
	}
	if math.Abs(lp.L2[0]+lp.L3[0]+1) > 1e-12 {
		t.Errorf("L2.x + L3.x = %f, want -1", lp.L2[0]+lp.L3[0])
	}

	if lp.L4[0] != 0 || lp.L5[0] != 0 {
		t.Errorf("xCM should be 0 for equal masses, got L4=%v L5=%v", lp.L4, lp.L5)
	}
	if math.Abs(lp.Extent-1.1*(1.5+c)) > 1e-12 {
		t.Errorf("extent = %f, want %f", lp.Extent, 1.1*(1.5+c))
	}
}

func TestEstimateLagrangePoints_Properties(t *testing.T) {
	cases := [][3]float64{
		{1, 1, 1}, {5, 0.1, 3}, {0.1, 5, 0.5}, {2, 1, 2}, {1, 3, 1.5},
	}

	for _, c := range cases {
		m1, m2, a := c[0], c[1], c[2]
		lp := EstimateLagrangePoints(m1, m2, a)

		if lp.L4[0] != lp.L5[0] || lp.L4[1] != -lp.L5[1] {
			t.Errorf("%v: L4 %v and L5 %v are not mirror images", c, lp.L4, lp.L5)
		}
		if math.Abs(lp.L4[1]-a*math.Sqrt(3)/2) > 1e-12 {
			t.Errorf("%v: L4.y = %f", c, lp.L4[1])
		}
		pts := lp.Points()
		for i, pt := range pts[:3] {
			if pt[1] != 0 {
				t.Errorf("%v: L%d off the x-axis", c, i+1)
			}
		}

		if lp.Extent < 2*a*1.1-1e-12 {
			t.Errorf("%v: extent %f below 2.2a", c, lp.Extent)
		}
		for i, pt := range pts {
			if math.Abs(pt[0]) > lp.Extent || math.Abs(pt[1]) > lp.Extent {
				t.Errorf("%v: L%d %v outside extent %f", c, i+1, pt, lp.Extent)
			}
		}
		x1, x2 := MassPositions(Params{M1: m1, M2: m2, Separation: a, Omega: 1})
		if math.Abs(x1) > lp.Extent || math.Abs(x2) > lp.Extent {
			t.Errorf("%v: masses outside extent", c)
		}
	}
}
