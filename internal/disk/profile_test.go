package disk

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/binarylab/internal/dynamo"
)

func TestSchwarzschildRadius(t *testing.T) {
	rs := SchwarzschildRadius(1)
	want := 2 * 6.67e-8 * 1.989e33 / (2.99792458e10 * 2.99792458e10)
	if math.Abs(rs-want)/want > 1e-12 {
		t.Errorf("rs = %e, want %e", rs, want)
	}
	if math.Abs(rs-2.95e5)/2.95e5 > 0.01 {
		t.Errorf("rs(1 Msun) = %e cm, expected about 2.95e5", rs)
	}
}

func TestDensity_MidplaneNormalised(t *testing.T) {
	for _, p := range []Params{
		DefaultParams(),
		{Temperature: 1e6, MeanMolecularWeight: 20, Mass: 1},
		{Temperature: 1e8, MeanMolecularWeight: 3, Mass: 200},
	} {
		for _, x := range DefaultRadii() {
			if d := Density(x, 0, p); d != 1.0 {
				t.Fatalf("%+v: density(%f, 0) = %f, want 1", p, x, d)
			}
		}
	}
}

func TestDensity_MonotonicFalloff(t *testing.T) {
	p := DefaultParams()
	x := 101.0

	prev := Density(x, 0, p)
	for z := 0.5; z < 40; z += 0.5 {
		up := Density(x, z, p)
		down := Density(x, -z, p)
		if up != down {
			t.Fatalf("z=%f: profile not symmetric (%e vs %e)", z, up, down)
		}
		if prev > 0 && up > 0 && !(up < prev) {
			t.Fatalf("z=%f: density %e did not decrease from %e", z, up, prev)
		}
		if up > prev {
			t.Fatalf("z=%f: density increased", z)
		}
		prev = up
	}
}

func TestDensity_UnderflowGuard(t *testing.T) {
	p := DefaultParams()

	x, z := 1.0, 1.0
	if e := Exponent(x, z, p); e >= UnderflowLimit {
		t.Fatalf("test point should underflow, exponent = %f", e)
	}
	if d := Density(x, z, p); d != 0 {
		t.Errorf("density = %e, want 0 below the underflow limit", d)
	}

	x = 101
	for z := 0.0; z < 100; z += 0.25 {
		e := Exponent(x, z, p)
		d := Density(x, z, p)
		if e < UnderflowLimit && d != 0 {
			t.Fatalf("z=%f: exponent %f under limit but density %e", z, e, d)
		}
		if e >= UnderflowLimit && d != math.Exp(e) {
			t.Fatalf("z=%f: density %e, want exp(%f)", z, d, e)
		}
	}
}

func TestDensity_NonPositiveRadius(t *testing.T) {
	p := DefaultParams()
	for _, x := range []float64{0, -1} {
		if d := Density(x, 10, p); d != 0 {
			t.Errorf("density(%f) = %f, want 0", x, d)
		}
	}
}

func TestScaleHeight_Formula(t *testing.T) {
	x, m := 37.0, 12.0
	rs := SchwarzschildRadius(m)
	want := math.Sqrt(Gravitation * m * SolarMass / math.Pow(x*rs, 3))
	if got := ScaleHeight(x, m); math.Abs(got-want)/want > 1e-12 {
		t.Errorf("H = %e, want %e", got, want)
	}
	if ScaleHeight(2*x, m) >= ScaleHeight(x, m) {
		t.Error("scale height should shrink with radius")
	}
}

func TestEvaluate_DefaultGrid(t *testing.T) {
	radii, heights := DefaultRadii(), DefaultHeights()
	if radii[0] != 1 || radii[99] != 9901 {
		t.Fatalf("radii = [%f … %f]", radii[0], radii[99])
	}
	if heights[0] != -5000 || math.Abs(heights[99]-5000) > 1e-9 {
		t.Fatalf("heights = [%f … %f]", heights[0], heights[99])
	}

	g, err := Evaluate(DefaultParams(), radii, heights)
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	if g.Rows() != 100 || g.Cols() != 100 {
		t.Fatalf("shape %dx%d", g.Rows(), g.Cols())
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("grid has non-finite values: %v", err)
	}

	for j := range g.Values {
		for i, v := range g.Values[j] {
			if v < 0 || v > 1 {
				t.Fatalf("cell (%d,%d) = %f outside [0, 1]", j, i, v)
			}
			if want := Density(radii[i], heights[j], DefaultParams()); v != want {
				t.Fatalf("cell (%d,%d) = %e, want %e", j, i, v, want)
			}
		}
	}
}

func TestEvaluate_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		p       Params
		radii   []float64
		heights []float64
		want    error
	}{
		{"zero temperature", Params{Temperature: 0, MeanMolecularWeight: 1, Mass: 1}, []float64{1}, []float64{0}, dynamo.ErrInvalidParameter},
		{"zero mass", Params{Temperature: 1e7, MeanMolecularWeight: 1, Mass: 0}, []float64{1}, []float64{0}, dynamo.ErrInvalidParameter},
		{"zero radius", DefaultParams(), []float64{0, 1}, []float64{0}, dynamo.ErrInvalidParameter},
		{"no heights", DefaultParams(), []float64{1}, nil, dynamo.ErrEmptyDomain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.p, tt.radii, tt.heights)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestVerticalProfile(t *testing.T) {
	heights := []float64{-2, -1, 0, 1, 2}
	prof := VerticalProfile(DefaultParams(), 101, heights)
	if prof[2] != 1 {
		t.Errorf("midplane = %f, want 1", prof[2])
	}
	if prof[0] != prof[4] || prof[1] != prof[3] {
		t.Errorf("profile not symmetric: %v", prof)
	}
}
