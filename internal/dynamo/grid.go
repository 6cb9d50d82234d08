package dynamo

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Grid is a scalar field sampled at (X[col], Y[row]).
// Values is row-major: Values[row][col].
type Grid struct {
	X      []float64
	Y      []float64
	Values [][]float64
}

// NewGrid allocates a zeroed grid over the given axes. The axes are copied.
func NewGrid(x, y []float64) *Grid {
	g := &Grid{
		X:      append([]float64(nil), x...),
		Y:      append([]float64(nil), y...),
		Values: make([][]float64, len(y)),
	}
	for j := range g.Values {
		g.Values[j] = make([]float64, len(x))
	}
	return g
}

// Axis returns n evenly spaced samples covering [min, max] inclusive.
func Axis(min, max float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, NewParameterError("resolution", float64(n), "must be at least 2")
	}
	if !(max > min) {
		return nil, ErrEmptyDomain
	}
	return floats.Span(make([]float64, n), min, max), nil
}

func (g *Grid) Rows() int { return len(g.Values) }
func (g *Grid) Cols() int { return len(g.X) }

// At returns the value at (row, col).
func (g *Grid) At(row, col int) float64 {
	return g.Values[row][col]
}

// Row returns a copy of one row (fixed Y).
func (g *Grid) Row(row int) []float64 {
	return append([]float64(nil), g.Values[row]...)
}

// Column returns a copy of one column (fixed X).
func (g *Grid) Column(col int) []float64 {
	out := make([]float64, len(g.Values))
	for j, row := range g.Values {
		out[j] = row[col]
	}
	return out
}

// Validate reports the first NaN or Inf cell as a *CellError.
func (g *Grid) Validate() error {
	for j, row := range g.Values {
		for i, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return &CellError{Row: j, Col: i, Value: v}
			}
		}
	}
	return nil
}

// Bounds returns the smallest and largest cell value, used for colour
// normalisation by consumers.
func (g *Grid) Bounds() (min, max float64) {
	if g.Rows() == 0 || g.Cols() == 0 {
		return 0, 0
	}
	min, max = math.Inf(1), math.Inf(-1)
	for _, row := range g.Values {
		min = math.Min(min, floats.Min(row))
		max = math.Max(max, floats.Max(row))
	}
	return min, max
}

// Mean returns the arithmetic mean over all cells.
func (g *Grid) Mean() float64 {
	flat := make([]float64, 0, g.Rows()*g.Cols())
	for _, row := range g.Values {
		flat = append(flat, row...)
	}
	if len(flat) == 0 {
		return 0
	}
	return stat.Mean(flat, nil)
}

// Normalize maps v into [0, 1] using the grid bounds. A flat grid maps to 0.
func (g *Grid) Normalize(v float64) float64 {
	min, max := g.Bounds()
	if max <= min {
		return 0
	}
	return (v - min) / (max - min)
}
