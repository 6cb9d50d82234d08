package roche

import (
	"github.com/san-kum/binarylab/internal/dynamo"
)

// Domain is the rectangular sampling region [XMin, XMax] × [YMin, YMax].
type Domain struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Square returns the symmetric domain [-half, half]².
func Square(half float64) Domain {
	return Domain{XMin: -half, XMax: half, YMin: -half, YMax: half}
}

type options struct {
	raw      bool
	minChunk int
}

// Option adjusts Evaluate.
type Option func(*options)

// WithRaw returns the uncompressed potential. Sentinel cells stay at Sentinel.
func WithRaw() Option {
	return func(o *options) { o.raw = true }
}

// WithMinChunk sets the smallest row batch handed to a worker.
func WithMinChunk(rows int) Option {
	return func(o *options) { o.minChunk = rows }
}

// Evaluate samples the potential on a resolution × resolution grid covering
// d, axes inclusive. Values[j][i] holds the cell at (X[i], Y[j]).
func Evaluate(p Params, d Domain, resolution int, opts ...Option) (*dynamo.Grid, error) {
	o := options{minChunk: 16}
	for _, opt := range opts {
		opt(&o)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	xs, err := dynamo.Axis(d.XMin, d.XMax, resolution)
	if err != nil {
		return nil, err
	}
	ys, err := dynamo.Axis(d.YMin, d.YMax, resolution)
	if err != nil {
		return nil, err
	}

	g := dynamo.NewGrid(xs, ys)
	dynamo.ParallelRows(len(ys), o.minChunk, func(start, end int) {
		for j := start; j < end; j++ {
			row := g.Values[j]
			y := ys[j]
			for i, x := range xs {
				v := Potential(p, x, y)
				if !o.raw {
					v = Compress(v)
				}
				row[i] = v
			}
		}
	})

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}
