package analysis

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/binarylab/internal/dynamo"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// MinSamples is the shortest series DominantPeriod accepts.
const MinSamples = 8

// ErrNoOscillation is returned for a series with no variation to measure.
var ErrNoOscillation = errors.New("analysis: series does not oscillate")

// flatTolerance is the relative spread below which a series counts as flat.
const flatTolerance = 1e-12

// DominantPeriod estimates the period of the strongest oscillation in
// samples taken dt apart. The mean is removed first and the peak bin is
// refined by parabolic interpolation over its neighbours.
func DominantPeriod(samples []float64, dt float64) (float64, error) {
	if dt <= 0 {
		return 0, dynamo.NewParameterError("dt", dt, "must be positive")
	}
	if len(samples) < MinSamples {
		return 0, fmt.Errorf("analysis: need at least %d samples, got %d", MinSamples, len(samples))
	}

	mean := stat.Mean(samples, nil)
	spread := floats.Max(samples) - floats.Min(samples)
	if spread <= flatTolerance*max(1, math.Abs(mean)) {
		return 0, ErrNoOscillation
	}

	centred := make([]float64, len(samples))
	copy(centred, samples)
	floats.AddConst(-mean, centred)

	ps := PowerSpectrum(centred)
	peak := 1
	for k := 2; k < len(ps); k++ {
		if ps[k] > ps[peak] {
			peak = k
		}
	}

	bin := float64(peak)
	if peak+1 < len(ps) {
		a, b, c := ps[peak-1], ps[peak], ps[peak+1]
		if den := a - 2*b + c; den != 0 {
			bin += 0.5 * (a - c) / den
		}
	}

	n := NextPow2(len(samples))
	return float64(n) * dt / bin, nil
}
