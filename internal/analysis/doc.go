// Package analysis provides spectral tools for recorded orbit series.
//
//   - [FFT]: radix-2 discrete Fourier transform with zero padding
//   - [PowerSpectrum]: magnitude of the non-negative frequency bins
//   - [DominantPeriod]: period of the strongest oscillation in a series
//
// A separation history sampled every dt seconds yields the playback time of
// one revolution:
//
//	period, err := analysis.DominantPeriod(result.Separations, dt)
//	if errors.Is(err, analysis.ErrNoOscillation) {
//	    // circular orbit, separation never changes
//	}
package analysis
