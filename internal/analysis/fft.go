package analysis

import (
	"math"
	"math/cmplx"
)

// NextPow2 returns the smallest power of two not below n.
func NextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// FFT transforms data, zero padding it to the next power of two.
func FFT(data []float64) []complex128 {
	n := NextPow2(len(data))
	out := make([]complex128, n)
	if len(data) == 0 {
		return out[:0]
	}
	for i, v := range data {
		out[i] = complex(v, 0)
	}

	// bit-reversal permutation
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j |= bit
		if i < j {
			out[i], out[j] = out[j], out[i]
		}
	}

	for size := 2; size <= n; size <<= 1 {
		half := size / 2
		step := cmplx.Exp(complex(0, -2*math.Pi/float64(size)))
		for start := 0; start < n; start += size {
			w := complex(1, 0)
			for k := 0; k < half; k++ {
				even, odd := out[start+k], w*out[start+k+half]
				out[start+k] = even + odd
				out[start+k+half] = even - odd
				w *= step
			}
		}
	}

	return out
}

// PowerSpectrum returns |X_k| for k in [0, n/2).
func PowerSpectrum(data []float64) []float64 {
	spectrum := FFT(data)
	ps := make([]float64, len(spectrum)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}
