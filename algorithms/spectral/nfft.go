package spectral

import (
	"gonum.org/v1/gonum/floats"
)

// NFFT performs a single-sided FFT of a real time series while keeping track
// of the frequency bins.
//
// Odd-length input is padded with one trailing zero. The spectrum is divided
// by samplingFrequency, giving strain/sqrt(Hz) for strain input, and
// frequencies run evenly from 0 to samplingFrequency/2 inclusive. Both
// returned slices have length L/2+1 where L is the padded length. Empty input
// returns empty slices. samplingFrequency must be positive; it is not checked.
func NFFT(ht []float64, samplingFrequency float64) ([]complex128, []float64) {
	if len(ht) == 0 {
		return []complex128{}, []float64{}
	}

	padded := make([]float64, len(ht), len(ht)+1)
	copy(padded, ht)
	if len(padded)%2 == 1 {
		padded = append(padded, 0)
	}
	n := len(padded)/2 + 1

	frequencies := floats.Span(make([]float64, n), 0, samplingFrequency/2)

	hf := NewFFT().ComputeOneSided(padded)
	for i, v := range hf {
		hf[i] = complex(real(v)/samplingFrequency, imag(v)/samplingFrequency)
	}

	return hf, frequencies
}
