// Package spectral computes Fourier transforms of real-valued strain series.
package spectral

import (
	"github.com/mjibson/go-dsp/fft"
)

// FFT wraps the mjibson/go-dsp transforms. go-dsp handles arbitrary sizes,
// including non powers of two.
type FFT struct{}

// NewFFT creates a new FFT calculator
func NewFFT() *FFT {
	return &FFT{}
}

// Compute returns the full two-sided transform of a real series
func (f *FFT) Compute(x []float64) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}
	return fft.FFTReal(x)
}

// ComputeOneSided returns bins 0..len(x)/2 of the transform of a real series
func (f *FFT) ComputeOneSided(x []float64) []complex128 {
	full := f.Compute(x)
	if len(full) == 0 {
		return full
	}
	return full[:len(x)/2+1]
}

// ComputeInverse computes the inverse transform
func (f *FFT) ComputeInverse(x []complex128) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}
	return fft.IFFT(x)
}

// ComputeInverseReal computes the inverse transform and keeps the real part
func (f *FFT) ComputeInverseReal(x []complex128) []float64 {
	if len(x) == 0 {
		return []float64{}
	}

	result := fft.IFFT(x)
	realResult := make([]float64, len(result))
	for i, val := range result {
		realResult[i] = real(val)
	}
	return realResult
}
