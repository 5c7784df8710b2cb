// Package windowing generates tapering windows used to suppress spectral
// leakage before a Fourier transform.
package windowing

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownWindow is returned by New for an unrecognised window kind
var ErrUnknownWindow = errors.New("unknown window kind")

// Window is implemented by every window in this package
type Window interface {
	Apply(signal []float64) []float64
	ApplyInPlace(signal []float64) error
	GetCoefficients() []float64
	GetSize() int
	GetType() string
}

// New builds a window by name. param is the taper fraction for "planck"
// and "tukey" and is ignored otherwise.
func New(kind string, size int, param float64, symmetric bool) (Window, error) {
	switch strings.ToLower(kind) {
	case "planck":
		return NewPlanckWindow(size, param, symmetric), nil
	case "tukey":
		return NewTukey(size, param, symmetric), nil
	case "hann":
		return NewHann(size, symmetric), nil
	case "rectangular", "boxcar", "none", "":
		return NewRectangular(size), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownWindow, kind)
	}
}

// coefficients holds the precomputed samples shared by all window types
type coefficients []float64

// Apply multiplies signal by the window and returns a new slice.
// It returns nil if the lengths differ.
func (c coefficients) Apply(signal []float64) []float64 {
	if len(signal) != len(c) {
		return nil
	}

	windowed := make([]float64, len(c))
	for i, w := range c {
		windowed[i] = signal[i] * w
	}
	return windowed
}

// ApplyInPlace multiplies signal by the window
func (c coefficients) ApplyInPlace(signal []float64) error {
	if len(signal) != len(c) {
		return fmt.Errorf("signal length (%d) doesn't match window size (%d)", len(signal), len(c))
	}

	for i, w := range c {
		signal[i] *= w
	}
	return nil
}

// GetCoefficients returns a copy of the window coefficients
func (c coefficients) GetCoefficients() []float64 {
	coeffs := make([]float64, len(c))
	copy(coeffs, c)
	return coeffs
}

// GetSize returns the window size
func (c coefficients) GetSize() int {
	return len(c)
}
