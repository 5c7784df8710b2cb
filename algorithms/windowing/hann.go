package windowing

import "math"

// Hann is a raised-cosine window
type Hann struct {
	coefficients
	symmetric bool
}

// NewHann creates a Hann window. Periodic windows (symmetric=false) are meant
// for spectral analysis, symmetric ones for filter design.
func NewHann(size int, symmetric bool) *Hann {
	return &Hann{
		coefficients: generateHann(size, symmetric),
		symmetric:    symmetric,
	}
}

func generateHann(size int, symmetric bool) []float64 {
	if size < 2 {
		return ones(size)
	}

	w := make([]float64, size)
	denominator := float64(size)
	if symmetric {
		denominator = float64(size - 1)
	}

	for i := range size {
		w[i] = 0.5 * (1.0 - math.Cos(2*math.Pi*float64(i)/denominator))
	}
	return w
}

// GetType returns the window type
func (h *Hann) GetType() string {
	return "hann"
}
