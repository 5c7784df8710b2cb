package windowing

import "math"

// Tukey is a flat-top window with cosine tapers covering a fraction alpha of
// its length. alpha=0 is rectangular, alpha=1 is Hann.
type Tukey struct {
	coefficients
	alpha     float64
	symmetric bool
}

// NewTukey creates a Tukey window
func NewTukey(size int, alpha float64, symmetric bool) *Tukey {
	return &Tukey{
		coefficients: generateTukey(size, alpha, symmetric),
		alpha:        alpha,
		symmetric:    symmetric,
	}
}

func generateTukey(size int, alpha float64, symmetric bool) []float64 {
	if size < 2 || alpha <= 0 {
		return ones(size)
	}
	if alpha >= 1 {
		return generateHann(size, symmetric)
	}

	n := size
	if !symmetric {
		n++
	}

	w := make([]float64, n)
	span := float64(n - 1)
	edge := alpha * span / 2

	for i := range n {
		x := float64(i)
		switch {
		case x < edge:
			w[i] = 0.5 * (1 + math.Cos(math.Pi*(x/edge-1)))
		case x > span-edge:
			w[i] = 0.5 * (1 + math.Cos(math.Pi*((x-span+edge)/edge)))
		default:
			w[i] = 1.0
		}
	}

	return w[:size]
}

// GetType returns the window type
func (t *Tukey) GetType() string {
	return "tukey"
}

// GetAlpha returns the taper fraction
func (t *Tukey) GetAlpha() float64 {
	return t.alpha
}
