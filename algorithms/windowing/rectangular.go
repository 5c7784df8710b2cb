package windowing

// Rectangular is the boxcar window: every coefficient is 1
type Rectangular struct {
	coefficients
}

// NewRectangular creates a rectangular window of the given size
func NewRectangular(size int) *Rectangular {
	return &Rectangular{coefficients: ones(size)}
}

// GetType returns the window type
func (r *Rectangular) GetType() string {
	return "rectangular"
}

func ones(n int) []float64 {
	if n < 0 {
		n = 0
	}
	w := make([]float64, n)
	for i := range w {
		w[i] = 1.0
	}
	return w
}
