package windowing

import "math"

// Planck returns a Planck-taper window of m points.
//
// The window is smooth and differentiable everywhere: it is exactly 1 over a
// flat interior and rolls off to exactly 0 at both ends along an
// exponential-sigmoid profile (McKechan, Robinson & Sathyaprakash 2010,
// arXiv:1003.2939). e is the taper fraction, expected in (0, 0.5); values
// >= 0.5 leave no flat region. Out-of-range values are not rejected.
//
// m <= 0 gives an empty window and m < 3 a boxcar. With sym=false an even m
// yields a periodic window, cut from a symmetric window of m+1 points.
func Planck(m int, e float64, sym bool) []float64 {
	if m < 1 {
		return []float64{}
	}
	if m < 3 {
		return ones(m)
	}

	n := m
	periodic := !sym && m%2 == 0
	if periodic {
		n++
	}

	t2 := min(n/2, int(math.Floor(e*float64(n-1))))

	// rising edge, excluding the end points
	var rise []float64
	if t2 > 1 {
		rise = make([]float64, t2-1)
		half := float64(t2)
		for k := 1; k < t2; k++ {
			x := float64(k)
			z := half/x + half/(x-half)
			rise[k-1] = 1 / (math.Exp(z) + 1)
		}
	}

	w := make([]float64, 0, n)
	w = append(w, 0.0)
	w = append(w, rise...)
	for range n - 2 - 2*len(rise) {
		w = append(w, 1.0)
	}
	for k := len(rise) - 1; k >= 0; k-- {
		w = append(w, rise[k])
	}
	w = append(w, 0.0)

	if periodic {
		w = w[:len(w)-1]
	}
	return w
}

// PlanckWindow is the Planck-taper in the package's Window shape
type PlanckWindow struct {
	coefficients
	epsilon   float64
	symmetric bool
}

// NewPlanckWindow creates a Planck-taper window
func NewPlanckWindow(size int, epsilon float64, symmetric bool) *PlanckWindow {
	return &PlanckWindow{
		coefficients: Planck(size, epsilon, symmetric),
		epsilon:      epsilon,
		symmetric:    symmetric,
	}
}

// GetType returns the window type
func (p *PlanckWindow) GetType() string {
	return "planck"
}

// GetEpsilon returns the taper fraction
func (p *PlanckWindow) GetEpsilon() float64 {
	return p.epsilon
}
