package waveform

import (
	"errors"
	"fmt"

	"github.com/RyanBlaney/gwmemory-go/harmonics"
)

// ErrLengthMismatch is returned when mode series differ in length
var ErrLengthMismatch = errors.New("mode series differ in length")

// Polarizations holds the two real strain polarisations
type Polarizations struct {
	Plus  []float64 `json:"plus"`
	Cross []float64 `json:"cross"`
}

// CombineModes sums h_lm * sYlm(-2, l, m, inclination, phase) over all modes,
// giving h+ - i hx. Modes are summed in ascending (l, m) order.
func CombineModes(modes Modes, inclination, phase float64) (Polarizations, error) {
	order := modes.Sorted()
	if len(order) == 0 {
		return Polarizations{Plus: []float64{}, Cross: []float64{}}, nil
	}

	n := len(modes[order[0]])
	total := make([]complex128, n)

	for _, mode := range order {
		series := modes[mode]
		if len(series) != n {
			return Polarizations{}, fmt.Errorf("%w: mode %s has %d samples, expected %d",
				ErrLengthMismatch, mode, len(series), n)
		}

		ylm, err := harmonics.SYlm(-2, mode.L, mode.M, inclination, phase)
		if err != nil {
			return Polarizations{}, fmt.Errorf("mode %s: %w", mode, err)
		}

		for i, h := range series {
			total[i] += h * ylm
		}
	}

	pol := Polarizations{
		Plus:  make([]float64, n),
		Cross: make([]float64, n),
	}
	for i, h := range total {
		pol.Plus[i] = real(h)
		pol.Cross[i] = -imag(h)
	}
	return pol, nil
}
