// Package harmonics evaluates spin-weighted spherical harmonics, the angular
// basis gravitational radiation is decomposed into.
package harmonics

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/stat/combin"
)

// ErrInvalidHarmonic is returned for an (s, l, m) triple with no harmonic
var ErrInvalidHarmonic = errors.New("invalid spin-weighted harmonic indices")

// SYlm returns the spin-weighted spherical harmonic sYlm(theta, phi) using
// the Goldberg et al. (1967) sum written in half angles so that theta = 0
// and theta = pi are evaluated exactly. The phase convention matches LALSuite.
func SYlm(s, l, m int, theta, phi float64) (complex128, error) {
	if l < 0 || abs(m) > l || abs(s) > l {
		return 0, fmt.Errorf("%w: s=%d l=%d m=%d", ErrInvalidHarmonic, s, l, m)
	}

	norm := math.Sqrt(factorial(l+m) * factorial(l-m) * float64(2*l+1) /
		(4 * math.Pi * factorial(l+s) * factorial(l-s)))
	if m%2 != 0 {
		norm = -norm
	}

	sinHalf, cosHalf := math.Sincos(theta / 2)

	var sum float64
	for r := 0; r <= l-s; r++ {
		k := r + s - m
		if k < 0 || k > l+s {
			continue
		}
		term := float64(combin.Binomial(l-s, r) * combin.Binomial(l+s, k))
		if (l-r-s)%2 != 0 {
			term = -term
		}
		p := 2*r + s - m
		sum += term * math.Pow(sinHalf, float64(2*l-p)) * math.Pow(cosHalf, float64(p))
	}

	return complex(norm*sum, 0) * cmplx.Exp(complex(0, float64(m)*phi)), nil
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
