package harmonics

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSYlmQuadrupoleClosedForms(t *testing.T) {
	closed := map[int]func(theta, phi float64) complex128{
		2: func(th, ph float64) complex128 {
			return complex(math.Sqrt(5/(64*math.Pi))*math.Pow(1+math.Cos(th), 2), 0) * cmplx.Exp(complex(0, 2*ph))
		},
		1: func(th, ph float64) complex128 {
			return complex(math.Sqrt(5/(16*math.Pi))*math.Sin(th)*(1+math.Cos(th)), 0) * cmplx.Exp(complex(0, ph))
		},
		0: func(th, ph float64) complex128 {
			return complex(math.Sqrt(15/(32*math.Pi))*math.Pow(math.Sin(th), 2), 0)
		},
		-1: func(th, ph float64) complex128 {
			return complex(math.Sqrt(5/(16*math.Pi))*math.Sin(th)*(1-math.Cos(th)), 0) * cmplx.Exp(complex(0, -ph))
		},
		-2: func(th, ph float64) complex128 {
			return complex(math.Sqrt(5/(64*math.Pi))*math.Pow(1-math.Cos(th), 2), 0) * cmplx.Exp(complex(0, -2*ph))
		},
	}

	angles := [][2]float64{{0, 0}, {math.Pi / 3, 0.4}, {math.Pi / 2, 1.1}, {2.5, -0.8}, {math.Pi, 0}}

	for m, want := range closed {
		for _, a := range angles {
			got, err := SYlm(-2, 2, m, a[0], a[1])
			require.NoError(t, err)
			w := want(a[0], a[1])
			assert.InDelta(t, real(w), real(got), 1e-12, "m=%d theta=%v phi=%v", m, a[0], a[1])
			assert.InDelta(t, imag(w), imag(got), 1e-12, "m=%d theta=%v phi=%v", m, a[0], a[1])
		}
	}
}

func TestSYlmFaceOn(t *testing.T) {
	y, err := SYlm(-2, 2, 2, 0, 0)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(5/(4*math.Pi)), real(y), 1e-14)
	assert.Equal(t, 0.0, imag(y))

	// only m = -s survives on the axis
	for l := 2; l <= 4; l++ {
		for m := -l; m <= l; m++ {
			if m == 2 {
				continue
			}
			y, err := SYlm(-2, l, m, 0, 0.3)
			require.NoError(t, err)
			assert.InDelta(t, 0.0, cmplx.Abs(y), 1e-15, "l=%d m=%d", l, m)
		}
	}
}

func TestSYlmNormalised(t *testing.T) {
	const steps = 4000
	dtheta := math.Pi / steps

	for l := 2; l <= 4; l++ {
		for m := -l; m <= l; m++ {
			var integral float64
			for i := range steps {
				theta := (float64(i) + 0.5) * dtheta
				y, err := SYlm(-2, l, m, theta, 0.7)
				require.NoError(t, err)
				a := cmplx.Abs(y)
				integral += a * a * math.Sin(theta) * dtheta
			}
			assert.InDelta(t, 1.0, 2*math.Pi*integral, 1e-5, "l=%d m=%d", l, m)
		}
	}
}

func TestSYlmInvalid(t *testing.T) {
	tests := []struct {
		name    string
		s, l, m int
	}{
		{"m above l", -2, 2, 3},
		{"m below -l", -2, 3, -4},
		{"spin above l", -2, 1, 0},
		{"negative l", 0, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SYlm(tt.s, tt.l, tt.m, 0.3, 0.1)
			assert.ErrorIs(t, err, ErrInvalidHarmonic)
		})
	}
}
