// Package units converts between SI and geometric (G = c = 1) units and
// between the common parametrisations of binary masses.
package units

import "math"

// M12ToMc converts component masses to chirp mass
func M12ToMc(m1, m2 float64) float64 {
	return math.Pow(m1*m2, 3.0/5.0) / math.Pow(m1+m2, 1.0/5.0)
}

// M12ToSymRatio converts component masses to the symmetric mass ratio
func M12ToSymRatio(m1, m2 float64) float64 {
	return m1 * m2 / ((m1 + m2) * (m1 + m2))
}

// McEtaToM12 converts chirp mass and symmetric mass ratio to component masses
// with m1 >= m2. eta must lie in (0, 0.25]; larger values give NaN.
func McEtaToM12(mc, eta float64) (m1, m2 float64) {
	scale := mc / math.Pow(eta, 0.6)
	root := math.Sqrt(1 - 4*eta)
	m1 = scale * (1 + root) / 2
	m2 = scale * (1 - root) / 2
	return m1, m2
}

// MSolToGeo converts a mass from solar masses to geometric units (metres)
func MSolToGeo(mm float64) float64 {
	return mm / KG * GG / (CC * CC)
}

// MGeoToSol converts a mass from geometric units to solar masses
func MGeoToSol(mm float64) float64 {
	return mm * KG / GG * (CC * CC)
}

// TimeSToGeo converts time from seconds to geometric units
func TimeSToGeo(t float64) float64 {
	return t * CC
}

// TimeGeoToS converts time from geometric units to seconds
func TimeGeoToS(t float64) float64 {
	return t / CC
}

// FreqHzToGeo converts frequency from Hz to geometric units
func FreqHzToGeo(f float64) float64 {
	return f / CC
}

// FreqGeoToHz converts frequency from geometric units to Hz
func FreqGeoToHz(f float64) float64 {
	return f * CC
}

// DistMpcToGeo converts distance from Mpc to geometric units (metres)
func DistMpcToGeo(d float64) float64 {
	return d * MPC
}

// ApplyTo maps a scalar conversion over src, writing into dst.
// A nil dst is allocated; otherwise it must have the length of src.
func ApplyTo(dst, src []float64, fn func(float64) float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(src))
	}
	if len(dst) != len(src) {
		panic("units: slice length mismatch")
	}
	for i, v := range src {
		dst[i] = fn(v)
	}
	return dst
}
