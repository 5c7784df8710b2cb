// Package testutil provides numeric assertion helpers shared by the package tests.
package testutil

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances
const (
	DefaultTolerance = 1e-12
	WindowTolerance  = 1e-14
)

// AssertSymmetric verifies that s[i] == s[n-1-i] within tolerance.
func AssertSymmetric(t *testing.T, s []float64, tolerance float64) bool {
	t.Helper()
	n := len(s)
	for i := 0; i < n/2; i++ {
		j := n - 1 - i
		if !assert.InDelta(t, s[i], s[j], tolerance,
			"slice not symmetric: s[%d]=%v != s[%d]=%v", i, s[i], j, s[j]) {
			return false
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [minVal, maxVal].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal || math.IsNaN(v) {
			return assert.Fail(t, "value out of range",
				"s[%d]=%v is outside range [%v, %v]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertRiseThenFall verifies that s is non-decreasing up to its midpoint
// and non-increasing after it.
func AssertRiseThenFall(t *testing.T, s []float64) bool {
	t.Helper()
	mid := (len(s) - 1) / 2
	for i := 1; i <= mid; i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t, "not rising", "s[%d]=%v < s[%d]=%v", i, s[i], i-1, s[i-1])
		}
	}
	for i := mid + 1; i < len(s); i++ {
		if i > mid+1 && s[i] > s[i-1] {
			return assert.Fail(t, "not falling", "s[%d]=%v > s[%d]=%v", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertComplexSliceInDelta compares two complex slices element-wise.
func AssertComplexSliceInDelta(t *testing.T, expected, actual []complex128, tolerance float64) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected)) {
		return false
	}
	for i := range expected {
		if d := cmplx.Abs(expected[i] - actual[i]); d > tolerance {
			return assert.Fail(t, "complex values differ",
				"index %d: expected %v, got %v (|diff|=%g)", i, expected[i], actual[i], d)
		}
	}
	return true
}
