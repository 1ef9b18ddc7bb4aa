// Package testutil provides helpers shared by distribution tests.
package testutil

import (
	"testing"

	"gonum.org/v1/gonum/floats"
)

// DefaultTolerance matches nine decimal places, the precision reference
// tables are usually quoted to.
const DefaultTolerance = 1e-9

// Grid returns n evenly spaced points covering [from, to], endpoints included.
//
// Panics if n < 2, like floats.Span.
func Grid(from, to float64, n int) []float64 {
	return floats.Span(make([]float64, n), from, to)
}

// AssertNonDecreasing fails t if f decreases anywhere along xs.
// xs must be sorted ascending.
func AssertNonDecreasing(t testing.TB, xs []float64, f func(float64) float64) bool {
	t.Helper()

	prev := f(xs[0])
	for _, x := range xs[1:] {
		y := f(x)
		if y < prev {
			t.Errorf("not non-decreasing at x=%g: f=%g after %g", x, y, prev)
			return false
		}
		prev = y
	}
	return true
}

// AssertNonNegative fails t if f is negative (or NaN) at any point of xs.
func AssertNonNegative(t testing.TB, xs []float64, f func(float64) float64) bool {
	t.Helper()

	for _, x := range xs {
		if y := f(x); !(y >= 0) {
			t.Errorf("negative at x=%g: f=%g", x, y)
			return false
		}
	}
	return true
}
