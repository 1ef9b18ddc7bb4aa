// Package graph exposes real-valued functions for plotting.
//
// A Graphable is anything that can be evaluated at a point and may be
// undefined there. Sample turns one into a series of points that a
// rendering backend can consume; nothing here draws.
package graph

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Graphable is a function f(x) that may be undefined at some points.
// ok is false where f is undefined; y is then meaningless.
type Graphable interface {
	At(x float64) (y float64, ok bool)
}

// Func adapts an ordinary function to Graphable.
type Func func(x float64) (float64, bool)

// At calls f(x).
func (f Func) At(x float64) (float64, bool) {
	return f(x)
}

// Total wraps a function that is defined everywhere.
func Total(f func(float64) float64) Graphable {
	return Func(func(x float64) (float64, bool) {
		return f(x), true
	})
}

// Restrict limits g to [lo, hi]. Outside that interval the result is undefined.
func Restrict(g Graphable, lo, hi float64) Graphable {
	return Func(func(x float64) (float64, bool) {
		if x < lo || x > hi {
			return 0, false
		}
		return g.At(x)
	})
}

// Point is one evaluation of a Graphable.
type Point struct {
	X       float64
	Y       float64
	Defined bool
}

// ErrTooFewPoints is returned by Sample when fewer than two points are requested.
var ErrTooFewPoints = errors.New("graph: need at least 2 sample points")

// Sample evaluates g at n evenly spaced points over [from, to], in ascending
// order. Undefined points are kept with Defined set to false so gaps survive.
func Sample(g Graphable, from, to float64, n int) ([]Point, error) {
	if n < 2 {
		return nil, ErrTooFewPoints
	}
	if math.IsNaN(from) || math.IsInf(from, 0) || math.IsNaN(to) || math.IsInf(to, 0) {
		return nil, fmt.Errorf("graph: range [%g, %g] must be finite", from, to)
	}
	if from > to {
		return nil, fmt.Errorf("graph: range start %g is after end %g", from, to)
	}

	xs := floats.Span(make([]float64, n), from, to)
	points := make([]Point, n)
	for i, x := range xs {
		y, ok := g.At(x)
		if !ok {
			y = 0
		}
		points[i] = Point{X: x, Y: y, Defined: ok}
	}
	return points, nil
}

// Defined returns only the points where the function was defined.
func Defined(points []Point) []Point {
	out := make([]Point, 0, len(points))
	for _, p := range points {
		if p.Defined {
			out = append(out, p)
		}
	}
	return out
}
