package harness

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/roach88/closedform/distribution"
	"github.com/roach88/closedform/graph"
)

// CheckError is returned when a check fails.
type CheckError struct {
	Type     string // Check type
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
}

// Error implements the error interface.
func (e *CheckError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Check failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s", e.Actual)
	return buf.String()
}

// evaluateCheck runs a single check against d.
func evaluateCheck(d distribution.Distribution, c Check) error {
	switch c.Type {
	case CheckMean:
		return compare(c, "mean", d.Mean())
	case CheckMedian:
		return compare(c, "median", d.Median())
	case CheckStdDev:
		return compare(c, "stdev", d.StdDev())
	case CheckPDF:
		return compare(c, fmt.Sprintf("pdf(%g)", *c.At), d.PDF(*c.At))
	case CheckCDF:
		return compare(c, fmt.Sprintf("cdf(%g)", *c.At), d.CDF(*c.At))
	case CheckAt:
		return checkAt(d, c)
	case CheckCDFMonotone:
		return checkMonotone(d, c)
	case CheckPDFNonNegative:
		return checkNonNegative(d, c)
	default:
		return fmt.Errorf("unknown check type %q", c.Type)
	}
}

func tolerance(c Check) float64 {
	if c.Tolerance == 0 {
		return DefaultTolerance
	}
	return c.Tolerance
}

func compare(c Check, label string, got float64) error {
	want := *c.Want
	tol := tolerance(c)
	if math.IsNaN(got) || math.Abs(got-want) > tol {
		return &CheckError{
			Type:     c.Type,
			Expected: fmt.Sprintf("%s = %g ± %g", label, want, tol),
			Actual:   fmt.Sprintf("%g", got),
		}
	}
	return nil
}

func checkAt(d distribution.Distribution, c Check) error {
	g, ok := d.(graph.Graphable)
	if !ok {
		return &CheckError{
			Type:     c.Type,
			Expected: "graphable distribution",
			Actual:   fmt.Sprintf("%T does not implement graph.Graphable", d),
		}
	}

	y, defined := g.At(*c.At)
	if !defined {
		return &CheckError{
			Type:     c.Type,
			Expected: fmt.Sprintf("f(%g) = %g", *c.At, *c.Want),
			Actual:   "undefined",
		}
	}
	return compare(c, fmt.Sprintf("f(%g)", *c.At), y)
}

func grid(c Check) []float64 {
	return floats.Span(make([]float64, c.Points), c.From, c.To)
}

func checkMonotone(d distribution.Distribution, c Check) error {
	xs := grid(c)
	prev := d.CDF(xs[0])
	for _, x := range xs[1:] {
		y := d.CDF(x)
		if y < prev {
			return &CheckError{
				Type:     c.Type,
				Expected: fmt.Sprintf("cdf non-decreasing over [%g, %g]", c.From, c.To),
				Actual:   fmt.Sprintf("cdf(%g) = %g after %g", x, y, prev),
			}
		}
		prev = y
	}
	return nil
}

func checkNonNegative(d distribution.Distribution, c Check) error {
	for _, x := range grid(c) {
		if y := d.PDF(x); !(y >= 0) {
			return &CheckError{
				Type:     c.Type,
				Expected: fmt.Sprintf("pdf >= 0 over [%g, %g]", c.From, c.To),
				Actual:   fmt.Sprintf("pdf(%g) = %g", x, y),
			}
		}
	}
	return nil
}
