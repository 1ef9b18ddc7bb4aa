package distribution

import (
	"fmt"
	"math"
)

// Distribution is the statistical contract shared by every variant.
//
// CDF is non-decreasing in x, tending to 0 at -Inf and 1 at +Inf.
// PDF is non-negative everywhere. Mean, Median and StdDev depend only on
// the parameters. No method fails: points outside the support map to the
// boundary value (0 density, 0 or 1 probability).
type Distribution interface {
	CDF(x float64) float64
	PDF(x float64) float64
	Mean() float64
	Median() float64
	StdDev() float64
}

// Must returns d, panicking if err is non-nil.
//
//	n := distribution.Must(distribution.NewNormal(0, 1))
func Must[D Distribution](d D, err error) D {
	if err != nil {
		panic(err)
	}
	return d
}

// checkPositive validates a scale-like parameter.
func checkPositive(family, param string, v float64) error {
	if err := checkFinite(family, param, v); err != nil {
		return err
	}
	if v <= 0 {
		return NewNonPositiveError(family, param, v)
	}
	return nil
}

func checkFinite(family, param string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NewNotFiniteError(family, param, v)
	}
	return nil
}

// formatParam renders a parameter for String methods.
func formatParam(name string, v float64) string {
	return fmt.Sprintf("%s=%g", name, v)
}
