package distribution

import "math"

// FamilyUniform names the continuous uniform family in errors and config.
const FamilyUniform = "uniform"

// Uniform is the continuous uniform distribution on [min, max]
// (https://en.wikipedia.org/wiki/Continuous_uniform_distribution).
//
// CDF is 1 for every x above max.
type Uniform struct {
	min float64
	max float64
}

// NewUniform creates a uniform distribution on [lo, hi].
// It fails unless both bounds are finite and lo < hi.
func NewUniform(lo, hi float64) (Uniform, error) {
	if err := checkFinite(FamilyUniform, "min", lo); err != nil {
		return Uniform{}, err
	}
	if err := checkFinite(FamilyUniform, "max", hi); err != nil {
		return Uniform{}, err
	}
	if lo >= hi {
		return Uniform{}, NewBoundsError(FamilyUniform, lo, hi)
	}
	return Uniform{min: lo, max: hi}, nil
}

func (u Uniform) Min() float64 {
	return u.min
}

func (u Uniform) Max() float64 {
	return u.max
}

func (u Uniform) contains(x float64) bool {
	return u.min <= x && x <= u.max
}

func (u Uniform) CDF(x float64) float64 {
	switch {
	case x < u.min:
		return 0
	case x > u.max:
		return 1
	default:
		return (x - u.min) / (u.max - u.min)
	}
}

func (u Uniform) PDF(x float64) float64 {
	if !u.contains(x) {
		return 0
	}
	return 1 / (u.max - u.min)
}

func (u Uniform) Mean() float64 {
	return (u.min + u.max) / 2
}

// Median equals the mean by symmetry.
func (u Uniform) Median() float64 {
	return u.Mean()
}

func (u Uniform) StdDev() float64 {
	return (u.max - u.min) / math.Sqrt(12)
}

func (u Uniform) Variance() float64 {
	w := u.max - u.min
	return w * w / 12
}

// At evaluates the density: 1/(max-min) inside the support, 0 outside.
// It is defined everywhere.
func (u Uniform) At(x float64) (float64, bool) {
	if u.contains(x) {
		return 1 / (u.max - u.min), true
	}
	return 0, true
}

func (u Uniform) String() string {
	return "Uniform(" + formatParam("min", u.min) + ", " + formatParam("max", u.max) + ")"
}
