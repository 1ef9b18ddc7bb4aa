package distribution

import "math"

// FamilyExponential names the exponential family in errors and config.
const FamilyExponential = "exponential"

// Exponential is the exponential distribution with rate λ
// (https://en.wikipedia.org/wiki/Exponential_distribution).
//
// Mean and standard deviation coincide for this family, which is why
// ExponentialFromMean and ExponentialFromStdDev agree for equal inputs.
type Exponential struct {
	rate float64
}

// NewExponential creates an exponential distribution with the given rate.
func NewExponential(rate float64) (Exponential, error) {
	if err := checkPositive(FamilyExponential, "rate", rate); err != nil {
		return Exponential{}, err
	}
	return Exponential{rate: rate}, nil
}

// ExponentialFromMean creates the exponential distribution whose mean is mean.
func ExponentialFromMean(mean float64) (Exponential, error) {
	if err := checkPositive(FamilyExponential, "mean", mean); err != nil {
		return Exponential{}, err
	}
	return Exponential{rate: 1 / mean}, nil
}

// ExponentialFromStdDev creates the exponential distribution whose standard
// deviation is stdev.
func ExponentialFromStdDev(stdev float64) (Exponential, error) {
	if err := checkPositive(FamilyExponential, "stdev", stdev); err != nil {
		return Exponential{}, err
	}
	return Exponential{rate: 1 / stdev}, nil
}

// Rate returns λ.
func (e Exponential) Rate() float64 {
	return e.rate
}

// CDF returns 1 - exp(-λx) for x >= 0 and 0 otherwise.
func (e Exponential) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return -math.Expm1(-e.rate * x)
}

// PDF returns λ·exp(-λx) for x >= 0 and 0 otherwise.
func (e Exponential) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return e.rate * math.Exp(-e.rate*x)
}

func (e Exponential) Mean() float64 {
	return 1 / e.rate
}

func (e Exponential) Median() float64 {
	return math.Ln2 / e.rate
}

func (e Exponential) StdDev() float64 {
	return e.Mean()
}

func (e Exponential) Variance() float64 {
	return 1 / (e.rate * e.rate)
}

// At evaluates the density. It is defined everywhere.
func (e Exponential) At(x float64) (float64, bool) {
	return e.PDF(x), true
}

func (e Exponential) String() string {
	return "Exponential(" + formatParam("rate", e.rate) + ")"
}
