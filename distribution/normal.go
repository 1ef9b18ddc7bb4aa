package distribution

import "math"

// FamilyNormal names the normal family in errors and config.
const FamilyNormal = "normal"

// StandardNormal is the normal distribution with mean 0 and standard deviation 1.
var StandardNormal = Normal{mu: 0, sigma: 1}

// Normal is the normal (Gaussian) distribution
// (https://en.wikipedia.org/wiki/Normal_distribution).
type Normal struct {
	mu    float64 // mean
	sigma float64 // standard deviation
}

// NewNormal creates a normal distribution with mean mu and standard
// deviation sigma.
func NewNormal(mu, sigma float64) (Normal, error) {
	if err := checkFinite(FamilyNormal, "mean", mu); err != nil {
		return Normal{}, err
	}
	if err := checkPositive(FamilyNormal, "stdev", sigma); err != nil {
		return Normal{}, err
	}
	return Normal{mu: mu, sigma: sigma}, nil
}

// CDF returns ½(1 + erf((x-μ)/(σ√2))).
func (n Normal) CDF(x float64) float64 {
	return 0.5 * (1 + math.Erf((x-n.mu)/(n.sigma*math.Sqrt2)))
}

func (n Normal) PDF(x float64) float64 {
	z := (x - n.mu) / n.sigma
	return math.Exp(-0.5*z*z) / (n.sigma * math.Sqrt(2*math.Pi))
}

func (n Normal) Mean() float64 {
	return n.mu
}

// Median equals the mean by symmetry.
func (n Normal) Median() float64 {
	return n.mu
}

func (n Normal) StdDev() float64 {
	return n.sigma
}

func (n Normal) Variance() float64 {
	return n.sigma * n.sigma
}

// At evaluates the density. It is defined everywhere.
func (n Normal) At(x float64) (float64, bool) {
	return n.PDF(x), true
}

func (n Normal) String() string {
	return "Normal(" + formatParam("mean", n.mu) + ", " + formatParam("stdev", n.sigma) + ")"
}
