package distribution

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/closedform/graph"
	"github.com/roach88/closedform/internal/testutil"
)

var (
	_ Distribution = Exponential{}
	_ Distribution = Normal{}
	_ Distribution = Uniform{}

	_ graph.Graphable = Exponential{}
	_ graph.Graphable = Normal{}
	_ graph.Graphable = Uniform{}
)

func allVariants() map[string]Distribution {
	return map[string]Distribution{
		"exponential/rate=0.5": Must(NewExponential(0.5)),
		"exponential/mean=10":  Must(ExponentialFromMean(10)),
		"normal/standard":      StandardNormal,
		"normal/shifted":       Must(NewNormal(-3, 4)),
		"uniform/0..10":        Must(NewUniform(0, 10)),
		"uniform/-5..-1":       Must(NewUniform(-5, -1)),
	}
}

func TestDistribution_CDFNonDecreasing(t *testing.T) {
	xs := testutil.Grid(-50, 50, 1001)

	for name, d := range allVariants() {
		t.Run(name, func(t *testing.T) {
			testutil.AssertNonDecreasing(t, xs, d.CDF)
			assert.Equal(t, 0.0, d.CDF(-1e6), "cdf limit at -inf")
			assert.InDelta(t, 1.0, d.CDF(1e6), 1e-12, "cdf limit at +inf")
		})
	}
}

func TestDistribution_PDFNonNegative(t *testing.T) {
	xs := testutil.Grid(-50, 50, 1001)

	for name, d := range allVariants() {
		t.Run(name, func(t *testing.T) {
			testutil.AssertNonNegative(t, xs, d.PDF)
		})
	}
}

func TestDistribution_GraphMatchesPDF(t *testing.T) {
	for name, d := range allVariants() {
		g, ok := d.(graph.Graphable)
		if !assert.True(t, ok, "%s should be graphable", name) {
			continue
		}

		points, err := graph.Sample(g, -20, 20, 81)
		assert.NoError(t, err)
		for _, p := range points {
			assert.True(t, p.Defined, "%s defined at %g", name, p.X)
			assert.Equal(t, d.PDF(p.X), p.Y, "%s at %g", name, p.X)
		}
	}
}

func TestDistribution_ConcurrentReads(t *testing.T) {
	variants := allVariants()
	const goroutines = 16

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, d := range variants {
				for _, x := range testutil.Grid(-5, 5, 21) {
					_ = d.CDF(x) + d.PDF(x) + d.Mean() + d.Median() + d.StdDev()
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 5.0, variants["uniform/0..10"].Mean(), "values unchanged after concurrent use")
}

func TestParamError_Wrapped(t *testing.T) {
	_, err := NewNormal(0, -2)
	wrapped := fmt.Errorf("building model: %w", err)

	assert.True(t, IsParamError(wrapped))
	assert.True(t, HasCode(wrapped, ErrCodeNonPositive))
	assert.False(t, HasCode(wrapped, ErrCodeZeroWidth))
	assert.False(t, IsParamError(errors.New("other")))
	assert.Equal(t, "NON_POSITIVE: normal stdev: must be > 0, got -2", err.Error())
}
