package graph

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFunc_At(t *testing.T) {
	recip := Func(func(x float64) (float64, bool) {
		if x == 0 {
			return 0, false
		}
		return 1 / x, true
	})

	y, ok := recip.At(4)
	assert.True(t, ok)
	assert.Equal(t, 0.25, y)

	_, ok = recip.At(0)
	assert.False(t, ok, "1/x is undefined at 0")
}

func TestTotal_AlwaysDefined(t *testing.T) {
	sq := Total(func(x float64) float64 { return x * x })

	for _, x := range []float64{-3, 0, 2.5, 1e9} {
		y, ok := sq.At(x)
		assert.True(t, ok)
		assert.Equal(t, x*x, y)
	}
}

func TestRestrict(t *testing.T) {
	g := Restrict(Total(math.Sqrt), 0, 4)

	y, ok := g.At(4)
	assert.True(t, ok, "upper bound is inclusive")
	assert.Equal(t, 2.0, y)

	_, ok = g.At(-1)
	assert.False(t, ok)

	_, ok = g.At(4.5)
	assert.False(t, ok)
}

func TestSample_EvenlySpaced(t *testing.T) {
	points, err := Sample(Total(func(x float64) float64 { return 2 * x }), 0, 4, 5)
	require.NoError(t, err)
	require.Len(t, points, 5)

	for i, p := range points {
		assert.Equal(t, float64(i), p.X)
		assert.Equal(t, 2*float64(i), p.Y)
		assert.True(t, p.Defined)
	}
}

func TestSample_KeepsUndefinedGaps(t *testing.T) {
	g := Restrict(Total(func(float64) float64 { return 1 }), -1, 1)

	points, err := Sample(g, -2, 2, 5)
	require.NoError(t, err)

	defined := []bool{false, true, true, true, false}
	for i, p := range points {
		assert.Equal(t, defined[i], p.Defined, "x=%g", p.X)
		if !p.Defined {
			assert.Zero(t, p.Y)
		}
	}
	assert.Len(t, Defined(points), 3)
}

func TestSample_SinglePointRange(t *testing.T) {
	points, err := Sample(Total(func(x float64) float64 { return x }), 3, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, 3.0, points[0].X)
	assert.Equal(t, 3.0, points[1].X)
}

func TestSample_Errors(t *testing.T) {
	id := Total(func(x float64) float64 { return x })

	tests := []struct {
		name     string
		from, to float64
		n        int
	}{
		{"one point", 0, 1, 1},
		{"zero points", 0, 1, 0},
		{"inverted range", 1, 0, 3},
		{"nan start", math.NaN(), 1, 3},
		{"infinite end", 0, math.Inf(1), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, err := Sample(id, tt.from, tt.to, tt.n)
			assert.Error(t, err)
			assert.Nil(t, points)
		})
	}

	_, err := Sample(id, 0, 1, 1)
	assert.ErrorIs(t, err, ErrTooFewPoints)
}
