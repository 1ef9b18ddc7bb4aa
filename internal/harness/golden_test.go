package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/closedform/graph"
)

func TestRunWithGolden_Scenarios(t *testing.T) {
	scenarios, err := LoadDir("testdata/scenarios")
	require.NoError(t, err)

	for _, s := range scenarios {
		t.Run(s.Name, func(t *testing.T) {
			require.NoError(t, RunWithGolden(t, s))
		})
	}
}

func TestRunWithGolden_RequiresGraph(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/standard_normal.yaml")
	require.NoError(t, err)
	s.Graph = nil

	err = RunWithGolden(t, s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no graph range")
}

func TestFormatTrace(t *testing.T) {
	trace := []graph.Point{
		{X: -1, Y: 0, Defined: false},
		{X: 0, Y: 0.5, Defined: true},
		{X: 1.25, Y: 1.0 / 3, Defined: true},
	}

	got := string(FormatTrace("demo", "Demo()", trace))
	want := "# demo\nDemo()\n-1.0000\tundefined\n0.0000\t0.500000\n1.2500\t0.333333\n"
	assert.Equal(t, want, got)
}
