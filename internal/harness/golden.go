package harness

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/closedform/graph"
)

// FormatTrace renders graph samples as stable text, one point per line:
// x with 4 decimals, a tab, then f(x) with 6 decimals or "undefined".
func FormatTrace(name, dist string, trace []graph.Point) []byte {
	var buf strings.Builder
	fmt.Fprintf(&buf, "# %s\n", name)
	fmt.Fprintf(&buf, "%s\n", dist)
	for _, p := range trace {
		if p.Defined {
			fmt.Fprintf(&buf, "%.4f\t%.6f\n", p.X, p.Y)
		} else {
			fmt.Fprintf(&buf, "%.4f\tundefined\n", p.X)
		}
	}
	return []byte(buf.String())
}

// RunWithGolden runs a scenario and compares its graph trace against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns an error if the scenario cannot run or a check failed.
// A trace mismatch fails t through goldie.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	if scenario.Graph == nil {
		return fmt.Errorf("scenario %s has no graph range", scenario.Name)
	}

	result, err := Run(scenario)
	if err != nil {
		return err
	}
	if !result.Pass {
		return fmt.Errorf("scenario %s failed:\n%s", scenario.Name, strings.Join(result.Errors, "\n"))
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, FormatTrace(scenario.Name, result.Distribution, result.Trace))

	return nil
}
