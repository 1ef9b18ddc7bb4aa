package harness

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/closedform/distribution"
	"github.com/roach88/closedform/graph"
)

// Harness runs scenarios. The zero value is not usable; use New.
type Harness struct {
	logger *slog.Logger
}

// New creates a harness that logs to logger. A nil logger discards output.
func New(logger *slog.Logger) *Harness {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Harness{logger: logger}
}

// Run executes a scenario with a discarding logger.
func Run(scenario *Scenario) (*Result, error) {
	return New(nil).Run(scenario)
}

// Run builds the scenario's distribution, evaluates every check and samples
// the graph range if one is given.
//
// Failed checks are reported in the result. An error is returned only when
// the scenario cannot run at all: the distribution does not build, or the
// graph range is unusable.
func (h *Harness) Run(scenario *Scenario) (*Result, error) {
	d, err := scenario.Distribution.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build distribution: %w", err)
	}

	result := NewResult()
	result.Distribution = fmt.Sprint(d)

	for i, c := range scenario.Checks {
		if err := evaluateCheck(d, c); err != nil {
			h.logger.Warn("check failed",
				"scenario", scenario.Name,
				"index", i,
				"type", c.Type,
				"error", err,
			)
			result.AddError(fmt.Sprintf("checks[%d]: %v", i, err))
		}
	}

	if scenario.Graph != nil {
		trace, err := sampleGraph(d, scenario.Graph)
		if err != nil {
			return nil, fmt.Errorf("failed to sample graph: %w", err)
		}
		result.Trace = trace
	}

	h.logger.Info("scenario finished",
		"scenario", scenario.Name,
		"pass", result.Pass,
		"failures", len(result.Errors),
	)
	return result, nil
}

func sampleGraph(d distribution.Distribution, r *GraphRange) ([]graph.Point, error) {
	g, ok := d.(graph.Graphable)
	if !ok {
		return nil, fmt.Errorf("%T does not implement graph.Graphable", d)
	}
	return graph.Sample(g, r.From, r.To, r.Points)
}
