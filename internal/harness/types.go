package harness

import "github.com/roach88/closedform/graph"

// Result is the outcome of running a scenario.
type Result struct {
	// Pass is true when every check succeeded.
	Pass bool `json:"pass"`

	// Distribution is the String form of the distribution under test.
	Distribution string `json:"distribution"`

	// Trace holds the graph samples, empty when the scenario has no graph range.
	Trace []graph.Point `json:"trace"`

	// Errors contains one message per failed check.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []graph.Point{},
		Errors: []string{},
	}
}

// AddError records a failed check and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
