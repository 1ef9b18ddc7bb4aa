package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/roach88/closedform/config"
)

// Scenario is a set of checks against one distribution.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Distribution defines the distribution under test.
	Distribution config.Definition `yaml:"distribution"`

	// Checks run in order. All of them run even after a failure.
	Checks []Check `yaml:"checks"`

	// Graph, if set, is the range sampled for the golden trace.
	Graph *GraphRange `yaml:"graph,omitempty"`
}

// Check is a single expectation about the distribution.
type Check struct {
	// Type is one of the Check* constants.
	Type string `yaml:"type"`

	// At is the evaluation point for pdf, cdf and at checks.
	At *float64 `yaml:"at,omitempty"`

	// Want is the expected value for point and summary checks.
	Want *float64 `yaml:"want,omitempty"`

	// Tolerance is the allowed absolute difference. Zero means DefaultTolerance.
	Tolerance float64 `yaml:"tolerance,omitempty"`

	// From, To and Points describe the grid for property checks.
	From   float64 `yaml:"from,omitempty"`
	To     float64 `yaml:"to,omitempty"`
	Points int     `yaml:"points,omitempty"`
}

// GraphRange is an evenly spaced sampling range.
type GraphRange struct {
	From   float64 `yaml:"from"`
	To     float64 `yaml:"to"`
	Points int     `yaml:"points"`
}

// Check type constants.
const (
	CheckMean           = "mean"
	CheckMedian         = "median"
	CheckStdDev         = "stdev"
	CheckPDF            = "pdf"
	CheckCDF            = "cdf"
	CheckAt             = "at"
	CheckCDFMonotone    = "cdf_monotone"
	CheckPDFNonNegative = "pdf_nonnegative"
)

// DefaultTolerance is used when a check leaves tolerance unset.
const DefaultTolerance = 1e-9

// LoadScenario reads and parses a scenario YAML file.
// Unknown fields and missing required fields are errors.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict decoding catches typos like "check:" vs "checks:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", filepath.Base(path), err)
	}

	return &scenario, nil
}

// LoadDir loads every *.yaml scenario in dir, sorted by file name.
func LoadDir(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no scenario files found in %s", dir)
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	seen := make(map[string]string, len(paths))
	for _, p := range paths {
		s, err := LoadScenario(p)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[s.Name]; dup {
			return nil, fmt.Errorf("scenario name %q used by both %s and %s", s.Name, prev, p)
		}
		seen[s.Name] = p
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Distribution.Kind == "" {
		return fmt.Errorf("distribution.kind is required")
	}

	if len(s.Checks) == 0 {
		return fmt.Errorf("checks list is required and must be non-empty")
	}

	for i, c := range s.Checks {
		if err := validateCheck(c); err != nil {
			return fmt.Errorf("checks[%d]: %w", i, err)
		}
	}

	if s.Graph != nil && s.Graph.Points < 2 {
		return fmt.Errorf("graph.points must be at least 2")
	}

	return nil
}

func validateCheck(c Check) error {
	if c.Tolerance < 0 {
		return fmt.Errorf("tolerance must not be negative")
	}

	switch c.Type {
	case CheckMean, CheckMedian, CheckStdDev:
		if c.Want == nil {
			return fmt.Errorf("%s check requires want", c.Type)
		}
	case CheckPDF, CheckCDF, CheckAt:
		if c.At == nil || c.Want == nil {
			return fmt.Errorf("%s check requires at and want", c.Type)
		}
	case CheckCDFMonotone, CheckPDFNonNegative:
		if c.Points < 2 {
			return fmt.Errorf("%s check requires points >= 2", c.Type)
		}
		if c.From > c.To {
			return fmt.Errorf("%s check has from > to", c.Type)
		}
	case "":
		return fmt.Errorf("type is required")
	default:
		return fmt.Errorf("unknown check type %q", c.Type)
	}
	return nil
}
