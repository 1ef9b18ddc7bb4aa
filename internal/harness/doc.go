// Package harness runs conformance scenarios against configured
// distributions.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: standard_normal
//	description: "Reference densities of N(0, 1)"
//	distribution:
//	  kind: normal
//	  mean: 0
//	  stdev: 1
//	checks:
//	  - type: pdf
//	    at: 0
//	    want: 0.39894228
//	    tolerance: 0.00000001
//	  - type: cdf_monotone
//	    from: -5
//	    to: 5
//	    points: 101
//	graph:
//	  from: -3
//	  to: 3
//	  points: 7
//
// The distribution block is a config.Definition.
//
// # Check Types
//
//   - mean, median, stdev: compare the summary statistic with want
//   - pdf, cdf, at: evaluate at x = at and compare with want
//   - cdf_monotone: CDF never decreases over points samples of [from, to]
//   - pdf_nonnegative: PDF is >= 0 over points samples of [from, to]
//
// Tolerance defaults to 1e-9.
//
// # Golden Traces
//
// When a scenario has a graph block, RunWithGolden samples the
// distribution's density over that range and compares the text trace with
// testdata/golden/<name>.golden. Regenerate with:
//
//	go test ./internal/harness -update
package harness
