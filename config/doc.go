// Package config builds distributions from declarative definitions.
//
// Definitions can be written in YAML:
//
//	distributions:
//	  - name: latency
//	    kind: exponential
//	    mean: 120
//	  - name: noise
//	    kind: normal
//	    mean: 0
//	    stdev: 0.5
//
// or in CUE, where a built-in schema rejects impossible parameters before
// anything is constructed:
//
//	distributions: {
//	    latency: {kind: "exponential", mean: 120}
//	    jitter:  {kind: "uniform", min: -5, max: 5}
//	}
//
// Kind names are matched case-insensitively. "exp" and "gaussian" are
// accepted as aliases.
//
// An exponential definition takes exactly one of rate, mean or stdev.
// A normal definition takes mean and stdev. A uniform definition takes min
// and max. Fields that do not belong to the kind are rejected.
package config
