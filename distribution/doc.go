// Package distribution provides closed-form univariate probability
// distributions behind a single Distribution interface.
//
// Every variant is an immutable value built by a fallible constructor:
//
//	d, err := distribution.NewNormal(0, 1)
//	if err != nil {
//	    return err
//	}
//	p := d.CDF(1.96)
//
// Callers that treat bad parameters as a programming error can wrap a
// constructor with Must, which panics instead:
//
//	u := distribution.Must(distribution.NewUniform(0, 10))
//
// Variants also implement graph.Graphable, evaluating to their density.
// Neither package imports the other.
//
// Parameter rules:
//   - rates, means (exponential) and standard deviations must be finite and > 0
//   - uniform bounds must be finite with min < max
//
// Values never change after construction, so they are safe for concurrent use.
package distribution
