package config

import (
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/text/cases"

	"github.com/roach88/closedform/distribution"
)

// Definition describes one distribution. Numeric fields are pointers so an
// explicit 0 can be told apart from an absent field.
type Definition struct {
	// Name identifies the distribution within a document.
	Name string `yaml:"name" json:"name,omitempty"`

	// Kind is the family: exponential, normal or uniform.
	Kind string `yaml:"kind" json:"kind"`

	Rate   *float64 `yaml:"rate,omitempty" json:"rate,omitempty"`
	Mean   *float64 `yaml:"mean,omitempty" json:"mean,omitempty"`
	StdDev *float64 `yaml:"stdev,omitempty" json:"stdev,omitempty"`
	Min    *float64 `yaml:"min,omitempty" json:"min,omitempty"`
	Max    *float64 `yaml:"max,omitempty" json:"max,omitempty"`
}

var kindAliases = map[string]string{
	"exp":      distribution.FamilyExponential,
	"gaussian": distribution.FamilyNormal,
}

// NormalizeKind maps a user-supplied kind to its family name.
// It returns false for unknown kinds.
func NormalizeKind(kind string) (string, bool) {
	k := cases.Fold().String(strings.TrimSpace(kind))
	if alias, ok := kindAliases[k]; ok {
		k = alias
	}
	switch k {
	case distribution.FamilyExponential, distribution.FamilyNormal, distribution.FamilyUniform:
		return k, true
	}
	return "", false
}

// Build constructs the distribution d describes.
func (d Definition) Build() (distribution.Distribution, error) {
	kind, ok := NormalizeKind(d.Kind)
	if !ok {
		return nil, d.errorf("kind", "unknown kind %q", d.Kind)
	}

	var (
		dist distribution.Distribution
		err  error
	)
	switch kind {
	case distribution.FamilyExponential:
		dist, err = d.buildExponential()
	case distribution.FamilyNormal:
		dist, err = d.buildNormal()
	case distribution.FamilyUniform:
		dist, err = d.buildUniform()
	}
	if err != nil {
		return nil, err
	}

	slog.Debug("distribution built", "name", d.Name, "kind", kind, "distribution", dist)
	return dist, nil
}

func (d Definition) buildExponential() (distribution.Distribution, error) {
	if err := d.reject(param{"min", d.Min}, param{"max", d.Max}); err != nil {
		return nil, err
	}

	set := 0
	for _, p := range []*float64{d.Rate, d.Mean, d.StdDev} {
		if p != nil {
			set++
		}
	}
	if set != 1 {
		return nil, d.errorf("rate", "exponential needs exactly one of rate, mean or stdev (got %d)", set)
	}

	var (
		e   distribution.Exponential
		err error
	)
	switch {
	case d.Rate != nil:
		e, err = distribution.NewExponential(*d.Rate)
	case d.Mean != nil:
		e, err = distribution.ExponentialFromMean(*d.Mean)
	default:
		e, err = distribution.ExponentialFromStdDev(*d.StdDev)
	}
	if err != nil {
		return nil, d.wrap(err)
	}
	return e, nil
}

func (d Definition) buildNormal() (distribution.Distribution, error) {
	if err := d.reject(param{"rate", d.Rate}, param{"min", d.Min}, param{"max", d.Max}); err != nil {
		return nil, err
	}
	if d.Mean == nil {
		return nil, d.errorf("mean", "mean is required")
	}
	if d.StdDev == nil {
		return nil, d.errorf("stdev", "stdev is required")
	}

	n, err := distribution.NewNormal(*d.Mean, *d.StdDev)
	if err != nil {
		return nil, d.wrap(err)
	}
	return n, nil
}

func (d Definition) buildUniform() (distribution.Distribution, error) {
	if err := d.reject(param{"rate", d.Rate}, param{"mean", d.Mean}, param{"stdev", d.StdDev}); err != nil {
		return nil, err
	}
	if d.Min == nil {
		return nil, d.errorf("min", "min is required")
	}
	if d.Max == nil {
		return nil, d.errorf("max", "max is required")
	}

	u, err := distribution.NewUniform(*d.Min, *d.Max)
	if err != nil {
		return nil, d.wrap(err)
	}
	return u, nil
}

type param struct {
	field string
	value *float64
}

// reject fails on the first set field that does not belong to the kind.
func (d Definition) reject(params ...param) error {
	kind, _ := NormalizeKind(d.Kind)
	for _, p := range params {
		if p.value != nil {
			return d.errorf(p.field, "%s is not a parameter of %s", p.field, kind)
		}
	}
	return nil
}

func (d Definition) label() string {
	if d.Name == "" {
		return "distribution"
	}
	return d.Name
}

func (d Definition) errorf(field, format string, args ...any) error {
	return &ConfigError{
		Field:   d.label() + "." + field,
		Message: fmt.Sprintf(format, args...),
	}
}

func (d Definition) wrap(err error) error {
	return fmt.Errorf("%s: %w", d.label(), err)
}

// BuildAll builds every definition, keyed by name. Names must be non-empty
// and unique.
func BuildAll(defs []Definition) (map[string]distribution.Distribution, error) {
	out := make(map[string]distribution.Distribution, len(defs))
	for i, def := range defs {
		if def.Name == "" {
			return nil, &ConfigError{
				Field:   fmt.Sprintf("distributions[%d].name", i),
				Message: "name is required",
			}
		}
		if _, dup := out[def.Name]; dup {
			return nil, &ConfigError{
				Field:   fmt.Sprintf("distributions[%d].name", i),
				Message: fmt.Sprintf("duplicate name %q", def.Name),
			}
		}

		d, err := def.Build()
		if err != nil {
			return nil, err
		}
		out[def.Name] = d
	}
	return out, nil
}

// Float returns a pointer to v, for filling Definition fields in code.
func Float(v float64) *float64 {
	return &v
}
