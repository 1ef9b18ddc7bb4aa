package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// document is the top-level shape of a YAML definitions file.
type document struct {
	Distributions []Definition `yaml:"distributions"`
}

// DecodeYAML parses a YAML document of distribution definitions.
// Unknown fields are rejected so typos ("stddev:") fail loudly.
func DecodeYAML(data []byte) ([]Definition, error) {
	var doc document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ConfigError{Field: "distributions", Message: "document is empty"}
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if len(doc.Distributions) == 0 {
		return nil, &ConfigError{Field: "distributions", Message: "at least one distribution is required"}
	}
	return doc.Distributions, nil
}
