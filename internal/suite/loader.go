package suite

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/timed-go/timed/internal/workload"
)

// ParseSuite parses and validates a suite from YAML bytes.
func ParseSuite(data []byte) (*Suite, error) {
	var s Suite
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, &LoadError{
			Message: "failed to parse YAML",
			Cause:   err,
		}
	}

	if s.Name == "" {
		return nil, &LoadError{
			Message: "suite name is required",
		}
	}

	if len(s.Benchmarks) == 0 {
		return nil, &LoadError{
			Message: "suite must have at least one benchmark",
		}
	}

	if s.Defaults.Iterations < 0 || s.Defaults.Warmup < 0 ||
		(s.Defaults.BaselineIterations != nil && *s.Defaults.BaselineIterations < 0) {
		return nil, &LoadError{
			Message: "defaults must not be negative",
		}
	}

	lines := benchmarkLines(data)
	for i, e := range s.Benchmarks {
		if err := validateEntry(e, s.Defaults); err != nil {
			le := &LoadError{
				Message: fmt.Sprintf("benchmark %d", i+1),
				Cause:   err,
			}
			if i < len(lines) {
				le.Line = lines[i]
			}
			return nil, le
		}
	}

	return &s, nil
}

func validateEntry(e Entry, d Defaults) error {
	if e.Name == "" {
		return errors.New("name is required")
	}
	if e.Iterations < 0 {
		return fmt.Errorf("%s: iterations must be positive", e.Name)
	}
	p, err := e.Params()
	if err != nil {
		return fmt.Errorf("%s: %w", e.Name, err)
	}
	if err := workload.Validate(e.Workload, p); err != nil {
		return fmt.Errorf("%s: %w", e.Name, err)
	}
	if err := e.Config(d).Validate(); err != nil {
		return fmt.Errorf("%s: %w", e.Name, err)
	}
	return nil
}

// benchmarkLines returns the line of each benchmarks entry, best effort.
func benchmarkLines(data []byte) []int {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil || len(root.Content) == 0 {
		return nil
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(doc.Content); i += 2 {
		if doc.Content[i].Value != "benchmarks" {
			continue
		}
		seq := doc.Content[i+1]
		lines := make([]int, len(seq.Content))
		for j, n := range seq.Content {
			lines[j] = n.Line
		}
		return lines
	}
	return nil
}

// LoadSuite loads a suite from a file.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			File:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	s, err := ParseSuite(data)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.File = path
			return nil, le
		}
		return nil, &LoadError{
			File:    path,
			Message: err.Error(),
		}
	}

	return s, nil
}
