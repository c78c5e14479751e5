// Package suite loads benchmark suites from YAML files.
package suite

import (
	"strconv"

	"github.com/timed-go/timed/internal/workload"
	"github.com/timed-go/timed/pkg/benchmark"
	"github.com/timed-go/timed/pkg/duration"
)

// Suite is a named list of benchmarks.
type Suite struct {
	// Name identifies the suite.
	Name string `yaml:"name"`

	// Description is free-form text about the suite.
	Description string `yaml:"description,omitempty"`

	// Defaults apply to every benchmark that does not override them.
	Defaults Defaults `yaml:"defaults,omitempty"`

	// Benchmarks to run, in order.
	Benchmarks []Entry `yaml:"benchmarks"`
}

// Defaults holds suite-wide run settings.
type Defaults struct {
	Iterations         int  `yaml:"iterations,omitempty"`
	Warmup             int  `yaml:"warmup,omitempty"`
	BaselineIterations *int `yaml:"baseline_iterations,omitempty"`
}

// Entry describes one benchmark of a suite.
type Entry struct {
	// Name is the benchmark title.
	Name string `yaml:"name"`

	// Info is printed under the title in reports.
	Info string `yaml:"info,omitempty"`

	// Workload names a built-in workload (see workload.Names).
	Workload string `yaml:"workload"`

	// Iterations overrides the suite default when positive.
	Iterations int `yaml:"iterations,omitempty"`

	// Warmup overrides the suite default when positive.
	Warmup int `yaml:"warmup,omitempty"`

	// Duration is a value with unit such as "1.5ms" for sleep and busywait.
	Duration string `yaml:"duration,omitempty"`

	// Size is the workload size for sort and alloc.
	Size int `yaml:"size,omitempty"`
}

// Params converts the entry into workload parameters.
func (e Entry) Params() (workload.Params, error) {
	p := workload.Params{Size: e.Size}
	if e.Duration != "" {
		d, err := duration.ParseValueUnit(e.Duration)
		if err != nil {
			return workload.Params{}, err
		}
		p.Duration = d
	}
	return p, nil
}

// Config builds the benchmark configuration from the entry and defaults.
func (e Entry) Config(d Defaults) benchmark.Config {
	cfg := benchmark.DefaultConfig()
	cfg.Title = e.Name
	cfg.Info = e.Info
	if d.Iterations > 0 {
		cfg.Iterations = d.Iterations
	}
	if e.Iterations > 0 {
		cfg.Iterations = e.Iterations
	}
	cfg.Warmup = d.Warmup
	if e.Warmup > 0 {
		cfg.Warmup = e.Warmup
	}
	if d.BaselineIterations != nil {
		cfg.BaselineIterations = *d.BaselineIterations
	}
	return cfg
}

// LoadError provides details about a suite loading error.
type LoadError struct {
	// File is the path to the file that failed to load.
	File string

	// Line is the line number where the error occurred (0 if unknown).
	Line int

	// Message describes the error.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	switch {
	case e.File != "" && e.Line > 0:
		return e.File + ":" + strconv.Itoa(e.Line) + ": " + msg
	case e.File != "":
		return e.File + ": " + msg
	case e.Line > 0:
		return "line " + strconv.Itoa(e.Line) + ": " + msg
	default:
		return msg
	}
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
