package benchmark

import (
	"errors"
	"fmt"
)

// Benchmark defaults.
const (
	DefaultTitle              = "Benchmark"
	DefaultIterations         = 1
	DefaultBaselineIterations = 500
)

// Errors
var (
	// ErrInvalidConfig indicates an invalid benchmark configuration.
	ErrInvalidConfig = errors.New("invalid benchmark configuration")

	// ErrNoSamples indicates a report was requested before any iteration ran.
	ErrNoSamples = errors.New("no samples collected")

	// ErrUnknownFormat indicates an unsupported report format.
	ErrUnknownFormat = errors.New("unknown report format")
)

// Config controls a benchmark run.
type Config struct {
	// Title names the benchmark in reports.
	Title string `yaml:"title" json:"title"`

	// Info is an optional free-form line printed under the title.
	Info string `yaml:"info" json:"info,omitempty"`

	// Iterations is the number of timed iterations.
	// Default: 1
	Iterations int `yaml:"iterations" json:"iterations"`

	// Warmup is the number of untimed iterations before measurement.
	// Default: 0
	Warmup int `yaml:"warmup" json:"warmup,omitempty"`

	// BaselineIterations is the number of idle-loop cycles averaged into
	// the baseline. Zero disables baseline subtraction.
	// Default: 500
	BaselineIterations int `yaml:"baseline_iterations" json:"baseline_iterations"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() Config {
	return Config{
		Title:              DefaultTitle,
		Iterations:         DefaultIterations,
		BaselineIterations: DefaultBaselineIterations,
	}
}

// Validate checks that the configuration is valid.
func (c Config) Validate() error {
	if c.Iterations <= 0 {
		return fmt.Errorf("%w: iterations must be positive", ErrInvalidConfig)
	}
	if c.Warmup < 0 {
		return fmt.Errorf("%w: warmup must be non-negative", ErrInvalidConfig)
	}
	if c.BaselineIterations < 0 {
		return fmt.Errorf("%w: baseline iterations must be non-negative", ErrInvalidConfig)
	}
	return nil
}

// String returns the title and iteration count.
func (c Config) String() string {
	unit := "iterations"
	if c.Iterations == 1 {
		unit = "iteration"
	}
	return fmt.Sprintf("%s (%d %s)", c.Title, c.Iterations, unit)
}
