package log

import (
	"time"

	"github.com/timed-go/timed/pkg/duration"
)

// Event represents one step in the lifecycle of a benchmark run.
type Event struct {
	// Timestamp when the event occurred.
	Timestamp time.Time `json:"timestamp"`

	// RunID identifies the run (UUID).
	RunID string `json:"run_id"`

	// Kind classifies the event.
	Kind Kind `json:"kind"`

	// Title is the benchmark title.
	Title string `json:"title"`

	// Iteration is the 1-based iteration number for IterationCompleted and
	// the configured total otherwise.
	Iteration int `json:"iteration,omitempty"`

	// Wall and CPU are the measured times, when the kind carries them.
	Wall duration.Duration `json:"wall_ns,omitempty"`
	CPU  duration.Duration `json:"cpu_ns,omitempty"`

	// Err is set for RunCancelled.
	Err error `json:"-"`
}

// Kind classifies benchmark events.
type Kind uint8

const (
	// KindRunStarted indicates the benchmark began.
	KindRunStarted Kind = iota
	// KindBaselineMeasured indicates the idle-loop baseline was measured.
	KindBaselineMeasured
	// KindIterationCompleted indicates one timed iteration finished.
	KindIterationCompleted
	// KindRunFinished indicates all iterations completed.
	KindRunFinished
	// KindRunCancelled indicates the run stopped early.
	KindRunCancelled
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindRunStarted:
		return "RUN_STARTED"
	case KindBaselineMeasured:
		return "BASELINE_MEASURED"
	case KindIterationCompleted:
		return "ITERATION_COMPLETED"
	case KindRunFinished:
		return "RUN_FINISHED"
	case KindRunCancelled:
		return "RUN_CANCELLED"
	default:
		return "UNKNOWN"
	}
}

// MarshalText encodes the kind by name, so JSON events read "RUN_STARTED".
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
