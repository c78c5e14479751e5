package log

import (
	"fmt"
	"io"
)

// ProgressLogger prints a line per iteration to w.
type ProgressLogger struct {
	w     io.Writer
	total int
}

// NewProgressLogger creates a ProgressLogger writing to w.
func NewProgressLogger(w io.Writer) *ProgressLogger {
	return &ProgressLogger{w: w}
}

// Log prints progress for iteration and terminal events.
func (p *ProgressLogger) Log(event Event) {
	switch event.Kind {
	case KindRunStarted:
		p.total = event.Iteration
		fmt.Fprintf(p.w, "running '%s' (%d iterations)\n", event.Title, event.Iteration)
	case KindIterationCompleted:
		fmt.Fprintf(p.w, "  [%d/%d] wall %s cpu %s\n", event.Iteration, p.total, event.Wall, event.CPU)
	case KindRunCancelled:
		fmt.Fprintf(p.w, "cancelled after %d iterations: %v\n", event.Iteration, event.Err)
	}
}

// Compile-time interface satisfaction check.
var _ Logger = (*ProgressLogger)(nil)
