// Package log provides structured benchmark event logging.
//
// This package defines the Logger interface and the Event type for
// capturing the lifecycle of a benchmark run: start, baseline measurement,
// each completed iteration, and the end of the run. It is separate from
// operational logging (slog); events give a machine-readable trace of a run.
//
// # Basic Usage
//
// Applications configure logging by providing a Logger implementation:
//
//	// For development: log to console via slog
//	b.SetLogger(log.NewSlogAdapter(slog.Default()))
//
//	// For terminals: one progress line per iteration
//	b.SetLogger(log.NewProgressLogger(os.Stderr))
//
//	// For tooling: one JSON object per line
//	b.SetLogger(log.NewJSONLogger(f))
//
//	// Both: use MultiLogger
//	b.SetLogger(log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    log.NewProgressLogger(os.Stderr),
//	))
//
// # Event Kinds
//
//   - RunStarted: the benchmark began
//   - BaselineMeasured: the idle-loop baseline is known (Wall, CPU set)
//   - IterationCompleted: one timed iteration finished (Wall, CPU set)
//   - RunFinished: all iterations completed
//   - RunCancelled: the context was cancelled (Err set)
package log
