package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes benchmark events to an slog.Logger.
// Iterations are logged at Debug level, everything else at Info.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("run_id", event.RunID),
		slog.String("kind", event.Kind.String()),
		slog.String("title", event.Title),
	}

	level := slog.LevelInfo
	switch event.Kind {
	case KindIterationCompleted:
		level = slog.LevelDebug
		attrs = append(attrs,
			slog.Int("iteration", event.Iteration),
			slog.Uint64("wall_ns", event.Wall.Nanoseconds()),
			slog.Uint64("cpu_ns", event.CPU.Nanoseconds()),
		)
	case KindBaselineMeasured:
		attrs = append(attrs,
			slog.Uint64("wall_ns", event.Wall.Nanoseconds()),
			slog.Uint64("cpu_ns", event.CPU.Nanoseconds()),
		)
	case KindRunStarted, KindRunFinished:
		attrs = append(attrs, slog.Int("iterations", event.Iteration))
	case KindRunCancelled:
		level = slog.LevelWarn
		attrs = append(attrs, slog.Int("iterations", event.Iteration))
		if event.Err != nil {
			attrs = append(attrs, slog.String("error", event.Err.Error()))
		}
	}

	a.logger.LogAttrs(context.Background(), level, "benchmark", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
