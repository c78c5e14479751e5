package log

// Logger is the interface applications implement to receive benchmark events.
// Pass nil or NoopLogger to disable logging.
type Logger interface {
	// Log records a benchmark event. It is called on the benchmark goroutine
	// between iterations; slow loggers lengthen the run but not the samples.
	Log(event Event)
}

// NoopLogger discards all events. Use when logging is disabled.
// NoopLogger is safe for concurrent use and usable as a zero value.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

// Compile-time interface satisfaction check.
var _ Logger = NoopLogger{}
