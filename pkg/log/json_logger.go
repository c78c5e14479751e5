package log

import (
	"encoding/json"
	"io"
	"sync"
)

// JSONLogger writes each event as one JSON object per line.
type JSONLogger struct {
	mu  sync.Mutex
	enc *json.Encoder
	err error
}

// jsonEvent adds the error text, which Event does not encode itself.
type jsonEvent struct {
	Event
	Error string `json:"error,omitempty"`
}

// NewJSONLogger creates a JSONLogger writing to w.
func NewJSONLogger(w io.Writer) *JSONLogger {
	return &JSONLogger{enc: json.NewEncoder(w)}
}

// Log encodes the event. After the first write error further events are
// dropped; see Err.
func (l *JSONLogger) Log(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.err != nil {
		return
	}
	je := jsonEvent{Event: event}
	if event.Err != nil {
		je.Error = event.Err.Error()
	}
	l.err = l.enc.Encode(je)
}

// Err returns the first write error, if any.
func (l *JSONLogger) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Compile-time interface satisfaction check.
var _ Logger = (*JSONLogger)(nil)
