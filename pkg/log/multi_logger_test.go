package log

import (
	"testing"
	"time"
)

// mockLogger records events for testing
type mockLogger struct {
	events []Event
}

func (m *mockLogger) Log(event Event) {
	m.events = append(m.events, event)
}

func TestMultiLoggerCallsAll(t *testing.T) {
	mock1 := &mockLogger{}
	mock2 := &mockLogger{}
	mock3 := &mockLogger{}

	multi := NewMultiLogger(mock1, mock2, mock3)

	multi.Log(Event{
		Timestamp: time.Now(),
		RunID:     "run-123",
		Kind:      KindRunStarted,
	})

	for i, mock := range []*mockLogger{mock1, mock2, mock3} {
		if len(mock.events) != 1 {
			t.Errorf("logger %d: got %d events, want 1", i, len(mock.events))
			continue
		}
		if mock.events[0].RunID != "run-123" {
			t.Errorf("logger %d: RunID = %q, want %q", i, mock.events[0].RunID, "run-123")
		}
	}
}

func TestMultiLoggerEmptyList(t *testing.T) {
	multi := NewMultiLogger()
	multi.Log(Event{Kind: KindRunFinished})
}

func TestMultiLoggerSkipsNil(t *testing.T) {
	rec := &mockLogger{}
	multi := NewMultiLogger(nil, rec, nil)

	multi.Log(Event{Kind: KindRunFinished})

	if len(rec.events) != 1 {
		t.Fatalf("got %d events, want 1", len(rec.events))
	}
}

func TestMultiLoggerPreservesOrder(t *testing.T) {
	rec := &mockLogger{}
	multi := NewMultiLogger(rec)

	for i := 1; i <= 3; i++ {
		multi.Log(Event{Kind: KindIterationCompleted, Iteration: i})
	}

	for i, e := range rec.events {
		if e.Iteration != i+1 {
			t.Errorf("event %d: Iteration = %d, want %d", i, e.Iteration, i+1)
		}
	}
}
