package log

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLoggerWritesLines(t *testing.T) {
	var buf bytes.Buffer
	l := NewJSONLogger(&buf)

	ts := time.Date(2026, 1, 28, 10, 15, 32, 0, time.UTC)
	l.Log(Event{Timestamp: ts, RunID: "r1", Kind: KindRunStarted, Title: "sort", Iteration: 3})
	l.Log(Event{Timestamp: ts, RunID: "r1", Kind: KindIterationCompleted, Title: "sort", Iteration: 1, Wall: 150, CPU: 90})
	l.Log(Event{Timestamp: ts, RunID: "r1", Kind: KindRunCancelled, Title: "sort", Iteration: 1, Err: context.Canceled})
	require.NoError(t, l.Err())

	var lines []map[string]any
	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		var m map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &m), sc.Text())
		lines = append(lines, m)
	}
	require.Len(t, lines, 3)

	assert.Equal(t, "RUN_STARTED", lines[0]["kind"])
	assert.Equal(t, "r1", lines[0]["run_id"])
	assert.Equal(t, "2026-01-28T10:15:32Z", lines[0]["timestamp"])
	assert.NotContains(t, lines[0], "wall_ns")

	assert.Equal(t, "ITERATION_COMPLETED", lines[1]["kind"])
	assert.Equal(t, float64(150), lines[1]["wall_ns"])
	assert.Equal(t, float64(90), lines[1]["cpu_ns"])

	assert.Equal(t, "RUN_CANCELLED", lines[2]["kind"])
	assert.Equal(t, "context canceled", lines[2]["error"])
}

type failingWriter struct{ writes int }

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	return 0, errors.New("disk full")
}

func TestJSONLoggerStopsAfterWriteError(t *testing.T) {
	w := &failingWriter{}
	l := NewJSONLogger(w)

	l.Log(Event{Kind: KindRunStarted})
	l.Log(Event{Kind: KindRunFinished})

	assert.EqualError(t, l.Err(), "disk full")
	assert.Equal(t, 1, w.writes)
}
