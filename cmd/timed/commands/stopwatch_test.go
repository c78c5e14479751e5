package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunStopwatch(t *testing.T) {
	var buf bytes.Buffer
	if err := RunStopwatch(StopwatchOptions{Wait: "2ms", Busy: true, Calibrate: true}, &buf); err != nil {
		t.Fatalf("RunStopwatch() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "Overhead: wall ") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "Busy waiting for 2ms..." {
		t.Errorf("line 1 = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "Wall Time: ") {
		t.Errorf("line 2 = %q", lines[2])
	}
	if !strings.HasPrefix(lines[3], "CPU Time : ") {
		t.Errorf("line 3 = %q", lines[3])
	}
}

func TestRunStopwatchSleep(t *testing.T) {
	var buf bytes.Buffer
	if err := RunStopwatch(StopwatchOptions{Wait: "1ms"}, &buf); err != nil {
		t.Fatalf("RunStopwatch() error = %v", err)
	}
	if !strings.HasPrefix(buf.String(), "Sleeping for ") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestRunStopwatchInvalidWait(t *testing.T) {
	var buf bytes.Buffer
	if err := RunStopwatch(StopwatchOptions{Wait: "soon"}, &buf); err == nil {
		t.Error("expected error for invalid wait")
	}
}
