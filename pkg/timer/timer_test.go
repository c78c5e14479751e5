package timer

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/timed-go/timed/pkg/duration"
)

type mockClock struct{ mock.Mock }

func (c *mockClock) Now() duration.Duration { return c.Called().Get(0).(duration.Duration) }

// readings queues clock readings in order.
func (c *mockClock) readings(ds ...duration.Duration) *mockClock {
	for _, d := range ds {
		c.On("Now").Return(d).Once()
	}
	return c
}

type fakeClock struct {
	now       duration.Duration
	supported bool
}

func (c *fakeClock) Now() duration.Duration { return c.now }
func (c *fakeClock) Supported() bool        { return c.supported }

func newTestStopwatch(t *testing.T, c Clock) *Stopwatch {
	t.Helper()
	sw, err := NewStopwatch(Config{Clock: c, CalibrationRounds: 10})
	require.NoError(t, err)
	return sw
}

func TestStopwatchInitialState(t *testing.T) {
	sw := newTestStopwatch(t, new(mockClock))

	if sw.State() != StateIdle {
		t.Errorf("State() = %v, want StateIdle", sw.State())
	}
	if sw.Running() {
		t.Error("Running() = true, want false")
	}
	if got := sw.Elapsed(); got != 0 {
		t.Errorf("Elapsed() = %v, want 0", got)
	}
}

func TestStopwatchMisuseReturnsZero(t *testing.T) {
	c := new(mockClock)
	sw := newTestStopwatch(t, c)

	assert.Equal(t, duration.Duration(0), sw.Pause())
	assert.Equal(t, duration.Duration(0), sw.Stop())
	assert.Equal(t, StateIdle, sw.State())
	c.AssertNotCalled(t, "Now")
}

func TestStopwatchStartStop(t *testing.T) {
	c := new(mockClock).readings(100, 350)
	sw := newTestStopwatch(t, c)

	sw.Start()
	assert.True(t, sw.Running())
	assert.Equal(t, duration.Duration(250), sw.Stop())
	assert.Equal(t, StateStopped, sw.State())
	assert.Equal(t, duration.Duration(250), sw.Elapsed())
	c.AssertExpectations(t)
}

func TestStopwatchPauseResume(t *testing.T) {
	c := new(mockClock).readings(0, 10, 100, 130, 200, 205)
	sw := newTestStopwatch(t, c)

	sw.Start()
	assert.Equal(t, duration.Duration(10), sw.Pause())
	assert.Equal(t, StatePaused, sw.State())

	sw.Start()
	assert.Equal(t, duration.Duration(30), sw.Pause(), "pause returns only the last interval")
	assert.Equal(t, duration.Duration(40), sw.Elapsed())

	sw.Start()
	assert.Equal(t, duration.Duration(45), sw.Stop())
	assert.Len(t, sw.Intervals(), 3)
	c.AssertExpectations(t)
}

func TestStopwatchStartWhileRunningIsNoop(t *testing.T) {
	c := new(mockClock).readings(0, 50)
	sw := newTestStopwatch(t, c)

	sw.Start()
	sw.Start()
	assert.Equal(t, duration.Duration(50), sw.Stop())
	assert.Len(t, sw.Intervals(), 1)
}

func TestStopwatchStartAfterStopClearsHistory(t *testing.T) {
	c := new(mockClock).readings(0, 100, 500, 520)
	sw := newTestStopwatch(t, c)

	sw.Start()
	sw.Stop()
	sw.Start()
	assert.Equal(t, duration.Duration(20), sw.Stop())
	assert.Equal(t, []Interval{{Start: 500, End: 520}}, sw.Intervals())
}

func TestStopwatchElapsedWhileRunning(t *testing.T) {
	c := new(mockClock).readings(1000, 1600, 1900)
	sw := newTestStopwatch(t, c)

	sw.Start()
	assert.Equal(t, duration.Duration(600), sw.Elapsed())
	assert.Equal(t, duration.Duration(900), sw.Elapsed())
	assert.True(t, sw.Running())
}

func TestStopwatchReset(t *testing.T) {
	c := new(mockClock).readings(0, 10)
	sw := newTestStopwatch(t, c)

	sw.Start()
	sw.Stop()
	sw.Reset()
	assert.Equal(t, StateIdle, sw.State())
	assert.Empty(t, sw.Intervals())
	assert.Equal(t, duration.Duration(0), sw.Elapsed())
}

func TestStopwatchCalibrate(t *testing.T) {
	c := &fakeClock{supported: true}
	sw := newTestStopwatch(t, c)

	sw.Calibrate()
	assert.Equal(t, duration.Duration(0), sw.Baseline(), "a frozen clock costs nothing")

	sw.baseline = 30
	sw.Start()
	c.now = 100
	assert.Equal(t, duration.Duration(70), sw.Stop())

	sw.Start()
	c.now = 120
	assert.Equal(t, duration.Duration(0), sw.Stop(), "baseline subtraction saturates")
}

func TestStopwatchCalibrateStepClock(t *testing.T) {
	c := new(mockClock)
	for i := 0; i < 10; i++ {
		c.On("Now").Return(duration.Duration(0)).Once()
		c.On("Now").Return(duration.Duration(7)).Once()
	}

	sw := newTestStopwatch(t, c)
	sw.Calibrate()
	assert.Equal(t, duration.Duration(7), sw.Baseline())
	c.AssertExpectations(t)
}

func TestStopwatchStateCallback(t *testing.T) {
	c := new(mockClock).readings(0, 1, 2, 3)
	sw := newTestStopwatch(t, c)

	var transitions []string
	sw.OnStateChange(func(oldState, newState State) {
		transitions = append(transitions, oldState.String()+"->"+newState.String())
	})

	sw.Start()
	sw.Pause()
	sw.Start()
	sw.Stop()
	sw.Reset()
	assert.Equal(t, []string{
		"IDLE->RUNNING",
		"RUNNING->PAUSED",
		"PAUSED->RUNNING",
		"RUNNING->STOPPED",
		"STOPPED->IDLE",
	}, transitions)
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateIdle, "IDLE"},
		{StateRunning, "RUNNING"},
		{StatePaused, "PAUSED"},
		{StateStopped, "STOPPED"},
		{State(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestNewStopwatchInvalidConfig(t *testing.T) {
	_, err := NewStopwatch(Config{CalibrationRounds: -1})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestUnsupportedClockWarns(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	_, err := NewStopwatch(Config{Clock: &fakeClock{supported: false}, Logger: logger})
	require.NoError(t, err)
	assert.True(t, strings.Contains(buf.String(), "not supported"), buf.String())

	buf.Reset()
	_, err = NewStopwatch(Config{Clock: &fakeClock{supported: true}, Logger: logger})
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestWallClockAdvances(t *testing.T) {
	c := NewWallClock()
	a := c.Now()
	Sleep(duration.Millisecond)
	b := c.Now()
	assert.GreaterOrEqual(t, b.Sub(a), duration.Millisecond)
}

func TestBusyWait(t *testing.T) {
	sw := NewWallTimer()
	sw.Start()
	BusyWait(2 * duration.Millisecond)
	assert.GreaterOrEqual(t, sw.Stop(), 2*duration.Millisecond)
}

func TestProcessClockBusyWork(t *testing.T) {
	var pc ProcessClock
	if !pc.Supported() {
		t.Skip("process CPU time not available")
	}
	cpu := NewCPUTimer()
	cpu.Start()
	BusyWait(5 * duration.Millisecond)
	assert.Greater(t, cpu.Stop(), duration.Duration(0))
}
