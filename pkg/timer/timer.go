package timer

import (
	"errors"
	"log/slog"

	"github.com/timed-go/timed/pkg/duration"
	"github.com/timed-go/timed/pkg/stats"
)

// DefaultCalibrationRounds is the number of empty start/stop cycles timed
// by Calibrate.
const DefaultCalibrationRounds = 1000

// Timer errors.
var (
	ErrInvalidConfig = errors.New("invalid timer config")
)

// Timer is the capability set shared by wall and CPU timers.
type Timer interface {
	Start()
	Pause() duration.Duration
	Stop() duration.Duration
	Calibrate()
	Elapsed() duration.Duration
	Reset()
	Running() bool
}

// State represents the stopwatch state.
type State uint8

const (
	// StateIdle indicates no interval has been recorded since the last reset.
	StateIdle State = iota

	// StateRunning indicates an interval is open.
	StateRunning

	// StatePaused indicates the last interval is closed and Start resumes.
	StatePaused

	// StateStopped indicates the run ended and Start begins a new one.
	StateStopped
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateRunning:
		return "RUNNING"
	case StatePaused:
		return "PAUSED"
	case StateStopped:
		return "STOPPED"
	default:
		return "UNKNOWN"
	}
}

// Interval is one start/pause span in clock readings.
type Interval struct {
	Start duration.Duration
	End   duration.Duration
}

// Length returns the span of the interval.
func (i Interval) Length() duration.Duration {
	return i.End.Sub(i.Start)
}

// Config holds stopwatch configuration.
type Config struct {
	// Clock is the time source. Defaults to a new WallClock.
	Clock Clock

	// Logger receives calibration and capability messages.
	// Defaults to slog.Default().
	Logger *slog.Logger

	// CalibrationRounds is the number of cycles Calibrate times.
	// Zero means DefaultCalibrationRounds.
	CalibrationRounds int
}

// Stopwatch accumulates intervals read from a Clock.
type Stopwatch struct {
	clock    Clock
	logger   *slog.Logger
	rounds   int
	state    State
	baseline duration.Duration

	intervals []Interval

	onStateChange func(oldState, newState State)
}

// NewWallTimer creates a stopwatch measuring real time.
func NewWallTimer() *Stopwatch {
	sw, _ := NewStopwatch(Config{Clock: NewWallClock()})
	return sw
}

// NewCPUTimer creates a stopwatch measuring process CPU time.
func NewCPUTimer() *Stopwatch {
	sw, _ := NewStopwatch(Config{Clock: ProcessClock{}})
	return sw
}

// NewStopwatch creates a stopwatch with custom configuration.
func NewStopwatch(cfg Config) (*Stopwatch, error) {
	if cfg.CalibrationRounds < 0 {
		return nil, ErrInvalidConfig
	}

	sw := &Stopwatch{
		clock:  cfg.Clock,
		logger: cfg.Logger,
		rounds: cfg.CalibrationRounds,
	}
	if sw.clock == nil {
		sw.clock = NewWallClock()
	}
	if sw.logger == nil {
		sw.logger = slog.Default()
	}
	if sw.rounds == 0 {
		sw.rounds = DefaultCalibrationRounds
	}

	if s, ok := sw.clock.(supporter); ok && !s.Supported() {
		sw.logger.Warn("CPU timer not supported on this platform, measurements will be zero; consider a wall timer instead")
	}
	return sw, nil
}

// OnStateChange sets a callback for state changes.
func (sw *Stopwatch) OnStateChange(fn func(oldState, newState State)) {
	sw.onStateChange = fn
}

func (sw *Stopwatch) setState(s State) {
	old := sw.state
	sw.state = s
	if sw.onStateChange != nil && old != s {
		sw.onStateChange(old, s)
	}
}

// Start opens a new interval.
func (sw *Stopwatch) Start() {
	if sw.state == StateRunning {
		return
	}
	if sw.state == StateStopped {
		sw.intervals = sw.intervals[:0]
	}
	now := sw.clock.Now()
	sw.intervals = append(sw.intervals, Interval{Start: now, End: now})
	sw.setState(StateRunning)
}

// Pause closes the open interval and returns its length. The baseline is
// not applied.
func (sw *Stopwatch) Pause() duration.Duration {
	if sw.state != StateRunning {
		return sw.Elapsed()
	}
	last := sw.close()
	sw.setState(StatePaused)
	return last.Length()
}

// Stop closes the open interval and returns the total of the run.
func (sw *Stopwatch) Stop() duration.Duration {
	if sw.state != StateRunning {
		return sw.Elapsed()
	}
	sw.close()
	sw.setState(StateStopped)
	return sw.Elapsed()
}

func (sw *Stopwatch) close() Interval {
	last := &sw.intervals[len(sw.intervals)-1]
	last.End = sw.clock.Now()
	return *last
}

// Elapsed returns the total of all intervals, measuring an open interval
// against now, minus the baseline.
func (sw *Stopwatch) Elapsed() duration.Duration {
	var total duration.Duration
	for i, iv := range sw.intervals {
		if sw.state == StateRunning && i == len(sw.intervals)-1 {
			total.Increase(sw.clock.Now().Sub(iv.Start))
			continue
		}
		total.Increase(iv.Length())
	}
	return total.Sub(sw.baseline)
}

// Reset clears the recorded intervals. The baseline is kept.
func (sw *Stopwatch) Reset() {
	sw.intervals = sw.intervals[:0]
	sw.setState(StateIdle)
}

// Calibrate measures the cost of an empty start/stop cycle and stores the
// mean as the baseline.
func (sw *Stopwatch) Calibrate() {
	probe := &Stopwatch{clock: sw.clock, logger: sw.logger, rounds: sw.rounds}
	samples := make([]duration.Duration, sw.rounds)
	for i := range samples {
		probe.Start()
		samples[i] = probe.Stop()
		probe.Reset()
	}
	mean, err := stats.MeanDurations(samples)
	if err != nil {
		return
	}
	sw.baseline = mean
	sw.logger.Debug("timer calibrated", "rounds", sw.rounds, "baseline_ns", uint64(mean))
}

// Baseline returns the calibration baseline.
func (sw *Stopwatch) Baseline() duration.Duration {
	return sw.baseline
}

// Running reports whether an interval is open.
func (sw *Stopwatch) Running() bool {
	return sw.state == StateRunning
}

// State returns the current state.
func (sw *Stopwatch) State() State {
	return sw.state
}

// Intervals returns a copy of the recorded intervals.
func (sw *Stopwatch) Intervals() []Interval {
	out := make([]Interval, len(sw.intervals))
	copy(out, sw.intervals)
	return out
}

var _ Timer = (*Stopwatch)(nil)
