package benchmark

import (
	"context"
	"strings"
	"time"

	"github.com/timed-go/timed/pkg/duration"
	"github.com/timed-go/timed/pkg/log"
	"github.com/timed-go/timed/pkg/stats"
	"github.com/timed-go/timed/pkg/timer"
)

// Benchmark times an operation over a number of iterations.
type Benchmark struct {
	cfg    Config
	op     func()
	setup  func()
	logger log.Logger

	newWallTimer func() timer.Timer
	newCPUTimer  func() timer.Timer

	result *Result
	ran    bool
}

// New creates a benchmark of op. The configuration is validated.
func New(cfg Config, op func()) (*Benchmark, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	return &Benchmark{
		cfg:          cfg,
		op:           op,
		setup:        func() {},
		logger:       log.NoopLogger{},
		newWallTimer: func() timer.Timer { return timer.NewWallTimer() },
		newCPUTimer:  func() timer.Timer { return timer.NewCPUTimer() },
		result:       NewResult(cfg.Title, cfg.Info),
	}, nil
}

// SetSetup sets an untimed function run before every iteration.
func (b *Benchmark) SetSetup(fn func()) {
	if fn == nil {
		fn = func() {}
	}
	b.setup = fn
}

// SetLogger sets the event logger. Nil disables logging.
func (b *Benchmark) SetLogger(l log.Logger) {
	if l == nil {
		l = log.NoopLogger{}
	}
	b.logger = l
}

// SetTimers replaces the timer constructors.
func (b *Benchmark) SetTimers(wall, cpu func() timer.Timer) {
	if wall != nil {
		b.newWallTimer = wall
	}
	if cpu != nil {
		b.newCPUTimer = cpu
	}
}

// Config returns the benchmark configuration.
func (b *Benchmark) Config() Config {
	return b.cfg
}

// Result returns the result of the last run.
func (b *Benchmark) Result() *Result {
	return b.result
}

// Run measures the baseline and then times every iteration. The context is
// checked between iterations; on cancellation the partial result is kept
// and the context error returned.
func (b *Benchmark) Run(ctx context.Context) (*Result, error) {
	res := NewResult(b.cfg.Title, b.cfg.Info)
	b.result = res
	b.ran = false

	b.emit(log.Event{Kind: log.KindRunStarted, Iteration: b.cfg.Iterations})

	wall, cpu := b.newWallTimer(), b.newCPUTimer()
	b.measureBaseline(wall, cpu)
	b.emit(log.Event{Kind: log.KindBaselineMeasured, Wall: res.WallBaseline, CPU: res.CPUBaseline})

	for i := 0; i < b.cfg.Warmup; i++ {
		if err := ctx.Err(); err != nil {
			return res, b.cancel(0, err)
		}
		b.setup()
		b.op()
	}

	for i := 0; i < b.cfg.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return res, b.cancel(i, err)
		}
		b.setup()

		wall.Start()
		cpu.Start()
		b.op()
		c := cpu.Stop()
		w := wall.Stop()

		res.AddWallTime(w)
		res.AddCPUTime(c)
		b.emit(log.Event{Kind: log.KindIterationCompleted, Iteration: i + 1, Wall: w, CPU: c})
	}

	b.ran = true
	b.emit(log.Event{Kind: log.KindRunFinished, Iteration: b.cfg.Iterations})
	return res, nil
}

// measureBaseline times empty cycles and stores their means in the result.
func (b *Benchmark) measureBaseline(wall, cpu timer.Timer) {
	n := b.cfg.BaselineIterations
	if n == 0 {
		return
	}
	walls := make([]duration.Duration, n)
	cpus := make([]duration.Duration, n)
	for i := 0; i < n; i++ {
		wall.Start()
		cpu.Start()
		cpus[i] = cpu.Stop()
		walls[i] = wall.Stop()
	}
	// n > 0, so the means cannot fail.
	b.result.WallBaseline, _ = stats.MeanDurations(walls)
	b.result.CPUBaseline, _ = stats.MeanDurations(cpus)
}

func (b *Benchmark) cancel(done int, err error) error {
	b.emit(log.Event{Kind: log.KindRunCancelled, Iteration: done, Err: err})
	return err
}

func (b *Benchmark) emit(e log.Event) {
	e.Timestamp = time.Now()
	e.RunID = b.result.RunID
	e.Title = b.cfg.Title
	b.logger.Log(e)
}

// String returns the text report after a completed run and the
// configuration before.
func (b *Benchmark) String() string {
	if !b.ran {
		return b.cfg.String()
	}
	var sb strings.Builder
	if err := WriteText(&sb, b.result); err != nil {
		return b.cfg.String()
	}
	return sb.String()
}
