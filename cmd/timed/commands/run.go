package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/timed-go/timed/internal/suite"
	"github.com/timed-go/timed/internal/workload"
	"github.com/timed-go/timed/pkg/benchmark"
	"github.com/timed-go/timed/pkg/duration"
	"github.com/timed-go/timed/pkg/log"
)

// RunOptions configures the run command.
type RunOptions struct {
	// Suite is a YAML suite file. When set, the workload flags are ignored.
	Suite string

	// Builtin names an embedded suite such as "smoke".
	Builtin string

	// Workload names a single built-in workload to benchmark.
	Workload string

	// Duration and Size are the workload parameters.
	Duration string
	Size     int

	Iterations         int
	Warmup             int
	BaselineIterations int

	// Format is the report format (text, json, cbor, csv, pdf).
	Format string

	// Output is the report file. Empty writes to stdout; a .xz suffix
	// compresses the report.
	Output string

	// Logger receives structured run events. Nil disables them.
	Logger *slog.Logger

	// Progress, when set, receives a line per iteration.
	Progress io.Writer

	// Events is a file receiving every run event as a JSON line. A .xz
	// suffix compresses it.
	Events string
}

// job is a benchmark ready to run.
type job struct {
	bench *benchmark.Benchmark
}

// RunBenchmarks builds the benchmarks described by opts, runs them in order
// and writes their reports to stdout or the output file.
func RunBenchmarks(ctx context.Context, opts RunOptions, stdout io.Writer) error {
	format, err := benchmark.ParseFormat(opts.Format)
	if err != nil {
		return err
	}

	jobs, err := buildJobs(opts)
	if err != nil {
		return err
	}
	if format == benchmark.FormatPDF && len(jobs) > 1 {
		return fmt.Errorf("pdf output holds a single benchmark, suite has %d", len(jobs))
	}

	var loggers []log.Logger
	if opts.Logger != nil {
		loggers = append(loggers, log.NewSlogAdapter(opts.Logger))
	}
	if opts.Progress != nil {
		loggers = append(loggers, log.NewProgressLogger(opts.Progress))
	}
	var events *log.JSONLogger
	if opts.Events != "" {
		f, err := openOutput(opts.Events, nil)
		if err != nil {
			return err
		}
		defer f.Close()
		events = log.NewJSONLogger(f)
		loggers = append(loggers, events)
	}
	var logger log.Logger = log.NoopLogger{}
	if len(loggers) > 0 {
		logger = log.NewMultiLogger(loggers...)
	}

	out, err := openOutput(opts.Output, stdout)
	if err != nil {
		return err
	}

	for i, j := range jobs {
		j.bench.SetLogger(logger)
		res, err := j.bench.Run(ctx)
		if err != nil {
			out.Close()
			return fmt.Errorf("benchmark %q: %w", j.bench.Config().Title, err)
		}
		if i > 0 && format == benchmark.FormatText {
			if _, err := io.WriteString(out, "\n"); err != nil {
				out.Close()
				return err
			}
		}
		if err := benchmark.Encode(out, res, format); err != nil {
			out.Close()
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	if events != nil {
		if err := events.Err(); err != nil {
			out.Close()
			return fmt.Errorf("failed to write events: %w", err)
		}
	}
	return out.Close()
}

func buildJobs(opts RunOptions) ([]job, error) {
	if opts.Suite != "" || opts.Builtin != "" {
		var s *suite.Suite
		var err error
		if opts.Suite != "" {
			s, err = suite.LoadSuite(opts.Suite)
		} else {
			s, err = suite.Builtin(opts.Builtin)
		}
		if err != nil {
			return nil, err
		}
		jobs := make([]job, 0, len(s.Benchmarks))
		for _, e := range s.Benchmarks {
			p, err := e.Params()
			if err != nil {
				return nil, fmt.Errorf("benchmark %q: %w", e.Name, err)
			}
			j, err := newJob(e.Config(s.Defaults), e.Workload, p)
			if err != nil {
				return nil, fmt.Errorf("benchmark %q: %w", e.Name, err)
			}
			jobs = append(jobs, j)
		}
		return jobs, nil
	}

	if opts.Workload == "" {
		return nil, errors.New("a suite file, -builtin or -workload is required")
	}
	p := workload.Params{Size: opts.Size}
	if opts.Duration != "" {
		d, err := duration.ParseValueUnit(opts.Duration)
		if err != nil {
			return nil, fmt.Errorf("invalid -duration: %w", err)
		}
		p.Duration = d
	}

	cfg := benchmark.DefaultConfig()
	cfg.Title = opts.Workload
	cfg.Iterations = opts.Iterations
	cfg.Warmup = opts.Warmup
	cfg.BaselineIterations = opts.BaselineIterations
	j, err := newJob(cfg, opts.Workload, p)
	if err != nil {
		return nil, err
	}
	return []job{j}, nil
}

func newJob(cfg benchmark.Config, name string, p workload.Params) (job, error) {
	w, err := workload.New(name, p)
	if err != nil {
		return job{}, err
	}
	b, err := benchmark.New(cfg, w.Op)
	if err != nil {
		return job{}, err
	}
	b.SetSetup(w.Setup)
	return job{bench: b}, nil
}
