package benchmark

import (
	"context"
	"fmt"
	"io"

	"github.com/timed-go/timed/pkg/duration"
	"github.com/timed-go/timed/pkg/stats"
)

// Timed benchmarks op with the default configuration and the given number
// of iterations, calling cleanup untimed before each one, and prints the
// mean and standard deviation of the wall and CPU times to w.
func Timed(w io.Writer, op func(), iterations int, cleanup func()) (*Result, error) {
	cfg := DefaultConfig()
	cfg.Iterations = iterations
	b, err := New(cfg, op)
	if err != nil {
		return nil, err
	}
	b.SetSetup(cleanup)

	res, err := b.Run(context.Background())
	if err != nil {
		return res, err
	}
	if err := printSpread(w, "Wall Time:", res.AdjustedWallTimes()); err != nil {
		return res, err
	}
	if err := printSpread(w, "CPU Time: ", res.AdjustedCPUTimes()); err != nil {
		return res, err
	}
	return res, nil
}

func printSpread(w io.Writer, label string, ds []duration.Duration) error {
	ns := make([]float64, len(ds))
	for i, d := range ds {
		ns[i] = d.Float64()
	}
	mean, err := stats.Mean(ns)
	if err != nil {
		return err
	}
	sd, err := stats.StdDev(ns)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s (%.0f+/-%.0f) ns\n", label, mean, sd)
	return err
}
