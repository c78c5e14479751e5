package commands

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/timed-go/timed/pkg/duration"
	"github.com/timed-go/timed/pkg/timer"
)

// StopwatchOptions configures the stopwatch command.
type StopwatchOptions struct {
	// Wait is the time to sleep or spin, e.g. "250ms".
	Wait string

	// Busy spins instead of sleeping, so CPU time tracks wall time.
	Busy bool

	// Calibrate measures and subtracts the timer overhead.
	Calibrate bool

	Logger *slog.Logger
}

// RunStopwatch times a sleep or busy wait with a wall and a CPU timer.
func RunStopwatch(opts StopwatchOptions, w io.Writer) error {
	d, err := duration.ParseValueUnit(opts.Wait)
	if err != nil {
		return fmt.Errorf("invalid wait: %w", err)
	}

	wall, err := timer.NewStopwatch(timer.Config{Clock: timer.NewWallClock(), Logger: opts.Logger})
	if err != nil {
		return err
	}
	cpu, err := timer.NewStopwatch(timer.Config{Clock: timer.ProcessClock{}, Logger: opts.Logger})
	if err != nil {
		return err
	}
	if opts.Calibrate {
		wall.Calibrate()
		cpu.Calibrate()
		fmt.Fprintf(w, "Overhead: wall %s cpu %s\n", wall.Baseline(), cpu.Baseline())
	}

	verb, wait := "Sleeping", timer.Sleep
	if opts.Busy {
		verb, wait = "Busy waiting", timer.BusyWait
	}
	fmt.Fprintf(w, "%s for %s...\n", verb, strings.TrimSpace(opts.Wait))

	wall.Start()
	cpu.Start()
	wait(d)
	cpuTime := cpu.Stop()
	wallTime := wall.Stop()

	fmt.Fprintf(w, "Wall Time: %s\n", wallTime)
	_, err = fmt.Fprintf(w, "CPU Time : %s\n", cpuTime)
	return err
}
