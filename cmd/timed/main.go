// Command timed measures, converts and formats durations.
//
// Usage:
//
//	timed <command> [flags] [args]
//
// Commands:
//
//	run        Benchmark a built-in workload or a YAML suite
//	convert    Convert a duration between units and templates
//	stopwatch  Time a sleep or busy wait with wall and CPU timers
//	repl       Start the interactive duration calculator
//
// Examples:
//
//	# Benchmark sorting 10k ints over 50 iterations
//	timed run -workload sort -size 10000 -n 50
//
//	# Run a suite and write a compressed CSV report
//	timed run -format csv -o results.csv.xz suite.yaml
//
//	# Run the embedded smoke suite
//	timed run -builtin smoke
//
//	# Show 90 seconds as minutes and seconds
//	timed convert -format "%m:%s" 90s
//
// Defaults for format, log level and iteration counts are read from
// $XDG_CONFIG_HOME/timed/timed.yaml and TIMED_* environment variables.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/timed-go/timed/cmd/timed/commands"
	"github.com/timed-go/timed/cmd/timed/interactive"
)

const usage = `timed - Duration measurement toolkit

Usage:
  timed <command> [flags] [args]

Commands:
  run        Benchmark a built-in workload or a YAML suite
  convert    Convert a duration between units and templates
  stopwatch  Time a sleep or busy wait with wall and CPU timers
  repl       Start the interactive duration calculator

Use "timed <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "run":
		runBenchmarks(args)
	case "convert":
		runConvert(args)
	case "stopwatch":
		runStopwatch(args)
	case "repl":
		runREPL()
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func loadConfig(path string) commands.Config {
	cfg, err := commands.LoadConfig(path)
	if err != nil {
		fatal(err)
	}
	return cfg
}

// configFlag finds -config in args so that file defaults can seed the
// remaining flag defaults.
func configFlag(args []string) string {
	for i, arg := range args {
		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if !strings.HasPrefix(arg, "-") || name != "config" {
			continue
		}
		if hasValue {
			return value
		}
		if i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func newLogger(level string) *slog.Logger {
	logger, err := commands.NewLogger(level, os.Stderr)
	if err != nil {
		fatal(err)
	}
	return logger
}

func runBenchmarks(args []string) {
	cfg := loadConfig(configFlag(args))

	fs := flag.NewFlagSet("run", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `timed run - Benchmark a built-in workload or a YAML suite

Usage:
  timed run [flags] [suite.yaml]

Workloads: noop, sleep, busywait (need -duration), sort, alloc (need -size)

Flags:
`)
		fs.PrintDefaults()
	}

	fs.String("config", "", "Config file (default: $XDG_CONFIG_HOME/timed/timed.yaml)")
	builtin := fs.String("builtin", "", "Embedded suite to run (smoke, timers)")
	workloadName := fs.String("workload", "", "Built-in workload to benchmark")
	dur := fs.String("duration", "", "Workload duration with unit, e.g. 1ms")
	size := fs.Int("size", 0, "Workload size")
	iterations := fs.Int("n", cfg.Iterations, "Number of timed iterations")
	warmup := fs.Int("warmup", cfg.Warmup, "Untimed iterations before measuring")
	baseline := fs.Int("baseline", cfg.BaselineIterations, "Empty cycles for the timer baseline (0 disables)")
	format := fs.String("format", cfg.Format, "Report format (text, json, cbor, csv, pdf)")
	output := fs.String("o", "", "Output file, .xz compresses (default: stdout)")
	events := fs.String("events", "", "Write run events as JSON lines to this file, .xz compresses")
	logLevel := fs.String("log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	verbose := fs.Bool("v", false, "Print progress for every iteration")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	opts := commands.RunOptions{
		Builtin:            *builtin,
		Workload:           *workloadName,
		Duration:           *dur,
		Size:               *size,
		Iterations:         *iterations,
		Warmup:             *warmup,
		BaselineIterations: *baseline,
		Format:             *format,
		Output:             *output,
		Events:             *events,
		Logger:             newLogger(*logLevel),
	}
	if fs.NArg() > 0 {
		opts.Suite = fs.Arg(0)
	}
	if *verbose {
		opts.Progress = os.Stderr
	}
	if opts.Suite == "" && opts.Builtin == "" && opts.Workload == "" {
		fmt.Fprintln(os.Stderr, "Error: suite file, -builtin or -workload required")
		fs.Usage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := commands.RunBenchmarks(ctx, opts, os.Stdout); err != nil {
		fatal(err)
	}
}

func runConvert(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `timed convert - Convert a duration between units and templates

Usage:
  timed convert [flags] <duration>

The input is a value with unit (1.5s, 250 ms) unless -parse is given.
Templates use %%d %%h %%m %%s %%ms %%us %%ns and %%%% for a literal percent.

Flags:
`)
		fs.PrintDefaults()
	}

	parse := fs.String("parse", "", "Template to parse the input with")
	unit := fs.String("unit", "", "Print as a number in this unit (ns, us, ms, s, m, h, d)")
	adaptive := fs.Bool("adaptive", false, "Print in the unit that fits the magnitude")
	format := fs.String("format", "", "Output template (default: automatic layout)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: duration required")
		fs.Usage()
		os.Exit(1)
	}

	opts := commands.ConvertOptions{
		Parse:    *parse,
		Unit:     *unit,
		Adaptive: *adaptive,
		Format:   *format,
	}
	if err := commands.RunConvert(fs.Arg(0), opts, os.Stdout); err != nil {
		fatal(err)
	}
}

func runStopwatch(args []string) {
	cfg := loadConfig(configFlag(args))

	fs := flag.NewFlagSet("stopwatch", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `timed stopwatch - Time a sleep or busy wait with wall and CPU timers

Usage:
  timed stopwatch [flags]

Flags:
`)
		fs.PrintDefaults()
	}

	fs.String("config", "", "Config file (default: $XDG_CONFIG_HOME/timed/timed.yaml)")
	wait := fs.String("sleep", "1s", "Time to wait, with unit")
	busy := fs.Bool("busy", false, "Spin instead of sleeping")
	calibrate := fs.Bool("calibrate", false, "Measure and subtract the timer overhead")
	logLevel := fs.String("log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	opts := commands.StopwatchOptions{
		Wait:      *wait,
		Busy:      *busy,
		Calibrate: *calibrate,
		Logger:    newLogger(*logLevel),
	}
	if err := commands.RunStopwatch(opts, os.Stdout); err != nil {
		fatal(err)
	}
}

func runREPL() {
	shell, err := interactive.New()
	if err != nil {
		fatal(err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer cancel()

	shell.Run(ctx, cancel)
}
