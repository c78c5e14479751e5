// Package interactive provides the timed duration calculator shell.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/timed-go/timed/pkg/duration"
)

// Shell is an interactive calculator operating on a single duration.
type Shell struct {
	acc duration.Duration
	rl  *readline.Instance
}

// New creates a shell reading from the terminal.
func New() (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "timed> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &Shell{rl: rl}, nil
}

// Value returns the current duration.
func (s *Shell) Value() duration.Duration {
	return s.acc
}

// Run starts the interactive command loop.
func (s *Shell) Run(ctx context.Context, cancel context.CancelFunc) {
	defer s.rl.Close()

	out := s.rl.Stdout()
	s.printHelp(out)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(out, "Exiting...")
			cancel()
			return
		}

		if !s.Exec(line, out) {
			cancel()
			return
		}
	}
}

// Exec runs one command line and writes its output to w. It returns false
// when the shell should exit.
func (s *Shell) Exec(line string, w io.Writer) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return true
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp(w)

	case "set":
		s.cmdSet(args, w)

	case "parse":
		s.cmdParse(args, w)

	case "add", "+":
		s.cmdStep(args, w, s.acc.Add)

	case "sub", "-":
		s.cmdStep(args, w, s.acc.Sub)

	case "mul", "*":
		s.cmdScale(args, w, s.acc.Mul)

	case "div", "/":
		s.cmdScale(args, w, s.acc.Div)

	case "in":
		s.cmdIn(args, w)

	case "fmt", "format":
		if len(args) == 0 {
			fmt.Fprintln(w, "Usage: fmt <template>")
			return true
		}
		fmt.Fprintln(w, s.acc.Format(strings.Join(args, " ")))

	case "adaptive", "a":
		fmt.Fprintln(w, s.acc.Adaptive())

	case "show", "auto":
		s.show(w)

	case "reset":
		s.acc = 0
		s.show(w)

	case "quit", "exit", "q":
		fmt.Fprintln(w, "Exiting...")
		return false

	default:
		fmt.Fprintf(w, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return true
}

func (s *Shell) cmdSet(args []string, w io.Writer) {
	if len(args) == 0 {
		fmt.Fprintln(w, "Usage: set <value><unit>  (e.g. set 1.5s)")
		return
	}
	d, err := duration.ParseValueUnit(strings.Join(args, " "))
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	s.acc = d
	s.show(w)
}

func (s *Shell) cmdParse(args []string, w io.Writer) {
	if len(args) < 2 {
		io.WriteString(w, "Usage: parse <template> <text>  (e.g. parse %m:%s 1:30)\n")
		return
	}
	d, err := duration.Parse(strings.Join(args[1:], " "), args[0])
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	s.acc = d
	s.show(w)
}

func (s *Shell) cmdStep(args []string, w io.Writer, op func(duration.Duration) duration.Duration) {
	if len(args) == 0 {
		fmt.Fprintln(w, "Usage: add|sub <value><unit>")
		return
	}
	d, err := duration.ParseValueUnit(strings.Join(args, " "))
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	s.acc = op(d)
	s.show(w)
}

func (s *Shell) cmdScale(args []string, w io.Writer, op func(float64) duration.Duration) {
	if len(args) != 1 {
		fmt.Fprintln(w, "Usage: mul|div <factor>")
		return
	}
	f, err := strconv.ParseFloat(args[0], 64)
	if err != nil || f < 0 {
		fmt.Fprintf(w, "Error: invalid factor %q\n", args[0])
		return
	}
	s.acc = op(f)
	s.show(w)
}

func (s *Shell) cmdIn(args []string, w io.Writer) {
	if len(args) != 1 {
		fmt.Fprintln(w, "Usage: in <unit>  (ns, us, ms, s, m, h, d)")
		return
	}
	u, err := duration.ParseUnit(args[0])
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(w, "%s %s\n", strconv.FormatFloat(s.acc.InUnit(u), 'g', -1, 64), u.Symbol())
}

func (s *Shell) show(w io.Writer) {
	fmt.Fprintf(w, "= %s (%d ns)\n", s.acc, s.acc.Nanoseconds())
}

func (s *Shell) printHelp(w io.Writer) {
	io.WriteString(w, `
Commands:
  set <value><unit>        Set the current duration (e.g. set 1.5s)
  parse <template> <text>  Parse text with a template (e.g. parse %m:%s 1:30)
  add, + <value><unit>     Add a duration
  sub, - <value><unit>     Subtract a duration (stops at zero)
  mul, * <factor>          Multiply by a factor
  div, / <factor>          Divide by a factor
  in <unit>                Show the duration in one unit
  fmt <template>           Format with a template (%d %h %m %s %ms %us %ns %%)
  adaptive, a              Show in the unit that fits the magnitude
  show, auto               Show the duration
  reset                    Set the duration to zero
  help, ?                  Show this help
  quit, exit, q            Exit

`)
}
