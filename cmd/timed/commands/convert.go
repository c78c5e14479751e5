package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/timed-go/timed/pkg/duration"
)

// ConvertOptions configures the convert command.
type ConvertOptions struct {
	// Parse is a format template for the input. Empty reads a value with a
	// unit such as "1.5s".
	Parse string

	// Unit prints the duration as a number in this unit.
	Unit string

	// Adaptive prints the duration in the largest unit it fills.
	Adaptive bool

	// Format is the output template; empty selects the automatic layout.
	Format string
}

// RunConvert parses input and prints it as selected by opts.
func RunConvert(input string, opts ConvertOptions, w io.Writer) error {
	if opts.Unit != "" && opts.Adaptive {
		return errors.New("-unit and -adaptive are mutually exclusive")
	}

	var d duration.Duration
	var err error
	if opts.Parse != "" {
		d, err = duration.Parse(input, opts.Parse)
	} else {
		d, err = duration.ParseValueUnit(input)
	}
	if err != nil {
		return fmt.Errorf("failed to parse %q: %w", input, err)
	}

	switch {
	case opts.Unit != "":
		u, err := duration.ParseUnit(opts.Unit)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s %s\n", strconv.FormatFloat(d.InUnit(u), 'g', -1, 64), u.Symbol())
		return err
	case opts.Adaptive:
		_, err = fmt.Fprintln(w, d.Adaptive())
		return err
	case opts.Format != "":
		_, err = fmt.Fprintln(w, d.Format(opts.Format))
		return err
	default:
		_, err = fmt.Fprintln(w, d)
		return err
	}
}
