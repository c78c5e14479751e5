package duration

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit identifies one of the supported time units.
type Unit uint8

const (
	// Nanoseconds is the default unit of a zero ValueUnit.
	Nanoseconds Unit = iota
	Microseconds
	Milliseconds
	Seconds
	Minutes
	Hours
	Days
)

// units is ordered from the smallest to the largest unit.
var units = [...]struct {
	symbol string
	name   string
	size   Duration
}{
	Nanoseconds:  {"ns", "nanoseconds", Nanosecond},
	Microseconds: {"us", "microseconds", Microsecond},
	Milliseconds: {"ms", "milliseconds", Millisecond},
	Seconds:      {"s", "seconds", Second},
	Minutes:      {"m", "minutes", Minute},
	Hours:        {"h", "hours", Hour},
	Days:         {"d", "days", Day},
}

// ParseUnit resolves a unit symbol ("ms") or name ("milliseconds").
// Matching is exact and case-sensitive.
func ParseUnit(s string) (Unit, error) {
	for u, info := range units {
		if s == info.symbol || s == info.name {
			return Unit(u), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidUnit, s)
}

// Symbol returns the short form of the unit, e.g. "ms".
func (u Unit) Symbol() string {
	if !u.valid() {
		return "?"
	}
	return units[u].symbol
}

// String returns the long form of the unit, e.g. "milliseconds".
func (u Unit) String() string {
	if !u.valid() {
		return "UNKNOWN"
	}
	return units[u].name
}

// Size returns the length of one unit.
func (u Unit) Size() Duration {
	if !u.valid() {
		return 0
	}
	return units[u].size
}

func (u Unit) valid() bool {
	return int(u) < len(units)
}

// ValueUnit is a duration expressed in a single unit, such as 1.5 seconds.
// It is used for input and display; Duration is the canonical form.
// The zero value is 0 ns.
type ValueUnit struct {
	Value float64 `json:"value" cbor:"1,keyasint"`
	Unit  Unit    `json:"unit" cbor:"2,keyasint"`
}

// Duration converts v to a Duration, rounding to the nearest nanosecond.
func (v ValueUnit) Duration() Duration {
	return fromFloat(v.Value * float64(v.Unit.Size()))
}

// String renders v as value and symbol, e.g. "1.5s".
func (v ValueUnit) String() string {
	return strconv.FormatFloat(v.Value, 'g', -1, 64) + v.Unit.Symbol()
}

// ParseValueUnit parses a number followed by a unit, with optional
// whitespace in between: "1.5s", "250 ms", "2 days".
func ParseValueUnit(s string) (Duration, error) {
	s = strings.TrimSpace(s)
	split := strings.IndexFunc(s, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.' && r != 'e' && r != 'E' && r != '+' && r != '-'
	})
	if split <= 0 {
		return 0, fmt.Errorf("%w: %q has no value or no unit", ErrInvalidUnit, s)
	}
	value, err := strconv.ParseFloat(s[:split], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value in %q: %w", s, err)
	}
	return FromUnitValue(value, strings.TrimSpace(s[split:]))
}
