package duration

import (
	"cmp"
	"errors"
	"math"
	"time"
)

// Duration errors.
var (
	ErrInvalidUnit   = errors.New("invalid unit")
	ErrInvalidFormat = errors.New("invalid duration format")
	ErrOutOfRange    = errors.New("value out of range")
)

// Duration is an elapsed time as a nanosecond count. It is never negative.
type Duration uint64

// Common durations.
const (
	Nanosecond  Duration = 1
	Microsecond          = 1000 * Nanosecond
	Millisecond          = 1000 * Microsecond
	Second               = 1000 * Millisecond
	Minute               = 60 * Second
	Hour                 = 60 * Minute
	Day                  = 24 * Hour

	MaxDuration Duration = math.MaxUint64
)

// maxFloat is float64(MaxDuration), i.e. 2^64.
const maxFloat = float64(1 << 64)

// Components is the calendar-free breakdown of a Duration.
type Components struct {
	Days         uint64 `json:"days"`
	Hours        uint64 `json:"hours"`
	Minutes      uint64 `json:"minutes"`
	Seconds      uint64 `json:"seconds"`
	Milliseconds uint64 `json:"milliseconds"`
	Microseconds uint64 `json:"microseconds"`
	Nanoseconds  uint64 `json:"nanoseconds"`
}

// Duration sums all components. Fields need not be normalized.
func (c Components) Duration() Duration {
	return Duration(c.Days)*Day +
		Duration(c.Hours)*Hour +
		Duration(c.Minutes)*Minute +
		Duration(c.Seconds)*Second +
		Duration(c.Milliseconds)*Millisecond +
		Duration(c.Microseconds)*Microsecond +
		Duration(c.Nanoseconds)
}

// FromComponents builds a Duration from component values in any range;
// FromComponents(0, 36, 0, 0, 0, 0, 0) is one and a half days.
func FromComponents(days, hours, minutes, seconds, ms, us, ns uint64) Duration {
	return Components{
		Days:         days,
		Hours:        hours,
		Minutes:      minutes,
		Seconds:      seconds,
		Milliseconds: ms,
		Microseconds: us,
		Nanoseconds:  ns,
	}.Duration()
}

// FromUnitValue converts value in the named unit, rounding to the nearest
// nanosecond. It returns ErrInvalidUnit for an unknown unit.
func FromUnitValue(value float64, unit string) (Duration, error) {
	u, err := ParseUnit(unit)
	if err != nil {
		return 0, err
	}
	return ValueUnit{Value: value, Unit: u}.Duration(), nil
}

// FromStd converts a time.Duration. Negative values become zero.
func FromStd(d time.Duration) Duration {
	if d < 0 {
		return 0
	}
	return Duration(d)
}

// fromFloat rounds a nanosecond count, clamping to [0, MaxDuration].
func fromFloat(ns float64) Duration {
	switch {
	case math.IsNaN(ns) || ns <= 0:
		return 0
	case ns >= maxFloat:
		return MaxDuration
	}
	return Duration(math.Round(ns))
}

// Components breaks d down by successive division by 1000, 1000, 1000, 60,
// 60 and 24.
func (d Duration) Components() Components {
	var c Components
	n := uint64(d)
	c.Nanoseconds, n = n%1000, n/1000
	c.Microseconds, n = n%1000, n/1000
	c.Milliseconds, n = n%1000, n/1000
	c.Seconds, n = n%60, n/60
	c.Minutes, n = n%60, n/60
	c.Hours, c.Days = n%24, n/24
	return c
}

// InUnit returns d as a fractional count of u.
func (d Duration) InUnit(u Unit) float64 {
	size := u.Size()
	if size == 0 {
		return 0
	}
	return float64(d/size) + float64(d%size)/float64(size)
}

// TimeInUnit is InUnit for a unit string. It returns ErrInvalidUnit for an
// unknown unit.
func (d Duration) TimeInUnit(unit string) (float64, error) {
	u, err := ParseUnit(unit)
	if err != nil {
		return 0, err
	}
	return d.InUnit(u), nil
}

// Days returns d as a fractional number of days.
func (d Duration) Days() float64 { return d.InUnit(Days) }

// Hours returns d as a fractional number of hours.
func (d Duration) Hours() float64 { return d.InUnit(Hours) }

// Minutes returns d as a fractional number of minutes.
func (d Duration) Minutes() float64 { return d.InUnit(Minutes) }

// Seconds returns d as a fractional number of seconds.
func (d Duration) Seconds() float64 { return d.InUnit(Seconds) }

// Milliseconds returns d as a fractional number of milliseconds.
func (d Duration) Milliseconds() float64 { return d.InUnit(Milliseconds) }

// Microseconds returns d as a fractional number of microseconds.
func (d Duration) Microseconds() float64 { return d.InUnit(Microseconds) }

// Nanoseconds returns the nanosecond count.
func (d Duration) Nanoseconds() uint64 { return uint64(d) }

// Int64 returns the nanosecond count as a signed integer. Durations above
// math.MaxInt64 wrap.
func (d Duration) Int64() int64 { return int64(d) }

// Float64 returns the nanosecond count as a float.
func (d Duration) Float64() float64 { return float64(d) }

// Std converts d to a time.Duration, saturating at the largest
// time.Duration.
func (d Duration) Std() time.Duration {
	if d > math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(d)
}

// Adaptive picks a display unit by magnitude and returns d in that unit.
func (d Duration) Adaptive() ValueUnit {
	c := d.Components()
	var u Unit
	switch {
	case c.Days > 4:
		u = Days
	case c.Days > 0 || c.Hours > 12:
		u = Hours
	case c.Minutes > 10:
		u = Minutes
	case c.Seconds > 10:
		u = Seconds
	case c.Milliseconds > 500:
		u = Milliseconds
	case c.Microseconds > 500:
		u = Microseconds
	default:
		u = Nanoseconds
	}
	return ValueUnit{Value: d.InUnit(u), Unit: u}
}

// Add returns d+o. Overflow wraps.
func (d Duration) Add(o Duration) Duration {
	return d + o
}

// Sub returns d-o, or zero if o is larger than d.
func (d Duration) Sub(o Duration) Duration {
	if o >= d {
		return 0
	}
	return d - o
}

// Mul scales d by f, rounding to the nearest nanosecond. Negative factors
// yield zero.
func (d Duration) Mul(f float64) Duration {
	if n, ok := integral(f); ok {
		return d * Duration(n)
	}
	return fromFloat(float64(d) * f)
}

// Div divides d by f, rounding to the nearest nanosecond. Dividing a
// non-zero duration by zero saturates at MaxDuration.
func (d Duration) Div(f float64) Duration {
	if n, ok := integral(f); ok && n > 0 {
		q, r := uint64(d)/n, uint64(d)%n
		if r >= n-r {
			q++
		}
		return Duration(q)
	}
	return fromFloat(float64(d) / f)
}

// MulDuration returns the product of both nanosecond counts. The result is
// not a meaningful time quantity; it exists for callers computing squared
// deviations.
func (d Duration) MulDuration(o Duration) Duration {
	return d * o
}

// Increase adds o to d in place.
func (d *Duration) Increase(o Duration) {
	*d = d.Add(o)
}

// Decrease subtracts o from d in place, stopping at zero.
func (d *Duration) Decrease(o Duration) {
	*d = d.Sub(o)
}

// Compare returns -1, 0 or +1 depending on whether d is shorter than, equal
// to, or longer than o.
func (d Duration) Compare(o Duration) int {
	return cmp.Compare(d, o)
}

// Equal reports whether d and o are the same length.
func (d Duration) Equal(o Duration) bool { return d == o }

// Less reports whether d is shorter than o.
func (d Duration) Less(o Duration) bool { return d < o }

// integral reports whether f is a non-negative whole number that fits in
// an int64.
func integral(f float64) (uint64, bool) {
	if f < 0 || f >= math.MaxInt64 || f != math.Trunc(f) {
		return 0, false
	}
	return uint64(f), true
}
