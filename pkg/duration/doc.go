// Package duration implements an exact, non-negative elapsed-time value.
//
// A Duration is a nanosecond count stored in a uint64. Unlike
// [time.Duration] it cannot go negative: subtraction saturates at zero and
// float constructors clamp negative input to zero.
//
// # Components
//
// The days/hours/minutes/seconds/milliseconds/microseconds/nanoseconds
// breakdown is derived on demand from the nanosecond count (see
// [Duration.Components]). Component values passed to [FromComponents] may
// be in any range and normalize forward, so 36 hours is 1 day 12 hours.
//
// # Units
//
// Unit strings are case-sensitive and exact:
//
//	d  days          h  hours          m  minutes       s  seconds
//	ms milliseconds  us microseconds   ns nanoseconds
//
// # Templates
//
// [Parse] and [Duration.Format] share a small template language:
//
//	%d %h %m %s %ms %us %ns   a field
//	%%                        a literal percent sign
//	anything else             a literal
//
// Parsing reads the run of ASCII digits at each field. Formatting folds
// every larger unit that is absent from the template into the next present
// smaller one, so "%h:%m" prints total hours and "%ns" prints the total
// nanosecond count. The template "auto" picks a layout by magnitude.
package duration
