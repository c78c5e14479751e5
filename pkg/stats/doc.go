// Package stats computes aggregates over measurement samples.
//
// The generic functions work on any integer or float sample type and
// return ErrEmptyInput for an empty slice. The *Durations variants convert
// each duration.Duration to its nanosecond count, aggregate, and convert
// back; MinDurations and MaxDurations return zero for an empty slice
// instead of failing.
//
// Median sorts a private copy. For an even number of samples it averages
// the two middle samples in the sample type, so integer medians truncate:
// the median of [1 2 3 4] is 2.
//
// MAPE is the median absolute percent error, median(|x - median(x)| / x),
// a dispersion measure that is robust against outliers. It is undefined
// when a sample is zero and returns ErrZeroSample in that case.
//
// All functions are pure and safe for concurrent use.
package stats
