package stats

import (
	"errors"
	"math"
	"slices"
)

// Statistics errors.
var (
	ErrEmptyInput = errors.New("no samples")
	ErrZeroSample = errors.New("zero sample makes percent error undefined")
)

// Number is the set of sample types the aggregates accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Min returns the smallest sample.
func Min[T Number](xs []T) (T, error) {
	if len(xs) == 0 {
		var zero T
		return zero, ErrEmptyInput
	}
	return slices.Min(xs), nil
}

// Max returns the largest sample.
func Max[T Number](xs []T) (T, error) {
	if len(xs) == 0 {
		var zero T
		return zero, ErrEmptyInput
	}
	return slices.Max(xs), nil
}

// Mean returns the arithmetic mean.
func Mean[T Number](xs []T) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptyInput
	}
	var sum float64
	for _, x := range xs {
		sum += float64(x)
	}
	return sum / float64(len(xs)), nil
}

// StdDev returns the population standard deviation, dividing the squared
// deviations by N.
func StdDev[T Number](xs []T) (float64, error) {
	mean, err := Mean(xs)
	if err != nil {
		return 0, err
	}
	var sq float64
	for _, x := range xs {
		diff := float64(x) - mean
		sq += diff * diff
	}
	return math.Sqrt(sq / float64(len(xs))), nil
}

// Median returns the middle sample of a sorted copy of xs. For an even
// count it returns the average of the two middle samples computed in T, which
// rounds toward zero for integer types and never overflows.
func Median[T Number](xs []T) (T, error) {
	if len(xs) == 0 {
		var zero T
		return zero, ErrEmptyInput
	}
	sorted := slices.Clone(xs)
	slices.Sort(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid], nil
	}
	return midpoint(sorted[mid-1], sorted[mid]), nil
}

// midpoint returns (a+b)/2 for a <= b without overflowing T. Integer
// results round toward zero.
func midpoint[T Number](a, b T) T {
	var zero T
	switch {
	case a >= zero:
		return a + (b-a)/2
	case b < zero:
		return b - (b-a)/2
	default:
		// Mixed signs cannot overflow.
		return (a + b) / 2
	}
}

// MAPE returns the median absolute percent error of xs as a fraction:
// median(|x - median(xs)| / x). Every sample must be non-zero.
func MAPE[T Number](xs []T) (float64, error) {
	med, err := Median(xs)
	if err != nil {
		return 0, err
	}
	ratios := make([]float64, len(xs))
	for i, x := range xs {
		if x == 0 {
			return 0, ErrZeroSample
		}
		ratios[i] = math.Abs(float64(x)-float64(med)) / float64(x)
	}
	return Median(ratios)
}
