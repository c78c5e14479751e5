package stats

import (
	"math"
	"slices"

	moremath "github.com/aclements/go-moremath/stats"

	"github.com/timed-go/timed/pkg/duration"
)

// nanos converts durations to their nanosecond counts.
func nanos(ds []duration.Duration) []uint64 {
	ns := make([]uint64, len(ds))
	for i, d := range ds {
		ns[i] = d.Nanoseconds()
	}
	return ns
}

// fromNanos rounds a float nanosecond count to a Duration.
func fromNanos(ns float64) duration.Duration {
	return duration.ValueUnit{Value: ns, Unit: duration.Nanoseconds}.Duration()
}

// MinDurations returns the shortest duration, or zero for no samples.
func MinDurations(ds []duration.Duration) duration.Duration {
	if len(ds) == 0 {
		return 0
	}
	return slices.Min(ds)
}

// MaxDurations returns the longest duration, or zero for no samples.
func MaxDurations(ds []duration.Duration) duration.Duration {
	if len(ds) == 0 {
		return 0
	}
	return slices.Max(ds)
}

// MeanDurations returns the mean duration rounded to the nanosecond.
func MeanDurations(ds []duration.Duration) (duration.Duration, error) {
	mean, err := Mean(nanos(ds))
	if err != nil {
		return 0, err
	}
	return fromNanos(mean), nil
}

// StdDevDurations returns the population standard deviation rounded to the
// nanosecond.
func StdDevDurations(ds []duration.Duration) (duration.Duration, error) {
	sd, err := StdDev(nanos(ds))
	if err != nil {
		return 0, err
	}
	return fromNanos(sd), nil
}

// MedianDurations returns the median duration; see Median.
func MedianDurations(ds []duration.Duration) (duration.Duration, error) {
	med, err := Median(nanos(ds))
	if err != nil {
		return 0, err
	}
	return duration.Duration(med), nil
}

// MAPEDurations returns the median absolute percent error of ds; see MAPE.
func MAPEDurations(ds []duration.Duration) (float64, error) {
	return MAPE(nanos(ds))
}

// Percentile returns the q-quantile (0 <= q <= 1) of xs, interpolating
// between samples.
func Percentile(xs []float64, q float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptyInput
	}
	sample := moremath.Sample{Xs: slices.Clone(xs)}
	sample.Sort()
	return sample.Quantile(q), nil
}

// Summary holds the aggregates reported for one series of measurements.
type Summary struct {
	Count  int               `json:"count" cbor:"1,keyasint"`
	Min    duration.Duration `json:"min_ns" cbor:"2,keyasint"`
	Max    duration.Duration `json:"max_ns" cbor:"3,keyasint"`
	Mean   duration.Duration `json:"mean_ns" cbor:"4,keyasint"`
	StdDev duration.Duration `json:"stddev_ns" cbor:"5,keyasint"`
	Median duration.Duration `json:"median_ns" cbor:"6,keyasint"`

	// MAPE is nil when a zero sample leaves it undefined.
	MAPE *float64 `json:"mape,omitempty" cbor:"7,keyasint,omitempty"`

	P90 duration.Duration `json:"p90_ns" cbor:"8,keyasint"`
	P99 duration.Duration `json:"p99_ns" cbor:"9,keyasint"`
}

// Summarize computes a Summary. It returns ErrEmptyInput for no samples.
func Summarize(ds []duration.Duration) (Summary, error) {
	if len(ds) == 0 {
		return Summary{}, ErrEmptyInput
	}
	ns := nanos(ds)

	// None of these can fail on a non-empty slice.
	mean, _ := Mean(ns)
	sd, _ := StdDev(ns)
	med, _ := Median(ns)

	s := Summary{
		Count:  len(ds),
		Min:    MinDurations(ds),
		Max:    MaxDurations(ds),
		Mean:   fromNanos(mean),
		StdDev: fromNanos(sd),
		Median: duration.Duration(med),
	}
	if mape, err := MAPE(ns); err == nil && !math.IsNaN(mape) {
		s.MAPE = &mape
	}

	fs := make([]float64, len(ns))
	for i, n := range ns {
		fs[i] = float64(n)
	}
	p90, _ := Percentile(fs, 0.9)
	p99, _ := Percentile(fs, 0.99)
	s.P90, s.P99 = fromNanos(p90), fromNanos(p99)
	return s, nil
}
