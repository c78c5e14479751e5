package duration

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromComponents(t *testing.T) {
	tests := []struct {
		name string
		got  Duration
		want Duration
	}{
		{"zero", FromComponents(0, 0, 0, 0, 0, 0, 0), 0},
		{"one day", FromComponents(1, 0, 0, 0, 0, 0, 0), Day},
		{"hours normalize forward", FromComponents(0, 36, 0, 0, 0, 0, 0), Day + 12*Hour},
		{"all fields", FromComponents(1, 2, 3, 4, 5, 6, 7),
			Day + 2*Hour + 3*Minute + 4*Second + 5*Millisecond + 6*Microsecond + 7},
		{"nanoseconds only", FromComponents(0, 0, 0, 0, 0, 0, 1_500_000_000), 1500 * Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestEquivalentSplitsAreEqual(t *testing.T) {
	a := FromComponents(0, 0, 0, 0, 0, 0, 1_500_000_000)
	b := FromComponents(0, 0, 0, 1, 500, 0, 0)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a, a.Components().Duration())
	assert.Equal(t, b.Components(), a.Components())
}

func TestComponents(t *testing.T) {
	d := FromComponents(1, 5, 10, 0, 24, 200, 999)
	assert.Equal(t, Components{
		Days:         1,
		Hours:        5,
		Minutes:      10,
		Seconds:      0,
		Milliseconds: 24,
		Microseconds: 200,
		Nanoseconds:  999,
	}, d.Components())

	c := FromComponents(0, 49, 61, 0, 0, 0, 0).Components()
	assert.Equal(t, uint64(2), c.Days)
	assert.Equal(t, uint64(2), c.Hours)
	assert.Equal(t, uint64(1), c.Minutes)
}

func TestFromUnitValue(t *testing.T) {
	tests := []struct {
		value float64
		unit  string
		want  Duration
	}{
		{1, "d", Day},
		{1, "days", Day},
		{1.5, "h", 90 * Minute},
		{2, "minutes", 2 * Minute},
		{1.5, "s", 1500 * Millisecond},
		{0.25, "ms", 250 * Microsecond},
		{3, "microseconds", 3 * Microsecond},
		{1.4, "ns", 1},
		{1.5, "ns", 2},
		{-3, "s", 0},
	}
	for _, tt := range tests {
		got, err := FromUnitValue(tt.value, tt.unit)
		require.NoError(t, err, "%v %s", tt.value, tt.unit)
		assert.Equal(t, tt.want, got, "%v %s", tt.value, tt.unit)
	}
}

func TestFromUnitValueInvalidUnit(t *testing.T) {
	for _, unit := range []string{"", "sec", "S", "Days", "µs", "hour"} {
		_, err := FromUnitValue(1, unit)
		assert.ErrorIs(t, err, ErrInvalidUnit, "unit %q", unit)
	}
}

func TestUnitRoundTrip(t *testing.T) {
	unitNames := []string{"d", "days", "h", "hours", "m", "minutes", "s", "seconds",
		"ms", "milliseconds", "us", "microseconds", "ns", "nanoseconds"}
	for _, unit := range unitNames {
		for _, n := range []float64{0, 1, 7, 59, 1000, 123456} {
			d, err := FromUnitValue(n, unit)
			require.NoError(t, err)
			got, err := d.TimeInUnit(unit)
			require.NoError(t, err)
			assert.InDelta(t, n, got, 1e-9, "%v %s", n, unit)
		}
	}
}

func TestTimeInUnit(t *testing.T) {
	d := 1500 * Millisecond
	s, err := d.TimeInUnit("s")
	require.NoError(t, err)
	assert.Equal(t, 1.5, s)
	assert.Equal(t, 1500.0, d.Milliseconds())
	assert.Equal(t, 1_500_000.0, d.Microseconds())
	assert.Equal(t, uint64(1_500_000_000), d.Nanoseconds())
	assert.Equal(t, 0.025, d.Minutes())

	assert.Equal(t, 34.0, (Day + 10*Hour).Hours())
	assert.Equal(t, 1.5, (36 * Hour).Days())

	_, err = d.TimeInUnit("fortnights")
	assert.ErrorIs(t, err, ErrInvalidUnit)
}

func TestAdaptive(t *testing.T) {
	tests := []struct {
		d    Duration
		want Unit
	}{
		{5 * Day, Days},
		{4 * Day, Hours},
		{Day, Hours},
		{13 * Hour, Hours},
		{12*Hour + 11*Minute, Minutes},
		{11 * Minute, Minutes},
		{10*Minute + 11*Second, Seconds},
		{10*Minute + 10*Second, Nanoseconds},
		{501 * Millisecond, Milliseconds},
		{500 * Millisecond, Nanoseconds},
		{501 * Microsecond, Microseconds},
		{42, Nanoseconds},
	}
	for _, tt := range tests {
		got := tt.d.Adaptive()
		assert.Equal(t, tt.want, got.Unit, "%d ns", uint64(tt.d))
		assert.Equal(t, tt.d.InUnit(tt.want), got.Value)
	}
}

func TestSubSaturates(t *testing.T) {
	a, b := 3*Second, 5*Second
	assert.Equal(t, Duration(0), a.Sub(b))
	assert.Equal(t, 2*Second, b.Sub(a))
	assert.Equal(t, Duration(0), a.Sub(a))

	a.Decrease(b)
	assert.Equal(t, Duration(0), a)

	b.Increase(Second)
	assert.Equal(t, 6*Second, b)
}

func TestScalarArithmetic(t *testing.T) {
	d := 10 * Second
	assert.Equal(t, 30*Second, d.Mul(3))
	assert.Equal(t, 15*Second, d.Mul(1.5))
	assert.Equal(t, Duration(0), d.Mul(-2))
	assert.Equal(t, Duration(0), d.Mul(math.NaN()))

	assert.Equal(t, 5*Second, d.Div(2))
	assert.Equal(t, Duration(4), Duration(7).Div(2))
	assert.Equal(t, Duration(2), Duration(7).Div(3))
	assert.Equal(t, Duration(3333333333), d.Div(3))
	assert.Equal(t, 4*Second, d.Div(2.5))
	assert.Equal(t, MaxDuration, d.Div(0))
	assert.Equal(t, Duration(0), Duration(0).Div(0))

	big := Duration(1<<62 + 1)
	assert.Equal(t, big, big.Div(1), "integer division stays exact")
}

func TestMulDuration(t *testing.T) {
	assert.Equal(t, Duration(6), Duration(2).MulDuration(3))
	assert.Equal(t, Duration(0), Second.MulDuration(0))
}

func TestOrdering(t *testing.T) {
	values := []Duration{0, 1, Millisecond, Second, Second, Day}
	for _, a := range values {
		for _, b := range values {
			n := 0
			if a < b {
				n++
			}
			if a == b {
				n++
			}
			if a > b {
				n++
			}
			assert.Equal(t, 1, n)
			assert.Equal(t, a < b, a.Less(b))
			switch {
			case a < b:
				assert.Equal(t, -1, a.Compare(b))
			case a > b:
				assert.Equal(t, 1, a.Compare(b))
			default:
				assert.Equal(t, 0, a.Compare(b))
			}
		}
	}
}

func TestConversions(t *testing.T) {
	d := 1500 * Millisecond
	assert.Equal(t, int64(1_500_000_000), d.Int64())
	assert.Equal(t, 1.5e9, d.Float64())
	assert.Equal(t, 1500*time.Millisecond, d.Std())
	assert.Equal(t, time.Duration(math.MaxInt64), MaxDuration.Std())

	assert.Equal(t, d, FromStd(1500*time.Millisecond))
	assert.Equal(t, Duration(0), FromStd(-time.Second))
}

func TestUnit(t *testing.T) {
	u, err := ParseUnit("us")
	require.NoError(t, err)
	assert.Equal(t, Microseconds, u)
	assert.Equal(t, "us", u.Symbol())
	assert.Equal(t, "microseconds", u.String())
	assert.Equal(t, Microsecond, u.Size())

	assert.Equal(t, "UNKNOWN", Unit(42).String())
	assert.Equal(t, Duration(0), Unit(42).Size())
}

func TestValueUnit(t *testing.T) {
	var zero ValueUnit
	assert.Equal(t, Nanoseconds, zero.Unit)
	assert.Equal(t, "0ns", zero.String())

	vu := ValueUnit{Value: 1.5, Unit: Seconds}
	assert.Equal(t, "1.5s", vu.String())
	assert.Equal(t, 1500*Millisecond, vu.Duration())
}

func TestParseValueUnit(t *testing.T) {
	tests := []struct {
		in   string
		want Duration
	}{
		{"1.5s", 1500 * Millisecond},
		{"250 ms", 250 * Millisecond},
		{"2 days", 2 * Day},
		{" 10us ", 10 * Microsecond},
		{"1e3ns", Microsecond},
	}
	for _, tt := range tests {
		got, err := ParseValueUnit(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, in := range []string{"", "ms", "12", "1.5 parsecs"} {
		_, err := ParseValueUnit(in)
		assert.Error(t, err, in)
	}
	_, err := ParseValueUnit("3 fortnights")
	assert.True(t, errors.Is(err, ErrInvalidUnit))
}
