package timer

import (
	"time"

	"github.com/timed-go/timed/pkg/duration"
)

// Clock is a source of monotonically increasing readings.
type Clock interface {
	// Now returns the time elapsed since an arbitrary fixed origin.
	Now() duration.Duration
}

// WallClock reads monotonic real time.
type WallClock struct {
	origin time.Time
}

// NewWallClock creates a wall clock whose origin is now.
func NewWallClock() *WallClock {
	return &WallClock{origin: time.Now()}
}

// Now returns the real time elapsed since the clock was created.
func (c *WallClock) Now() duration.Duration {
	return duration.FromStd(time.Since(c.origin))
}

// ProcessClock reads the CPU time consumed by the process.
type ProcessClock struct{}

// Now returns the process CPU time, or zero if it cannot be read.
func (ProcessClock) Now() duration.Duration {
	d, err := processTime()
	if err != nil {
		return 0
	}
	return d
}

// Supported reports whether the platform exposes process CPU time.
func (ProcessClock) Supported() bool {
	return processTimeSupported
}

// supporter is implemented by clocks that may be unavailable.
type supporter interface {
	Supported() bool
}
