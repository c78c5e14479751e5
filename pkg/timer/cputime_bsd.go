//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package timer

import (
	"golang.org/x/sys/unix"

	"github.com/timed-go/timed/pkg/duration"
)

const processTimeSupported = true

// processTime sums user and system time from getrusage.
func processTime() (duration.Duration, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, err
	}
	return duration.Duration(ru.Utime.Nano() + ru.Stime.Nano()), nil
}
