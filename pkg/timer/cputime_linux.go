//go:build linux

package timer

import (
	"golang.org/x/sys/unix"

	"github.com/timed-go/timed/pkg/duration"
)

const processTimeSupported = true

func processTime() (duration.Duration, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_PROCESS_CPUTIME_ID, &ts); err != nil {
		return 0, err
	}
	return duration.Duration(ts.Nano()), nil
}
