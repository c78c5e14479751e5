//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package timer

import (
	"errors"

	"github.com/timed-go/timed/pkg/duration"
)

const processTimeSupported = false

var errNoProcessTime = errors.New("process CPU time not supported on this platform")

func processTime() (duration.Duration, error) {
	return 0, errNoProcessTime
}
