package timer

import (
	"time"

	"github.com/timed-go/timed/pkg/duration"
)

// BusyWait spins until d of wall time has passed, keeping the CPU busy.
func BusyWait(d duration.Duration) {
	sw := NewWallTimer()
	sw.Start()
	for sw.Elapsed() < d {
	}
	sw.Stop()
}

// Sleep blocks the calling goroutine for d.
func Sleep(d duration.Duration) {
	time.Sleep(d.Std())
}
