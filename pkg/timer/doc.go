// Package timer implements stopwatches that produce duration.Duration values.
//
// # Clocks
//
// A Stopwatch reads time from a Clock:
//   - WallClock: monotonic elapsed real time
//   - ProcessClock: CPU time consumed by the whole process
//
// ProcessClock uses CLOCK_PROCESS_CPUTIME_ID on Linux and getrusage on the
// BSDs and macOS. Elsewhere it is unsupported: a CPU timer logs a warning
// when it is created and always measures zero.
//
// # Stopwatch Behavior
//
//   - Start opens a new interval; it does nothing while running and clears
//     the history of a stopped timer
//   - Pause closes the interval and returns its length only
//   - Stop closes the interval and returns the total of all intervals
//   - Elapsed includes the open interval measured against now
//   - Pause and Stop on a timer that is not running return Elapsed
//
// # Calibration
//
// Calibrate times empty start/stop cycles on a private stopwatch using the
// same clock and stores their mean as a baseline. Stop and Elapsed subtract
// the baseline, saturating at zero. The baseline belongs to the Stopwatch
// and survives Reset.
//
// A Stopwatch is not safe for concurrent use. The work being timed may run
// on other goroutines; the wall clock measures it end to end.
package timer
