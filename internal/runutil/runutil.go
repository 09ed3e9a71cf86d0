// internal/runutil/runutil.go
package runutil

import "time"

// Clock returns the current time. Tests inject a fake.
type Clock func() time.Time

// Stopwatch measures wall time from the moment it was started.
type Stopwatch struct {
	now   Clock
	start time.Time
}

// Start returns a running Stopwatch. A nil clock means time.Now.
func Start(now Clock) Stopwatch {
	if now == nil {
		now = time.Now
	}
	return Stopwatch{now: now, start: now()}
}

// Elapsed returns the time since Start.
func (s Stopwatch) Elapsed() time.Duration {
	return s.now().Sub(s.start)
}

// Measure runs fn and reports how long it took, along with fn's error.
func Measure(now Clock, fn func() error) (time.Duration, error) {
	sw := Start(now)
	err := fn()
	return sw.Elapsed(), err
}
