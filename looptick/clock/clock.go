// Package clock provides the time source the scheduler runs against.
// Splitting it out allows tests to drive deadlines deterministically
// instead of sleeping for real.
package clock

import "time"

// Clock measures elapsed time against an arbitrary epoch and suspends
// the calling goroutine. Elapsed readings are monotonic: they never go
// backwards, regardless of wall clock adjustments.
type Clock interface {
	// Elapsed returns the time passed since the clock was created.
	Elapsed() time.Duration

	// Sleep blocks the caller for at least d. Non-positive durations
	// return immediately.
	Sleep(d time.Duration)
}

// NewMonotonic returns a Clock backed by the system monotonic clock,
// with its epoch fixed at the moment of the call.
func NewMonotonic() Clock {
	return &monotonic{start: time.Now()}
}

type monotonic struct {
	start time.Time
}

func (m *monotonic) Elapsed() time.Duration {
	// time.Now carries a monotonic reading, so the subtraction is
	// unaffected by wall clock changes.
	return time.Since(m.start)
}

func (m *monotonic) Sleep(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}
