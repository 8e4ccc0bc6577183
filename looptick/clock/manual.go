package clock

import "time"

// Manual is a Clock driven entirely by the test that owns it. Advance
// moves time forward; Sleep records the requested duration and then
// advances by it, so code under test observes the wait without any
// real blocking.
//
// Manual is not safe for concurrent use, matching the single-owner
// contract of the scheduler it exists to test.
type Manual struct {
	elapsed time.Duration
	sleeps  []time.Duration
}

// NewManual returns a Manual clock at elapsed time zero.
func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) Elapsed() time.Duration {
	return m.elapsed
}

func (m *Manual) Sleep(d time.Duration) {
	m.sleeps = append(m.sleeps, d)
	if d > 0 {
		m.elapsed += d
	}
}

// Advance moves elapsed time forward by d. Negative d is ignored; the
// clock is monotonic like the real one.
func (m *Manual) Advance(d time.Duration) {
	if d > 0 {
		m.elapsed += d
	}
}

// Sleeps returns every duration passed to Sleep, in call order,
// including non-positive ones.
func (m *Manual) Sleeps() []time.Duration {
	return m.sleeps
}

// LastSleep returns the most recent duration passed to Sleep, or zero
// if Sleep was never called.
func (m *Manual) LastSleep() time.Duration {
	if len(m.sleeps) == 0 {
		return 0
	}
	return m.sleeps[len(m.sleeps)-1]
}
