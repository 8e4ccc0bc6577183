// Package sched implements a fixed-rate pacing clock for interactive
// loops. It decouples the simulation step rate from the render rate
// and measures the achieved throughput of both over one-second
// windows.
//
// A TickScheduler is owned and polled by exactly one loop goroutine.
// The expected shape of that loop is:
//
//	for running {
//		if s.IsWindowElapsed() {
//			refreshStats(s.CapturedUpdateRate(), s.CapturedRenderRate())
//		}
//		for s.IsUpdateDue() {
//			update()
//		}
//		if s.IsRenderDue() {
//			render()
//		}
//		s.Yield()
//	}
package sched

import (
	"errors"
	"fmt"
	"time"

	"github.com/valerio/go-looptick/looptick/clock"
)

// ErrInvalidConfig is returned by New for rates that cannot describe a
// schedule.
var ErrInvalidConfig = errors.New("invalid configuration")

// windowPeriod is the length of the throughput measurement window.
const windowPeriod = time.Second

// TickScheduler tracks three independent deadlines (next update, next
// render, end of the current measurement window) against a monotonic
// clock. It only answers "is this due now?" and "how long until
// something is?"; the caller runs the actual loop.
//
// Updates and renders deliberately recover from lateness differently.
// A missed update is replayed: IsUpdateDue keeps returning true, one
// period at a time, until the simulation has caught up, so the
// long-run update rate matches the configured rate. A missed render is
// skipped: rendering shows current state, so replaying stale frames
// would be wasted work and only the deadline is caught up.
type TickScheduler struct {
	clk clock.Clock

	updatePeriod time.Duration // zero when updates are disabled
	renderPeriod time.Duration // zero when rendering is unlimited

	nextUpdate    time.Duration
	nextRender    time.Duration
	nextWindowEnd time.Duration

	updateCount int
	renderCount int

	capturedUpdateRate int
	capturedRenderRate int
}

// New creates a scheduler running against the real monotonic clock.
// updateRateHz of 0 disables update scheduling; renderRateHz of 0
// means unlimited rendering (every poll is due). Negative rates fail
// with ErrInvalidConfig.
func New(updateRateHz, renderRateHz int) (*TickScheduler, error) {
	return NewWithClock(updateRateHz, renderRateHz, clock.NewMonotonic())
}

// NewWithClock is New with an injected time source, for deterministic
// tests.
func NewWithClock(updateRateHz, renderRateHz int, clk clock.Clock) (*TickScheduler, error) {
	if updateRateHz < 0 {
		return nil, fmt.Errorf("%w: negative update rate %d", ErrInvalidConfig, updateRateHz)
	}
	if renderRateHz < 0 {
		return nil, fmt.Errorf("%w: negative render rate %d", ErrInvalidConfig, renderRateHz)
	}

	s := &TickScheduler{clk: clk}
	if updateRateHz > 0 {
		s.updatePeriod = time.Second / time.Duration(updateRateHz)
	}
	if renderRateHz > 0 {
		s.renderPeriod = time.Second / time.Duration(renderRateHz)
	}

	now := clk.Elapsed()
	s.nextUpdate = now + s.updatePeriod
	s.nextRender = now + s.renderPeriod
	s.nextWindowEnd = now + windowPeriod

	return s, nil
}

// IsUpdateDue reports whether a simulation step should run now. Each
// true advances the update deadline by exactly one period, so a loop
// that fell behind keeps receiving true until every missed step has
// been replayed. Always false when updates are disabled.
func (s *TickScheduler) IsUpdateDue() bool {
	if s.updatePeriod == 0 {
		return false
	}
	if s.clk.Elapsed() < s.nextUpdate {
		return false
	}
	s.updateCount++
	s.nextUpdate += s.updatePeriod
	return true
}

// IsRenderDue reports whether a frame should be drawn now. In
// unlimited mode every call returns true. Otherwise lateness is
// skipped, not replayed: the count goes up by one and the deadline is
// re-armed past the current time, however many periods were missed.
func (s *TickScheduler) IsRenderDue() bool {
	if s.renderPeriod == 0 {
		s.renderCount++
		return true
	}
	now := s.clk.Elapsed()
	if now < s.nextRender {
		return false
	}
	s.renderCount++
	for s.nextRender <= now {
		s.nextRender += s.renderPeriod
	}
	return true
}

// IsWindowElapsed reports whether the one-second measurement window
// has ended. When it has, the per-window counters are captured as the
// new measured rates and reset in the same step; fully missed windows
// are skipped. This is the only operation that changes the captured
// rates.
func (s *TickScheduler) IsWindowElapsed() bool {
	now := s.clk.Elapsed()
	if now < s.nextWindowEnd {
		return false
	}
	for s.nextWindowEnd <= now {
		s.nextWindowEnd += windowPeriod
	}
	s.capturedUpdateRate = s.updateCount
	s.capturedRenderRate = s.renderCount
	s.updateCount = 0
	s.renderCount = 0
	return true
}

// Yield blocks until the nearest pending deadline, handing the CPU
// back to the OS instead of spinning. It returns immediately when
// rendering is unlimited (the loop should spin) or when any deadline
// has already passed. Oversleep from scheduler granularity is
// tolerated, not corrected.
func (s *TickScheduler) Yield() {
	if s.renderPeriod == 0 {
		return
	}
	nearest := s.nextRender
	if s.nextWindowEnd < nearest {
		nearest = s.nextWindowEnd
	}
	if s.updatePeriod != 0 && s.nextUpdate < nearest {
		nearest = s.nextUpdate
	}
	if d := nearest - s.clk.Elapsed(); d > 0 {
		s.clk.Sleep(d)
	}
}

// CapturedUpdateRate returns the update count of the last completed
// measurement window.
func (s *TickScheduler) CapturedUpdateRate() int {
	return s.capturedUpdateRate
}

// CapturedRenderRate returns the render count of the last completed
// measurement window.
func (s *TickScheduler) CapturedRenderRate() int {
	return s.capturedRenderRate
}
