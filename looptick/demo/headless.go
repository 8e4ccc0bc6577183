package demo

import (
	"log/slog"
	"time"

	"github.com/valerio/go-looptick/looptick/config"
	"github.com/valerio/go-looptick/looptick/sched"
)

// RunHeadless drives the scheduler without a terminal for a fixed
// duration, logging the captured rates once per measurement window.
// Useful for checking what a machine actually sustains at a given
// configuration.
func RunHeadless(cfg config.Config, duration time.Duration) error {
	s, err := sched.New(cfg.UpdateRateHz, cfg.RenderRateHz)
	if err != nil {
		return err
	}

	slog.Info("Running headless",
		"update_rate_hz", cfg.UpdateRateHz,
		"render_rate_hz", cfg.RenderRateHz,
		"duration", duration)

	b := newBox()
	updates, renders, windows := 0, 0, 0
	deadline := time.Now().Add(duration)
	for time.Now().Before(deadline) {
		if s.IsWindowElapsed() {
			windows++
			slog.Info("Window elapsed",
				"window", windows,
				"updates_per_second", s.CapturedUpdateRate(),
				"renders_per_second", s.CapturedRenderRate())
		}
		for s.IsUpdateDue() {
			b.step(80, 24)
			updates++
		}
		if s.IsRenderDue() {
			renders++
		}
		s.Yield()
	}

	slog.Info("Headless run completed",
		"updates", updates, "renders", renders, "windows", windows)
	return nil
}
