// Package demo is a small bouncing-box loop showing how the scheduler
// is meant to be driven: one window poll per iteration, updates
// drained until caught up, at most one render, then a yield.
package demo

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/valerio/go-looptick/looptick/config"
	"github.com/valerio/go-looptick/looptick/sched"
)

// Demo runs a paced bouncing box in the terminal.
type Demo struct {
	sched   *sched.TickScheduler
	screen  tcell.Screen
	title   string
	running bool

	box box

	// Most recently captured throughput, shown in the status line.
	ups int
	fps int
}

// New builds a demo from the given settings.
func New(cfg config.Config) (*Demo, error) {
	s, err := sched.New(cfg.UpdateRateHz, cfg.RenderRateHz)
	if err != nil {
		return nil, err
	}
	return &Demo{
		sched: s,
		title: cfg.Title,
		box:   newBox(),
	}, nil
}

// Run owns the terminal until the user quits (Esc, q or Ctrl-C).
func (d *Demo) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %v", err)
	}
	d.screen = screen
	d.running = true
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.Clear()
	slog.Info("Demo started", "title", d.title)

	for d.running {
		d.pollInput()

		if d.sched.IsWindowElapsed() {
			d.ups = d.sched.CapturedUpdateRate()
			d.fps = d.sched.CapturedRenderRate()
		}

		for d.sched.IsUpdateDue() {
			w, h := screen.Size()
			d.box.step(w, h-1) // bottom row is the status line
		}

		if d.sched.IsRenderDue() {
			d.render()
		}

		d.sched.Yield()
	}

	slog.Info("Demo stopped")
	return nil
}

func (d *Demo) pollInput() {
	for d.screen.HasPendingEvent() {
		ev := d.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
				d.running = false
			case ev.Rune() == 'q':
				d.running = false
			}
		case *tcell.EventResize:
			d.screen.Sync()
		}
	}
}

func (d *Demo) render() {
	d.screen.Clear()

	boxStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	d.screen.SetContent(d.box.x, d.box.y, '█', nil, boxStyle)

	_, h := d.screen.Size()
	status := fmt.Sprintf(" %s | %d ups | %d fps ", d.title, d.ups, d.fps)
	drawText(d.screen, 0, h-1, tcell.StyleDefault.Reverse(true), status)

	d.screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, ch := range text {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}
