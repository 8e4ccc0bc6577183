package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli"

	"github.com/valerio/go-looptick/looptick/config"
	"github.com/valerio/go-looptick/looptick/demo"
)

func main() {
	app := cli.NewApp()
	app.Name = "looptick"
	app.Description = "A fixed-rate pacing clock for interactive loops, with a bouncing-box demo"
	app.Usage = "looptick [options]"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config",
			Usage: "Path to a YAML config file",
		},
		cli.IntFlag{
			Name:  "update-rate",
			Usage: "Simulation steps per second (0 disables updates)",
			Value: -1,
		},
		cli.IntFlag{
			Name:  "render-rate",
			Usage: "Frames per second (0 renders as fast as possible)",
			Value: -1,
		},
		cli.BoolFlag{
			Name:  "headless",
			Usage: "Run without a terminal UI, logging captured rates per window",
		},
		cli.DurationFlag{
			Name:  "duration",
			Usage: "How long to run in headless mode",
			Value: 5 * time.Second,
		},
	}
	app.Action = runDemo

	err := app.Run(os.Args)
	if err != nil {
		slog.Error("Error running looptick", "error", err)
		os.Exit(1)
	}
}

func runDemo(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	// Flags override the config file. The default of -1 marks a flag
	// as unset, since 0 is a meaningful rate.
	if rate := c.Int("update-rate"); rate >= 0 {
		cfg.UpdateRateHz = rate
	}
	if rate := c.Int("render-rate"); rate >= 0 {
		cfg.RenderRateHz = rate
	}

	if c.Bool("headless") {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
		slog.SetDefault(slog.New(handler))

		return demo.RunHeadless(cfg, c.Duration("duration"))
	}

	d, err := demo.New(cfg)
	if err != nil {
		return err
	}
	return d.Run()
}
