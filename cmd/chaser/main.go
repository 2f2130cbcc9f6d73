package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli"
	"github.com/valerio/go-chaser/chaser"
	"github.com/valerio/go-chaser/chaser/audio"
	"github.com/valerio/go-chaser/chaser/backend"
	"github.com/valerio/go-chaser/chaser/backend/headless"
	"github.com/valerio/go-chaser/chaser/backend/terminal"
	"github.com/valerio/go-chaser/chaser/config"
	"github.com/valerio/go-chaser/chaser/input"
	"github.com/valerio/go-chaser/chaser/input/action"
	"github.com/valerio/go-chaser/chaser/input/event"
	"github.com/valerio/go-chaser/chaser/timing"
)

func main() {
	app := cli.NewApp()
	app.Name = "Chaser"
	app.Description = "A charlieplexed LED matrix chase game, simulated tick by tick"
	app.Usage = "chaser [options]"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "preset",
			Usage: "Base configuration: sim or reference (12 MHz, slow to simulate)",
			Value: "sim",
		},
		cli.StringFlag{
			Name:  "config",
			Usage: "YAML file layered over the preset",
		},
		cli.Uint64Flag{
			Name:  "master-hz",
			Usage: "Override the master tick rate",
		},
		cli.IntFlag{
			Name:  "wires",
			Usage: "Override the number of charlieplexed wires",
		},
		cli.IntFlag{
			Name:  "seed",
			Usage: "Override the LFSR seed (1-1023)",
		},
		cli.BoolFlag{
			Name:  "headless",
			Usage: "Run without a terminal interface",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode (required for headless)",
		},
		cli.IntFlag{
			Name:  "snapshot-interval",
			Usage: "Save frame snapshots every N frames in headless mode (0 = disabled)",
		},
		cli.StringFlag{
			Name:  "snapshot-dir",
			Usage: "Directory to save frame snapshots (default: temp directory)",
		},
		cli.StringFlag{
			Name:  "press",
			Usage: `Scripted headless input, e.g. "left@3,up@3" presses after frame 3`,
		},
		cli.BoolFlag{
			Name:  "realtime",
			Usage: "Pace headless runs at the refresh rate",
		},
		cli.StringFlag{
			Name:  "limiter",
			Usage: "Frame pacing in terminal mode: adaptive or ticker",
			Value: "adaptive",
		},
		cli.BoolFlag{
			Name:  "mute",
			Usage: "Start with the catch chime disabled",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Show the register panel",
		},
	}
	app.Action = runChaser

	if err := app.Run(os.Args); err != nil {
		slog.Error("Error running chaser", "error", err)
		os.Exit(1)
	}
}

// options are the command line settings that shape the configuration.
type options struct {
	preset     string
	configPath string
	masterHz   uint64
	wires      int
	seed       int
}

func optionsFrom(c *cli.Context) options {
	return options{
		preset:     c.String("preset"),
		configPath: c.String("config"),
		masterHz:   c.Uint64("master-hz"),
		wires:      c.Int("wires"),
		seed:       c.Int("seed"),
	}
}

// buildConfig layers preset, file and flag overrides, then validates.
func buildConfig(opts options) (config.Config, error) {
	cfg, err := config.Preset(opts.preset)
	if err != nil {
		return cfg, err
	}

	if opts.configPath != "" {
		if cfg, err = config.Load(opts.configPath, cfg); err != nil {
			return cfg, err
		}
	}

	if opts.masterHz != 0 {
		cfg.MasterHz = opts.masterHz
	}
	if opts.wires != 0 {
		cfg.Wires = opts.wires
	}
	if opts.seed != 0 {
		if opts.seed < 0 || opts.seed > config.SeedMask {
			return cfg, &config.Error{Field: "seed", Reason: fmt.Sprintf("%d is not a 10-bit value", opts.seed)}
		}
		cfg.Seed = uint16(opts.seed)
	}

	return cfg, cfg.Validate()
}

// holdFrames is how long a scripted press is held: long enough to span a
// game tick whatever the phase.
func holdFrames(cfg config.Config) int {
	return int((cfg.RefreshHz+cfg.GameHz-1)/cfg.GameHz) + 1
}

func runChaser(c *cli.Context) error {
	cfg, err := buildConfig(optionsFrom(c))
	if err != nil {
		return err
	}

	m, err := chaser.New(cfg)
	if err != nil {
		return err
	}

	chime := audio.NewChime()
	if c.Bool("mute") {
		chime.Toggle()
	}

	mgr := input.NewManager(m.Panel())
	registerActions(mgr, m, chime)

	var b backend.Backend
	if c.Bool("headless") {
		b, err = headlessBackend(c, cfg)
		if err != nil {
			return err
		}
		if c.Bool("realtime") {
			m.SetLimiter(timing.NewAdaptiveLimiter(cfg.RefreshHz))
		}
	} else {
		b = terminal.New()
		switch c.String("limiter") {
		case "ticker":
			ticker := timing.NewTickerLimiter(cfg.RefreshHz)
			defer ticker.Stop()
			m.SetLimiter(ticker)
		case "adaptive":
			m.SetLimiter(timing.NewAdaptiveLimiter(cfg.RefreshHz))
		default:
			return fmt.Errorf("unknown limiter %q (want adaptive or ticker)", c.String("limiter"))
		}
	}

	if err := b.Init(backend.BackendConfig{
		Title:         "Chaser",
		ShowDebug:     c.Bool("debug"),
		DebugProvider: m,
	}); err != nil {
		return err
	}
	defer b.Cleanup()

	if !c.Bool("headless") {
		if err := chime.Initialize(); err != nil {
			slog.Warn("Audio unavailable, running silently", "error", err)
		}
		defer chime.Cleanup()
	}

	m.SetListener(eventLogger(chime))

	slog.Info("Machine ready",
		"master_hz", cfg.MasterHz,
		"wires", cfg.Wires,
		"scan_period", cfg.ScanPeriod(),
		"game_period", cfg.GamePeriod())

	if err := backend.Run(m, b, mgr); err != nil {
		return err
	}

	slog.Info("Finished", "frames", m.GetFrameCount(), "catches", m.Catches())
	return nil
}

func headlessBackend(c *cli.Context, cfg config.Config) (*headless.Backend, error) {
	frames := c.Int("frames")
	if frames <= 0 {
		return nil, errors.New("headless mode requires --frames option with a positive value")
	}

	snapshots, err := headless.CreateSnapshotConfig(c.Int("snapshot-interval"), c.String("snapshot-dir"), "chaser")
	if err != nil {
		return nil, err
	}

	script, err := headless.ParseScript(c.String("press"))
	if err != nil {
		return nil, fmt.Errorf("invalid --press: %w", err)
	}

	return headless.New(frames, snapshots).WithScript(script, holdFrames(cfg)), nil
}

// registerActions routes board and simulator actions to the machine. Board
// buttons go to the panel through the manager itself.
func registerActions(mgr *input.Manager, m *chaser.Machine, chime *audio.Chime) {
	mgr.On(action.BoardReset, event.Press, func() { m.HandleAction(action.BoardReset, true) })
	mgr.On(action.BoardReset, event.Release, func() { m.HandleAction(action.BoardReset, false) })
	mgr.On(action.SimPauseToggle, event.Press, func() { m.HandleAction(action.SimPauseToggle, true) })
	mgr.On(action.SimStepFrame, event.Press, func() { m.HandleAction(action.SimStepFrame, true) })
	mgr.On(action.SimSoundToggle, event.Press, func() { chime.Toggle() })
}

func eventLogger(chime *audio.Chime) chaser.Listener {
	return func(ev chaser.Event) {
		switch ev.Kind {
		case chaser.EventCaught:
			slog.Info("Target caught", "tick", ev.Tick, "player", ev.Player, "target", ev.Target)
			chime.Play()
		case chaser.EventMoved:
			slog.Debug("Player moved", "tick", ev.Tick, "player", ev.Player)
		case chaser.EventReset:
			slog.Info("Board reset", "tick", ev.Tick)
		}
	}
}
