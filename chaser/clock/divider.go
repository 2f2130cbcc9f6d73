package clock

import (
	"github.com/valerio/go-chaser/chaser/bit"
	"github.com/valerio/go-chaser/chaser/config"
)

// State is the divider's register file. All counters count master ticks.
type State struct {
	Scan uint64 // wraps after ScanPeriod
	Game uint64 // wraps after GamePeriod
	Slow uint64 // free-running, drives the blink flag
}

// Strobes are the signals derived from the current counters. Scan and Game
// are high for exactly one master tick per period.
type Strobes struct {
	Scan  bool
	Game  bool
	Blink bool
}

// Divider derives the scan tick, the game tick and the blink flag from the
// master tick.
type Divider struct {
	scanPeriod uint64
	gamePeriod uint64
	blinkBit   uint8
}

// New builds a divider for a validated configuration.
func New(cfg config.Config) Divider {
	return Divider{
		scanPeriod: cfg.ScanPeriod(),
		gamePeriod: cfg.GamePeriod(),
		blinkBit:   cfg.BlinkBit,
	}
}

// Strobes returns the signals visible during the tick that starts from s.
func (d Divider) Strobes(s State) Strobes {
	return Strobes{
		Scan:  s.Scan == d.scanPeriod,
		Game:  s.Game == d.gamePeriod,
		Blink: bit.IsSet64(d.blinkBit, s.Slow),
	}
}

// Step returns the counters after one master tick.
func (d Divider) Step(s State) State {
	next := State{
		Scan: s.Scan + 1,
		Game: s.Game + 1,
		Slow: s.Slow + 1,
	}

	// >= rather than == keeps a counter that was loaded out of range from
	// running away.
	if s.Scan >= d.scanPeriod {
		next.Scan = 0
	}
	if s.Game >= d.gamePeriod {
		next.Game = 0
	}

	return next
}

// ScanPeriod returns the configured scan period.
func (d Divider) ScanPeriod() uint64 { return d.scanPeriod }

// GamePeriod returns the configured game period.
func (d Divider) GamePeriod() uint64 { return d.gamePeriod }
