package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// MaxWires is the widest matrix the wire vectors can hold.
	MaxWires = 32

	// Playfield size. The target respawn folds LFSR bits into exactly this
	// range, so the grid cannot be resized independently of the game.
	Columns = 15
	Rows    = 7

	// SeedMask covers the 10-bit LFSR.
	SeedMask = 0x3FF
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Error describes a single violated configuration rule.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *Error) Unwrap() error {
	return ErrInvalid
}

// Config holds the build-time parameters of one machine. Nothing in it
// changes once a machine has been built.
type Config struct {
	MasterHz  uint64 `yaml:"master_hz"`  // master tick rate
	RefreshHz uint64 `yaml:"refresh_hz"` // full-matrix refresh rate
	GameHz    uint64 `yaml:"game_hz"`    // game tick rate (button sampling + movement)
	Wires     int    `yaml:"wires"`      // N, number of charlieplexed wires
	Columns   int    `yaml:"columns"`
	Rows      int    `yaml:"rows"`
	Elements  int    `yaml:"elements"`  // elements actually wired, <= N*(N-1)
	BlinkBit  uint8  `yaml:"blink_bit"` // bit of the slow counter that blinks the target
	Seed      uint16 `yaml:"seed"`      // LFSR seed, nonzero
}

// Reference returns the configuration of the reference board: a 12 MHz
// master clock driving 105 elements on 11 wires.
func Reference() Config {
	return Config{
		MasterHz:  12_000_000,
		RefreshHz: 60,
		GameHz:    8,
		Wires:     11,
		Columns:   Columns,
		Rows:      Rows,
		Elements:  Columns * Rows,
		BlinkBit:  22,
		Seed:      0x2AA,
	}
}

// Sim returns a slowed-down configuration that keeps the refresh, game and
// blink rates of Reference but needs far fewer master ticks per second.
func Sim() Config {
	c := Reference()
	c.MasterHz = 630_000
	c.BlinkBit = 18
	return c
}

// Preset returns the named configuration.
func Preset(name string) (Config, error) {
	switch name {
	case "reference":
		return Reference(), nil
	case "sim", "":
		return Sim(), nil
	default:
		return Config{}, fmt.Errorf("unknown preset %q (want reference or sim)", name)
	}
}

// Validate checks every rule and returns all violations joined together.
func (c Config) Validate() error {
	var errs []error
	fail := func(field, format string, args ...any) {
		errs = append(errs, &Error{Field: field, Reason: fmt.Sprintf(format, args...)})
	}

	if c.MasterHz == 0 {
		fail("master_hz", "must be positive")
	}
	if c.RefreshHz == 0 {
		fail("refresh_hz", "must be positive")
	}
	if c.GameHz == 0 {
		fail("game_hz", "must be positive")
	}
	if c.Columns != Columns || c.Rows != Rows {
		fail("grid", "must be %dx%d, got %dx%d", Columns, Rows, c.Columns, c.Rows)
	}
	if c.Elements != c.Columns*c.Rows {
		fail("elements", "must equal columns*rows (%d), got %d", c.Columns*c.Rows, c.Elements)
	}
	if c.Wires < 2 || c.Wires > MaxWires {
		fail("wires", "must be in [2, %d], got %d", MaxWires, c.Wires)
	} else if c.Wires*(c.Wires-1) < c.Elements {
		fail("wires", "%d wires address at most %d elements, need %d", c.Wires, c.Wires*(c.Wires-1), c.Elements)
	}
	if c.RefreshHz > 0 && c.Elements > 0 && c.MasterHz < c.RefreshHz*uint64(c.Elements) {
		fail("master_hz", "%d Hz cannot refresh %d elements at %d Hz", c.MasterHz, c.Elements, c.RefreshHz)
	}
	if c.GameHz > c.MasterHz {
		fail("game_hz", "%d Hz exceeds the master rate %d Hz", c.GameHz, c.MasterHz)
	}
	if c.BlinkBit > 63 {
		fail("blink_bit", "must be in [0, 63], got %d", c.BlinkBit)
	}
	if c.Seed == 0 || c.Seed > SeedMask {
		fail("seed", "must be a nonzero 10-bit value, got %#x", c.Seed)
	}

	return errors.Join(errs...)
}

// ScanPeriod is the number of master ticks between scan ticks, minus one.
// Only meaningful on a validated configuration.
func (c Config) ScanPeriod() uint64 {
	return c.MasterHz/(c.RefreshHz*uint64(c.Elements)) - 1
}

// GamePeriod is the number of master ticks between game ticks, minus one.
func (c Config) GamePeriod() uint64 {
	return c.MasterHz/c.GameHz - 1
}

// FrameTicks is the number of master ticks in one full scan of the matrix.
func (c Config) FrameTicks() uint64 {
	return (c.ScanPeriod() + 1) * uint64(c.Elements)
}

// Load reads a YAML file layered over base and validates the result.
func Load(path string, base Config) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return base, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	return Decode(f, base)
}

// Decode reads YAML from r layered over base. Unknown keys are rejected.
func Decode(r io.Reader, base Config) (Config, error) {
	cfg := base
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}
