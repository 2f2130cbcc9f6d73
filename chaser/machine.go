package chaser

import (
	"fmt"
	"log/slog"

	"github.com/valerio/go-chaser/chaser/button"
	"github.com/valerio/go-chaser/chaser/clock"
	"github.com/valerio/go-chaser/chaser/config"
	"github.com/valerio/go-chaser/chaser/debug"
	"github.com/valerio/go-chaser/chaser/game"
	"github.com/valerio/go-chaser/chaser/input"
	"github.com/valerio/go-chaser/chaser/input/action"
	"github.com/valerio/go-chaser/chaser/lfsr"
	"github.com/valerio/go-chaser/chaser/matrix"
	"github.com/valerio/go-chaser/chaser/timing"
)

// Inputs are the lines sampled on every master tick.
type Inputs struct {
	Reset   bool
	Buttons button.Levels
}

// State is every register of the machine. A State is a plain value: copying
// it takes a snapshot.
type State struct {
	Clock   clock.State
	Buttons button.State
	Random  lfsr.Register
	Game    game.State
	Scan    matrix.State
}

// Machine is the whole control loop: divider, debouncer, LFSR, game and
// scanner, stepped together one master tick at a time.
type Machine struct {
	cfg        config.Config
	divider    clock.Divider
	mapping    matrix.Mapping
	scanner    matrix.Scanner
	frameTicks uint64

	cur     State
	scanned bool // the last tick latched new outputs
	inReset bool

	// front-end side
	panel     *button.Panel
	resetLine bool
	frame     *matrix.Frame
	limiter   timing.Limiter
	listener  Listener
	paused    bool
	stepFrame bool

	ticks   uint64
	frames  uint64
	catches uint64
}

// New builds a machine for cfg, held in its reset state. The configuration
// is validated here; an invalid one never produces a machine.
func New(cfg config.Config) (*Machine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("cannot build machine: %w", err)
	}

	mapping := matrix.NewMapping(cfg)
	m := &Machine{
		cfg:        cfg,
		divider:    clock.New(cfg),
		mapping:    mapping,
		scanner:    matrix.NewScanner(mapping),
		frameTicks: cfg.FrameTicks(),
		panel:      button.NewPanel(),
		frame:      matrix.NewFrame(),
		limiter:    timing.NewNoOpLimiter(),
	}
	m.cur = m.resetState()

	slog.Debug("Machine built",
		"master_hz", cfg.MasterHz,
		"scan_period", cfg.ScanPeriod(),
		"game_period", cfg.GamePeriod(),
		"wires", cfg.Wires,
		"elements", cfg.Elements)

	return m, nil
}

func (m *Machine) resetState() State {
	return State{
		Random: lfsr.Seeded(m.cfg.Seed),
		Game:   game.Default(),
		Scan:   m.scanner.Reset(),
	}
}

// Tick runs one master tick. Every next value is computed from the same
// snapshot of the current registers and committed together at the end, so
// no component sees another's update within the tick.
func (m *Machine) Tick(in Inputs) matrix.Drive {
	m.ticks++

	if in.Reset {
		m.cur = m.resetState()
		m.scanned = false
		if !m.inReset {
			m.inReset = true
			m.emit(EventReset)
		}
		return m.cur.Scan.Out
	}
	m.inReset = false

	cur := m.cur
	strobes := m.divider.Strobes(cur.Clock)

	next := State{
		Clock:   m.divider.Step(cur.Clock),
		Buttons: button.Step(cur.Buttons, in.Buttons, strobes.Game),
		Random:  cur.Random.Next(),
		Scan:    m.scanner.Step(cur.Scan, strobes.Scan, cur.Game, strobes.Blink),
	}

	// Pulses come from this tick's sampling; the catch inside game.Step
	// looks at cur.Game only.
	pulses := next.Buttons.Pulses()
	var caught bool
	next.Game, caught = game.Step(cur.Game, strobes.Game, game.Input{
		Up:    pulses[button.Up],
		Down:  pulses[button.Down],
		Left:  pulses[button.Left],
		Right: pulses[button.Right],
	}, cur.Random)

	m.cur = next
	m.scanned = strobes.Scan

	if caught {
		m.catches++
		m.emit(EventCaught)
	}
	if next.Game.Player != cur.Game.Player {
		m.emit(EventMoved)
	}

	return next.Scan.Out
}

func (m *Machine) emit(kind EventKind) {
	if m.listener == nil {
		return
	}
	m.listener(Event{
		Kind:   kind,
		Tick:   m.ticks,
		Player: m.cur.Game.Player,
		Target: m.cur.Game.Target,
	})
}

// RunUntilFrame runs one full scan of the matrix, sampling the panel and the
// reset line once at the start, and integrates what was lit into the
// current frame.
func (m *Machine) RunUntilFrame() error {
	if m.paused && !m.stepFrame {
		m.limiter.WaitForNextFrame()
		return nil
	}
	m.stepFrame = false

	m.frame.Clear()
	in := Inputs{Reset: m.resetLine, Buttons: m.panel.Levels()}
	for i := uint64(0); i < m.frameTicks; i++ {
		out := m.Tick(in)
		if m.scanned {
			m.frame.Observe(m.mapping, out)
		}
	}
	m.frames++

	m.limiter.WaitForNextFrame()
	return nil
}

// HandleAction applies a front-end action to the board or the simulator.
func (m *Machine) HandleAction(act action.Action, pressed bool) {
	if b, ok := input.ButtonFor(act); ok {
		if pressed {
			m.panel.Press(b)
		} else {
			m.panel.Release(b)
		}
		return
	}

	switch act {
	case action.BoardReset:
		m.resetLine = pressed
	case action.SimPauseToggle:
		if pressed {
			m.paused = !m.paused
			m.limiter.Reset()
			slog.Info("Pause toggled", "paused", m.paused)
		}
	case action.SimStepFrame:
		if pressed && m.paused {
			m.stepFrame = true
		}
	}
}

// ExtractDebugData copies the registers for display.
func (m *Machine) ExtractDebugData() *debug.Data {
	state := debug.DebuggerRunning
	switch {
	case m.resetLine:
		state = debug.DebuggerReset
	case m.paused:
		state = debug.DebuggerPaused
	}

	return &debug.Data{
		Player:        m.cur.Game.Player,
		Target:        m.cur.Game.Target,
		Caught:        m.cur.Game.Caught(),
		Blink:         m.divider.Strobes(m.cur.Clock).Blink,
		Random:        uint16(m.cur.Random),
		ScanIndex:     m.cur.Scan.Index,
		Outputs:       m.cur.Scan.Out.String(),
		Buttons:       m.cur.Buttons.Debounced(),
		Ticks:         m.ticks,
		Frames:        m.frames,
		Catches:       m.catches,
		DebuggerState: state,
	}
}

// State returns a copy of the committed registers.
func (m *Machine) State() State { return m.cur }

// Caught is the combinational catch predicate on the committed registers.
func (m *Machine) Caught() bool { return m.cur.Game.Caught() }

// Outputs returns the wire outputs currently latched.
func (m *Machine) Outputs() matrix.Drive { return m.cur.Scan.Out }

// Mapping returns the matrix geometry.
func (m *Machine) Mapping() matrix.Mapping { return m.mapping }

// Config returns the configuration the machine was built with.
func (m *Machine) Config() config.Config { return m.cfg }

// Panel returns the raw button lines sampled by RunUntilFrame.
func (m *Machine) Panel() *button.Panel { return m.panel }

// GetCurrentFrame returns the frame integrated by the last RunUntilFrame.
func (m *Machine) GetCurrentFrame() *matrix.Frame { return m.frame }

func (m *Machine) GetTickCount() uint64  { return m.ticks }
func (m *Machine) GetFrameCount() uint64 { return m.frames }
func (m *Machine) Catches() uint64       { return m.catches }
func (m *Machine) Paused() bool          { return m.paused }

// SetLimiter replaces the frame pacing (no pacing by default).
func (m *Machine) SetLimiter(l timing.Limiter) { m.limiter = l }

// SetListener installs the event listener; nil removes it.
func (m *Machine) SetListener(l Listener) { m.listener = l }
