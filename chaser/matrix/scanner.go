package matrix

import "github.com/valerio/go-chaser/chaser/game"

// State is the scanner's register file: the free-running scan index and the
// outputs it latched on the last scan tick.
type State struct {
	Index int
	Out   Drive
}

// Scanner walks the matrix one element per scan tick, driving the addressed
// wire pair when the game wants that element lit.
type Scanner struct {
	m Mapping
}

// NewScanner builds a scanner over m.
func NewScanner(m Mapping) Scanner {
	return Scanner{m: m}
}

// Reset returns the scanner state forced by reset: index 0, all wires idle.
func (s Scanner) Reset() State {
	return State{Out: Idle(s.m.wires)}
}

// Step advances the scanner by one master tick. Between scan ticks the
// outputs hold. On a scan tick the element at the current index is shown
// (or everything released) and the index moves on, wrapping after the last
// element.
func (s Scanner) Step(cur State, scanTick bool, g game.State, blink bool) State {
	if !scanTick {
		return cur
	}

	next := State{Index: cur.Index + 1, Out: Idle(s.m.wires)}
	if next.Index >= s.m.elements || next.Index < 0 {
		next.Index = 0
	}

	if p, ok := s.m.Coordinate(cur.Index); ok && g.Lit(p, blink) {
		next.Out = s.m.Drive(cur.Index)
	}
	return next
}
