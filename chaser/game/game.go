package game

import (
	"fmt"

	"github.com/valerio/go-chaser/chaser/config"
	"github.com/valerio/go-chaser/chaser/lfsr"
)

const (
	Columns = config.Columns
	Rows    = config.Rows
)

// Position is a cell on the playfield, x in [0, Columns), y in [0, Rows).
type Position struct {
	X, Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

var (
	DefaultPlayer = Position{X: 7, Y: 3}
	DefaultTarget = Position{X: 12, Y: 5}
)

// Input carries the press pulses sampled in the current master tick.
type Input struct {
	Up, Down, Left, Right bool
}

// State is the whole game: where the player is and where the target is.
type State struct {
	Player Position
	Target Position
}

// Default returns the state forced by reset.
func Default() State {
	return State{Player: DefaultPlayer, Target: DefaultTarget}
}

// Caught reports whether the player sits on the target. It is evaluated on
// committed registers, so a move that lands on the target is only noticed
// one game tick later.
func (s State) Caught() bool {
	return s.Player == s.Target
}

// Lit reports whether the element at p shows anything: the player always,
// the target only while blink is high.
func (s State) Lit(p Position, blink bool) bool {
	return p == s.Player || (blink && p == s.Target)
}

// Step computes the state after a master tick. Nothing changes unless tick
// is set. All pressed directions apply, so two pulses in one tick move the
// player diagonally. On a catch the target is redrawn from a single register
// snapshot, which ties its x and y together.
func Step(cur State, tick bool, in Input, rnd lfsr.Register) (next State, caught bool) {
	if !tick {
		return cur, false
	}

	next = cur
	if in.Up {
		next.Player.Y = wrapDec(next.Player.Y, Rows)
	}
	if in.Down {
		next.Player.Y = wrapInc(next.Player.Y, Rows)
	}
	if in.Left {
		next.Player.X = wrapDec(next.Player.X, Columns)
	}
	if in.Right {
		next.Player.X = wrapInc(next.Player.X, Columns)
	}

	if cur.Caught() {
		next.Target = Position{X: rnd.X(), Y: rnd.Y()}
		caught = true
	}

	return next, caught
}

func wrapInc(v, n int) int {
	if v >= n-1 {
		return 0
	}
	return v + 1
}

func wrapDec(v, n int) int {
	if v <= 0 {
		return n - 1
	}
	return v - 1
}
