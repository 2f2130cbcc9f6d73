package debug

import (
	"github.com/valerio/go-chaser/chaser/button"
	"github.com/valerio/go-chaser/chaser/game"
)

// DebuggerState represents the current state of the simulator loop
type DebuggerState int

const (
	DebuggerRunning DebuggerState = iota
	DebuggerPaused
	DebuggerReset
)

func (s DebuggerState) String() string {
	switch s {
	case DebuggerRunning:
		return "RUNNING"
	case DebuggerPaused:
		return "PAUSED"
	case DebuggerReset:
		return "RESET"
	default:
		return "UNKNOWN"
	}
}

// Data is a read-only copy of the machine's registers for display.
type Data struct {
	Player    game.Position
	Target    game.Position
	Caught    bool
	Blink     bool
	Random    uint16
	ScanIndex int
	Outputs   string // one char per wire: z, 0 or 1
	Buttons   button.Levels
	Ticks     uint64
	Frames    uint64
	Catches   uint64

	DebuggerState DebuggerState
}
