package chaser

import "github.com/valerio/go-chaser/chaser/game"

// EventKind identifies what happened in a tick.
type EventKind int

const (
	EventReset EventKind = iota
	EventMoved
	EventCaught
)

func (k EventKind) String() string {
	switch k {
	case EventReset:
		return "reset"
	case EventMoved:
		return "moved"
	case EventCaught:
		return "caught"
	default:
		return "unknown"
	}
}

// Event is reported to the listener after the tick that produced it has
// been committed. Player and Target are the committed positions.
type Event struct {
	Kind   EventKind
	Tick   uint64
	Player game.Position
	Target game.Position
}

// Listener receives machine events. It runs inside Tick and must not call
// back into the machine.
type Listener func(Event)
