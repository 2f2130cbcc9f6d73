package button

// Channel is the register set of one button input.
//
// The debounce mechanism is the sampling cadence: Debounced only changes on
// game ticks, so a press shorter than a game period can be missed entirely.
type Channel struct {
	Sync1     bool // first synchronizer stage
	Sync2     bool // second synchronizer stage
	Debounced bool // Sync2 latched at the last game tick
	Prev      bool // Debounced as of the previous master tick
	Pressed   bool // one-tick press pulse
}

// State holds all four channels.
type State [Count]Channel

// Step advances every channel by one master tick. Sampling happens before
// edge detection, so the press pulse is raised in the very tick whose game
// tick latched the rising level and is cleared on the next.
func Step(cur State, raw Levels, gameTick bool) State {
	var next State
	for i, ch := range cur {
		n := Channel{
			Sync1:     raw[i],
			Sync2:     ch.Sync1,
			Debounced: ch.Debounced,
			Prev:      ch.Debounced,
		}
		if gameTick {
			n.Debounced = ch.Sync2
		}
		n.Pressed = n.Debounced && !n.Prev
		next[i] = n
	}
	return next
}

// Pulses returns the press pulse of every channel.
func (s State) Pulses() Levels {
	var p Levels
	for i, ch := range s {
		p[i] = ch.Pressed
	}
	return p
}

// Debounced returns the debounced level of every channel.
func (s State) Debounced() Levels {
	var d Levels
	for i, ch := range s {
		d[i] = ch.Debounced
	}
	return d
}
