package input

import "github.com/valerio/go-chaser/chaser/input/action"

// DefaultKeyMap provides default key mappings that work across backends.
// Backends can use these mappings as a base and override/extend as needed.
var DefaultKeyMap = map[string]action.Action{
	// Board buttons
	"Up":    action.ButtonUp,
	"Down":  action.ButtonDown,
	"Left":  action.ButtonLeft,
	"Right": action.ButtonRight,
	"r":     action.BoardReset,

	// Alternative arrow keys (WASD)
	"w": action.ButtonUp,
	"s": action.ButtonDown,
	"a": action.ButtonLeft,
	"d": action.ButtonRight,

	// Simulator controls
	"Space":  action.SimPauseToggle,
	"p":      action.SimPauseToggle, // Alternative key
	"f":      action.SimStepFrame,
	"F12":    action.SimSnapshot,
	"m":      action.SimSoundToggle,
	"F10":    action.SimDebugToggle,
	"Escape": action.SimQuit,
	"q":      action.SimQuit,

	// Debug controls
	"+": action.DebugLogLevelIncrease,
	"=": action.DebugLogLevelIncrease, // Alternative without shift
	"-": action.DebugLogLevelDecrease,
	"_": action.DebugLogLevelDecrease, // Alternative with shift
}

// GetDefaultMapping returns the default action for a key, if one exists
func GetDefaultMapping(key string) (action.Action, bool) {
	act, ok := DefaultKeyMap[key]
	return act, ok
}
