package action

// Action represents input actions that can be performed in the simulator
type Action int

const (
	// Board controls
	ButtonUp Action = iota
	ButtonDown
	ButtonLeft
	ButtonRight
	BoardReset

	// Simulator features
	SimPauseToggle
	SimStepFrame
	SimSnapshot
	SimSoundToggle
	SimDebugToggle
	SimQuit

	// Debug controls
	DebugLogLevelIncrease
	DebugLogLevelDecrease
)

// Category groups actions by how backends and the input manager treat them.
type Category int

const (
	// CategoryGameInput actions are levels on the board: held while the key
	// is down, never debounced by the host.
	CategoryGameInput Category = iota
	// CategorySimulator actions are one-shot commands to the simulator.
	CategorySimulator
	// CategoryDebug actions only affect diagnostics.
	CategoryDebug
)

// Info describes an action.
type Info struct {
	Description string
	Category    Category
}

var infos = map[Action]Info{
	ButtonUp:              {"Button up", CategoryGameInput},
	ButtonDown:            {"Button down", CategoryGameInput},
	ButtonLeft:            {"Button left", CategoryGameInput},
	ButtonRight:           {"Button right", CategoryGameInput},
	BoardReset:            {"Board reset", CategoryGameInput},
	SimPauseToggle:        {"Pause/resume", CategorySimulator},
	SimStepFrame:          {"Step one frame", CategorySimulator},
	SimSnapshot:           {"Save snapshot", CategorySimulator},
	SimSoundToggle:        {"Toggle sound", CategorySimulator},
	SimDebugToggle:        {"Toggle debug panel", CategorySimulator},
	SimQuit:               {"Quit", CategorySimulator},
	DebugLogLevelIncrease: {"More log output", CategoryDebug},
	DebugLogLevelDecrease: {"Less log output", CategoryDebug},
}

// GetInfo returns the description and category of an action.
func GetInfo(act Action) Info {
	if info, ok := infos[act]; ok {
		return info
	}
	return Info{Description: "Unknown", Category: CategoryDebug}
}
