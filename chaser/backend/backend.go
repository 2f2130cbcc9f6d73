package backend

import (
	"github.com/valerio/go-chaser/chaser/debug"
	"github.com/valerio/go-chaser/chaser/input/action"
	"github.com/valerio/go-chaser/chaser/input/event"
	"github.com/valerio/go-chaser/chaser/matrix"
)

// InputEvent is an action produced by a backend for the simulator.
type InputEvent struct {
	Action action.Action
	Type   event.Type
}

// Backend represents a complete front-end (rendering + input).
// Backends are responsible for:
// - Rendering frames to their specific output (terminal, files, etc.)
// - Translating platform-specific input events to InputEvents
// - Handling backend-specific features (snapshots, debug panels)
type Backend interface {
	// Init configures the backend with the provided configuration.
	// This is a required step before calling Update.
	Init(config BackendConfig) error

	// Update renders the frame and returns the input events collected
	// since the last call.
	Update(frame *matrix.Frame) ([]InputEvent, error)

	// Cleanup resources when shutting down
	Cleanup() error
}

// ActionHandler is implemented by backends that react to simulator actions
// themselves (snapshots, debug panel, log filter).
type ActionHandler interface {
	HandleAction(act action.Action)
}

// DebugDataProvider gives backends read access to the machine registers.
type DebugDataProvider interface {
	ExtractDebugData() *debug.Data
}

// BackendConfig holds configuration for backends
type BackendConfig struct {
	Title         string
	ShowDebug     bool              // Backends may ignore unsupported features
	DebugProvider DebugDataProvider // optional
}
