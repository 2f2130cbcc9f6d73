package input

import (
	"github.com/valerio/go-chaser/chaser/button"
	"github.com/valerio/go-chaser/chaser/input/action"
	"github.com/valerio/go-chaser/chaser/input/event"
)

// Manager handles input actions and their associated callbacks
type Manager struct {
	handlers map[action.Action]map[event.Type][]func()
	debounce *Handler
	panel    *button.Panel
}

func NewManager(p *button.Panel) *Manager {
	return &Manager{
		handlers: make(map[action.Action]map[event.Type][]func()),
		debounce: NewHandler(),
		panel:    p,
	}
}

// On registers a callback for a specific action and event type
func (m *Manager) On(act action.Action, evt event.Type, callback func()) {
	if m.handlers[act] == nil {
		m.handlers[act] = make(map[event.Type][]func())
	}

	m.handlers[act][evt] = append(m.handlers[act][evt], callback)
}

// Trigger handles the given action and event type. It returns false when
// the event was debounced.
func (m *Manager) Trigger(act action.Action, evt event.Type) bool {
	if !m.debounce.Allow(act, evt) {
		return false
	}

	// Board buttons, written straight to the raw lines
	if m.panel != nil {
		if b, ok := ButtonFor(act); ok {
			switch evt {
			case event.Press:
				m.panel.Press(b)
			case event.Release:
				m.panel.Release(b)
			}
			return true
		}
	}

	for _, callback := range m.handlers[act][evt] {
		callback()
	}
	return true
}

// ButtonFor maps board button actions to panel buttons
func ButtonFor(act action.Action) (button.Button, bool) {
	switch act {
	case action.ButtonUp:
		return button.Up, true
	case action.ButtonDown:
		return button.Down, true
	case action.ButtonLeft:
		return button.Left, true
	case action.ButtonRight:
		return button.Right, true
	default:
		return 0, false
	}
}
