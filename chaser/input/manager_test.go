package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valerio/go-chaser/chaser/button"
	"github.com/valerio/go-chaser/chaser/input/action"
	"github.com/valerio/go-chaser/chaser/input/event"
)

func TestManager_ButtonsDriveThePanel(t *testing.T) {
	panel := button.NewPanel()
	m := NewManager(panel)

	m.Trigger(action.ButtonLeft, event.Press)
	m.Trigger(action.ButtonUp, event.Press)
	assert.Equal(t, button.Levels{button.Up: true, button.Left: true}, panel.Levels())

	m.Trigger(action.ButtonLeft, event.Release)
	assert.Equal(t, button.Levels{button.Up: true}, panel.Levels())

	// Rapid re-press is passed straight through.
	m.Trigger(action.ButtonLeft, event.Press)
	assert.True(t, panel.Levels()[button.Left])
}

func TestManager_Callbacks(t *testing.T) {
	m := NewManager(button.NewPanel())

	pauses := 0
	resets := 0
	m.On(action.SimPauseToggle, event.Press, func() { pauses++ })
	m.On(action.BoardReset, event.Press, func() { resets++ })
	m.On(action.BoardReset, event.Release, func() { resets-- })

	assert.True(t, m.Trigger(action.SimPauseToggle, event.Press))
	assert.False(t, m.Trigger(action.SimPauseToggle, event.Press))
	assert.Equal(t, 1, pauses)

	m.Trigger(action.BoardReset, event.Press)
	assert.Equal(t, 1, resets)
	m.Trigger(action.BoardReset, event.Release)
	assert.Equal(t, 0, resets)

	// No handler registered: accepted, nothing happens.
	assert.True(t, m.Trigger(action.SimSnapshot, event.Press))
}

func TestButtonFor(t *testing.T) {
	b, ok := ButtonFor(action.ButtonRight)
	assert.True(t, ok)
	assert.Equal(t, button.Right, b)

	_, ok = ButtonFor(action.SimQuit)
	assert.False(t, ok)
}

func TestDefaultKeyMap(t *testing.T) {
	act, ok := GetDefaultMapping("a")
	assert.True(t, ok)
	assert.Equal(t, action.ButtonLeft, act)

	_, ok = GetDefaultMapping("F1")
	assert.False(t, ok)
}
