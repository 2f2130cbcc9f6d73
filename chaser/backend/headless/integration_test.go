package headless_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-chaser/chaser"
	"github.com/valerio/go-chaser/chaser/backend"
	"github.com/valerio/go-chaser/chaser/backend/headless"
	"github.com/valerio/go-chaser/chaser/config"
	"github.com/valerio/go-chaser/chaser/game"
	"github.com/valerio/go-chaser/chaser/input"
	"github.com/valerio/go-chaser/chaser/input/action"
	"github.com/valerio/go-chaser/chaser/input/event"
)

// holdFrames spans at least one game tick of the Sim preset
const holdFrames = 9

func runScript(t *testing.T, script string, frames int) (*chaser.Machine, []chaser.Event) {
	t.Helper()

	m, err := chaser.New(config.Sim())
	require.NoError(t, err)

	steps, err := headless.ParseScript(script)
	require.NoError(t, err)

	var events []chaser.Event
	m.SetListener(func(ev chaser.Event) { events = append(events, ev) })

	mgr := input.NewManager(m.Panel())
	mgr.On(action.BoardReset, event.Press, func() { m.HandleAction(action.BoardReset, true) })
	mgr.On(action.BoardReset, event.Release, func() { m.HandleAction(action.BoardReset, false) })

	h := headless.New(frames, headless.SnapshotConfig{}).WithScript(steps, holdFrames)
	require.NoError(t, h.Init(backend.BackendConfig{DebugProvider: m}))
	require.NoError(t, backend.Run(m, h, mgr))

	assert.Equal(t, uint64(frames), m.GetFrameCount())
	return m, events
}

func countKind(events []chaser.Event, kind chaser.EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func TestIdleRunKeepsDefaults(t *testing.T) {
	m, events := runScript(t, "", 20)

	assert.Equal(t, game.DefaultPlayer, m.State().Game.Player)
	assert.Equal(t, game.DefaultTarget, m.State().Game.Target)
	assert.True(t, m.GetCurrentFrame().Lit(game.DefaultPlayer))
	assert.Zero(t, countKind(events, chaser.EventMoved))
}

func TestScriptedPressMovesOnce(t *testing.T) {
	m, events := runScript(t, "left@2", 20)

	moved := game.Position{X: game.DefaultPlayer.X - 1, Y: game.DefaultPlayer.Y}
	assert.Equal(t, moved, m.State().Game.Player, "a held button moves the player once")
	assert.True(t, m.GetCurrentFrame().Lit(moved))
	assert.False(t, m.GetCurrentFrame().Lit(game.DefaultPlayer))
	assert.Equal(t, 1, countKind(events, chaser.EventMoved))
}

func TestScriptedDiagonal(t *testing.T) {
	m, _ := runScript(t, "down@2,right@2", 20)

	assert.Equal(t, game.Position{X: 8, Y: 4}, m.State().Game.Player)
}

func TestScriptedResetRestoresDefaults(t *testing.T) {
	m, events := runScript(t, "up@2,reset@14", 30)

	assert.Equal(t, game.DefaultPlayer, m.State().Game.Player)
	assert.Equal(t, 1, countKind(events, chaser.EventMoved))
	assert.Equal(t, 1, countKind(events, chaser.EventReset))
}
