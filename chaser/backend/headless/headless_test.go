package headless_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-chaser/chaser/backend"
	"github.com/valerio/go-chaser/chaser/backend/headless"
	"github.com/valerio/go-chaser/chaser/game"
	"github.com/valerio/go-chaser/chaser/input/action"
	"github.com/valerio/go-chaser/chaser/input/event"
	"github.com/valerio/go-chaser/chaser/matrix"
)

func TestHeadlessBackend(t *testing.T) {
	h := headless.New(3, headless.SnapshotConfig{})
	require.NoError(t, h.Init(backend.BackendConfig{Title: "Test"}))

	frame := matrix.NewFrame()

	for i := 0; i < 3; i++ {
		events, err := h.Update(frame)
		assert.NoError(t, err)

		if i < 2 {
			assert.Empty(t, events)
		} else {
			assert.Len(t, events, 1)
			assert.Equal(t, action.SimQuit, events[0].Action)
			assert.Equal(t, event.Press, events[0].Type)
		}
	}

	assert.Equal(t, 3, h.FrameCount())
	assert.NoError(t, h.Cleanup())
}

func TestHeadlessImplementsBackend(t *testing.T) {
	var _ backend.Backend = (*headless.Backend)(nil)
}

func TestScriptedPresses(t *testing.T) {
	script, err := headless.ParseScript("left@2, up@2,reset@4")
	require.NoError(t, err)

	h := headless.New(10, headless.SnapshotConfig{}).WithScript(script, 3)
	require.NoError(t, h.Init(backend.BackendConfig{}))

	frame := matrix.NewFrame()
	byFrame := map[int][]backend.InputEvent{}
	for i := 1; i <= 8; i++ {
		events, err := h.Update(frame)
		require.NoError(t, err)
		byFrame[i] = events
	}

	assert.Empty(t, byFrame[1])
	assert.Equal(t, []backend.InputEvent{
		{Action: action.ButtonLeft, Type: event.Press},
		{Action: action.ButtonUp, Type: event.Press},
	}, byFrame[2])
	assert.Equal(t, []backend.InputEvent{
		{Action: action.BoardReset, Type: event.Press},
	}, byFrame[4])
	assert.Equal(t, []backend.InputEvent{
		{Action: action.ButtonLeft, Type: event.Release},
		{Action: action.ButtonUp, Type: event.Release},
	}, byFrame[5])
	assert.Equal(t, []backend.InputEvent{
		{Action: action.BoardReset, Type: event.Release},
	}, byFrame[7])
	assert.Empty(t, byFrame[8])
}

func TestParseScript(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []headless.Step
		wantErr bool
	}{
		{name: "empty", input: "", want: nil},
		{name: "single", input: "down@1", want: []headless.Step{{Action: action.ButtonDown, Frame: 1}}},
		{name: "case insensitive", input: "RIGHT@12", want: []headless.Step{{Action: action.ButtonRight, Frame: 12}}},
		{name: "missing frame", input: "left", wantErr: true},
		{name: "unknown button", input: "jump@3", wantErr: true},
		{name: "bad frame", input: "up@x", wantErr: true},
		{name: "frame zero", input: "up@0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := headless.ParseScript(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSnapshotsAreWritten(t *testing.T) {
	dir := t.TempDir()
	cfg, err := headless.CreateSnapshotConfig(2, dir, "run")
	require.NoError(t, err)
	assert.True(t, cfg.Enabled)

	h := headless.New(3, cfg)
	require.NoError(t, h.Init(backend.BackendConfig{}))

	frame := matrix.NewFrame()
	frame.Set(game.Position{X: 7, Y: 3}, true)
	for i := 0; i < 3; i++ {
		_, err := h.Update(frame)
		require.NoError(t, err)
	}

	for _, name := range []string{"run_frame_2.png", "run_frame_2.txt", "run_frame_3.png", "run_frame_3.txt"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
	_, err = os.Stat(filepath.Join(dir, "run_frame_1.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestSnapshotConfigDisabled(t *testing.T) {
	cfg, err := headless.CreateSnapshotConfig(0, "", "")
	require.NoError(t, err)
	assert.False(t, cfg.Enabled)
	assert.Empty(t, cfg.Directory)
}
