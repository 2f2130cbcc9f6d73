package backend_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-chaser/chaser"
	"github.com/valerio/go-chaser/chaser/backend"
	"github.com/valerio/go-chaser/chaser/button"
	"github.com/valerio/go-chaser/chaser/config"
	"github.com/valerio/go-chaser/chaser/input"
	"github.com/valerio/go-chaser/chaser/input/action"
	"github.com/valerio/go-chaser/chaser/input/event"
	"github.com/valerio/go-chaser/chaser/matrix"
)

// MockBackend is a test backend that returns predetermined events per call
type MockBackend struct {
	script      [][]backend.InputEvent
	err         error
	updateCalls int
	lastFrame   *matrix.Frame
	handled     []action.Action
}

func (m *MockBackend) Init(config backend.BackendConfig) error {
	return nil
}

func (m *MockBackend) Update(frame *matrix.Frame) ([]backend.InputEvent, error) {
	m.updateCalls++
	m.lastFrame = frame
	if m.err != nil {
		return nil, m.err
	}
	if m.updateCalls <= len(m.script) {
		return m.script[m.updateCalls-1], nil
	}
	return []backend.InputEvent{{Action: action.SimQuit, Type: event.Press}}, nil
}

func (m *MockBackend) Cleanup() error {
	return nil
}

func (m *MockBackend) HandleAction(act action.Action) {
	m.handled = append(m.handled, act)
}

func newMachine(t *testing.T) (*chaser.Machine, *input.Manager) {
	t.Helper()
	m, err := chaser.New(config.Sim())
	require.NoError(t, err)
	mgr := input.NewManager(m.Panel())
	return m, mgr
}

func TestEventFlow(t *testing.T) {
	tests := []struct {
		name          string
		script        [][]backend.InputEvent
		expectedCalls int
	}{
		{
			name: "quit event stops loop",
			script: [][]backend.InputEvent{
				{{Action: action.SimQuit, Type: event.Press}},
			},
			expectedCalls: 1,
		},
		{
			name: "events after quit are dropped",
			script: [][]backend.InputEvent{
				{
					{Action: action.SimQuit, Type: event.Press},
					{Action: action.ButtonUp, Type: event.Press},
				},
			},
			expectedCalls: 1,
		},
		{
			name:          "no events runs multiple iterations",
			script:        [][]backend.InputEvent{nil, nil, nil},
			expectedCalls: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, mgr := newMachine(t)
			mock := &MockBackend{script: tt.script}

			require.NoError(t, backend.Run(m, mock, mgr))
			assert.Equal(t, tt.expectedCalls, mock.updateCalls)
			assert.Equal(t, uint64(tt.expectedCalls), m.GetFrameCount())
			assert.Same(t, m.GetCurrentFrame(), mock.lastFrame)
		})
	}
}

func TestButtonEventsReachPanel(t *testing.T) {
	m, mgr := newMachine(t)
	mock := &MockBackend{script: [][]backend.InputEvent{
		{
			{Action: action.ButtonLeft, Type: event.Press},
			{Action: action.ButtonDown, Type: event.Press},
			{Action: action.ButtonDown, Type: event.Release},
		},
	}}

	require.NoError(t, backend.Run(m, mock, mgr))

	levels := m.Panel().Levels()
	assert.True(t, levels[button.Left])
	assert.False(t, levels[button.Down])
	assert.Empty(t, mock.handled, "board buttons are not offered to the backend")
}

func TestSimulatorActionsReachCallbacksAndBackend(t *testing.T) {
	m, mgr := newMachine(t)
	mgr.On(action.SimPauseToggle, event.Press, func() {
		m.HandleAction(action.SimPauseToggle, true)
	})

	mock := &MockBackend{script: [][]backend.InputEvent{
		{
			{Action: action.SimPauseToggle, Type: event.Press},
			{Action: action.SimSnapshot, Type: event.Press},
			{Action: action.SimSnapshot, Type: event.Release},
		},
	}}

	require.NoError(t, backend.Run(m, mock, mgr))

	assert.True(t, m.Paused())
	assert.Equal(t, []action.Action{action.SimPauseToggle, action.SimSnapshot}, mock.handled)
	assert.Equal(t, uint64(1), m.GetFrameCount(), "paused machine does not run frames")
}

func TestBackendErrorStopsLoop(t *testing.T) {
	m, mgr := newMachine(t)
	boom := errors.New("boom")
	mock := &MockBackend{err: boom}

	err := backend.Run(m, mock, mgr)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, mock.updateCalls)
}
