package headless

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/valerio/go-chaser/chaser/backend"
	"github.com/valerio/go-chaser/chaser/debug"
	"github.com/valerio/go-chaser/chaser/input/action"
	"github.com/valerio/go-chaser/chaser/input/event"
	"github.com/valerio/go-chaser/chaser/matrix"
)

// Backend implements the Backend interface for automated testing and batch processing
type Backend struct {
	config         backend.BackendConfig
	frameCount     int
	maxFrames      int
	snapshotConfig SnapshotConfig
	script         []Step
	holdFrames     int
}

// SnapshotConfig holds configuration for frame snapshots
type SnapshotConfig struct {
	Enabled   bool
	Interval  int    // Save snapshot every N frames
	Directory string // Directory to save snapshots
	Name      string // Prefix for snapshot filenames
}

func New(maxFrames int, snapshotConfig SnapshotConfig) *Backend {
	return &Backend{
		maxFrames:      maxFrames,
		snapshotConfig: snapshotConfig,
		holdFrames:     1,
	}
}

// WithScript makes the backend press each scripted button after its frame
// and release it holdFrames frames later.
func (h *Backend) WithScript(script []Step, holdFrames int) *Backend {
	if holdFrames < 1 {
		holdFrames = 1
	}
	h.script = script
	h.holdFrames = holdFrames
	return h
}

func (h *Backend) Init(config backend.BackendConfig) error {
	h.config = config

	// Set up debug logging for headless mode
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	slog.SetDefault(slog.New(handler))

	slog.Info("Running headless mode",
		"frames", h.maxFrames,
		"script_steps", len(h.script),
		"snapshot_interval", h.snapshotConfig.Interval,
		"snapshot_dir", h.snapshotConfig.Directory)

	return nil
}

// Update processes a frame, replays scripted input and handles snapshots
func (h *Backend) Update(frame *matrix.Frame) ([]backend.InputEvent, error) {
	var events []backend.InputEvent

	h.frameCount++

	for _, s := range h.script {
		switch h.frameCount {
		case s.Frame:
			events = append(events, backend.InputEvent{Action: s.Action, Type: event.Press})
		case s.Frame + h.holdFrames:
			events = append(events, backend.InputEvent{Action: s.Action, Type: event.Release})
		}
	}

	if h.snapshotConfig.Enabled && h.frameCount%h.snapshotConfig.Interval == 0 {
		h.saveSnapshot(frame)
	}

	if h.frameCount%60 == 0 {
		slog.Info("Frame progress", "completed", h.frameCount, "total", h.maxFrames)
	}

	if h.frameCount >= h.maxFrames {
		// Save final snapshot if enabled and we haven't just saved one
		if h.snapshotConfig.Enabled && h.frameCount%h.snapshotConfig.Interval != 0 {
			h.saveSnapshot(frame)
		}

		if h.snapshotConfig.Enabled {
			slog.Info("Headless execution completed", "frames", h.maxFrames, "snapshots_saved_to", h.snapshotConfig.Directory)
		} else {
			slog.Info("Headless execution completed", "frames", h.maxFrames)
		}

		events = append(events, backend.InputEvent{Action: action.SimQuit, Type: event.Press})
	}

	return events, nil
}

func (h *Backend) Cleanup() error {
	return nil
}

// FrameCount returns the number of frames seen so far.
func (h *Backend) FrameCount() int {
	return h.frameCount
}

// CreateSnapshotConfig creates a snapshot configuration from CLI parameters
func CreateSnapshotConfig(interval int, directory, name string) (SnapshotConfig, error) {
	config := SnapshotConfig{
		Enabled:  interval > 0,
		Interval: interval,
		Name:     name,
	}

	if !config.Enabled {
		return config, nil
	}
	if config.Name == "" {
		config.Name = "chaser"
	}

	if directory == "" {
		tempDir, err := os.MkdirTemp("", "chaser-snapshots-*")
		if err != nil {
			return config, fmt.Errorf("failed to create snapshot directory: %w", err)
		}
		config.Directory = tempDir
	} else {
		if err := os.MkdirAll(directory, 0755); err != nil {
			return config, fmt.Errorf("failed to create snapshot directory: %w", err)
		}
		config.Directory = directory
	}

	return config, nil
}

// saveSnapshot writes a PNG and a text dump of the current frame
func (h *Backend) saveSnapshot(frame *matrix.Frame) {
	baseName := fmt.Sprintf("%s_frame_%d", h.snapshotConfig.Name, h.frameCount)

	if _, err := debug.SaveFramePNGToDir(frame, baseName, h.snapshotConfig.Directory); err != nil {
		slog.Error("Failed to save PNG snapshot", "frame", h.frameCount, "error", err)
	}

	var data *debug.Data
	if h.config.DebugProvider != nil {
		data = h.config.DebugProvider.ExtractDebugData()
	}
	if _, err := debug.SaveFrameTextToDir(frame, data, baseName, h.snapshotConfig.Directory); err != nil {
		slog.Error("Failed to save text snapshot", "frame", h.frameCount, "error", err)
	}
}
