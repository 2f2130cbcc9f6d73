package chaser

import (
	"github.com/valerio/go-chaser/chaser/debug"
	"github.com/valerio/go-chaser/chaser/input/action"
	"github.com/valerio/go-chaser/chaser/matrix"
)

// Simulator is the interface the front-ends drive.
type Simulator interface {
	RunUntilFrame() error
	GetCurrentFrame() *matrix.Frame
	HandleAction(act action.Action, pressed bool)
	ExtractDebugData() *debug.Data
}

var _ Simulator = (*Machine)(nil)
