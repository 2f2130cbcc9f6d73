package backend

import (
	"fmt"

	"github.com/valerio/go-chaser/chaser/input"
	"github.com/valerio/go-chaser/chaser/input/action"
	"github.com/valerio/go-chaser/chaser/input/event"
	"github.com/valerio/go-chaser/chaser/matrix"
)

// Runner is the part of the simulator the loop needs.
type Runner interface {
	RunUntilFrame() error
	GetCurrentFrame() *matrix.Frame
}

// Run alternates simulator frames and backend updates until the backend
// asks to quit or either side fails. Events go through the input manager;
// Press events of non-board actions are also offered to the backend.
func Run(sim Runner, b Backend, mgr *input.Manager) error {
	handler, _ := b.(ActionHandler)

	for {
		if err := sim.RunUntilFrame(); err != nil {
			return fmt.Errorf("simulation failed: %w", err)
		}

		events, err := b.Update(sim.GetCurrentFrame())
		if err != nil {
			return fmt.Errorf("backend update failed: %w", err)
		}

		for _, ev := range events {
			if ev.Action == action.SimQuit {
				return nil
			}
			if !mgr.Trigger(ev.Action, ev.Type) {
				continue
			}

			if handler != nil && ev.Type == event.Press &&
				action.GetInfo(ev.Action).Category != action.CategoryGameInput {
				handler.HandleAction(ev.Action)
			}
		}
	}
}
