package headless

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/valerio/go-chaser/chaser/button"
	"github.com/valerio/go-chaser/chaser/input/action"
)

// Step is one scripted button press: Action is pressed once Frame frames
// have completed.
type Step struct {
	Action action.Action
	Frame  int
}

// ParseScript parses a comma separated list of button@frame entries, e.g.
// "left@3,up@3". Buttons are up, down, left, right and reset.
func ParseScript(s string) ([]Step, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var steps []Step
	for _, entry := range strings.Split(s, ",") {
		name, frameText, ok := strings.Cut(strings.TrimSpace(entry), "@")
		if !ok {
			return nil, fmt.Errorf("script entry %q: expected button@frame", entry)
		}

		act, err := parseAction(strings.ToLower(strings.TrimSpace(name)))
		if err != nil {
			return nil, fmt.Errorf("script entry %q: %w", entry, err)
		}

		frame, err := strconv.Atoi(strings.TrimSpace(frameText))
		if err != nil {
			return nil, fmt.Errorf("script entry %q: invalid frame: %w", entry, err)
		}
		if frame < 1 {
			return nil, fmt.Errorf("script entry %q: frame must be at least 1", entry)
		}

		steps = append(steps, Step{Action: act, Frame: frame})
	}
	return steps, nil
}

func parseAction(name string) (action.Action, error) {
	if name == "reset" {
		return action.BoardReset, nil
	}
	b, ok := button.Parse(name)
	if !ok {
		return 0, fmt.Errorf("unknown button %q", name)
	}
	switch b {
	case button.Up:
		return action.ButtonUp, nil
	case button.Down:
		return action.ButtonDown, nil
	case button.Left:
		return action.ButtonLeft, nil
	default:
		return action.ButtonRight, nil
	}
}
