package input

import (
	"time"

	"github.com/valerio/go-chaser/chaser/input/action"
	"github.com/valerio/go-chaser/chaser/input/event"
)

// DefaultDebounceDelay is the minimum time between two accepted Press (or
// Release) events of the same simulator action.
const DefaultDebounceDelay = 300 * time.Millisecond

// Handler debounces simulator commands on the host side, so a key repeat
// does not toggle pause ten times. Board buttons never pass through it: the
// board does its own sampling.
type Handler struct {
	lastActionTime map[action.Action]map[event.Type]time.Time
	debounceDelay  time.Duration
	now            func() time.Time
}

func NewHandler() *Handler {
	return &Handler{
		lastActionTime: make(map[action.Action]map[event.Type]time.Time),
		debounceDelay:  DefaultDebounceDelay,
		now:            time.Now,
	}
}

// Allow reports whether the event should be handled, false if it was
// debounced. Hold events and game inputs always pass.
func (h *Handler) Allow(act action.Action, typ event.Type) bool {
	if action.GetInfo(act).Category == action.CategoryGameInput {
		return true
	}
	if typ != event.Press && typ != event.Release {
		return true
	}

	now := h.now()
	if h.lastActionTime[act] == nil {
		h.lastActionTime[act] = make(map[event.Type]time.Time)
	}
	if lastTime, exists := h.lastActionTime[act][typ]; exists {
		if now.Sub(lastTime) < h.debounceDelay {
			return false
		}
	}
	h.lastActionTime[act][typ] = now

	return true
}
