package timing

import "time"

// Limiter paces the simulation to real time, one frame per full refresh of
// the matrix.
type Limiter interface {
	// WaitForNextFrame blocks until it's time for the next frame.
	// Returns immediately if timing is behind schedule.
	WaitForNextFrame()

	// Reset resets the timing state, useful after pauses.
	Reset()
}

// NewNoOpLimiter returns a limiter that doesn't limit (for headless mode).
func NewNoOpLimiter() Limiter {
	return &noOpLimiter{}
}

type noOpLimiter struct{}

func (n *noOpLimiter) WaitForNextFrame() {}
func (n *noOpLimiter) Reset()            {}

// FrameDuration returns the duration of one frame at the given refresh rate.
func FrameDuration(refreshHz uint64) time.Duration {
	if refreshHz == 0 {
		return 0
	}
	return time.Second / time.Duration(refreshHz)
}
