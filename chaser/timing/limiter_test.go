package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameDuration(t *testing.T) {
	assert.Equal(t, time.Second/60, FrameDuration(60))
	assert.Equal(t, 125*time.Millisecond, FrameDuration(8))
	assert.Equal(t, time.Duration(0), FrameDuration(0))
}

func TestNoOpLimiterNeverBlocks(t *testing.T) {
	l := NewNoOpLimiter()
	start := time.Now()
	for i := 0; i < 1000; i++ {
		l.WaitForNextFrame()
	}
	l.Reset()
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestAdaptiveLimiterPaces(t *testing.T) {
	l := NewAdaptiveLimiter(200) // 5ms frames
	start := time.Now()
	for i := 0; i < 10; i++ {
		l.WaitForNextFrame()
	}
	elapsed := time.Since(start)

	assert.GreaterOrEqual(t, elapsed, 40*time.Millisecond)
	assert.Less(t, elapsed, time.Second)
}

func TestTickerLimiter(t *testing.T) {
	l := NewTickerLimiter(500)
	defer l.Stop()

	start := time.Now()
	for i := 0; i < 3; i++ {
		l.WaitForNextFrame()
	}
	l.Reset()
	assert.GreaterOrEqual(t, time.Since(start), 4*time.Millisecond)
}
