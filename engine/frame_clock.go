package engine

import (
	"time"
)

// FrameClock drives one visual subsystem's tick on every scheduler frame
// After Stop, or after its scope closes, the tick never runs again
type FrameClock struct {
	scope  *Scope
	tick   func(dt time.Duration)
	timer  *Timer
	frames uint64
}

// NewFrameClock creates a stopped clock bound to scope
func NewFrameClock(scope *Scope, tick func(dt time.Duration)) *FrameClock {
	return &FrameClock{scope: scope, tick: tick}
}

// Start begins ticking; no-op if already running or the scope is closed
func (c *FrameClock) Start() {
	if c.Running() {
		return
	}
	c.timer = c.scope.Frame(func(dt time.Duration) {
		c.frames++
		c.tick(dt)
	})
}

// Stop cancels the frame registration
func (c *FrameClock) Stop() {
	c.timer.Cancel()
	c.timer = nil
}

// Running reports whether the next Pump will tick
func (c *FrameClock) Running() bool {
	return c.timer.Active()
}

// Frames returns how many ticks ran
func (c *FrameClock) Frames() uint64 {
	return c.frames
}
