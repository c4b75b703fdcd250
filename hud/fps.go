package hud

import "time"

// FPSCounter counts rendered frames and reports the rate once per second.
// It is not safe for concurrent use; call it from the render loop.
type FPSCounter struct {
	now    func() time.Time
	start  time.Time
	last   time.Time
	frames int
	fps    int
}

// NewFPSCounter creates a counter reading time from now. A nil now uses
// time.Now.
func NewFPSCounter(now func() time.Time) *FPSCounter {
	if now == nil {
		now = time.Now
	}
	t := now()
	return &FPSCounter{now: now, start: t, last: t}
}

// Frame records one rendered frame. It returns true when a full second has
// passed and FPS holds a new value.
func (c *FPSCounter) Frame() bool {
	c.frames++
	t := c.now()
	if t.Sub(c.start) < time.Second {
		return false
	}
	c.fps = c.frames
	c.frames = 0
	c.start = t
	return true
}

// FPS returns the frame count of the last completed second.
func (c *FPSCounter) FPS() int {
	return c.fps
}

// Elapsed returns the time since the previous Elapsed call, or since the
// counter was created.
func (c *FPSCounter) Elapsed() time.Duration {
	t := c.now()
	d := t.Sub(c.last)
	c.last = t
	return d
}
