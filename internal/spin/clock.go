package spin

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Clock accumulates frame time for the current animation.
// Switching to a different animation restarts it from angle 0.
type Clock struct {
	anim    Animation
	elapsed time.Duration
}

// NewClock returns a clock running anim from zero.
func NewClock(anim Animation) *Clock {
	return &Clock{anim: anim}
}

// Set changes the animation. Elapsed time resets only if the animation actually changed.
func (c *Clock) Set(anim Animation) {
	if anim == c.anim {
		return
	}
	c.anim = anim
	c.elapsed = 0
}

// Advance adds one frame's duration. Negative deltas are ignored.
func (c *Clock) Advance(dt time.Duration) {
	if dt > 0 {
		c.elapsed += dt
	}
	// Keep elapsed bounded so float conversion stays precise over long sessions.
	if p := c.anim.Period; p > 0 && c.elapsed >= p {
		c.elapsed %= p
	}
}

// Elapsed returns the time since the animation (re)started, modulo its period.
func (c *Clock) Elapsed() time.Duration {
	return c.elapsed
}

// Animation returns the animation the clock is running.
func (c *Clock) Animation() Animation {
	return c.anim
}

// Rotations returns the current per-axis rotations.
func (c *Clock) Rotations() []AxisAngle {
	return c.anim.Rotations(c.elapsed)
}

// Matrix returns the current rotation matrix.
func (c *Clock) Matrix() mgl32.Mat4 {
	return c.anim.Matrix(c.elapsed)
}
