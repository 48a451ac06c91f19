package tilemath

import "math"

// Cooldown gates an action to at most once per Duration seconds.
type Cooldown struct {
	Duration float64
	Elapsed  float64
}

// NewCooldown returns a cooldown that is already ready.
func NewCooldown(duration float64) Cooldown {
	return Cooldown{Duration: duration, Elapsed: duration}
}

// Tick advances the cooldown by dt seconds.
func (c *Cooldown) Tick(dt float64) {
	c.Elapsed = math.Min(c.Elapsed+dt, c.Duration)
}

func (c *Cooldown) Ready() bool {
	return c.Elapsed >= c.Duration
}

// Reset starts a new wait.
func (c *Cooldown) Reset() {
	c.Elapsed = 0
}

// Remaining is the time left until Ready, in seconds.
func (c *Cooldown) Remaining() float64 {
	return math.Max(c.Duration-c.Elapsed, 0)
}
