package clock

import "time"

// TimeProvider is the single wall-clock access point. Everything above the
// session clock receives elapsed time as a parameter and never reads this
// directly, so tests can substitute a Manual provider.
type TimeProvider interface {
	Now() time.Time
}

type monotonicProvider struct{}

func (monotonicProvider) Now() time.Time { return time.Now() }

// Monotonic returns the real time source. time.Now carries a monotonic
// reading on every supported platform, so Sub is immune to wall adjustments.
func Monotonic() TimeProvider { return monotonicProvider{} }

// SessionClock converts the time source plus pause intervals into the one
// elapsed-performance-time value every scheduling decision uses. Elapsed time
// is 0 while stopped, non-decreasing while running, and frozen while paused.
type SessionClock struct {
	provider TimeProvider

	startTime   time.Time
	pauseStart  time.Time
	pausedAccum time.Duration
	running     bool
	paused      bool
}

func NewSession(p TimeProvider) *SessionClock {
	if nil == p {
		p = Monotonic()
	}
	return &SessionClock{provider: p}
}

// Start begins (or restarts) the performance at the current instant,
// discarding any accumulated pause time.
func (c *SessionClock) Start() {
	c.startTime = c.provider.Now()
	c.pausedAccum = 0
	c.pauseStart = time.Time{}
	c.running = true
	c.paused = false
}

// Stop freezes the clock back to the not-running state.
func (c *SessionClock) Stop() {
	c.running = false
	c.paused = false
}

func (c *SessionClock) Running() bool { return c.running }
func (c *SessionClock) Paused() bool  { return c.paused }

// Pause records the instant pausing began. Pausing while already paused or
// while stopped is a no-op; the guard keeps a misbehaving caller from
// corrupting the accumulator.
func (c *SessionClock) Pause() {
	if !c.running || c.paused {
		return
	}
	c.pauseStart = c.provider.Now()
	c.paused = true
}

// Resume folds the completed pause interval into the accumulator. A resume
// without a matching pause is a no-op.
func (c *SessionClock) Resume() {
	if !c.running || !c.paused {
		return
	}
	c.pausedAccum += c.provider.Now().Sub(c.pauseStart)
	c.pauseStart = time.Time{}
	c.paused = false
}

// Toggle flips between paused and resumed while running.
func (c *SessionClock) Toggle() {
	if c.paused {
		c.Resume()
	} else {
		c.Pause()
	}
}

// ElapsedMs is the performance time in milliseconds: now - start - paused
// while running, the value frozen at the pause instant while paused, 0 while
// stopped.
func (c *SessionClock) ElapsedMs() float64 {
	if !c.running {
		return 0
	}
	if c.paused {
		return durationMs(c.pauseStart.Sub(c.startTime) - c.pausedAccum)
	}
	return durationMs(c.provider.Now().Sub(c.startTime) - c.pausedAccum)
}

func durationMs(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
