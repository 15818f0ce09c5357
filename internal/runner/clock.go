package runner

import "time"

// SystemClock measures wall time since it was created.
type SystemClock struct {
	origin time.Time
}

// NewSystemClock creates a clock starting at zero.
func NewSystemClock() *SystemClock {
	return &SystemClock{origin: time.Now()}
}

// Now returns the monotonic time elapsed since creation.
func (c *SystemClock) Now() time.Duration {
	return time.Since(c.origin)
}

// ManualClock only moves when told to.
type ManualClock struct {
	now time.Duration
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now += d
}

// TickQueue is a Scheduler that holds requested ticks until the host fires
// them. Frontends fire it from their own update loop; tests fire it by hand.
type TickQueue struct {
	queue []func()
}

// RequestNextTick queues fn.
func (s *TickQueue) RequestNextTick(fn func()) {
	s.queue = append(s.queue, fn)
}

// Pending returns the number of queued ticks.
func (s *TickQueue) Pending() int {
	return len(s.queue)
}

// Fire runs every tick queued before the call and reports whether any ran.
// Ticks queued while firing wait for the next Fire.
func (s *TickQueue) Fire() bool {
	batch := s.queue
	s.queue = nil
	for _, fn := range batch {
		fn()
	}
	return len(batch) > 0
}
