// Package runner drives a per-frame callback at a fixed target rate on top of
// whatever tick source the host provides, with pause, single-step and
// measured frame rate.
//
// A Runner is not safe for concurrent use. Hosts deliver ticks and call its
// methods from a single goroutine.
package runner

import "time"

// Hooks is the game side of the runner.
type Hooks interface {
	// Preload runs once before the first frame.
	Preload() error
	// OnFrame advances and paints one frame.
	OnFrame()
}

// Clock reports monotonic time since an arbitrary origin.
type Clock interface {
	Now() time.Duration
}

// Scheduler arranges for fn to be called on the host's next tick.
type Scheduler interface {
	RequestNextTick(fn func())
}

// Config holds scheduling parameters.
type Config struct {
	TargetRate int           // frames per second
	Tolerance  time.Duration // how early a frame may run
}

// DefaultConfig returns 60 fps with a 5ms tolerance.
func DefaultConfig() Config {
	return Config{
		TargetRate: 60,
		Tolerance:  5 * time.Millisecond,
	}
}

// Runner is the fixed-step scheduler.
type Runner struct {
	hooks Hooks
	clock Clock
	sched Scheduler
	cfg   Config

	looping   bool
	preloaded bool
	paused    bool
	armed     bool
	pending   int

	frameCount int
	frameRate  float64
	lastFrame  time.Duration
}

// New creates a stopped runner. A zero TargetRate falls back to 60.
func New(hooks Hooks, clock Clock, sched Scheduler, cfg Config) *Runner {
	if cfg.TargetRate <= 0 {
		cfg.TargetRate = DefaultConfig().TargetRate
	}
	return &Runner{
		hooks:     hooks,
		clock:     clock,
		sched:     sched,
		cfg:       cfg,
		lastFrame: clock.Now(),
	}
}

// Start preloads on first use and begins looping. A failed preload is
// returned and attempted again on the next Start. When paused is true the
// runner starts paused and no frame runs until Step or Unpause.
func (r *Runner) Start(paused bool) error {
	if !r.preloaded {
		if err := r.hooks.Preload(); err != nil {
			return err
		}
		r.preloaded = true
	}

	if paused {
		r.paused = true
	}
	r.looping = true

	if !r.paused {
		r.arm()
	}
	return nil
}

// Stop halts the loop. Only Start resumes it.
func (r *Runner) Stop() {
	r.looping = false
}

// Pause keeps the loop alive but stops running frames.
func (r *Runner) Pause() {
	r.paused = true
}

// Unpause resumes running frames.
func (r *Runner) Unpause() {
	r.paused = false
	if r.looping {
		r.arm()
	}
}

// Step runs n more frames while paused. Calls accumulate. Step does nothing
// unless the runner is looping and paused.
func (r *Runner) Step(n int) {
	if n <= 0 || !r.looping || !r.paused {
		return
	}
	r.pending += n
	if !r.armed {
		r.tick()
	}
}

// FrameCount returns the number of frames run so far. It is never reset.
func (r *Runner) FrameCount() int {
	return r.frameCount
}

// FrameRate returns the measured rate of the most recent frame.
func (r *Runner) FrameRate() float64 {
	return r.frameRate
}

// Looping reports whether the runner is started.
func (r *Runner) Looping() bool {
	return r.looping
}

// Paused reports whether frames are suspended.
func (r *Runner) Paused() bool {
	return r.paused
}

// Preloaded reports whether Preload has succeeded.
func (r *Runner) Preloaded() bool {
	return r.preloaded
}

// PendingSteps returns the number of stepped frames not yet run.
func (r *Runner) PendingSteps() int {
	return r.pending
}

func (r *Runner) interval() time.Duration {
	return time.Second / time.Duration(r.cfg.TargetRate)
}

func (r *Runner) arm() {
	if r.armed {
		return
	}
	r.armed = true
	r.sched.RequestNextTick(r.tick)
}

func (r *Runner) active() bool {
	return !r.paused || r.pending > 0
}

func (r *Runner) tick() {
	r.armed = false
	if !r.looping {
		return
	}

	if r.active() {
		now := r.clock.Now()
		elapsed := now - r.lastFrame
		if elapsed >= r.interval()-r.cfg.Tolerance {
			stepping := r.paused
			r.hooks.OnFrame()
			if elapsed > 0 {
				r.frameRate = float64(time.Second) / float64(elapsed)
			}
			r.lastFrame = now
			r.frameCount++
			if stepping && r.pending > 0 {
				r.pending--
			}
		}
	}

	if r.looping && r.active() {
		r.arm()
	}
}
