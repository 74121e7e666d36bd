package core

import "time"

// FixedStep helps run simulation updates at a steady ticks-per-second rate
// independent of the host frame rate.
type FixedStep struct {
	step    time.Duration
	backlog time.Duration
	last    time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.backlog = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Rewind drops any accumulated backlog, e.g. when resuming from a pause so
// the simulation does not fast-forward through the paused interval.
func (f *FixedStep) Rewind() {
	f.backlog = 0
	f.last = time.Time{}
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	f.backlog += now.Sub(f.last)
	f.last = now
	if f.backlog >= f.step {
		f.backlog -= f.step
		return true
	}
	return false
}
