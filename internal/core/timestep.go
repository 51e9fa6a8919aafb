package core

import "time"

// FixedStep converts variable wall-clock frame time into a whole number of
// fixed-duration simulation ticks.
type FixedStep struct {
	step       time.Duration
	maxCatchUp int
	acc        time.Duration
}

// NewFixedStep creates an accumulator producing tickRate ticks per second.
// At most maxCatchUp ticks are released per Advance; older backlog is dropped.
func NewFixedStep(tickRate, maxCatchUp int) FixedStep {
	if tickRate <= 0 {
		tickRate = 64
	}
	if maxCatchUp <= 0 {
		maxCatchUp = 1
	}
	return FixedStep{
		step:       time.Second / time.Duration(tickRate),
		maxCatchUp: maxCatchUp,
	}
}

// Advance adds elapsed wall-clock time and returns how many ticks to run now.
// The result may be zero.
func (f *FixedStep) Advance(elapsed time.Duration) int {
	if elapsed > 0 {
		f.acc += elapsed
	}

	n := int(f.acc / f.step)
	if n > f.maxCatchUp {
		// Stalled frame: run what we may and forget the rest.
		f.acc = 0
		return f.maxCatchUp
	}
	f.acc -= time.Duration(n) * f.step
	return n
}

// Step returns the tick duration.
func (f FixedStep) Step() time.Duration {
	return f.step
}

// Seconds returns the tick duration in seconds.
func (f FixedStep) Seconds() float64 {
	return f.step.Seconds()
}

// Pending returns accumulated time not yet consumed by a tick.
func (f FixedStep) Pending() time.Duration {
	return f.acc
}
