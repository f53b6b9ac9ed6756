package core

import "time"

// FixedStep decides when the simulation should advance, independent of how
// often the surrounding loop polls it. Elapsed time accumulates until it
// reaches the tick period; the step then fires once and the accumulator
// starts over from zero.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller firing every period.
func NewFixedStep(period time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetPeriod(period)
	return fs
}

// NewFixedStepTPS constructs a FixedStep controller targeting the given
// ticks-per-second rate.
func NewFixedStepTPS(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	return NewFixedStep(time.Second / time.Duration(tps))
}

// SetPeriod changes the tick period. Non-positive values fall back to 60 TPS.
func (f *FixedStep) SetPeriod(period time.Duration) {
	if period <= 0 {
		period = time.Second / 60
	}
	f.step = period
}

// Period returns the configured tick period.
func (f *FixedStep) Period() time.Duration { return f.step }

// Pending returns the time accumulated towards the next tick.
func (f *FixedStep) Pending() time.Duration { return f.accumulator }

// Advance adds delta to the accumulator and reports whether a tick is due.
// At most one tick fires per call; any surplus beyond the period is dropped.
func (f *FixedStep) Advance(delta time.Duration) bool {
	if delta > 0 {
		f.accumulator += delta
	}
	if f.accumulator >= f.step {
		f.accumulator = 0
		return true
	}
	return false
}

// ShouldStep feeds the wall-clock time elapsed since the previous call into
// Advance. The first call only records the starting timestamp.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	return f.Advance(delta)
}

// Restart forgets the last timestamp and the accumulated time, so that time
// spent paused is not counted towards the next tick.
func (f *FixedStep) Restart() {
	f.last = time.Time{}
	f.accumulator = 0
}
