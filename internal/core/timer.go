package core

import "time"

// FixedStep paces replay updates at a steady frames-per-second rate,
// independent of the host loop's tick rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given rate.
func NewFixedStep(fps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetRate(fps)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the step rate. Non-positive values fall back to 7 fps.
func (f *FixedStep) SetRate(fps int) {
	if fps <= 0 {
		fps = 7
	}
	f.step = time.Second / time.Duration(fps)
}

// ShouldStep reports whether the replay should advance by one generation.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
