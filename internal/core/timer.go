package core

import "time"

// maxCatchUp bounds how many generations Due reports after a stall, so a
// paused or dragged window does not fast-forward the board.
const maxCatchUp = 4

// FixedStep paces generations independently of the render frame rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting rate steps per second.
func NewFixedStep(rate int) *FixedStep {
	fs := &FixedStep{}
	fs.SetRate(rate)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the step rate. Non-positive rates fall back to 10.
func (f *FixedStep) SetRate(rate int) {
	if rate <= 0 {
		rate = 10
	}
	f.step = time.Second / time.Duration(rate)
}

// Rate returns the configured steps per second.
func (f *FixedStep) Rate() int {
	return int(time.Second / f.step)
}

// Due reports how many steps have accumulated by now.
func (f *FixedStep) Due(now time.Time) int {
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	n := 0
	for f.accumulator >= f.step && n < maxCatchUp {
		f.accumulator -= f.step
		n++
	}
	if n == maxCatchUp {
		f.accumulator = 0
	}
	return n
}

// ShouldStep reports whether at least one step is due at the wall clock time.
func (f *FixedStep) ShouldStep() bool {
	return f.Due(time.Now()) > 0
}

// Restart drops any accumulated time.
func (f *FixedStep) Restart() {
	f.accumulator = 0
	f.last = time.Time{}
}
