package lives

// Timer counts generations toward a fixed duration. Cells use it to drive the
// fade-out of a dying cell; it has no effect on automaton semantics.
type Timer struct {
	duration int
	count    int
	active   bool
}

// NewTimer returns an inactive timer that runs for the given number of ticks.
func NewTimer(duration int) Timer {
	if duration < 0 {
		duration = 0
	}
	return Timer{duration: duration}
}

// Start rewinds and activates the timer. A zero-length timer stays inactive.
func (t *Timer) Start() {
	t.count = 0
	t.active = t.duration > 0
}

// Stop rewinds and deactivates the timer.
func (t *Timer) Stop() {
	t.count = 0
	t.active = false
}

// Tick advances an active timer by one and reports whether it ticked. The
// timer deactivates once it reaches its duration.
func (t *Timer) Tick() bool {
	if !t.active {
		return false
	}
	t.count++
	if t.count >= t.duration {
		t.count = t.duration
		t.active = false
	}
	return true
}

// Active reports whether the timer is still counting.
func (t Timer) Active() bool { return t.active }

// Duration returns the configured length in ticks.
func (t Timer) Duration() int { return t.duration }

// Ratio returns the elapsed fraction in [0, 1].
func (t Timer) Ratio() float64 {
	if t.duration == 0 {
		return 1
	}
	return float64(t.count) / float64(t.duration)
}
