package journey

import "time"

// Debouncer coalesces bursts of triggers into one call of fn, delay after
// the most recent trigger.
type Debouncer struct {
	sched   Scheduler
	delay   time.Duration
	fn      func()
	pending Handle
}

// NewDebouncer creates a Debouncer that runs fn on s.
func NewDebouncer(s Scheduler, delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{sched: s, delay: delay, fn: fn}
}

// Trigger restarts the quiet period.
func (d *Debouncer) Trigger() {
	d.sched.Cancel(d.pending)
	d.pending = d.sched.AfterFunc(d.delay, func() {
		d.pending = 0
		d.fn()
	})
}

// Pending reports whether a call is waiting for its quiet period to end.
func (d *Debouncer) Pending() bool {
	return d.pending != 0
}

// Stop drops any waiting call.
func (d *Debouncer) Stop() {
	d.sched.Cancel(d.pending)
	d.pending = 0
}
