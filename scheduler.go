package journey

import (
	"slices"
	"time"
)

// FrameFunc is a per-frame callback. now is the frame timestamp on the
// scheduler's monotonic timeline.
type FrameFunc func(now time.Duration)

// Handle identifies a pending frame callback or timer. The zero Handle is
// never issued.
type Handle uint64

// Scheduler is the single-threaded cooperative facility every suspension in
// the engine goes through: per-frame callbacks and delayed timers. All
// callbacks run on the goroutine that drives the scheduler.
type Scheduler interface {
	// Now returns the current time on the scheduler's timeline.
	Now() time.Duration
	// RequestFrame schedules fn to run once on the next frame.
	RequestFrame(fn FrameFunc) Handle
	// AfterFunc schedules fn to run once d from now.
	AfterFunc(d time.Duration, fn func()) Handle
	// Cancel drops a pending frame or timer. Unknown or already-fired
	// handles are ignored.
	Cancel(h Handle)
}

type frameEntry struct {
	id        Handle
	fn        FrameFunc
	cancelled bool
}

type timerEntry struct {
	id  Handle
	due time.Duration
	fn  func()
}

// TickScheduler is a Scheduler driven explicitly by its host loop: an
// ebiten Update, a terminal ticker, or a test. Each Tick fires due timers in
// due order, then runs the frames that were requested before the tick.
// Frames requested while a tick is running wait for the next one.
type TickScheduler struct {
	now    time.Duration
	frames []*frameEntry
	batch  []*frameEntry // frames being dispatched by the current Tick
	timers []*timerEntry
	nextID Handle
}

// NewTickScheduler creates a scheduler whose clock starts at zero.
func NewTickScheduler() *TickScheduler {
	return &TickScheduler{}
}

// Now returns the timestamp of the most recent Tick.
func (s *TickScheduler) Now() time.Duration {
	return s.now
}

// RequestFrame schedules fn for the next Tick.
func (s *TickScheduler) RequestFrame(fn FrameFunc) Handle {
	s.nextID++
	s.frames = append(s.frames, &frameEntry{id: s.nextID, fn: fn})
	return s.nextID
}

// AfterFunc schedules fn for the first Tick at or after Now()+d.
func (s *TickScheduler) AfterFunc(d time.Duration, fn func()) Handle {
	s.nextID++
	s.timers = append(s.timers, &timerEntry{id: s.nextID, due: s.now + d, fn: fn})
	return s.nextID
}

// Cancel drops a pending frame or timer, including a frame queued later in
// the batch the current Tick is dispatching.
func (s *TickScheduler) Cancel(h Handle) {
	if h == 0 {
		return
	}
	for _, f := range s.batch {
		if f.id == h {
			f.cancelled = true
			return
		}
	}
	for i, f := range s.frames {
		if f.id == h {
			s.frames = slices.Delete(s.frames, i, i+1)
			return
		}
	}
	for i, tm := range s.timers {
		if tm.id == h {
			s.timers = slices.Delete(s.timers, i, i+1)
			return
		}
	}
}

// Pending returns the number of queued frames and timers.
func (s *TickScheduler) Pending() (frames, timers int) {
	return len(s.frames), len(s.timers)
}

// Tick moves the clock to now and dispatches due work. The clock never runs
// backwards; an earlier now is treated as the current time.
func (s *TickScheduler) Tick(now time.Duration) {
	if now > s.now {
		s.now = now
	}

	for {
		i := s.nextDue()
		if i < 0 {
			break
		}
		tm := s.timers[i]
		s.timers = slices.Delete(s.timers, i, i+1)
		tm.fn()
	}

	s.batch = s.frames
	s.frames = nil
	for _, f := range s.batch {
		if !f.cancelled {
			f.fn(s.now)
		}
	}
	s.batch = nil
}

// Advance ticks the scheduler dt after the current time.
func (s *TickScheduler) Advance(dt time.Duration) {
	s.Tick(s.now + dt)
}

// RunFor ticks repeatedly at the given frame interval until d has elapsed.
// Test and headless helper.
func (s *TickScheduler) RunFor(d, frame time.Duration) {
	if frame <= 0 {
		frame = time.Second / 60
	}
	end := s.now + d
	for s.now < end {
		s.Tick(min(s.now+frame, end))
	}
}

// nextDue returns the index of the earliest due timer, or -1. Timers with
// equal due times fire in the order they were scheduled.
func (s *TickScheduler) nextDue() int {
	best := -1
	for i, tm := range s.timers {
		if tm.due > s.now {
			continue
		}
		if best < 0 || tm.due < s.timers[best].due ||
			(tm.due == s.timers[best].due && tm.id < s.timers[best].id) {
			best = i
		}
	}
	return best
}
