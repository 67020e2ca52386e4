package journey

import (
	"time"

	"github.com/tanema/gween/ease"
)

// Timeline advances progress from one path position to another over a fixed
// duration, one scheduler frame at a time. At most one playback session runs
// at once; Play while playing is refused.
//
// There is no global animation manager. The Timeline only moves when its
// Scheduler ticks.
type Timeline struct {
	// Easing shapes the interpolation between the endpoints. nil means
	// linear. Reported progress is always the raw time fraction.
	Easing ease.TweenFunc

	sched   Scheduler
	playing bool
	session uint64 // bumped on every Play and Cancel; stale frames compare against it
	frame   Handle

	from, to   float64
	duration   time.Duration
	started    bool
	start      time.Duration
	onFrame    func(t, progress float64)
	onComplete func()
}

// NewTimeline creates an idle Timeline driven by s.
func NewTimeline(s Scheduler) *Timeline {
	return &Timeline{sched: s}
}

// Playing reports whether a session is active.
func (tl *Timeline) Playing() bool {
	return tl.playing
}

// Play starts a session moving from t0 to t1 over d. onFrame receives the
// current position and the time fraction once per frame; the final call is
// exactly (t1, 1). onComplete runs after the final frame, once the Timeline
// is idle again, so it may start another session. Returns false without
// side effects if a session is already active.
func (tl *Timeline) Play(t0, t1 float64, d time.Duration, onFrame func(t, progress float64), onComplete func()) bool {
	if tl.playing {
		return false
	}
	tl.session++
	tl.playing = true
	tl.from, tl.to = t0, t1
	tl.duration = d
	tl.started = false
	tl.onFrame = onFrame
	tl.onComplete = onComplete
	tl.requestFrame(tl.session)
	return true
}

// Cancel stops the active session immediately. No further frame callbacks
// run, even ones already queued, and onComplete is not called.
func (tl *Timeline) Cancel() {
	if !tl.playing {
		return
	}
	tl.playing = false
	tl.session++
	tl.sched.Cancel(tl.frame)
	tl.frame = 0
	tl.onFrame = nil
	tl.onComplete = nil
}

func (tl *Timeline) requestFrame(session uint64) {
	tl.frame = tl.sched.RequestFrame(func(now time.Duration) {
		tl.tick(session, now)
	})
}

func (tl *Timeline) tick(session uint64, now time.Duration) {
	if !tl.playing || session != tl.session {
		return
	}
	// Pin the start on the first frame, not at Play, to absorb scheduler
	// startup latency.
	if !tl.started {
		tl.started = true
		tl.start = now
	}

	progress := 1.0
	if tl.duration > 0 {
		progress = min(1, float64(now-tl.start)/float64(tl.duration))
	}

	if progress < 1 {
		if tl.onFrame != nil {
			tl.onFrame(tl.interpolate(progress), progress)
		}
		// onFrame may have cancelled.
		if tl.playing && session == tl.session {
			tl.requestFrame(session)
		}
		return
	}

	onFrame, onComplete := tl.onFrame, tl.onComplete
	if onFrame != nil {
		onFrame(tl.to, 1)
	}
	if !tl.playing || session != tl.session {
		return
	}
	tl.playing = false
	tl.frame = 0
	tl.onFrame = nil
	tl.onComplete = nil
	if onComplete != nil {
		onComplete()
	}
}

func (tl *Timeline) interpolate(progress float64) float64 {
	if tl.Easing != nil {
		progress = float64(tl.Easing(float32(progress), 0, 1, 1))
	}
	return tl.from + (tl.to-tl.from)*progress
}
