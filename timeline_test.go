package journey

import (
	"math"
	"testing"
	"time"

	"github.com/tanema/gween/ease"
)

type frameRecord struct {
	t, progress float64
}

// stubbornScheduler never cancels anything, so stale frames still fire.
type stubbornScheduler struct {
	*TickScheduler
}

func (stubbornScheduler) Cancel(Handle) {}

func TestTimelinePlayReachesTargetExactly(t *testing.T) {
	s := NewTickScheduler()
	tl := NewTimeline(s)

	var frames []frameRecord
	var completes int
	ok := tl.Play(0, 1, time.Second, func(tt, p float64) {
		frames = append(frames, frameRecord{tt, p})
	}, func() {
		completes++
		if tl.Playing() {
			t.Error("timeline should be idle when onComplete runs")
		}
	})
	if !ok || !tl.Playing() {
		t.Fatal("Play should start a session")
	}

	s.Tick(0)
	s.Tick(400 * time.Millisecond)
	s.Tick(1000 * time.Millisecond)
	s.Tick(2000 * time.Millisecond)

	if len(frames) != 3 {
		t.Fatalf("frames = %v, want 3", frames)
	}
	terminal := 0
	for _, f := range frames {
		if f.progress == 1 {
			terminal++
		}
	}
	if terminal != 1 {
		t.Errorf("terminal frames = %d, want 1", terminal)
	}
	last := frames[len(frames)-1]
	if last.t != 1 || last.progress != 1 {
		t.Errorf("last frame = %+v, want t=1 progress=1", last)
	}
	if completes != 1 {
		t.Errorf("onComplete called %d times, want 1", completes)
	}
	if tl.Playing() {
		t.Error("timeline should be idle after completion")
	}
}

func TestTimelineTerminalValueBitExact(t *testing.T) {
	s := NewTickScheduler()
	tl := NewTimeline(s)

	from, to := 0.12, 0.36
	var last float64
	tl.Play(from, to, 912*time.Millisecond, func(tt, _ float64) { last = tt }, nil)
	s.RunFor(2*time.Second, 16*time.Millisecond)

	if last != to {
		t.Errorf("last t = %v, want exactly %v", last, to)
	}
}

func TestTimelineStartPinnedOnFirstFrame(t *testing.T) {
	s := NewTickScheduler()
	s.Tick(5 * time.Second)
	tl := NewTimeline(s)

	var frames []frameRecord
	tl.Play(0, 1, time.Second, func(tt, p float64) { frames = append(frames, frameRecord{tt, p}) }, nil)

	// Scheduler startup latency: the first frame arrives late.
	s.Tick(5*time.Second + 300*time.Millisecond)
	s.Tick(5*time.Second + 800*time.Millisecond)

	if frames[0].progress != 0 {
		t.Errorf("first progress = %v, want 0", frames[0].progress)
	}
	if math.Abs(frames[1].progress-0.5) > 1e-9 {
		t.Errorf("second progress = %v, want 0.5", frames[1].progress)
	}
}

func TestTimelineProgressNonDecreasing(t *testing.T) {
	s := NewTickScheduler()
	tl := NewTimeline(s)

	prev := -1.0
	tl.Play(0.2, 0.9, 700*time.Millisecond, func(tt, p float64) {
		if p < prev {
			t.Errorf("progress went backwards: %v after %v", p, prev)
		}
		if tt < 0.2 || tt > 0.9 {
			t.Errorf("t = %v outside [0.2, 0.9]", tt)
		}
		prev = p
	}, nil)
	s.RunFor(time.Second, 7*time.Millisecond)
	if prev != 1 {
		t.Errorf("final progress = %v, want 1", prev)
	}
}

func TestTimelineRefusesOverlappingPlay(t *testing.T) {
	s := NewTickScheduler()
	tl := NewTimeline(s)

	var first, second int
	tl.Play(0, 0.5, 100*time.Millisecond, func(float64, float64) { first++ }, nil)
	if tl.Play(0.5, 1, 100*time.Millisecond, func(float64, float64) { second++ }, nil) {
		t.Error("second Play should be refused while playing")
	}
	s.RunFor(time.Second, 16*time.Millisecond)

	if first == 0 || second != 0 {
		t.Errorf("first = %d, second = %d; want only the first session to run", first, second)
	}
}

func TestTimelineCancelStopsFrames(t *testing.T) {
	s := NewTickScheduler()
	tl := NewTimeline(s)

	var frames, completes int
	tl.Play(0, 1, time.Second, func(float64, float64) { frames++ }, func() { completes++ })
	s.Tick(0)
	s.Tick(100 * time.Millisecond)
	tl.Cancel()
	before := frames

	s.RunFor(2*time.Second, 16*time.Millisecond)
	if frames != before {
		t.Errorf("frames after cancel = %d, want %d", frames, before)
	}
	if completes != 0 {
		t.Error("onComplete must not run after Cancel")
	}
	if tl.Playing() {
		t.Error("timeline should be idle after Cancel")
	}
}

func TestTimelineCancelIgnoresStaleFrames(t *testing.T) {
	s := stubbornScheduler{NewTickScheduler()}
	tl := NewTimeline(s)

	var frames int
	tl.Play(0, 1, time.Second, func(float64, float64) { frames++ }, nil)
	s.Tick(0)
	tl.Cancel()

	// A new session starts before the stale frame from the old one fires.
	var newFrames int
	tl.Play(0.5, 1, time.Second, func(float64, float64) { newFrames++ }, nil)
	s.Tick(16 * time.Millisecond)

	if frames != 1 {
		t.Errorf("cancelled session ran %d frames, want 1", frames)
	}
	if newFrames != 1 {
		t.Errorf("new session ran %d frames on first tick, want 1", newFrames)
	}
}

func TestTimelineCancelFromOnFrame(t *testing.T) {
	s := NewTickScheduler()
	tl := NewTimeline(s)

	var frames, completes int
	tl.Play(0, 1, time.Second, func(float64, float64) {
		frames++
		tl.Cancel()
	}, func() { completes++ })
	s.RunFor(2*time.Second, 16*time.Millisecond)

	if frames != 1 || completes != 0 {
		t.Errorf("frames = %d completes = %d, want 1 and 0", frames, completes)
	}
}

func TestTimelineZeroDuration(t *testing.T) {
	s := NewTickScheduler()
	tl := NewTimeline(s)

	var last frameRecord
	var done bool
	tl.Play(0.3, 0.7, 0, func(tt, p float64) { last = frameRecord{tt, p} }, func() { done = true })
	s.Tick(1)

	if !done || last.t != 0.7 || last.progress != 1 {
		t.Errorf("last = %+v done = %v, want immediate completion at 0.7", last, done)
	}
}

func TestTimelineOnCompleteMayPlayAgain(t *testing.T) {
	s := NewTickScheduler()
	tl := NewTimeline(s)

	var chained bool
	tl.Play(0, 0.5, 100*time.Millisecond, nil, func() {
		chained = tl.Play(0.5, 1, 100*time.Millisecond, nil, nil)
	})
	s.RunFor(time.Second, 16*time.Millisecond)
	if !chained {
		t.Error("Play from onComplete should be accepted")
	}
	if tl.Playing() {
		t.Error("chained session should have finished")
	}
}

func TestTimelineEasing(t *testing.T) {
	s := NewTickScheduler()
	tl := NewTimeline(s)
	tl.Easing = ease.InQuad

	var frames []frameRecord
	tl.Play(0, 1, time.Second, func(tt, p float64) { frames = append(frames, frameRecord{tt, p}) }, nil)
	s.Tick(0)
	s.Tick(500 * time.Millisecond)
	s.Tick(time.Second)

	mid := frames[1]
	if mid.progress != 0.5 {
		t.Errorf("reported progress = %v, want raw 0.5", mid.progress)
	}
	if math.Abs(mid.t-0.25) > 1e-6 {
		t.Errorf("eased t = %v, want ~0.25", mid.t)
	}
	if frames[2].t != 1 {
		t.Errorf("terminal t = %v, want exactly 1", frames[2].t)
	}
}
