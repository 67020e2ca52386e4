package journey

import (
	"errors"
	"fmt"
	"time"
)

// ErrNilCollaborator is returned when a required collaborator is missing.
var ErrNilCollaborator = errors.New("nil collaborator")

// Controller drives one journey: it turns start, reset, advance, seek, and
// viewport-change input into playback sessions, and notifies presenters of
// progress, reveals, and the finale.
//
// Controller is not safe for concurrent use. Call every method from the
// goroutine that ticks its Scheduler.
type Controller struct {
	cfg        Config
	renderer   Renderer
	sched      Scheduler
	sampler    *Sampler
	seq        *Sequencer
	timeline   *Timeline
	resize     *Debouncer
	presenters presenterRegistry
	modal      ModalState
	debug      bool

	progress    float64
	finaleShown bool
	settle      Handle // pending Start delay
	layoutTimer Handle // pending Prepare layout

	injectQueue []inputEvent
	script      *ScriptRunner
}

// NewController validates cfg and wires a Controller to its renderer and
// scheduler. Nothing is rendered until Prepare.
func NewController(cfg Config, r Renderer, s Scheduler) (*Controller, error) {
	if r == nil || s == nil {
		return nil, fmt.Errorf("new controller: %w", ErrNilCollaborator)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new controller: %w", err)
	}
	seq, err := NewSequencer(cfg.Stops)
	if err != nil {
		return nil, fmt.Errorf("new controller: %w", err)
	}
	c := &Controller{
		cfg:      cfg,
		renderer: r,
		sched:    s,
		sampler:  NewSampler(r, cfg.SampleResolution),
		seq:      seq,
		timeline: NewTimeline(s),
	}
	c.resize = NewDebouncer(s, cfg.ResizeDebounce, c.applyLayout)
	return c, nil
}

// AddPresenter registers p for notifications. Presenters are notified in
// registration order.
func (c *Controller) AddPresenter(p Presenter) CallbackHandle {
	return c.presenters.add(p)
}

// SetModal sets the collaborator that reports whether the finale dialog is
// open. nil means never open.
func (c *Controller) SetModal(m ModalState) {
	c.modal = m
}

// SetDebugMode enables or disables diagnostic output on stderr.
func (c *Controller) SetDebugMode(enabled bool) {
	c.debug = enabled
}

// Config returns the controller's configuration.
func (c *Controller) Config() Config { return c.cfg }

// Timeline returns the playback engine, e.g. to set its Easing.
func (c *Controller) Timeline() *Timeline { return c.timeline }

// Sampler returns the path sampler.
func (c *Controller) Sampler() *Sampler { return c.sampler }

// Progress returns the marker's current position.
func (c *Controller) Progress() float64 { return c.progress }

// Playing reports whether a playback session is active.
func (c *Controller) Playing() bool { return c.timeline.Playing() }

// Cursor returns the index of the last stop reached.
func (c *Controller) Cursor() int { return c.seq.Cursor() }

// Stop returns the stop at index i.
func (c *Controller) Stop(i int) Stop { return c.seq.Stop(i) }

// Shown reports whether the payload of stop i has been revealed.
func (c *Controller) Shown(i int) bool { return c.seq.Shown(i) }

// FinaleShown reports whether the finale fired since the last reset.
func (c *Controller) FinaleShown() bool { return c.finaleShown }

// Prepare reads the path geometry, renders the starting frame, and lays out
// the stops once layout has had LayoutSettle to settle.
func (c *Controller) Prepare() {
	c.sampler.Refresh()
	c.notifyProgress(0)
	c.sched.Cancel(c.layoutTimer)
	c.layoutTimer = c.sched.AfterFunc(c.cfg.LayoutSettle, func() {
		c.layoutTimer = 0
		c.notifyLayout()
	})
}

// Start resets the scene and, after SettleDelay, plays the first segment.
// In continuous mode the whole journey plays as one session. Start
// supersedes any session in flight.
func (c *Controller) Start() {
	c.Reset()
	c.settle = c.sched.AfterFunc(c.cfg.SettleDelay, func() {
		c.settle = 0
		if c.cfg.Continuous {
			c.play(0, 1, c.cfg.TotalDuration)
			return
		}
		c.playSegment()
	})
}

// AdvanceOnInput plays the segment to the next stop. Ignored while a
// session is active, while the finale dialog is open, and at the end.
func (c *Controller) AdvanceOnInput() {
	if reason, busy := c.busy(); busy {
		c.debugIgnored("advance", reason)
		return
	}
	c.playSegment()
}

// Seek jumps the marker to the path point nearest raw, then plays from
// there to the end. Stops at or before the landing point are handled by
// Config.SeekReveal. Ignored while a session is active or the finale dialog
// is open.
func (c *Controller) Seek(raw Vec2) {
	if reason, busy := c.busy(); busy {
		c.debugIgnored("seek", reason)
		return
	}
	t := c.sampler.NearestT(c.renderer.ToPathSpace(raw))

	c.Reset()
	c.seq.ResetTo(t)
	if c.cfg.SeekReveal == SeekReplayIntermediate {
		c.notifyReveals(c.seq.RevealThrough())
	}
	c.progress = t
	c.notifyProgress(t)
	if c.cfg.RevealLead > 0 {
		c.notifyReveals(c.seq.RevealAhead(t + c.cfg.RevealLead))
	}

	c.debugLog("seek to t=%.4f (stop %d)", t, c.seq.Cursor())
	c.play(t, 1, SeekDuration(t, c.cfg.TotalDuration, c.cfg.MinSeekDuration))
}

// Reset cancels playback, rewinds to the first stop, hides every reveal, and
// renders the starting frame. Calling it repeatedly has no further effect.
func (c *Controller) Reset() {
	c.timeline.Cancel()
	c.sched.Cancel(c.settle)
	c.settle = 0
	c.seq.Rewind()
	c.finaleShown = false
	c.progress = 0
	c.notifyProgress(0)
	c.presenters.each(func(p Presenter) { p.OnReset() })
}

// ViewportChanged reports a layout change. The cached path length is dropped
// at once; the layout is recomputed after ResizeDebounce of quiet.
func (c *Controller) ViewportChanged() {
	c.sampler.Invalidate()
	c.resize.Trigger()
}

// StopPoints resolves every stop to its current path-space coordinate.
func (c *Controller) StopPoints() []StopPoint {
	pts := make([]StopPoint, c.seq.Len())
	for i := range pts {
		s := c.seq.Stop(i)
		pts[i] = StopPoint{
			Index:    i,
			Position: s.Position,
			Point:    c.sampler.PointAt(s.Position),
			Payload:  s.Payload,
		}
	}
	return pts
}

func (c *Controller) busy() (string, bool) {
	switch {
	case c.timeline.Playing():
		return "playing", true
	case c.settle != 0:
		return "starting", true
	case c.modal != nil && c.modal.FinaleOpen():
		return "finale open", true
	}
	return "", false
}

func (c *Controller) playSegment() {
	seg, ok := c.seq.CurrentSegment()
	if !ok {
		c.debugIgnored("advance", "at last stop")
		return
	}
	c.play(seg.From, seg.To, SegmentDuration(seg, c.cfg.TotalDuration, c.cfg.MinSegmentDuration))
}

func (c *Controller) play(t0, t1 float64, d time.Duration) {
	ok := c.timeline.Play(t0, t1, d, c.onFrame, func() { c.onComplete(t1) })
	if !ok {
		c.debugIgnored("play", "playing")
		return
	}
	c.debugLog("play %.4f -> %.4f over %v", t0, t1, d)
}

func (c *Controller) onFrame(t, _ float64) {
	c.progress = t
	c.notifyProgress(t)
	c.notifyReveals(c.seq.AdvanceThrough(t))
	if c.cfg.RevealLead > 0 {
		c.notifyReveals(c.seq.RevealAhead(t + c.cfg.RevealLead))
	}
}

func (c *Controller) onComplete(t1 float64) {
	c.debugLog("complete at t=%.4f (stop %d)", t1, c.seq.Cursor())
	if t1 < 1 || !c.seq.AtEnd() || c.finaleShown {
		return
	}
	c.finaleShown = true
	c.presenters.each(func(p Presenter) { p.OnFinale() })
}

func (c *Controller) applyLayout() {
	l := c.sampler.Refresh()
	c.debugLog("layout refreshed, path length %.2f", l)
	c.notifyProgress(c.progress)
	c.notifyLayout()
}

func (c *Controller) notifyProgress(t float64) {
	pt := c.sampler.PointAt(t)
	pulse := PulseScale(t, c.cfg.PulseAmplitude)
	c.presenters.each(func(p Presenter) { p.OnProgress(t, pt, pulse) })
}

func (c *Controller) notifyReveals(payloads []*Payload) {
	for _, pl := range payloads {
		c.debugLog("reveal %q", pl.ID)
		c.presenters.each(func(p Presenter) { p.OnReveal(pl) })
	}
}

func (c *Controller) notifyLayout() {
	pts := c.StopPoints()
	c.presenters.each(func(p Presenter) {
		if lo, ok := p.(LayoutObserver); ok {
			lo.OnLayout(pts)
		}
	})
}
