package ebitenview

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/journey"
)

// DefaultHideDelay is how long a dismissed finale dialog stays on screen
// while it fades out.
const DefaultHideDelay = 600 * time.Millisecond

// Style holds the colors and sizes used to draw the scene. Sizes are in
// view-box units and scale with the window.
type Style struct {
	Background color.RGBA
	Track      color.RGBA
	Highlight  color.RGBA
	Marker     color.RGBA
	StopDot    color.RGBA
	Overlay    color.RGBA
	Heart      color.RGBA

	TrackWidth   float64
	MarkerRadius float64
	StopRadius   float64
	HeartRadius  float64
}

// DefaultStyle returns the stock palette.
func DefaultStyle() Style {
	return Style{
		Background: color.RGBA{R: 0x1e, G: 0x1e, B: 0x28, A: 0xff},
		Track:      color.RGBA{R: 0x55, G: 0x55, B: 0x6a, A: 0xff},
		Highlight:  color.RGBA{R: 0xff, G: 0x78, B: 0xa0, A: 0xff},
		Marker:     color.RGBA{R: 0xff, G: 0xe0, B: 0xea, A: 0xff},
		StopDot:    color.RGBA{R: 0xb4, G: 0xb4, B: 0xc8, A: 0xff},
		Overlay:    color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xb0},
		Heart:      color.RGBA{R: 0xff, G: 0x5a, B: 0x8c, A: 0xff},

		TrackWidth:   6,
		MarkerRadius: 12,
		StopRadius:   5,
		HeartRadius:  60,
	}
}

// highlightSamples is the number of points used to draw the travelled part
// of the track.
const highlightSamples = 96

// Presenter draws the journey with Ebitengine: the track, the travelled
// highlight, the pulsing marker, revealed messages next to their stops, and
// the finale dialog. It implements journey.Presenter, journey.LayoutObserver,
// and journey.ModalState.
type Presenter struct {
	// HideDelay is the fade-out time of a dismissed finale dialog.
	HideDelay time.Duration
	Style     Style

	renderer *Renderer
	sched    journey.Scheduler

	t      float64
	marker journey.Vec2
	pulse  float64
	stops  []journey.StopPoint
	shown  map[string]bool

	finaleOpen bool
	closing    bool
	closeStart time.Duration
	hide       journey.Handle
	heart      *gween.Tween
	heartUp    bool
	heartScale float64

	highlight []journey.Vec2
	mesh      mesh
}

// NewPresenter creates a Presenter drawing through r. The scheduler times
// the finale fade-out.
func NewPresenter(r *Renderer, s journey.Scheduler) *Presenter {
	return &Presenter{
		HideDelay:  DefaultHideDelay,
		Style:      DefaultStyle(),
		renderer:   r,
		sched:      s,
		pulse:      1,
		heartScale: 1,
		shown:      make(map[string]bool),
	}
}

// OnReveal shows the payload's message.
func (p *Presenter) OnReveal(pl *journey.Payload) {
	p.shown[pl.ID] = true
}

// OnFinale opens the finale dialog and starts the heart pulse.
func (p *Presenter) OnFinale() {
	p.sched.Cancel(p.hide)
	p.hide = 0
	p.finaleOpen = true
	p.closing = false
	p.heartUp = true
	p.heart = gween.New(1, 1.15, 0.6, ease.InOutSine)
	p.heartScale = 1
}

// OnProgress moves the marker.
func (p *Presenter) OnProgress(t float64, point journey.Vec2, pulse float64) {
	p.t = t
	p.marker = point
	p.pulse = pulse
}

// OnReset hides every message and closes the finale dialog at once.
func (p *Presenter) OnReset() {
	clear(p.shown)
	p.closeNow()
}

// OnLayout records where each stop sits on the path.
func (p *Presenter) OnLayout(points []journey.StopPoint) {
	p.stops = append(p.stops[:0], points...)
}

// FinaleOpen reports whether the finale dialog is on screen, including while
// it fades out.
func (p *Presenter) FinaleOpen() bool {
	return p.finaleOpen
}

// Shown reports whether the message with the given payload id is visible.
func (p *Presenter) Shown(id string) bool {
	return p.shown[id]
}

// Dismiss closes the finale dialog. With immediate false, the dialog stops
// pulsing and fades out over HideDelay before input is accepted again.
func (p *Presenter) Dismiss(immediate bool) {
	if !p.finaleOpen {
		return
	}
	p.heart = nil
	if immediate || p.HideDelay <= 0 {
		p.closeNow()
		return
	}
	if p.closing {
		return
	}
	p.closing = true
	p.closeStart = p.sched.Now()
	p.heartScale = 1.05
	p.hide = p.sched.AfterFunc(p.HideDelay, func() {
		p.hide = 0
		p.closeNow()
	})
}

func (p *Presenter) closeNow() {
	p.sched.Cancel(p.hide)
	p.hide = 0
	p.finaleOpen = false
	p.closing = false
	p.heart = nil
	p.heartScale = 1
}

// Update advances the heart pulse by dt seconds.
func (p *Presenter) Update(dt float64) {
	if p.heart == nil {
		return
	}
	v, done := p.heart.Update(float32(dt))
	p.heartScale = float64(v)
	if done {
		// Ping-pong between rest and peak.
		p.heartUp = !p.heartUp
		if p.heartUp {
			p.heart = gween.New(1, 1.15, 0.6, ease.InOutSine)
		} else {
			p.heart = gween.New(1.15, 1, 0.6, ease.InOutSine)
		}
	}
}

// fade returns the finale dialog's opacity.
func (p *Presenter) fade() float64 {
	if !p.closing || p.HideDelay <= 0 {
		return 1
	}
	elapsed := p.sched.Now() - p.closeStart
	return max(0, 1-float64(elapsed)/float64(p.HideDelay))
}

// Draw renders the scene onto screen.
func (p *Presenter) Draw(screen *ebiten.Image) {
	screen.Fill(p.Style.Background)

	r := p.renderer
	s := r.Scale()
	m := &p.mesh
	m.reset()

	m.appendStroke(r.ScreenPath(), p.Style.TrackWidth*s, p.Style.Track)
	if hl := p.highlightPoints(); len(hl) > 1 {
		m.appendStroke(hl, p.Style.TrackWidth*s, p.Style.Highlight)
	}
	for _, sp := range p.stops {
		if sp.Payload == nil {
			continue
		}
		m.appendCircle(r.ToScreen(sp.Point), p.Style.StopRadius*s, 16, p.Style.StopDot)
	}
	m.appendCircle(r.ToScreen(p.marker), p.Style.MarkerRadius*s*p.pulse, 24, p.Style.Marker)
	m.draw(screen)

	for _, sp := range p.stops {
		if sp.Payload == nil || !p.shown[sp.Payload.ID] {
			continue
		}
		at := r.ToScreen(sp.Point)
		ebitenutil.DebugPrintAt(screen, messageText(sp.Payload), int(at.X)+8, int(at.Y)-24)
	}

	if p.finaleOpen {
		p.drawFinale(screen)
	}
}

func (p *Presenter) drawFinale(screen *ebiten.Image) {
	w, h := p.renderer.Viewport()
	a := p.fade()

	m := &p.mesh
	m.reset()
	m.appendRect(journey.Rect{Width: float64(w), Height: float64(h)}, scaleAlpha(p.Style.Overlay, a))
	center := journey.Vec2{X: float64(w) / 2, Y: float64(h) / 2}
	m.appendCircle(center, p.Style.HeartRadius*p.renderer.Scale()*p.heartScale, 48, scaleAlpha(p.Style.Heart, a))
	m.draw(screen)

	if !p.closing {
		ebitenutil.DebugPrintAt(screen, "You made it!  [Enter] close  [Esc] hide", int(center.X)-120, int(center.Y)+int(p.Style.HeartRadius*p.renderer.Scale())+16)
	}
}

// highlightPoints samples the travelled part of the track in window pixels.
func (p *Presenter) highlightPoints() []journey.Vec2 {
	p.highlight = p.highlight[:0]
	if p.t <= 0 {
		return p.highlight
	}
	r := p.renderer
	travelled := p.t * r.Length()
	for i := 0; i <= highlightSamples; i++ {
		d := travelled * float64(i) / highlightSamples
		p.highlight = append(p.highlight, r.ToScreen(r.PointAtLength(d)))
	}
	return p.highlight
}

func messageText(pl *journey.Payload) string {
	if pl.Text != "" {
		return pl.Text
	}
	return pl.ID
}

// scaleAlpha returns c with its alpha multiplied by a.
func scaleAlpha(c color.RGBA, a float64) color.RGBA {
	c.A = uint8(float64(c.A) * a)
	return c
}
