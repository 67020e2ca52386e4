package ebitenview

import (
	"math"
	"testing"

	"github.com/phanxgames/journey"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func newTestRenderer() *Renderer {
	path := journey.NewPolyline([]journey.Vec2{{X: 0, Y: 300}, {X: 1000, Y: 300}})
	return NewRenderer(path, journey.Rect{Width: 1000, Height: 600})
}

func TestRenderer_SetViewport(t *testing.T) {
	r := newTestRenderer()
	if !r.SetViewport(500, 600) {
		t.Fatal("first SetViewport should report a change")
	}
	if r.SetViewport(500, 600) {
		t.Error("same size should not report a change")
	}
	// 1000x600 fits 500x600 at 0.5, centered vertically: 300px tall, 150px top margin.
	assertNear(t, "Scale", r.Scale(), 0.5)
	p := r.ToScreen(journey.Vec2{X: 1000, Y: 300})
	assertNear(t, "screen x", p.X, 500)
	assertNear(t, "screen y", p.Y, 300)

	sp := r.ScreenPath()
	if len(sp) != 2 {
		t.Fatalf("screen path has %d points", len(sp))
	}
	assertNear(t, "screen path start y", sp[0].Y, 300)
	assertNear(t, "screen path end x", sp[1].X, 500)
}

func TestRenderer_ToPathSpaceInvertsToScreen(t *testing.T) {
	r := newTestRenderer()
	r.SetViewport(1280, 720)
	for _, v := range []journey.Vec2{{X: 0, Y: 0}, {X: 250, Y: 125}, {X: 1000, Y: 600}} {
		back := r.ToPathSpace(r.ToScreen(v))
		assertNear(t, "x", back.X, v.X)
		assertNear(t, "y", back.Y, v.Y)
	}
}

func TestRenderer_LengthInViewBoxUnits(t *testing.T) {
	r := newTestRenderer()
	r.SetViewport(200, 120)
	assertNear(t, "Length", r.Length(), 1000)
	p := r.PointAtLength(250)
	assertNear(t, "x", p.X, 250)
	assertNear(t, "y", p.Y, 300)
}

func TestRenderer_SeekThroughController(t *testing.T) {
	r := newTestRenderer()
	r.SetViewport(500, 600)
	s := journey.NewTickScheduler()
	c, err := journey.NewController(journey.DefaultConfig(), r, s)
	if err != nil {
		t.Fatal(err)
	}
	// Window (250, 300) is view-box (500, 300): halfway along the track.
	c.Seek(journey.Vec2{X: 250, Y: 300})
	assertNear(t, "progress", c.Progress(), 0.5)
}
