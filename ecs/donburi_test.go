package ecs

import (
	"testing"
	"time"

	"github.com/phanxgames/journey"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiPresenter(t *testing.T) {
	world := donburi.NewWorld()
	p := NewDonburiPresenter(world)
	if p == nil {
		t.Fatal("NewDonburiPresenter returned nil")
	}
	if _, ok := p.(journey.LayoutObserver); !ok {
		t.Error("presenter should observe layouts")
	}
}

func TestDonburiPresenter_Reveal(t *testing.T) {
	world := donburi.NewWorld()
	p := NewDonburiPresenter(world)

	var received []RevealEvent
	RevealEventType.Subscribe(world, func(w donburi.World, e RevealEvent) {
		received = append(received, e)
	})

	p.OnReveal(&journey.Payload{ID: "msg1", Text: "hello"})
	p.OnReveal(&journey.Payload{ID: "msg2"})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatal("events delivered before ProcessEvents")
	}
	RevealEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Payload.ID != "msg1" || received[0].Payload.Text != "hello" {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Payload.ID != "msg2" {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiPresenter_Progress(t *testing.T) {
	world := donburi.NewWorld()
	p := NewDonburiPresenter(world)

	var got ProgressEvent
	ProgressEventType.Subscribe(world, func(w donburi.World, e ProgressEvent) {
		got = e
	})

	p.OnProgress(0.25, journey.Vec2{X: 10, Y: 20}, 1.06)
	ProgressEventType.ProcessEvents(world)

	if got.T != 0.25 || got.Point.X != 10 || got.Point.Y != 20 || got.Pulse != 1.06 {
		t.Errorf("progress event: %+v", got)
	}
}

func TestDonburiPresenter_LayoutCopiesPoints(t *testing.T) {
	world := donburi.NewWorld()
	p := NewDonburiPresenter(world).(journey.LayoutObserver)

	var got LayoutEvent
	LayoutEventType.Subscribe(world, func(w donburi.World, e LayoutEvent) {
		got = e
	})

	pts := []journey.StopPoint{{Index: 0}, {Index: 1, Position: 1}}
	p.OnLayout(pts)
	pts[1].Position = 0.5
	LayoutEventType.ProcessEvents(world)

	if len(got.Points) != 2 || got.Points[1].Position != 1 {
		t.Errorf("layout event: %+v", got)
	}
}

// pathRenderer is a 100-unit horizontal path in raw coordinates.
type pathRenderer struct {
	*journey.Polyline
}

func (r pathRenderer) ToPathSpace(raw journey.Vec2) journey.Vec2 { return raw }

func TestDonburiPresenter_FullJourney(t *testing.T) {
	world := donburi.NewWorld()
	sched := journey.NewTickScheduler()
	r := pathRenderer{journey.NewPolyline([]journey.Vec2{{X: 0, Y: 0}, {X: 100, Y: 0}})}

	cfg := journey.DefaultConfig()
	cfg.Continuous = true
	ctrl, err := journey.NewController(cfg, r, sched)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	ctrl.AddPresenter(NewDonburiPresenter(world))

	var reveals, finales, resets int
	RevealEventType.Subscribe(world, func(w donburi.World, e RevealEvent) { reveals++ })
	FinaleEventType.Subscribe(world, func(w donburi.World, e FinaleEvent) { finales++ })
	ResetEventType.Subscribe(world, func(w donburi.World, e ResetEvent) { resets++ })

	ctrl.Start()
	sched.RunFor(5*time.Second, 16*time.Millisecond)
	events.ProcessAllEvents(world)

	if reveals != 4 || finales != 1 || resets != 1 {
		t.Errorf("reveals=%d finales=%d resets=%d, want 4 1 1", reveals, finales, resets)
	}
}
