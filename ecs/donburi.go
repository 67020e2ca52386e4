// Package ecs provides ECS adapters for journey.
package ecs

import (
	"github.com/phanxgames/journey"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// RevealEvent is published when a stop's payload is revealed.
type RevealEvent struct {
	Payload journey.Payload
}

// FinaleEvent is published once when the journey completes.
type FinaleEvent struct{}

// ProgressEvent is published for every rendered marker position.
type ProgressEvent struct {
	T     float64
	Point journey.Vec2
	Pulse float64
}

// ResetEvent is published when the scene rewinds.
type ResetEvent struct{}

// LayoutEvent is published when stop coordinates are recomputed.
type LayoutEvent struct {
	Points []journey.StopPoint
}

// Donburi event types. Subscribe to these in your ECS systems.
var (
	RevealEventType   = events.NewEventType[RevealEvent]()
	FinaleEventType   = events.NewEventType[FinaleEvent]()
	ProgressEventType = events.NewEventType[ProgressEvent]()
	ResetEventType    = events.NewEventType[ResetEvent]()
	LayoutEventType   = events.NewEventType[LayoutEvent]()
)

type donburiPresenter struct {
	world donburi.World
}

// NewDonburiPresenter creates a Presenter that publishes scene notifications
// into a Donburi world. Events are queued; consume them with
// events.Subscribe and ProcessEvents.
func NewDonburiPresenter(world donburi.World) journey.Presenter {
	return &donburiPresenter{world: world}
}

func (p *donburiPresenter) OnReveal(pl *journey.Payload) {
	RevealEventType.Publish(p.world, RevealEvent{Payload: *pl})
}

func (p *donburiPresenter) OnFinale() {
	FinaleEventType.Publish(p.world, FinaleEvent{})
}

func (p *donburiPresenter) OnProgress(t float64, point journey.Vec2, pulse float64) {
	ProgressEventType.Publish(p.world, ProgressEvent{T: t, Point: point, Pulse: pulse})
}

func (p *donburiPresenter) OnReset() {
	ResetEventType.Publish(p.world, ResetEvent{})
}

// OnLayout copies points so queued events never alias controller state.
func (p *donburiPresenter) OnLayout(points []journey.StopPoint) {
	LayoutEventType.Publish(p.world, LayoutEvent{Points: append([]journey.StopPoint(nil), points...)})
}
