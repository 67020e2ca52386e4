// Package ecs bridges journey scene notifications into a [Donburi] world.
//
// [NewDonburiPresenter] returns a Presenter that publishes reveals, the
// finale, progress, resets, and stop layouts as typed Donburi events.
// Subscribe to [RevealEventType] and friends in your ECS systems to receive
// them.
//
// Usage:
//
//	ctrl.AddPresenter(ecs.NewDonburiPresenter(world))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
