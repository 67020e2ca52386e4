// Package journey is a path-driven timeline engine: a marker travels along a
// fixed 2D path, a highlight trails it, and stops along the way reveal
// messages and finally a finale.
//
// The engine is a single-threaded, in-memory playback state machine. It
// draws nothing itself; rendering, text, and effects belong to collaborators
// it calls into.
//
// # Quick start
//
//	sched := journey.NewTickScheduler()
//	ctrl, err := journey.NewController(journey.DefaultConfig(), renderer, sched)
//	if err != nil {
//		log.Fatal(err)
//	}
//	ctrl.AddPresenter(presenter)
//	ctrl.Prepare()
//	ctrl.Start()
//
//	// each frame:
//	sched.Tick(time.Since(epoch))
//	ctrl.Update()
//
// # Components
//
// [Sampler] maps progress t in [0, 1] to a path coordinate and resolves a
// click back to the nearest t. [Sequencer] owns the stops, the current-stop
// cursor, and which payloads have been revealed. [Timeline] plays one
// session at a time from one t to another, driven by [Scheduler] frames.
// [Controller] ties them together and notifies [Presenter]s.
//
// # Input
//
// [Controller.Start], [Controller.AdvanceOnInput], [Controller.Seek],
// [Controller.Reset], and [Controller.ViewportChanged] are the input surface.
// Input that arrives while a session is playing is dropped, never queued.
// For scripted or automated input, use the Inject methods or a
// [ScriptRunner]; both are consumed by [Controller.Update].
//
// # Seeking
//
// A seek is a jump. By default the stops it jumps over stay hidden
// ([SeekSkipIntermediate]); set [Config.SeekReveal] to
// [SeekReplayIntermediate] to reveal them on landing.
//
// # Frontends
//
// journey/ebitenview renders a scene with [Ebitengine]. The ecs module
// forwards notifications into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package journey
