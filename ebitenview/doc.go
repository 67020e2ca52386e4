// Package ebitenview draws a journey with [Ebitengine].
//
// [Renderer] fits a path authored in view-box units to the window and maps
// cursor positions back into path space. [Presenter] draws the track, the
// travelled highlight, the pulsing marker, revealed messages, and the
// finale dialog. [Game] ties both to a journey.Controller and a
// journey.TickScheduler and implements ebiten.Game.
//
// Usage:
//
//	sched := journey.NewTickScheduler()
//	r := ebitenview.NewRenderer(path, journey.Rect{Width: 1000, Height: 600})
//	ctrl, err := journey.NewController(journey.DefaultConfig(), r, sched)
//	if err != nil {
//		log.Fatal(err)
//	}
//	g := ebitenview.NewGame(ctrl, sched, r, ebitenview.NewPresenter(r, sched))
//	if err := ebitenview.Run(g, ebitenview.RunConfig{Title: "Journey"}, true); err != nil {
//		log.Fatal(err)
//	}
//
// [Ebitengine]: https://ebitengine.org
package ebitenview
