package ebitenview

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/journey"
)

// Game runs a journey Controller inside an Ebitengine window. It ticks the
// scheduler at a fixed step of 1/TPS, turns mouse and keyboard input into
// controller calls, and refits the path when the window is resized.
//
// Input: click the track to seek, Space/Right to advance, S to start, R to
// reset, Enter/click to close the finale dialog, Esc to hide it at once.
type Game struct {
	// ShowFPS draws an FPS/TPS counter in the top-left corner.
	ShowFPS bool

	ctrl      *journey.Controller
	sched     *journey.TickScheduler
	renderer  *Renderer
	presenter *Presenter

	now     time.Duration
	prev    inputState
	hudText string
	hudAge  float64
}

// inputState is one frame's worth of sampled input.
type inputState struct {
	click   bool
	x, y    float64
	advance bool
	start   bool
	reset   bool
	confirm bool
	escape  bool
}

// NewGame wires ctrl, its scheduler, renderer, and presenter into a Game.
// The presenter is registered with ctrl and becomes its modal state.
func NewGame(ctrl *journey.Controller, sched *journey.TickScheduler, r *Renderer, p *Presenter) *Game {
	ctrl.AddPresenter(p)
	ctrl.SetModal(p)
	return &Game{
		ctrl:      ctrl,
		sched:     sched,
		renderer:  r,
		presenter: p,
	}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	step := time.Second / time.Duration(ebiten.TPS())
	g.now += step
	g.sched.Tick(g.now)

	g.handleInput(g.pollInput())
	g.presenter.Update(step.Seconds())
	g.ctrl.Update()
	g.updateHUD(step.Seconds())
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.presenter.Draw(screen)
	if g.ShowFPS {
		ebitenutil.DebugPrintAt(screen, g.hudText, 4, 4)
	}
}

// Layout implements ebiten.Game. The logical screen follows the window; a
// size change refits the path and schedules a stop layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.renderer.SetViewport(outsideWidth, outsideHeight) {
		g.ctrl.ViewportChanged()
	}
	return outsideWidth, outsideHeight
}

// pollInput samples the mouse and keyboard and reports press edges only.
func (g *Game) pollInput() inputState {
	mx, my := ebiten.CursorPosition()
	held := inputState{
		click:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		x:       float64(mx),
		y:       float64(my),
		advance: ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		start:   ebiten.IsKeyPressed(ebiten.KeyS),
		reset:   ebiten.IsKeyPressed(ebiten.KeyR),
		confirm: ebiten.IsKeyPressed(ebiten.KeyEnter),
		escape:  ebiten.IsKeyPressed(ebiten.KeyEscape),
	}
	edge := inputState{
		click:   held.click && !g.prev.click,
		x:       held.x,
		y:       held.y,
		advance: held.advance && !g.prev.advance,
		start:   held.start && !g.prev.start,
		reset:   held.reset && !g.prev.reset,
		confirm: held.confirm && !g.prev.confirm,
		escape:  held.escape && !g.prev.escape,
	}
	g.prev = held
	return edge
}

// handleInput dispatches one frame of input. While the finale dialog is open
// only dismissal and reset are honored.
func (g *Game) handleInput(in inputState) {
	if g.presenter.FinaleOpen() {
		switch {
		case in.reset:
			g.ctrl.Reset()
		case in.escape:
			g.presenter.Dismiss(true)
		case in.confirm, in.click:
			g.presenter.Dismiss(false)
		}
		return
	}
	switch {
	case in.start:
		g.ctrl.Start()
	case in.reset:
		g.ctrl.Reset()
	case in.advance:
		g.ctrl.AdvanceOnInput()
	case in.click:
		g.ctrl.Seek(journey.Vec2{X: in.x, Y: in.y})
	}
}

// updateHUD refreshes the FPS text roughly every half second.
func (g *Game) updateHUD(dt float64) {
	if !g.ShowFPS {
		return
	}
	g.hudAge += dt
	if g.hudText != "" && g.hudAge < 0.5 {
		return
	}
	g.hudAge = 0
	g.hudText = fmt.Sprintf("FPS: %.1f  TPS: %.1f  t=%.2f", ebiten.ActualFPS(), ebiten.ActualTPS(), g.ctrl.Progress())
}

// RunConfig holds window settings for Run.
type RunConfig struct {
	Title         string
	Width, Height int
	ShowFPS       bool
}

// Run opens a resizable window and runs g until it is closed. The controller
// is prepared and, unless autoStart is false, started.
func Run(g *Game, cfg RunConfig, autoStart bool) error {
	if cfg.Width <= 0 {
		cfg.Width = 960
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	g.ShowFPS = cfg.ShowFPS
	g.renderer.SetViewport(cfg.Width, cfg.Height)
	g.ctrl.Prepare()
	if autoStart {
		g.ctrl.Start()
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
