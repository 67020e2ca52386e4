package ebitenview

import "github.com/phanxgames/journey"

// Renderer maps a path authored in view-box units onto the game window.
// The view box is scaled uniformly to fit the window and centered, so path
// space stays fixed while the screen mapping follows the window size.
type Renderer struct {
	path    *journey.Polyline
	viewBox journey.Rect

	width, height int
	view          journey.Affine
	inv           journey.Affine
	screenPath    []journey.Vec2
}

// NewRenderer creates a Renderer for path, authored inside viewBox. Call
// SetViewport before drawing.
func NewRenderer(path *journey.Polyline, viewBox journey.Rect) *Renderer {
	r := &Renderer{
		path:    path,
		viewBox: viewBox,
		view:    journey.Identity,
		inv:     journey.Identity,
	}
	r.screenPath = r.path.Points()
	return r
}

// Length returns the path length in view-box units.
func (r *Renderer) Length() float64 { return r.path.Length() }

// PointAtLength returns the view-box point at arc length d.
func (r *Renderer) PointAtLength(d float64) journey.Vec2 { return r.path.PointAtLength(d) }

// ToPathSpace converts a window pixel coordinate into view-box units.
func (r *Renderer) ToPathSpace(raw journey.Vec2) journey.Vec2 { return r.inv.Apply(raw) }

// ToScreen converts a view-box point into window pixels.
func (r *Renderer) ToScreen(p journey.Vec2) journey.Vec2 { return r.view.Apply(p) }

// Scale returns the uniform view-box to window scale factor.
func (r *Renderer) Scale() float64 { return r.view[0] }

// ViewBox returns the authored view box.
func (r *Renderer) ViewBox() journey.Rect { return r.viewBox }

// Viewport returns the current window size.
func (r *Renderer) Viewport() (width, height int) { return r.width, r.height }

// ScreenPath returns the path vertices in window pixels. The returned slice
// MUST NOT be mutated.
func (r *Renderer) ScreenPath() []journey.Vec2 { return r.screenPath }

// SetViewport refits the view box to a width x height window. Returns false
// when the size is unchanged.
func (r *Renderer) SetViewport(width, height int) bool {
	if width == r.width && height == r.height {
		return false
	}
	r.width, r.height = width, height
	r.view = journey.FitViewBox(r.viewBox, journey.Rect{Width: float64(width), Height: float64(height)})
	r.inv = r.view.Invert()
	r.screenPath = r.path.Transform(r.view).Points()
	return true
}
