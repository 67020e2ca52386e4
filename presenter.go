package journey

// Renderer is the rendering collaborator: it owns the path geometry and the
// mapping from raw input coordinates into path space. It must be queryable
// synchronously at any time.
type Renderer interface {
	Path
	// ToPathSpace converts a raw input point (screen/window coordinates)
	// into the path's own coordinate space.
	ToPathSpace(raw Vec2) Vec2
}

// Presenter receives the reveal and progress notifications the Controller
// emits.
type Presenter interface {
	// OnReveal fires once per forward pass when a stop's payload is reached.
	OnReveal(p *Payload)
	// OnFinale fires when the terminal stop completes.
	OnFinale()
	// OnProgress fires every frame with the marker's progress, its path-space
	// coordinate, and the cosmetic pulse scale to apply to the marker.
	OnProgress(t float64, point Vec2, pulse float64)
	// OnReset fires when all reveal UI should be cleared.
	OnReset()
}

// LayoutObserver is optionally implemented by a Presenter that positions UI
// at the stops. OnLayout fires after the initial settle and after every
// debounced viewport change.
type LayoutObserver interface {
	OnLayout(points []StopPoint)
}

// ModalState reports whether a blocking finale dialog is currently open.
// While it is, advance and seek input is ignored.
type ModalState interface {
	FinaleOpen() bool
}

// PresenterFuncs adapts plain functions to Presenter and LayoutObserver.
// Nil fields are skipped.
type PresenterFuncs struct {
	Reveal   func(p *Payload)
	Finale   func()
	Progress func(t float64, point Vec2, pulse float64)
	Reset    func()
	Layout   func(points []StopPoint)
}

func (f PresenterFuncs) OnReveal(p *Payload) {
	if f.Reveal != nil {
		f.Reveal(p)
	}
}

func (f PresenterFuncs) OnFinale() {
	if f.Finale != nil {
		f.Finale()
	}
}

func (f PresenterFuncs) OnProgress(t float64, point Vec2, pulse float64) {
	if f.Progress != nil {
		f.Progress(t, point, pulse)
	}
}

func (f PresenterFuncs) OnReset() {
	if f.Reset != nil {
		f.Reset()
	}
}

func (f PresenterFuncs) OnLayout(points []StopPoint) {
	if f.Layout != nil {
		f.Layout(points)
	}
}

// --- Presenter registry ---

type presenterEntry struct {
	id uint32
	p  Presenter
}

type presenterRegistry struct {
	entries []presenterEntry
	nextID  uint32
}

// CallbackHandle allows removing a registered presenter.
type CallbackHandle struct {
	id  uint32
	reg *presenterRegistry
}

// Remove unregisters the presenter so it no longer receives notifications.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	s := h.reg.entries
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = presenterEntry{}
			h.reg.entries = s[:len(s)-1]
			return
		}
	}
}

func (r *presenterRegistry) add(p Presenter) CallbackHandle {
	r.nextID++
	r.entries = append(r.entries, presenterEntry{id: r.nextID, p: p})
	return CallbackHandle{id: r.nextID, reg: r}
}

// each calls fn for every registered presenter in registration order. The
// slice is snapshotted so a presenter may unregister itself.
func (r *presenterRegistry) each(fn func(Presenter)) {
	for _, e := range append([]presenterEntry(nil), r.entries...) {
		fn(e.p)
	}
}
