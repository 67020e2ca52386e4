package journey

// inputKind identifies a queued input event.
type inputKind uint8

const (
	inputStart inputKind = iota
	inputReset
	inputAdvance
	inputClick
	inputResize
)

// inputEvent is a single queued input. point is the raw click position for
// inputClick.
type inputEvent struct {
	kind  inputKind
	point Vec2
}

// InjectStart queues a start request. Queued input is consumed one event per
// Update, the same way a user produces at most one input per frame.
func (c *Controller) InjectStart() {
	c.injectQueue = append(c.injectQueue, inputEvent{kind: inputStart})
}

// InjectReset queues a reset request.
func (c *Controller) InjectReset() {
	c.injectQueue = append(c.injectQueue, inputEvent{kind: inputReset})
}

// InjectAdvance queues an advance request.
func (c *Controller) InjectAdvance() {
	c.injectQueue = append(c.injectQueue, inputEvent{kind: inputAdvance})
}

// InjectClick queues a seek click at the given raw input coordinates.
func (c *Controller) InjectClick(x, y float64) {
	c.injectQueue = append(c.injectQueue, inputEvent{kind: inputClick, point: Vec2{x, y}})
}

// InjectResize queues a viewport-changed notification.
func (c *Controller) InjectResize() {
	c.injectQueue = append(c.injectQueue, inputEvent{kind: inputResize})
}

// Update runs once per frame after the scheduler has ticked: it steps an
// attached script, then consumes at most one queued input event.
func (c *Controller) Update() {
	if c.script != nil {
		c.script.step(c)
	}
	c.processInjectedInput()
}

// processInjectedInput pops one event from the queue and dispatches it.
// Returns true if an event was consumed.
func (c *Controller) processInjectedInput() bool {
	if len(c.injectQueue) == 0 {
		return false
	}
	evt := c.injectQueue[0]
	copy(c.injectQueue, c.injectQueue[1:])
	c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]

	switch evt.kind {
	case inputStart:
		c.Start()
	case inputReset:
		c.Reset()
	case inputAdvance:
		c.AdvanceOnInput()
	case inputClick:
		c.Seek(evt.point)
	case inputResize:
		c.ViewportChanged()
	}
	return true
}
