package folio

// EventSource is anything that delivers pointer events to registered
// callbacks. Stage implements it for real and injected input; Dispatcher
// implements it for hosts that translate their own events.
type EventSource interface {
	OnPointerMove(fn func(PointerContext)) CallbackHandle
	OnPointerEnter(fn func(PointerContext)) CallbackHandle
	OnPointerLeave(fn func(PointerContext)) CallbackHandle
	OnPointerDown(fn func(PointerContext)) CallbackHandle
	OnPointerUp(fn func(PointerContext)) CallbackHandle
}

// --- Handler registry ---

type pointerHandler struct {
	id      uint32
	fn      func(PointerContext)
	removed bool
}

// Dispatcher is a registry of scene-level pointer callbacks. Handlers for
// an event run in registration order. The zero value is ready to use.
type Dispatcher struct {
	pointerMove  []*pointerHandler
	pointerEnter []*pointerHandler
	pointerLeave []*pointerHandler
	pointerDown  []*pointerHandler
	pointerUp    []*pointerHandler
	click        []*pointerHandler
	nextID       uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id    uint32
	reg   *Dispatcher
	event EventType
}

// Remove unregisters this callback so it no longer fires. Removing twice,
// or removing a zero handle, is a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	list := h.reg.list(h.event)
	if list == nil {
		return
	}
	*list = removePointerHandler(*list, h.id)
}

// removePointerHandler marks the handler removed and returns a new slice
// without it. The old backing array is left intact so a Fire already
// ranging over it finishes safely and skips the removed entry.
func removePointerHandler(s []*pointerHandler, id uint32) []*pointerHandler {
	for i, h := range s {
		if h.id == id {
			h.removed = true
			return append(s[:i:i], s[i+1:]...)
		}
	}
	return s
}

func (d *Dispatcher) list(event EventType) *[]*pointerHandler {
	switch event {
	case EventPointerMove:
		return &d.pointerMove
	case EventPointerEnter:
		return &d.pointerEnter
	case EventPointerLeave:
		return &d.pointerLeave
	case EventPointerDown:
		return &d.pointerDown
	case EventPointerUp:
		return &d.pointerUp
	case EventClick:
		return &d.click
	}
	return nil
}

func (d *Dispatcher) register(event EventType, fn func(PointerContext)) CallbackHandle {
	d.nextID++
	id := d.nextID
	list := d.list(event)
	*list = append(*list, &pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: d, event: event}
}

// OnPointerMove registers a callback for pointer move events.
func (d *Dispatcher) OnPointerMove(fn func(PointerContext)) CallbackHandle {
	return d.register(EventPointerMove, fn)
}

// OnPointerEnter registers a callback for pointer enter events.
// Fired when the pointer moves over a new node.
func (d *Dispatcher) OnPointerEnter(fn func(PointerContext)) CallbackHandle {
	return d.register(EventPointerEnter, fn)
}

// OnPointerLeave registers a callback for pointer leave events.
// Fired when the pointer leaves a node (moves to a different node or to empty space).
func (d *Dispatcher) OnPointerLeave(fn func(PointerContext)) CallbackHandle {
	return d.register(EventPointerLeave, fn)
}

// OnPointerDown registers a callback for pointer down events.
func (d *Dispatcher) OnPointerDown(fn func(PointerContext)) CallbackHandle {
	return d.register(EventPointerDown, fn)
}

// OnPointerUp registers a callback for pointer up events.
func (d *Dispatcher) OnPointerUp(fn func(PointerContext)) CallbackHandle {
	return d.register(EventPointerUp, fn)
}

// OnClick registers a callback for click events.
func (d *Dispatcher) OnClick(fn func(PointerContext)) CallbackHandle {
	return d.register(EventClick, fn)
}

// Fire delivers ctx to every callback registered for event. A callback may
// remove itself or any other handle; removed callbacks do not run, even
// later in the same Fire. Callbacks added during Fire run from the next one.
func (d *Dispatcher) Fire(event EventType, ctx PointerContext) {
	list := d.list(event)
	if list == nil {
		return
	}
	for _, h := range *list {
		if !h.removed {
			h.fn(ctx)
		}
	}
}

// HandlerCount returns the number of registered callbacks across all events.
func (d *Dispatcher) HandlerCount() int {
	return len(d.pointerMove) + len(d.pointerEnter) + len(d.pointerLeave) +
		len(d.pointerDown) + len(d.pointerUp) + len(d.click)
}
