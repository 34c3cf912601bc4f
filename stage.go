package folio

import "time"

// EntityStore is the interface for optional ECS integration.
// When set on a Stage, pointer events on nodes with an EntityID, or inside
// one, are forwarded.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type     EventType
	EntityID uint32
	X, Y     float64
	PageX    float64
	PageY    float64
	Button   MouseButton
}

// PointerInput is one frame's raw pointer sample from the host.
type PointerInput struct {
	X, Y    float64
	Pressed bool
	Button  MouseButton
}

// pointerState is the per-frame pointer state machine.
type pointerState struct {
	seen      bool
	down      bool
	lastX     float64
	lastY     float64
	hitNode   *Node
	hoverNode *Node
	button    MouseButton
}

// Stage owns the page's node tree and turns raw pointer samples into
// enter, leave, move, down, up, and click events. It implements EventSource.
type Stage struct {
	Dispatcher

	root    *Node
	store   EntityStore
	debug   bool
	scrollY float64

	pointer pointerState
	hitBuf  []*Node

	injectQueue     []PointerInput
	screenshotQueue []string

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	stats debugStats
}

// NewStage creates a stage with an empty root container.
func NewStage() *Stage {
	return &Stage{
		root:          NewContainer("root"),
		ScreenshotDir: "screenshots",
	}
}

// Root returns the stage's root container node.
func (s *Stage) Root() *Node {
	return s.root
}

// SetScroll sets the page offset added to viewport Y before hit testing.
func (s *Stage) SetScroll(y float64) {
	s.scrollY = y
}

// Scroll returns the page offset.
func (s *Stage) Scroll() float64 {
	return s.scrollY
}

// SetEntityStore sets the optional ECS bridge.
func (s *Stage) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables per-frame event stats on stderr.
func (s *Stage) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// DebugMode reports whether debug mode is on.
func (s *Stage) DebugMode() bool {
	return s.debug
}

// Hovered returns the node currently under the pointer, or nil.
func (s *Stage) Hovered() *Node {
	return s.pointer.hoverNode
}

// Update consumes one frame of input. A queued synthetic event, if any,
// replaces the real sample for this frame.
func (s *Stage) Update(real PointerInput) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
		s.stats = debugStats{}
	}

	in := real
	if len(s.injectQueue) > 0 {
		in = s.injectQueue[0]
		copy(s.injectQueue, s.injectQueue[1:])
		s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]
	}
	s.processPointer(in)

	if s.debug {
		s.stats.inputTime = time.Since(t0)
		s.debugLog(s.stats)
	}
}

// Close releases the tree and forgets the hovered node. Registered
// callbacks stay registered; their owners remove them.
func (s *Stage) Close() {
	s.pointer = pointerState{}
	s.injectQueue = nil
	for len(s.root.children) > 0 {
		s.root.children[len(s.root.children)-1].Dispose()
	}
}

// --- Hit testing ---

// collectHittable walks the tree in painter order (DFS, ZIndex-stable),
// appending visible nodes with a non-empty hit area to buf. Invisible
// subtrees are skipped.
func collectHittable(n *Node, buf []*Node) []*Node {
	if !n.Visible || n.disposed {
		return buf
	}
	if !n.Bounds.Empty() {
		buf = append(buf, n)
	}
	for _, child := range sortedByZ(n.children) {
		buf = collectHittable(child, buf)
	}
	return buf
}

// sortedByZ returns children ordered by ZIndex, stable for equal values.
// The input order is returned as-is when it is already sorted.
func sortedByZ(children []*Node) []*Node {
	sorted := true
	for i := 1; i < len(children); i++ {
		if children[i].ZIndex < children[i-1].ZIndex {
			sorted = false
			break
		}
	}
	if sorted {
		return children
	}
	out := make([]*Node, len(children))
	copy(out, children)
	// Insertion sort: child lists are short.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].ZIndex < out[j-1].ZIndex; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// hitTest finds the topmost node at page coordinates (px, py).
// Returns nil if nothing is hit.
func (s *Stage) hitTest(px, py float64) *Node {
	s.hitBuf = collectHittable(s.root, s.hitBuf[:0])
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		if s.hitBuf[i].Bounds.Contains(px, py) {
			return s.hitBuf[i]
		}
	}
	return nil
}

// --- Input processing ---

// processPointer runs the pointer state machine for one sample.
// Order within a frame: move, leave, enter, then down or up (and click).
func (s *Stage) processPointer(in PointerInput) {
	ps := &s.pointer
	px, py := in.X, in.Y+s.scrollY
	target := s.hitTest(px, py)

	if !ps.seen || in.X != ps.lastX || in.Y != ps.lastY {
		ps.seen = true
		ps.lastX = in.X
		ps.lastY = in.Y
		s.fire(EventPointerMove, target, in.X, in.Y, in.Button)
	}

	if ps.hoverNode != nil && ps.hoverNode.disposed {
		ps.hoverNode = nil
	}
	if target != ps.hoverNode {
		if ps.hoverNode != nil {
			s.fire(EventPointerLeave, ps.hoverNode, in.X, in.Y, in.Button)
		}
		if target != nil {
			s.fire(EventPointerEnter, target, in.X, in.Y, in.Button)
		}
		ps.hoverNode = target
	}

	switch {
	case in.Pressed && !ps.down:
		ps.down = true
		ps.button = in.Button
		ps.hitNode = target
		s.fire(EventPointerDown, target, in.X, in.Y, ps.button)
	case !in.Pressed && ps.down:
		if ps.hitNode != nil && ps.hitNode == target {
			s.fire(EventClick, target, in.X, in.Y, ps.button)
		}
		s.fire(EventPointerUp, target, in.X, in.Y, ps.button)
		ps.down = false
		ps.hitNode = nil
	}
}

// --- Event dispatch ---

func (s *Stage) fire(event EventType, node *Node, x, y float64, button MouseButton) {
	ctx := PointerContext{
		Node: node, X: x, Y: y,
		PageX: x, PageY: y + s.scrollY,
		Button: button,
	}
	if node != nil {
		ctx.UserData = node.UserData
		// Text inside a button reports the button's entity.
		for n := node; n != nil && ctx.EntityID == 0; n = n.Parent {
			ctx.EntityID = n.EntityID
		}
	}
	// Scene-level handlers first.
	s.Dispatcher.Fire(event, ctx)
	// Per-node callback. Enter and leave stay on the hit node; down, up,
	// and click go to the nearest ancestor that handles them, so a press
	// on a button's label reaches the button.
	for n := node; n != nil; n = n.Parent {
		if fn := nodeCallback(n, event); fn != nil {
			fn(ctx)
			break
		}
		if event == EventPointerEnter || event == EventPointerLeave {
			break
		}
	}
	if s.debug {
		s.stats.count(event)
	}
	s.emitInteractionEvent(event, ctx)
}

func nodeCallback(n *Node, event EventType) func(PointerContext) {
	switch event {
	case EventPointerEnter:
		return n.OnPointerEnter
	case EventPointerLeave:
		return n.OnPointerLeave
	case EventPointerDown:
		return n.OnPointerDown
	case EventPointerUp:
		return n.OnPointerUp
	case EventClick:
		return n.OnClick
	}
	return nil
}

// --- ECS bridge ---

func (s *Stage) emitInteractionEvent(event EventType, ctx PointerContext) {
	if s.store == nil || ctx.EntityID == 0 {
		return
	}
	s.store.EmitEvent(InteractionEvent{
		Type:     event,
		EntityID: ctx.EntityID,
		X:        ctx.X,
		Y:        ctx.Y,
		PageX:    ctx.PageX,
		PageY:    ctx.PageY,
		Button:   ctx.Button,
	})
}
