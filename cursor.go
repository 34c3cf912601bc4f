package folio

// PointerState is the cursor presentation state. HoverLabel is non-empty
// only while Hovering is true.
type PointerState struct {
	Position   Vec2
	Hovering   bool
	HoverLabel string
	Pressed    bool
}

// TrackerConfig tunes hover classification.
type TrackerConfig struct {
	// MaxDepth bounds how many ancestors are checked for an interactive match.
	MaxDepth int `yaml:"max_depth"`
	// DefaultLabel is used when the matched element has no visible text.
	DefaultLabel string `yaml:"default_label"`
}

// DefaultTrackerConfig returns the classification settings used by the portfolio.
func DefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{MaxDepth: DefaultMaxDepth, DefaultLabel: DefaultHoverLabel}
}

// PointerTracker turns raw pointer events into PointerState. Each tracker
// owns its state; two trackers on the same source never share anything.
//
// All methods must be called from the thread that drives the event source.
type PointerTracker struct {
	cfg      TrackerConfig
	state    PointerState
	handles  []CallbackHandle
	onChange func(PointerState)
	closed   bool
}

// NewPointerTracker creates a tracker and subscribes it to src. A nil src
// gives a detached tracker driven only by direct method calls.
func NewPointerTracker(src EventSource, cfg TrackerConfig) *PointerTracker {
	if cfg.DefaultLabel == "" {
		cfg.DefaultLabel = DefaultHoverLabel
	}
	t := &PointerTracker{cfg: cfg}
	if src != nil {
		t.handles = []CallbackHandle{
			src.OnPointerMove(func(ctx PointerContext) { t.OnPointerMove(ctx.X, ctx.Y) }),
			src.OnPointerEnter(func(ctx PointerContext) { t.OnPointerEnterTarget(ctx.Node) }),
			src.OnPointerLeave(func(PointerContext) { t.OnPointerLeaveTarget() }),
			src.OnPointerDown(func(PointerContext) { t.OnPointerDown() }),
			src.OnPointerUp(func(PointerContext) { t.OnPointerUp() }),
		}
	}
	return t
}

// State returns a copy of the current pointer state.
func (t *PointerTracker) State() PointerState {
	return t.state
}

// Presentation returns the presentation targets for the current state.
func (t *PointerTracker) Presentation() Presentation {
	return ComputePresentation(t.state)
}

// SetOnChange installs a callback invoked after every state mutation.
// Pass nil to clear it.
func (t *PointerTracker) SetOnChange(fn func(PointerState)) {
	t.onChange = fn
}

// OnPointerMove records the latest pointer position.
func (t *PointerTracker) OnPointerMove(x, y float64) {
	t.state.Position = Vec2{X: x, Y: y}
	t.changed()
}

// OnPointerEnterTarget classifies target and updates the hover state.
// A nil or non-interactive target clears hovering.
func (t *PointerTracker) OnPointerEnterTarget(target *Node) {
	label, ok := Classify(target, t.cfg.MaxDepth, t.cfg.DefaultLabel)
	t.state.Hovering = ok
	t.state.HoverLabel = label
	t.changed()
}

// OnPointerLeaveTarget clears the hover state.
func (t *PointerTracker) OnPointerLeaveTarget() {
	t.state.Hovering = false
	t.state.HoverLabel = ""
	t.changed()
}

// OnPointerDown marks the pointer as pressed.
func (t *PointerTracker) OnPointerDown() {
	t.state.Pressed = true
	t.changed()
}

// OnPointerUp clears the pressed flag.
func (t *PointerTracker) OnPointerUp() {
	t.state.Pressed = false
	t.changed()
}

// Close removes every callback registered on the event source and drops
// the change callback. Close is idempotent.
func (t *PointerTracker) Close() {
	if t.closed {
		return
	}
	t.closed = true
	for _, h := range t.handles {
		h.Remove()
	}
	t.handles = nil
	t.onChange = nil
}

// Closed reports whether Close has been called.
func (t *PointerTracker) Closed() bool {
	return t.closed
}

func (t *PointerTracker) changed() {
	if t.onChange != nil {
		t.onChange(t.state)
	}
}
