package folio

import (
	"fmt"
	"strings"
)

// Page layout in pixels.
const (
	pageMargin   = 48
	itemGap      = 24
	headerHeight = 56
	titleHeight  = 40
	textHeight   = 24
	labelPadding = 12

	// headerScrolledAt is the scroll offset past which the header backdrop
	// turns nearly opaque.
	headerScrolledAt = 50
)

// Item sizes by kind.
var itemSizes = map[string]Vec2{
	"button": {X: 200, Y: 48},
	"link":   {X: 160, Y: 32},
	"card":   {X: 260, Y: 160},
}

// FrameInput is everything a host reports for one frame.
type FrameInput struct {
	// X and Y are the pointer position in viewport pixels.
	X, Y    float64
	Pressed bool
	Button  MouseButton
	// WheelY scrolls the page by this many pixels; positive moves down.
	WheelY float64
	// JumpTo names a section to scroll to, or "" for none.
	JumpTo string
}

// App is the whole portfolio minus the window: a loading screen, then the
// page with its ambient field and custom cursor. Hosts feed it one
// FrameInput per tick and draw from its accessors.
//
// App is not safe for concurrent use.
type App struct {
	cfg    Config
	colors Colors
	tps    int

	width, height int

	stage     *Stage
	tracker   *PointerTracker
	animator  *CursorAnimator
	field     *AmbientField
	projector *Projector
	sections  *SectionTracker
	loading   *LoadingScreen

	header   *Node
	navItems []*Node
	pages    map[string]*Node

	sectionHandle SectionHandle
	script        *Script
	elapsed       float64
	mounted       bool
	closed        bool
	frames        uint64

	cursor    Presentation
	projected []ProjectedPoint
}

// NewApp builds the page for a width x height viewport updated tps times
// per second. The loading screen starts immediately.
func NewApp(cfg Config, width, height, tps int) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: viewport %dx%d", ErrInvalidConfiguration, width, height)
	}
	if tps <= 0 {
		tps = 60
	}
	colors, err := cfg.Palette.Parse()
	if err != nil {
		return nil, err
	}
	field, err := NewAmbientField(cfg.Field)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:       cfg,
		colors:    colors,
		tps:       tps,
		width:     width,
		height:    height,
		stage:     NewStage(),
		animator:  NewCursorAnimator(cfg.Cursor, tps),
		field:     field,
		projector: NewProjector(DefaultCamera3D(), cfg.Field.PointSize, width, height),
		pages:     make(map[string]*Node, len(cfg.Sections)),
	}
	a.stage.SetDebugMode(cfg.Debug)
	a.build()
	if err := a.layout(); err != nil {
		return nil, err
	}
	a.loading = NewLoadingScreen(cfg.Loading, a.mount)
	if cfg.Loading.Seconds == 0 {
		a.loading.Update(0)
	}
	return a, nil
}

// mount runs when the loading screen finishes.
func (a *App) mount() {
	if a.closed {
		return
	}
	a.mounted = true
	a.elapsed = 0
	a.tracker = NewPointerTracker(a.stage, a.cfg.Cursor.Tracker)
	debugf(a.cfg.Debug, "mounted %d sections, %d points", len(a.cfg.Sections), a.field.Len())
}

// build creates the node tree: a fixed header with one nav button per
// section, then one container per section holding its title and items.
func (a *App) build() {
	root := a.stage.Root()
	var nextEntity uint32

	a.header = NewContainer("header")
	a.header.ZIndex = 10
	for _, sc := range a.cfg.Sections {
		name := sc.Name
		nav := NewButton("nav/"+name, "")
		nav.AddChild(NewText("nav/"+name+"/label", navLabel(name)))
		nav.UserData = name
		nav.OnClick = func(PointerContext) { a.jump(name) }
		nextEntity++
		nav.EntityID = nextEntity
		a.header.AddChild(nav)
		a.navItems = append(a.navItems, nav)
	}
	root.AddChild(a.header)

	for _, sc := range a.cfg.Sections {
		page := NewContainer("section/" + sc.Name)
		page.UserData = sc.Name
		if sc.Title != "" {
			page.AddChild(NewText("section/"+sc.Name+"/title", sc.Title))
		}
		for i, it := range sc.Items {
			n := a.buildItem(fmt.Sprintf("section/%s/%d", sc.Name, i), it)
			if IsInteractive(n) {
				nextEntity++
				n.EntityID = nextEntity
			}
			page.AddChild(n)
		}
		a.pages[sc.Name] = page
		root.AddChild(page)
	}
}

func (a *App) buildItem(name string, it ItemConfig) *Node {
	var n *Node
	switch it.Kind {
	case "button":
		n = NewButton(name, "")
	case "link":
		n = NewLink(name, "")
	case "card":
		n = NewCard(name)
	default:
		n = NewText(name, it.Text)
		n.Role = it.Role
		return n
	}
	n.Role = it.Role
	n.UserData = it
	if it.Title != "" {
		n.AddChild(NewText(name+"/title", it.Title))
	}
	if it.Text != "" {
		n.AddChild(NewText(name+"/label", it.Text))
	}
	switch {
	case it.Target != "":
		target := it.Target
		n.OnClick = func(PointerContext) { a.jump(target) }
	case it.Href != "":
		href := it.Href
		n.OnClick = func(PointerContext) { debugf(a.cfg.Debug, "open %s", href) }
	}
	return n
}

func navLabel(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// layout assigns page bounds for the current viewport and rebuilds the
// section tracker, keeping the current section in view.
func (a *App) layout() error {
	w, h := float64(a.width), float64(a.height)

	secs := make([]Section, len(a.cfg.Sections))
	for i, sc := range a.cfg.Sections {
		vh := sc.Height
		if vh == 0 {
			vh = 1
		}
		secs[i] = Section{Name: sc.Name, Height: vh * h}
	}
	tracker, err := NewSectionTracker(secs, h)
	if err != nil {
		return err
	}

	current := ""
	if a.sections != nil {
		current = a.sections.Current()
		a.sectionHandle.Remove()
	}
	a.sections = tracker
	a.sectionHandle = tracker.OnChange(a.sectionChanged)
	a.restoreSection(current)

	for _, sec := range tracker.Sections() {
		page := a.pages[sec.Name]
		page.Bounds = Rect{X: 0, Y: sec.Top, Width: w, Height: sec.Height}
		layoutSection(page, sec, w)
	}
	a.syncScroll()
	return nil
}

// layoutSection flows a section's children left to right, wrapping at the
// right margin. Titles and plain text take a full row.
func layoutSection(page *Node, sec Section, width float64) {
	x := float64(pageMargin)
	y := sec.Top + headerHeight + pageMargin
	rowH := 0.0
	newRow := func() {
		if x > pageMargin {
			y += rowH + itemGap
		}
		x = pageMargin
		rowH = 0
	}
	for _, n := range page.children {
		size, ok := nodeSize(n)
		if !ok {
			newRow()
			n.Bounds = Rect{X: x, Y: y, Width: width - 2*pageMargin, Height: textRowHeight(n)}
			y += n.Bounds.Height + itemGap
			continue
		}
		if x+size.X > width-pageMargin && x > pageMargin {
			newRow()
		}
		n.Bounds = Rect{X: x, Y: y, Width: size.X, Height: size.Y}
		layoutLabels(n)
		x += size.X + itemGap
		rowH = max(rowH, size.Y)
	}
}

func nodeSize(n *Node) (Vec2, bool) {
	switch {
	case n.Kind == NodeButton:
		return itemSizes["button"], true
	case n.Kind == NodeLink:
		return itemSizes["link"], true
	case n.Interactive:
		return itemSizes["card"], true
	}
	return Vec2{}, false
}

func textRowHeight(n *Node) float64 {
	if strings.HasSuffix(n.Name, "/title") {
		return titleHeight
	}
	return textHeight
}

// layoutLabels stacks an element's text children inside its padding.
func layoutLabels(n *Node) {
	y := n.Bounds.Y + labelPadding
	for _, c := range n.children {
		c.Bounds = Rect{
			X:      n.Bounds.X + labelPadding,
			Y:      y,
			Width:  n.Bounds.Width - 2*labelPadding,
			Height: min(textHeight, n.Bounds.Height-2*labelPadding),
		}
		y += textHeight
	}
}

// syncScroll pushes the tracker's scroll to the stage and pins the header
// to the top of the viewport.
func (a *App) syncScroll() {
	scroll := a.sections.ScrollOffset()
	a.stage.SetScroll(scroll)
	w := float64(a.width)
	a.header.Bounds = Rect{X: 0, Y: scroll, Width: w, Height: headerHeight}
	x := w - pageMargin
	for i := len(a.navItems) - 1; i >= 0; i-- {
		nav := a.navItems[i]
		width := 12*float64(len(nav.TextContent())) + 2*labelPadding
		x -= width
		nav.Bounds = Rect{X: x, Y: scroll + 8, Width: width, Height: headerHeight - 16}
		layoutLabels(nav)
		x -= 8
	}
}

// restoreSection brings name back into view after the tracker is rebuilt.
func (a *App) restoreSection(name string) {
	if name == "" || name == a.sections.Current() {
		return
	}
	if err := a.sections.ScrollTo(name); err != nil {
		debugf(a.cfg.Debug, "relayout: %v", err)
	}
}

func (a *App) jump(name string) {
	if err := a.sections.ScrollTo(name); err != nil {
		debugf(a.cfg.Debug, "jump: %v", err)
		return
	}
	a.syncScroll()
}

func (a *App) sectionChanged(prev, next string) {
	debugf(a.cfg.Debug, "section: %s -> %s", prev, next)
}

// Update advances the app by one tick.
func (a *App) Update(in FrameInput) {
	if a.closed {
		return
	}
	a.frames++
	dt := 1 / float64(a.tps)
	a.loading.Update(dt)
	if !a.mounted {
		return
	}
	a.elapsed += dt

	if a.script != nil {
		a.script.step(a)
	}
	if in.JumpTo != "" {
		a.jump(in.JumpTo)
	}
	if in.WheelY != 0 {
		a.sections.Scroll(in.WheelY)
		a.syncScroll()
	}

	a.stage.Update(PointerInput{X: in.X, Y: in.Y, Pressed: in.Pressed, Button: in.Button})

	a.field.Tick(a.elapsed, a.sections.Current())
	a.cursor = a.animator.Update(a.cfg.Cursor.Geometry.Present(a.tracker.State()))
}

// Resize relays out the page for a new viewport size.
func (a *App) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: viewport %dx%d", ErrInvalidConfiguration, width, height)
	}
	if width == a.width && height == a.height {
		return nil
	}
	a.width, a.height = width, height
	a.projector.Resize(width, height)
	return a.layout()
}

// Close tears the app down: the loading callback is cancelled, the
// tracker unsubscribes, and the page tree is released. Close is idempotent.
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true
	a.script = nil
	a.loading.Cancel()
	if a.tracker != nil {
		a.tracker.Close()
	}
	a.sectionHandle.Remove()
	a.stage.Close()
}

// ProjectedField projects the field for the current frame. The returned
// slice is reused on the next call.
func (a *App) ProjectedField() []ProjectedPoint {
	a.projected = a.projector.Project(a.field.Points(), a.field.Transform(), a.projected[:0])
	return a.projected
}

// HeaderScrolled reports whether the page has scrolled far enough for the
// header to darken.
func (a *App) HeaderScrolled() bool {
	return a.sections.ScrollOffset() > headerScrolledAt
}

// HeaderAlpha returns the header backdrop opacity.
func (a *App) HeaderAlpha() float64 {
	if a.HeaderScrolled() {
		return 0.95
	}
	return 0.8
}

// ActiveNav reports whether n is the header button for the current section.
func (a *App) ActiveNav(n *Node) bool {
	if n == nil || n.Parent != a.header {
		return false
	}
	name, ok := n.UserData.(string)
	return ok && name == a.sections.Current()
}

// Cursor returns the smoothed cursor presentation for this frame.
func (a *App) Cursor() Presentation { return a.cursor }

// PointerState returns the tracker's state, or the zero state before mount.
func (a *App) PointerState() PointerState {
	if a.tracker == nil {
		return PointerState{}
	}
	return a.tracker.State()
}

// Mounted reports whether the loading screen has finished.
func (a *App) Mounted() bool { return a.mounted }

// Closed reports whether Close has been called.
func (a *App) Closed() bool { return a.closed }

// Elapsed returns seconds since mount.
func (a *App) Elapsed() float64 { return a.elapsed }

// Frames returns the number of Update calls.
func (a *App) Frames() uint64 { return a.frames }

// Config returns the configuration the app was built with.
func (a *App) Config() Config { return a.cfg }

// Colors returns the parsed palette.
func (a *App) Colors() Colors { return a.colors }

// Stage returns the page's event source.
func (a *App) Stage() *Stage { return a.stage }

// Field returns the ambient point cloud.
func (a *App) Field() *AmbientField { return a.field }

// Sections returns the scroll tracker. Resize replaces it.
func (a *App) Sections() *SectionTracker { return a.sections }

// Loading returns the loading screen.
func (a *App) Loading() *LoadingScreen { return a.loading }

// Size returns the viewport size.
func (a *App) Size() (width, height int) { return a.width, a.height }

// Page returns the container node for a section.
func (a *App) Page(section string) (*Node, bool) {
	n, ok := a.pages[section]
	return n, ok
}
