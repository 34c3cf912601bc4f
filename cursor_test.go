package folio

import "testing"

func TestPointerMoveLastWriteWins(t *testing.T) {
	tr := NewPointerTracker(nil, DefaultTrackerConfig())
	moves := []Vec2{{1, 2}, {300, 40}, {-5, 7.5}, {640, 480}}
	for _, m := range moves {
		tr.OnPointerMove(m.X, m.Y)
	}
	if got := tr.State().Position; got != moves[len(moves)-1] {
		t.Errorf("Position = %v, want %v", got, moves[len(moves)-1])
	}
}

func TestPointerEnterInteractive(t *testing.T) {
	tests := []struct {
		name   string
		target *Node
		label  string
	}{
		{"button text", NewButton("b", " Submit "), "Submit"},
		{"empty button", NewButton("b", ""), "Click"},
		{"link", NewLink("a", "Email Me"), "Email Me"},
		{"card", NewCard("card"), "Click"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewPointerTracker(nil, DefaultTrackerConfig())
			tr.OnPointerEnterTarget(tt.target)
			s := tr.State()
			if !s.Hovering || s.HoverLabel != tt.label {
				t.Errorf("state = %+v, want hovering with label %q", s, tt.label)
			}
		})
	}
}

func TestPointerEnterNonInteractiveClears(t *testing.T) {
	for _, target := range []*Node{nil, NewText("p", "prose"), NewContainer("div")} {
		tr := NewPointerTracker(nil, DefaultTrackerConfig())
		tr.OnPointerEnterTarget(NewButton("b", "Go"))
		tr.OnPointerEnterTarget(target)
		if s := tr.State(); s.Hovering || s.HoverLabel != "" {
			t.Errorf("after entering %v: state = %+v, want not hovering", target, s)
		}
	}
}

func TestPointerLeaveIdempotent(t *testing.T) {
	tr := NewPointerTracker(nil, DefaultTrackerConfig())
	tr.OnPointerEnterTarget(NewButton("b", "Go"))
	tr.OnPointerLeaveTarget()
	first := tr.State()
	tr.OnPointerLeaveTarget()
	if first.Hovering || first.HoverLabel != "" || tr.State() != first {
		t.Errorf("leave should clear hover idempotently: %+v then %+v", first, tr.State())
	}
}

func TestPointerPressRelease(t *testing.T) {
	tr := NewPointerTracker(nil, DefaultTrackerConfig())
	tr.OnPointerDown()
	if !tr.State().Pressed {
		t.Error("Pressed should be true after down")
	}
	tr.OnPointerUp()
	if tr.State().Pressed {
		t.Error("Pressed should be false after up")
	}
}

func TestTrackerDefaultLabelConfig(t *testing.T) {
	tr := NewPointerTracker(nil, TrackerConfig{MaxDepth: 2, DefaultLabel: "Open"})
	tr.OnPointerEnterTarget(NewButton("b", ""))
	if got := tr.State().HoverLabel; got != "Open" {
		t.Errorf("HoverLabel = %q, want Open", got)
	}

	tr = NewPointerTracker(nil, TrackerConfig{MaxDepth: 2})
	tr.OnPointerEnterTarget(NewButton("b", ""))
	if got := tr.State().HoverLabel; got != DefaultHoverLabel {
		t.Errorf("HoverLabel = %q, want %q", got, DefaultHoverLabel)
	}
}

func TestTrackerOnChange(t *testing.T) {
	tr := NewPointerTracker(nil, DefaultTrackerConfig())
	var calls int
	var last PointerState
	tr.SetOnChange(func(s PointerState) {
		calls++
		last = s
	})
	tr.OnPointerMove(3, 4)
	tr.OnPointerDown()
	if calls != 2 || !last.Pressed || last.Position != (Vec2{3, 4}) {
		t.Errorf("calls=%d last=%+v", calls, last)
	}
}

func TestTrackerSubscribesAndCloses(t *testing.T) {
	var d Dispatcher
	tr := NewPointerTracker(&d, DefaultTrackerConfig())
	if d.HandlerCount() != 5 {
		t.Fatalf("HandlerCount = %d, want 5", d.HandlerCount())
	}

	d.Fire(EventPointerMove, PointerContext{X: 10, Y: 20})
	d.Fire(EventPointerEnter, PointerContext{Node: NewButton("b", "Go")})
	d.Fire(EventPointerDown, PointerContext{})
	want := PointerState{Position: Vec2{10, 20}, Hovering: true, HoverLabel: "Go", Pressed: true}
	if tr.State() != want {
		t.Fatalf("State = %+v, want %+v", tr.State(), want)
	}

	tr.Close()
	tr.Close()
	if !tr.Closed() {
		t.Error("Closed should be true")
	}
	if d.HandlerCount() != 0 {
		t.Errorf("HandlerCount after Close = %d, want 0", d.HandlerCount())
	}

	// Events after Close do not reach the tracker.
	d.Fire(EventPointerMove, PointerContext{X: 99, Y: 99})
	d.Fire(EventPointerLeave, PointerContext{})
	if tr.State() != want {
		t.Errorf("State changed after Close: %+v", tr.State())
	}
}

func TestTrackersAreIndependent(t *testing.T) {
	var d Dispatcher
	a := NewPointerTracker(&d, DefaultTrackerConfig())
	b := NewPointerTracker(&d, DefaultTrackerConfig())

	d.Fire(EventPointerMove, PointerContext{X: 1, Y: 1})
	a.Close()
	d.Fire(EventPointerMove, PointerContext{X: 2, Y: 2})

	if a.State().Position != (Vec2{1, 1}) {
		t.Errorf("closed tracker Position = %v, want (1,1)", a.State().Position)
	}
	if b.State().Position != (Vec2{2, 2}) {
		t.Errorf("open tracker Position = %v, want (2,2)", b.State().Position)
	}
	if d.HandlerCount() != 5 {
		t.Errorf("HandlerCount = %d, want 5", d.HandlerCount())
	}
}

// Pressing while hovering a button labeled Submit shows the pressed cursor
// with the label still up.
func TestPressWhileHoveringSubmit(t *testing.T) {
	s := NewStage()
	btn := NewButton("submit", "")
	btn.Bounds = Rect{X: 100, Y: 100, Width: 120, Height: 40}
	label := NewText("submit/label", "Submit")
	label.Bounds = Rect{X: 110, Y: 108, Width: 100, Height: 24}
	btn.AddChild(label)
	s.Root().AddChild(btn)

	tr := NewPointerTracker(s, DefaultTrackerConfig())
	defer tr.Close()

	s.Update(PointerInput{X: 150, Y: 120})
	s.Update(PointerInput{X: 150, Y: 120, Pressed: true})

	st := tr.State()
	if !st.Hovering || !st.Pressed || st.HoverLabel != "Submit" {
		t.Fatalf("state = %+v", st)
	}
	p := tr.Presentation()
	if p.Dot.Scale != 0.8 {
		t.Errorf("dot scale = %v, want 0.8", p.Dot.Scale)
	}
	if p.Ring.Opacity != 0.6 {
		t.Errorf("ring opacity = %v, want 0.6", p.Ring.Opacity)
	}
	if !p.Label.Visible || p.Text != "Submit" {
		t.Errorf("label = %+v %q, want visible Submit", p.Label, p.Text)
	}
}
