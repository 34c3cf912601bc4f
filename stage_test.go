package folio

import "testing"

// recordEvents registers scene-level handlers that append event names.
func recordEvents(s *Stage) *[]string {
	var log []string
	name := func(prefix string) func(PointerContext) {
		return func(ctx PointerContext) {
			target := "<nil>"
			if ctx.Node != nil {
				target = ctx.Node.Name
			}
			log = append(log, prefix+":"+target)
		}
	}
	s.OnPointerMove(name("move"))
	s.OnPointerEnter(name("enter"))
	s.OnPointerLeave(name("leave"))
	s.OnPointerDown(name("down"))
	s.OnPointerUp(name("up"))
	s.OnClick(name("click"))
	return &log
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestStageEventOrder(t *testing.T) {
	s := NewStage()
	a := NewButton("a", "A")
	a.Bounds = Rect{X: 0, Y: 0, Width: 50, Height: 50}
	b := NewButton("b", "B")
	b.Bounds = Rect{X: 100, Y: 0, Width: 50, Height: 50}
	s.Root().AddChild(a)
	s.Root().AddChild(b)
	log := recordEvents(s)

	s.Update(PointerInput{X: 10, Y: 10})
	s.Update(PointerInput{X: 110, Y: 10})
	s.Update(PointerInput{X: 110, Y: 10, Pressed: true})
	s.Update(PointerInput{X: 110, Y: 10})
	s.Update(PointerInput{X: 300, Y: 300})

	want := []string{
		"move:a", "enter:a",
		"move:b", "leave:a", "enter:b",
		"down:b",
		"click:b", "up:b",
		"move:<nil>", "leave:b",
	}
	if !equalStrings(*log, want) {
		t.Errorf("events =\n%v\nwant\n%v", *log, want)
	}
}

func TestStageClickRequiresSameNode(t *testing.T) {
	s := NewStage()
	a := NewButton("a", "A")
	a.Bounds = Rect{X: 0, Y: 0, Width: 50, Height: 50}
	b := NewButton("b", "B")
	b.Bounds = Rect{X: 100, Y: 0, Width: 50, Height: 50}
	s.Root().AddChild(a)
	s.Root().AddChild(b)

	var clicks int
	s.OnClick(func(PointerContext) { clicks++ })
	s.Update(PointerInput{X: 10, Y: 10, Pressed: true})
	s.Update(PointerInput{X: 110, Y: 10})
	if clicks != 0 {
		t.Errorf("clicks = %d, want 0 for press on a and release on b", clicks)
	}
}

func TestStageHitTestTopmost(t *testing.T) {
	s := NewStage()
	back := NewCard("back")
	back.Bounds = Rect{X: 0, Y: 0, Width: 100, Height: 100}
	front := NewButton("front", "F")
	front.Bounds = Rect{X: 0, Y: 0, Width: 100, Height: 100}
	// Added first but drawn on top.
	front.ZIndex = 1
	s.Root().AddChild(front)
	s.Root().AddChild(back)

	s.Update(PointerInput{X: 50, Y: 50})
	if s.Hovered() != front {
		t.Errorf("Hovered = %v, want front", s.Hovered())
	}

	front.Visible = false
	s.Update(PointerInput{X: 51, Y: 50})
	if s.Hovered() != back {
		t.Errorf("Hovered = %v, want back once front is hidden", s.Hovered())
	}
}

func TestStageChildOverParent(t *testing.T) {
	s := NewStage()
	btn := NewButton("btn", "")
	btn.Bounds = Rect{X: 0, Y: 0, Width: 100, Height: 40}
	label := NewText("label", "Go")
	label.Bounds = Rect{X: 10, Y: 10, Width: 80, Height: 20}
	btn.AddChild(label)
	s.Root().AddChild(btn)

	s.Update(PointerInput{X: 50, Y: 20})
	if s.Hovered() != label {
		t.Errorf("Hovered = %v, want label", s.Hovered())
	}
	s.Update(PointerInput{X: 5, Y: 5})
	if s.Hovered() != btn {
		t.Errorf("Hovered = %v, want btn in its padding", s.Hovered())
	}
}

func TestStageScrollOffset(t *testing.T) {
	s := NewStage()
	below := NewLink("below", "Email Me")
	below.Bounds = Rect{X: 0, Y: 1000, Width: 100, Height: 30}
	s.Root().AddChild(below)

	var ctx PointerContext
	s.OnPointerEnter(func(c PointerContext) { ctx = c })

	s.Update(PointerInput{X: 10, Y: 10})
	if s.Hovered() != nil {
		t.Fatal("link is off screen before scrolling")
	}
	s.SetScroll(990)
	s.Update(PointerInput{X: 10, Y: 15})
	if s.Hovered() != below {
		t.Fatalf("Hovered = %v, want the link", s.Hovered())
	}
	if ctx.Y != 15 || ctx.PageY != 1005 || s.Scroll() != 990 {
		t.Errorf("ctx Y=%v PageY=%v", ctx.Y, ctx.PageY)
	}
}

func TestStageNodeCallbacks(t *testing.T) {
	s := NewStage()
	btn := NewButton("btn", "Go")
	btn.Bounds = Rect{X: 0, Y: 0, Width: 100, Height: 40}
	btn.UserData = "payload"
	s.Root().AddChild(btn)

	var got []string
	btn.OnPointerEnter = func(PointerContext) { got = append(got, "enter") }
	btn.OnPointerDown = func(PointerContext) { got = append(got, "down") }
	btn.OnPointerUp = func(PointerContext) { got = append(got, "up") }
	btn.OnClick = func(ctx PointerContext) {
		got = append(got, "click")
		if ctx.UserData != "payload" {
			t.Errorf("UserData = %v", ctx.UserData)
		}
	}
	btn.OnPointerLeave = func(PointerContext) { got = append(got, "leave") }

	s.Update(PointerInput{X: 10, Y: 10})
	s.Update(PointerInput{X: 10, Y: 10, Pressed: true})
	s.Update(PointerInput{X: 10, Y: 10})
	s.Update(PointerInput{X: 500, Y: 500})

	want := []string{"enter", "down", "click", "up", "leave"}
	if !equalStrings(got, want) {
		t.Errorf("callbacks = %v, want %v", got, want)
	}
}

func TestStageDisposedHoverNode(t *testing.T) {
	s := NewStage()
	btn := NewButton("btn", "Go")
	btn.Bounds = Rect{X: 0, Y: 0, Width: 100, Height: 40}
	s.Root().AddChild(btn)
	log := recordEvents(s)

	s.Update(PointerInput{X: 10, Y: 10})
	btn.Dispose()
	s.Update(PointerInput{X: 11, Y: 10})

	for _, e := range *log {
		if e == "leave:btn" {
			t.Error("no leave should fire for a disposed node")
		}
	}
	if s.Hovered() != nil {
		t.Error("disposed node should not stay hovered")
	}
}

type recordingStore struct {
	events []InteractionEvent
}

func (r *recordingStore) EmitEvent(e InteractionEvent) { r.events = append(r.events, e) }

func TestStageEntityStore(t *testing.T) {
	s := NewStage()
	store := &recordingStore{}
	s.SetEntityStore(store)

	btn := NewButton("btn", "Go")
	btn.Bounds = Rect{X: 0, Y: 0, Width: 100, Height: 40}
	btn.EntityID = 9
	plain := NewText("p", "text")
	plain.Bounds = Rect{X: 0, Y: 100, Width: 100, Height: 40}
	s.Root().AddChild(btn)
	s.Root().AddChild(plain)

	s.Update(PointerInput{X: 10, Y: 10})
	s.Update(PointerInput{X: 10, Y: 110})

	// move+enter on btn, then leave on btn; plain has no entity.
	if len(store.events) != 3 {
		t.Fatalf("events = %+v, want 3", store.events)
	}
	for _, e := range store.events {
		if e.EntityID != 9 {
			t.Errorf("unexpected entity %d", e.EntityID)
		}
	}
	if store.events[2].Type != EventPointerLeave {
		t.Errorf("last event = %v, want leave", store.events[2].Type)
	}
}

func TestStageClose(t *testing.T) {
	s := NewStage()
	btn := NewButton("btn", "Go")
	btn.Bounds = Rect{X: 0, Y: 0, Width: 100, Height: 40}
	s.Root().AddChild(btn)
	s.Update(PointerInput{X: 10, Y: 10})
	s.InjectClick(10, 10)

	s.Close()
	if s.Root().NumChildren() != 0 || !btn.IsDisposed() {
		t.Error("Close should dispose the tree")
	}
	if s.Hovered() != nil || s.PendingInjections() != 0 {
		t.Error("Close should reset pointer state and the inject queue")
	}
}

func TestStageDebugMode(t *testing.T) {
	s := NewStage()
	if s.DebugMode() {
		t.Error("debug should default to off")
	}
	s.SetDebugMode(true)
	if !s.DebugMode() {
		t.Error("SetDebugMode(true) not applied")
	}
}

func TestStageCallbacksBubble(t *testing.T) {
	s := NewStage()
	btn := NewButton("btn", "")
	btn.Bounds = Rect{X: 0, Y: 0, Width: 100, Height: 40}
	btn.EntityID = 4
	label := NewText("btn/label", "Go")
	label.Bounds = Rect{X: 10, Y: 10, Width: 80, Height: 20}
	btn.AddChild(label)
	s.Root().AddChild(btn)
	store := &recordingStore{}
	s.SetEntityStore(store)

	var clicked, entered *Node
	btn.OnClick = func(ctx PointerContext) { clicked = ctx.Node }
	btn.OnPointerEnter = func(ctx PointerContext) { entered = ctx.Node }

	s.Update(PointerInput{X: 50, Y: 20})
	s.Update(PointerInput{X: 50, Y: 20, Pressed: true})
	s.Update(PointerInput{X: 50, Y: 20})

	if clicked != label {
		t.Errorf("button OnClick ctx.Node = %v, want the label that was hit", clicked)
	}
	if entered != nil {
		t.Error("enter should not bubble to the button")
	}
	for _, e := range store.events {
		if e.EntityID != 4 {
			t.Errorf("event %v entity = %d, want the button's 4", e.Type, e.EntityID)
		}
	}
	if len(store.events) != 5 {
		t.Errorf("events = %d, want move, enter, down, click, up", len(store.events))
	}
}
