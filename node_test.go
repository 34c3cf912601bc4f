package folio

import "testing"

// --- Constructor defaults ---

func TestConstructorDefaults(t *testing.T) {
	tests := []struct {
		name        string
		node        *Node
		kind        NodeKind
		text        string
		interactive bool
	}{
		{"container", NewContainer("c"), NodeGeneric, "", false},
		{"text", NewText("t", "hello"), NodeGeneric, "hello", false},
		{"button", NewButton("b", "Submit"), NodeButton, "Submit", true},
		{"link", NewLink("l", "Email Me"), NodeLink, "Email Me", true},
		{"card", NewCard("k"), NodeGeneric, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.node
			if n.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", n.Kind, tt.kind)
			}
			if n.Text != tt.text {
				t.Errorf("Text = %q, want %q", n.Text, tt.text)
			}
			if !n.Visible {
				t.Error("Visible should be true")
			}
			if got := IsInteractive(n); got != tt.interactive {
				t.Errorf("IsInteractive = %v, want %v", got, tt.interactive)
			}
		})
	}
}

func TestNodeKindString(t *testing.T) {
	for k, want := range map[NodeKind]string{NodeGeneric: "generic", NodeButton: "button", NodeLink: "link"} {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", k, got, want)
		}
	}
}

// --- AddChild ---

func TestAddChildBasic(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("child.Parent should be parent")
	}
	if parent.NumChildren() != 1 || parent.Children()[0] != child {
		t.Errorf("Children = %v, want [child]", parent.Children())
	}
}

func TestAddChildReparent(t *testing.T) {
	p1 := NewContainer("p1")
	p2 := NewContainer("p2")
	child := NewContainer("child")

	p1.AddChild(child)
	p2.AddChild(child)
	if p1.NumChildren() != 0 {
		t.Error("p1 should have 0 children after reparent")
	}
	if p2.NumChildren() != 1 || child.Parent != p2 {
		t.Error("child should belong to p2")
	}
}

func expectPanic(t *testing.T, what string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic: %s", what)
		}
	}()
	fn()
}

func TestAddChildPanics(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	a.AddChild(b)

	expectPanic(t, "cycle", func() { b.AddChild(a) })
	expectPanic(t, "self", func() { a.AddChild(a) })
	expectPanic(t, "nil", func() { a.AddChild(nil) })
}

// --- Removal ---

func TestRemoveChild(t *testing.T) {
	parent := NewContainer("parent")
	c1, c2, c3 := NewContainer("c1"), NewContainer("c2"), NewContainer("c3")
	parent.AddChild(c1)
	parent.AddChild(c2)
	parent.AddChild(c3)

	parent.RemoveChild(c2)
	if c2.Parent != nil {
		t.Error("removed child should have nil Parent")
	}
	got := parent.Children()
	if len(got) != 2 || got[0] != c1 || got[1] != c3 {
		t.Errorf("Children = %v, want [c1 c3]", got)
	}
}

func TestRemoveChildWrongParentPanic(t *testing.T) {
	p1 := NewContainer("p1")
	p2 := NewContainer("p2")
	child := NewContainer("child")
	p1.AddChild(child)
	expectPanic(t, "wrong parent", func() { p2.RemoveChild(child) })
}

func TestRemoveFromParent(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)
	child.RemoveFromParent()
	if parent.NumChildren() != 0 || child.Parent != nil {
		t.Error("child should be detached")
	}
	// No-op without a parent.
	child.RemoveFromParent()
}

// --- TextContent ---

func TestTextContent(t *testing.T) {
	btn := NewButton("btn", "")
	icon := NewContainer("icon")
	label := NewText("label", "Live ")
	inner := NewText("inner", "Demo")
	label.AddChild(inner)
	btn.AddChild(icon)
	btn.AddChild(label)

	if got := btn.TextContent(); got != "Live Demo" {
		t.Errorf("TextContent = %q, want %q", got, "Live Demo")
	}
	if got := icon.TextContent(); got != "" {
		t.Errorf("icon TextContent = %q, want empty", got)
	}
}

// --- Dispose ---

func TestDispose(t *testing.T) {
	parent := NewContainer("parent")
	child := NewButton("child", "x")
	grandchild := NewText("gc", "y")
	child.AddChild(grandchild)
	parent.AddChild(child)
	child.OnClick = func(PointerContext) {}

	child.Dispose()

	if !child.IsDisposed() || !grandchild.IsDisposed() {
		t.Error("child and grandchild should be disposed")
	}
	if parent.NumChildren() != 0 {
		t.Error("parent should have no children")
	}
	if child.OnClick != nil {
		t.Error("callbacks should be cleared")
	}
	if IsInteractive(child) {
		t.Error("disposed node should not be interactive")
	}
}

func TestDisposeIdempotent(t *testing.T) {
	n := NewContainer("n")
	n.Dispose()
	n.Dispose()
	if !n.IsDisposed() {
		t.Error("should be disposed")
	}
}
