package folio

import "testing"

func TestIsInteractive(t *testing.T) {
	roleButton := NewContainer("div")
	roleButton.Role = "button"
	roleOther := NewContainer("div")
	roleOther.Role = "link"
	disposed := NewButton("gone", "x")
	disposed.Dispose()

	tests := []struct {
		name string
		node *Node
		want bool
	}{
		{"nil", nil, false},
		{"generic", NewText("p", "hello"), false},
		{"button", NewButton("b", ""), true},
		{"link", NewLink("a", ""), true},
		{"role button", roleButton, true},
		{"other role", roleOther, false},
		{"card", NewCard("card"), true},
		{"disposed", disposed, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsInteractive(tt.node); got != tt.want {
				t.Errorf("IsInteractive = %v, want %v", got, tt.want)
			}
		})
	}
}

// chain builds button > g1 > g2 > leaf and returns (button, leaf).
func chain() (*Node, *Node) {
	btn := NewButton("btn", "")
	g1 := NewContainer("g1")
	g2 := NewContainer("g2")
	leaf := NewText("leaf", "Deep")
	btn.AddChild(g1)
	g1.AddChild(g2)
	g2.AddChild(leaf)
	return btn, leaf
}

func TestClosestInteractive(t *testing.T) {
	btn, leaf := chain()

	tests := []struct {
		maxDepth int
		want     *Node
	}{
		{0, nil},
		{2, nil},
		{3, btn},
		{DefaultMaxDepth, btn},
	}
	for _, tt := range tests {
		if got := ClosestInteractive(leaf, tt.maxDepth); got != tt.want {
			t.Errorf("ClosestInteractive(leaf, %d) = %v, want %v", tt.maxDepth, got, tt.want)
		}
	}
	if got := ClosestInteractive(btn, 0); got != btn {
		t.Error("an interactive target matches itself at depth 0")
	}
	if got := ClosestInteractive(nil, DefaultMaxDepth); got != nil {
		t.Error("nil target should not match")
	}
}

func TestClosestInteractivePrefersNearest(t *testing.T) {
	card := NewCard("card")
	link := NewLink("demo", "Live Demo")
	span := NewText("span", "Live Demo")
	card.AddChild(link)
	link.AddChild(span)

	if got := ClosestInteractive(span, DefaultMaxDepth); got != link {
		t.Errorf("got %v, want the link", got)
	}
}

func TestHoverLabel(t *testing.T) {
	btn := NewButton("btn", "")
	icon := NewContainer("icon")
	span := NewText("span", "  Submit \n")
	btn.AddChild(icon)
	btn.AddChild(span)

	tests := []struct {
		name    string
		target  *Node
		matched *Node
		want    string
	}{
		{"target text trimmed", span, btn, "Submit"},
		{"ancestor text when target is blank", icon, btn, "Submit"},
		{"matched is target", btn, btn, "Submit"},
		{"fallback", NewButton("empty", "   "), nil, "Click"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HoverLabel(tt.target, tt.matched, DefaultHoverLabel); got != tt.want {
				t.Errorf("HoverLabel = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	label, ok := Classify(NewButton("b", "  Send  "), DefaultMaxDepth, DefaultHoverLabel)
	if !ok || label != "Send" {
		t.Errorf("Classify(button) = (%q, %v), want (Send, true)", label, ok)
	}

	label, ok = Classify(NewButton("b", ""), DefaultMaxDepth, DefaultHoverLabel)
	if !ok || label != "Click" {
		t.Errorf("Classify(empty button) = (%q, %v), want (Click, true)", label, ok)
	}

	label, ok = Classify(NewText("p", "prose"), DefaultMaxDepth, DefaultHoverLabel)
	if ok || label != "" {
		t.Errorf("Classify(text) = (%q, %v), want (\"\", false)", label, ok)
	}

	label, ok = Classify(nil, DefaultMaxDepth, DefaultHoverLabel)
	if ok || label != "" {
		t.Errorf("Classify(nil) = (%q, %v), want (\"\", false)", label, ok)
	}
}
