package folio

import "strings"

// PointerContext carries pointer event data.
type PointerContext struct {
	// Node is the page element under the pointer, or nil over empty space.
	Node     *Node
	EntityID uint32
	UserData any
	// X and Y are viewport coordinates in pixels.
	X, Y float64
	// PageX and PageY are X and Y shifted by the stage's scroll offset.
	PageX, PageY float64
	Button       MouseButton
}

// Node is a page element: a section, a button, a link, a card, or a run of
// text. Nodes form a tree rooted at Stage.Root. Hover tracking walks the
// Parent chain, so a text run inside a button still counts as the button.
type Node struct {
	Name string
	Kind NodeKind
	// Role mirrors an ARIA role. Role "button" is interactive regardless of Kind.
	Role string
	// Text is the element's own visible text, not including descendants.
	Text string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Bounds is the element's hit area in page coordinates.
	Bounds Rect

	// Visibility & interaction
	Visible bool
	// Interactive marks an element as hoverable even when Kind and Role do
	// not (project cards, skill cards).
	Interactive bool

	// Ordering
	ZIndex int

	// Metadata
	UserData any
	EntityID uint32

	// Per-node callbacks (nil by default)
	OnPointerEnter func(PointerContext)
	OnPointerLeave func(PointerContext)
	OnPointerDown  func(PointerContext)
	OnPointerUp    func(PointerContext)
	OnClick        func(PointerContext)

	disposed bool
}

func newNode(name string, kind NodeKind, text string) *Node {
	return &Node{Name: name, Kind: kind, Text: text, Visible: true}
}

// NewContainer creates a layout node with no text of its own.
func NewContainer(name string) *Node {
	return newNode(name, NodeGeneric, "")
}

// NewText creates a generic node holding a run of text.
func NewText(name, text string) *Node {
	return newNode(name, NodeGeneric, text)
}

// NewButton creates a button-like node.
func NewButton(name, text string) *Node {
	return newNode(name, NodeButton, text)
}

// NewLink creates a link-like node.
func NewLink(name, text string) *Node {
	return newNode(name, NodeLink, text)
}

// NewCard creates a generic node explicitly marked interactive.
func NewCard(name string) *Node {
	n := newNode(name, NodeGeneric, "")
	n.Interactive = true
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("folio: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("folio: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("folio: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// TextContent returns the node's text followed by the text of all
// descendants in tree order, the way a DOM element's textContent reads.
func (n *Node) TextContent() string {
	if len(n.children) == 0 {
		return n.Text
	}
	var b strings.Builder
	n.appendText(&b)
	return b.String()
}

func (n *Node) appendText(b *strings.Builder) {
	b.WriteString(n.Text)
	for _, c := range n.children {
		c.appendText(b)
	}
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.UserData = nil
	n.OnPointerEnter = nil
	n.OnPointerLeave = nil
	n.OnPointerDown = nil
	n.OnPointerUp = nil
	n.OnClick = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node (or node itself).
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
