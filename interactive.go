package folio

import "strings"

const (
	// DefaultHoverLabel is shown when an interactive element has no text.
	DefaultHoverLabel = "Click"
	// DefaultMaxDepth bounds the ancestor walk of ClosestInteractive.
	DefaultMaxDepth = 8
)

// IsInteractive reports whether n itself is button-like, link-like, or
// explicitly marked interactive. A nil node is never interactive.
func IsInteractive(n *Node) bool {
	if n == nil || n.disposed {
		return false
	}
	return n.Kind == NodeButton ||
		n.Kind == NodeLink ||
		n.Role == "button" ||
		n.Interactive
}

// ClosestInteractive returns target or its nearest ancestor that is
// interactive, looking at no more than maxDepth ancestors above target.
// A maxDepth <= 0 checks target only. Returns nil when nothing matches.
func ClosestInteractive(target *Node, maxDepth int) *Node {
	depth := 0
	for n := target; n != nil; n = n.Parent {
		if IsInteractive(n) {
			return n
		}
		if depth >= maxDepth {
			break
		}
		depth++
	}
	return nil
}

// HoverLabel derives the cursor label for a hovered target whose
// interactive match is matched: the target's trimmed text, then the
// matched element's trimmed text, then fallback.
func HoverLabel(target, matched *Node, fallback string) string {
	if target != nil {
		if s := strings.TrimSpace(target.TextContent()); s != "" {
			return s
		}
	}
	if matched != nil && matched != target {
		if s := strings.TrimSpace(matched.TextContent()); s != "" {
			return s
		}
	}
	return fallback
}

// Classify runs the interactive predicate over target and, on a match,
// returns the hover label. ok is false for nil, disposed, or
// non-interactive targets.
func Classify(target *Node, maxDepth int, fallback string) (label string, ok bool) {
	matched := ClosestInteractive(target, maxDepth)
	if matched == nil {
		return "", false
	}
	return HoverLabel(target, matched, fallback), true
}
