package folio

// CursorAnimator eases the cursor primitives toward their presentation
// targets, one spring step per frame. The first Update snaps to the target
// so the cursor does not fly in from the origin.
//
// The label is mounted fresh each time it becomes visible: it starts at
// opacity 0 and scale 0.8 and springs in. Hiding is immediate.
type CursorAnimator struct {
	dot   springTarget
	ring  springTarget
	label springTarget

	current Presentation
	primed  bool
}

// NewCursorAnimator creates an animator stepping at tps updates per second.
func NewCursorAnimator(cfg CursorConfig, tps int) *CursorAnimator {
	if tps <= 0 {
		tps = 60
	}
	return &CursorAnimator{
		dot:   newSpringTarget(cfg.DotSpring, tps),
		ring:  newSpringTarget(cfg.RingSpring, tps),
		label: newSpringTarget(cfg.LabelSpring, tps),
	}
}

// Update advances every spring one step toward target and returns the
// smoothed presentation.
func (a *CursorAnimator) Update(target Presentation) Presentation {
	if !a.primed {
		a.primed = true
		a.current = Presentation{
			Dot:   a.dot.snap(target.Dot),
			Ring:  a.ring.snap(target.Ring),
			Label: a.label.snap(target.Label),
			Text:  target.Text,
		}
		return a.current
	}

	next := Presentation{
		Dot:  a.dot.step(target.Dot),
		Ring: a.ring.step(target.Ring),
		Text: target.Text,
	}

	switch {
	case !target.Label.Visible:
		next.Label = a.label.snap(Target{
			X:     target.Label.X,
			Y:     target.Label.Y,
			Scale: labelHiddenScale,
		})
	case !a.current.Label.Visible:
		a.label.snap(Target{
			X:     target.Label.X,
			Y:     target.Label.Y,
			Scale: labelHiddenScale,
		})
		next.Label = a.label.step(target.Label)
	default:
		next.Label = a.label.step(target.Label)
	}

	a.current = next
	return next
}

// Current returns the most recent smoothed presentation.
func (a *CursorAnimator) Current() Presentation {
	return a.current
}

// Reset forgets all motion; the next Update snaps again.
func (a *CursorAnimator) Reset() {
	a.primed = false
	a.current = Presentation{}
}
