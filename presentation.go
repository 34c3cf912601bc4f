package folio

// Target is a render-ready transform for one cursor primitive. X and Y are
// the primitive's top-left corner; scaling happens about its centre.
type Target struct {
	X, Y    float64
	Scale   float64
	Opacity float64
	Visible bool
}

// Presentation holds the targets for the three cursor primitives. The
// renderer is expected to ease toward these values; see CursorAnimator.
type Presentation struct {
	Dot   Target
	Ring  Target
	Label Target
	Text  string
}

// Scale and opacity targets. Pressed wins over hovering for both the dot
// and the ring.
const (
	dotScaleIdle    = 1.0
	dotScaleHover   = 1.5
	dotScalePressed = 0.8

	ringScaleIdle    = 1.0
	ringScaleHover   = 1.2
	ringScalePressed = 1.5

	ringOpacityIdle    = 0.3
	ringOpacityHover   = 0.8
	ringOpacityPressed = 0.6

	labelHiddenScale = 0.8
)

// CursorGeometry sizes and offsets the cursor primitives in pixels.
type CursorGeometry struct {
	DotSize     float64 `yaml:"dot_size"`
	RingSize    float64 `yaml:"ring_size"`
	LabelOffset Vec2    `yaml:"label_offset"`
}

// DefaultCursorGeometry returns a 20px dot, a 40px ring, and a label
// 20px right of and 10px above the pointer.
func DefaultCursorGeometry() CursorGeometry {
	return CursorGeometry{
		DotSize:     20,
		RingSize:    40,
		LabelOffset: Vec2{X: 20, Y: -10},
	}
}

// ComputePresentation maps s to presentation targets with the default geometry.
func ComputePresentation(s PointerState) Presentation {
	return DefaultCursorGeometry().Present(s)
}

// Present maps s to presentation targets. It has no side effects: the same
// state always yields the same targets.
func (g CursorGeometry) Present(s PointerState) Presentation {
	dotScale := dotScaleIdle
	ringScale := ringScaleIdle
	ringOpacity := ringOpacityIdle
	switch {
	case s.Pressed:
		dotScale = dotScalePressed
		ringScale = ringScalePressed
		ringOpacity = ringOpacityPressed
	case s.Hovering:
		dotScale = dotScaleHover
		ringScale = ringScaleHover
		ringOpacity = ringOpacityHover
	}

	p := Presentation{
		Dot: Target{
			X:       s.Position.X - g.DotSize/2,
			Y:       s.Position.Y - g.DotSize/2,
			Scale:   dotScale,
			Opacity: 1,
			Visible: true,
		},
		Ring: Target{
			X:       s.Position.X - g.RingSize/2,
			Y:       s.Position.Y - g.RingSize/2,
			Scale:   ringScale,
			Opacity: ringOpacity,
			Visible: true,
		},
		Label: Target{
			X:     s.Position.X + g.LabelOffset.X,
			Y:     s.Position.Y + g.LabelOffset.Y,
			Scale: labelHiddenScale,
		},
	}
	if s.Hovering && s.HoverLabel != "" {
		p.Label.Scale = 1
		p.Label.Opacity = 1
		p.Label.Visible = true
		p.Text = s.HoverLabel
	}
	return p
}
