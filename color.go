package folio

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ParseColor parses a "#rrggbb" or "#rgb" hex string into an opaque Color.
func ParseColor(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

// Hex returns the "#rrggbb" form of c, ignoring alpha.
func (c Color) Hex() string {
	return colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}.Hex()
}

// GradientAt returns the color at t in [0, 1] along a two-stop gradient.
// Interpolation happens in CIE L*a*b* so the midpoint of the accent
// gradient does not go muddy. Alpha is interpolated linearly.
func GradientAt(from, to Color, t float64) Color {
	t = clamp01(t)
	a := colorful.Color{R: from.R, G: from.G, B: from.B}
	b := colorful.Color{R: to.R, G: to.G, B: to.B}
	m := a.BlendLab(b, t).Clamped()
	return Color{R: m.R, G: m.G, B: m.B, A: lerp(from.A, to.A, t)}
}
