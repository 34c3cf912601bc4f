package folio

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// SpringConfig describes a damped spring the way motion libraries do:
// stiffness and damping for a unit mass.
type SpringConfig struct {
	Stiffness float64 `yaml:"stiffness"`
	Damping   float64 `yaml:"damping"`
}

// Spring settings for the cursor primitives.
var (
	DotSpring   = SpringConfig{Stiffness: 500, Damping: 28}
	RingSpring  = SpringConfig{Stiffness: 300, Damping: 25}
	LabelSpring = SpringConfig{Stiffness: 400, Damping: 30}
)

// harmonica wants angular frequency and damping ratio:
// omega = sqrt(k/m), zeta = c / (2*sqrt(k*m)) with m = 1.
func (c SpringConfig) spring(tps int) harmonica.Spring {
	omega := math.Sqrt(math.Max(c.Stiffness, 0))
	zeta := 1.0
	if omega > 0 {
		zeta = c.Damping / (2 * omega)
	}
	return harmonica.NewSpring(harmonica.FPS(tps), omega, zeta)
}

// springValue is one animated scalar.
type springValue struct {
	pos, vel float64
}

func (v *springValue) step(s *harmonica.Spring, target float64) float64 {
	v.pos, v.vel = s.Update(v.pos, v.vel, target)
	return v.pos
}

func (v *springValue) snap(to float64) {
	v.pos = to
	v.vel = 0
}

// springTarget animates every field of a Target with one spring.
type springTarget struct {
	spring  harmonica.Spring
	x, y    springValue
	scale   springValue
	opacity springValue
}

func newSpringTarget(cfg SpringConfig, tps int) springTarget {
	return springTarget{spring: cfg.spring(tps)}
}

func (s *springTarget) step(t Target) Target {
	return Target{
		X:       s.x.step(&s.spring, t.X),
		Y:       s.y.step(&s.spring, t.Y),
		Scale:   s.scale.step(&s.spring, t.Scale),
		Opacity: s.opacity.step(&s.spring, t.Opacity),
		Visible: t.Visible,
	}
}

func (s *springTarget) snap(t Target) Target {
	s.x.snap(t.X)
	s.y.snap(t.Y)
	s.scale.snap(t.Scale)
	s.opacity.snap(t.Opacity)
	return t
}
