package folio

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fade animates a single float64 from one value to another after an
// optional delay, writing each frame's value into Value. Call Update(dt)
// each frame; Done is set once the tween has finished.
//
// There is no global animation manager; owners call Update themselves.
type Fade struct {
	Value float64
	Done  bool

	delay float32
	tween *gween.Tween
}

// NewFade creates a fade from -> to over duration seconds that starts
// after delay seconds. Value holds from until the delay has elapsed.
func NewFade(from, to float64, duration, delay float32, fn ease.TweenFunc) *Fade {
	return &Fade{
		Value: from,
		delay: delay,
		tween: gween.New(float32(from), float32(to), duration, fn),
	}
}

// Update advances the fade by dt seconds and returns the current value.
func (f *Fade) Update(dt float32) float64 {
	if f.Done {
		return f.Value
	}
	if f.delay > 0 {
		f.delay -= dt
		if f.delay > 0 {
			return f.Value
		}
		dt = -f.delay
		f.delay = 0
	}
	val, finished := f.tween.Update(dt)
	f.Value = float64(val)
	f.Done = finished
	return f.Value
}
