package folio

import (
	"errors"
	"testing"
)

func TestLoadingScreenCompletes(t *testing.T) {
	var calls int
	l := NewLoadingScreen(DefaultLoadingConfig(), func() { calls++ })

	for i := 0; i < 7; i++ {
		l.Update(0.25)
	}
	if calls != 0 || !l.Active() || l.Done() {
		t.Fatalf("after 1.75s: calls=%d active=%v done=%v", calls, l.Active(), l.Done())
	}
	if l.ContentAlpha() != 0 {
		t.Errorf("ContentAlpha while loading = %v, want 0", l.ContentAlpha())
	}

	l.Update(0.25)
	if calls != 1 || l.Active() || !l.Done() {
		t.Fatalf("after 2s: calls=%d active=%v done=%v", calls, l.Active(), l.Done())
	}
	if l.Progress() != 1 {
		t.Errorf("Progress = %v, want 1", l.Progress())
	}

	for i := 0; i < 8; i++ {
		l.Update(0.25)
	}
	if calls != 1 {
		t.Errorf("callback ran %d times, want 1", calls)
	}
	if l.ContentAlpha() != 1 {
		t.Errorf("ContentAlpha after fade = %v, want 1", l.ContentAlpha())
	}
}

func TestLoadingScreenProgressMonotonic(t *testing.T) {
	l := NewLoadingScreen(DefaultLoadingConfig(), nil)
	prev := l.Progress()
	for i := 0; i < 130; i++ {
		l.Update(1.0 / 60)
		p := l.Progress()
		if p < prev || p < 0 || p > 1 {
			t.Fatalf("frame %d: progress %v after %v", i, p, prev)
		}
		prev = p
	}
	if !l.Done() {
		t.Error("should be done after 130 frames")
	}
}

func TestLoadingScreenFades(t *testing.T) {
	l := NewLoadingScreen(DefaultLoadingConfig(), nil)
	l.Update(0.125)
	if l.LogoAlpha() != 0 {
		t.Errorf("logo alpha before its delay = %v, want 0", l.LogoAlpha())
	}
	l.Update(1.375)
	if l.LogoAlpha() != 1 {
		t.Errorf("logo alpha at 1.5s = %v, want 1", l.LogoAlpha())
	}
	if l.MessageAlpha() != 1 {
		t.Errorf("message alpha at 1.5s = %v, want 1", l.MessageAlpha())
	}
	if !l.Active() {
		t.Error("still loading at 1.5s")
	}
}

func TestLoadingScreenCancel(t *testing.T) {
	var calls int
	l := NewLoadingScreen(DefaultLoadingConfig(), func() { calls++ })
	l.Update(1)
	l.Cancel()
	for i := 0; i < 10; i++ {
		l.Update(1)
	}
	if calls != 0 {
		t.Errorf("callback ran %d times after Cancel", calls)
	}
	if !l.Cancelled() || l.Active() || l.Done() {
		t.Errorf("cancelled=%v active=%v done=%v", l.Cancelled(), l.Active(), l.Done())
	}
}

func TestLoadingScreenZeroDuration(t *testing.T) {
	var calls int
	cfg := LoadingConfig{Seconds: 0, FadeSeconds: 0}
	l := NewLoadingScreen(cfg, func() { calls++ })
	l.Update(0)
	if calls != 1 || !l.Done() {
		t.Fatalf("calls=%d done=%v, want immediate completion", calls, l.Done())
	}
	if l.ContentAlpha() != 1 {
		t.Errorf("ContentAlpha = %v, want 1 with no fade", l.ContentAlpha())
	}
}

func TestLoadingConfigValidate(t *testing.T) {
	if err := DefaultLoadingConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
	for _, cfg := range []LoadingConfig{{Seconds: -1}, {FadeSeconds: -0.5}} {
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("Validate(%+v) = %v, want ErrInvalidConfiguration", cfg, err)
		}
	}
}
