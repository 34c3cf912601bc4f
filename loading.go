package folio

import (
	"fmt"

	"github.com/tanema/gween/ease"
)

// LoadingConfig controls the splash shown before the page mounts.
type LoadingConfig struct {
	Title   string `yaml:"title"`
	Message string `yaml:"message"`
	// Seconds is how long the splash stays up. Zero skips it.
	Seconds float64 `yaml:"seconds"`
	// FadeSeconds is how long the page takes to fade in afterwards.
	FadeSeconds float64 `yaml:"fade_seconds"`
}

// DefaultLoadingConfig shows the splash for two seconds.
func DefaultLoadingConfig() LoadingConfig {
	return LoadingConfig{
		Title:       "Creative Portfolio",
		Message:     "Loading amazing experiences...",
		Seconds:     2,
		FadeSeconds: 0.8,
	}
}

// Validate rejects negative durations.
func (c LoadingConfig) Validate() error {
	if c.Seconds < 0 || c.FadeSeconds < 0 {
		return fmt.Errorf("%w: loading durations must not be negative (seconds=%v, fade=%v)",
			ErrInvalidConfiguration, c.Seconds, c.FadeSeconds)
	}
	return nil
}

// LoadingScreen is a frame-driven countdown with a progress bar. When the
// countdown ends it calls its completion callback exactly once and starts
// fading the page in. Cancel stops it for good: the callback never fires
// after Cancel returns.
type LoadingScreen struct {
	cfg LoadingConfig

	remaining float64
	done      bool
	cancelled bool
	onDone    func()

	progress *Fade
	logo     *Fade
	message  *Fade
	content  *Fade
}

// NewLoadingScreen creates a running loading screen. onDone may be nil.
func NewLoadingScreen(cfg LoadingConfig, onDone func()) *LoadingScreen {
	l := &LoadingScreen{
		cfg:       cfg,
		remaining: cfg.Seconds,
		onDone:    onDone,
		progress:  NewFade(0, 1, float32(cfg.Seconds), 0, ease.InOutQuad),
		logo:      NewFade(0, 1, 0.8, 0.2, ease.OutQuad),
		message:   NewFade(0, 1, 0.5, 0.5, ease.OutQuad),
		content:   NewFade(0, 1, float32(cfg.FadeSeconds), 0, ease.OutQuad),
	}
	return l
}

// Update advances the countdown by dt seconds.
func (l *LoadingScreen) Update(dt float64) {
	if l.cancelled {
		return
	}
	if l.done {
		l.content.Update(float32(dt))
		return
	}

	l.progress.Update(float32(dt))
	l.logo.Update(float32(dt))
	l.message.Update(float32(dt))

	l.remaining -= dt
	if l.remaining > 0 {
		return
	}
	l.done = true
	if l.onDone != nil {
		fn := l.onDone
		l.onDone = nil
		fn()
	}
}

// Cancel stops the countdown. The completion callback will not run.
func (l *LoadingScreen) Cancel() {
	l.cancelled = true
	l.onDone = nil
}

// Active reports whether the splash is still showing.
func (l *LoadingScreen) Active() bool {
	return !l.done && !l.cancelled
}

// Done reports whether the countdown completed.
func (l *LoadingScreen) Done() bool {
	return l.done
}

// Cancelled reports whether Cancel was called.
func (l *LoadingScreen) Cancelled() bool {
	return l.cancelled
}

// Progress returns the eased progress bar fill in [0, 1].
func (l *LoadingScreen) Progress() float64 {
	if l.done {
		return 1
	}
	return clamp01(l.progress.Value)
}

// LogoAlpha returns the title opacity.
func (l *LoadingScreen) LogoAlpha() float64 {
	return clamp01(l.logo.Value)
}

// MessageAlpha returns the message opacity.
func (l *LoadingScreen) MessageAlpha() float64 {
	return clamp01(l.message.Value)
}

// ContentAlpha returns the page opacity: 0 while loading, then fading to 1.
func (l *LoadingScreen) ContentAlpha() float64 {
	if !l.done {
		return 0
	}
	if l.cfg.FadeSeconds == 0 {
		return 1
	}
	return clamp01(l.content.Value)
}

// Config returns the loading settings.
func (l *LoadingScreen) Config() LoadingConfig {
	return l.cfg
}
