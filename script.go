package folio

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Script actions.
const (
	ActionMove       = "move"
	ActionPress      = "press"
	ActionRelease    = "release"
	ActionClick      = "click"
	ActionScroll     = "scroll"
	ActionJump       = "jump"
	ActionWait       = "wait"
	ActionScreenshot = "screenshot"
	ActionExpect     = "expect"
)

// ScriptStep is one action in an input script. Which fields matter depends
// on Action:
//
//	move, press, release, click  x, y (viewport pixels)
//	scroll                       dy (pixels, positive is down)
//	jump                         section
//	wait                         frames
//	screenshot                   label (file name stem)
//	expect                       section and/or label (hover label, "" for none)
type ScriptStep struct {
	Action  string  `yaml:"action"`
	X       float64 `yaml:"x,omitempty"`
	Y       float64 `yaml:"y,omitempty"`
	DY      float64 `yaml:"dy,omitempty"`
	Section string  `yaml:"section,omitempty"`
	Label   *string `yaml:"label,omitempty"`
	Frames  int     `yaml:"frames,omitempty"`
}

func (st ScriptStep) label() string {
	if st.Label == nil {
		return ""
	}
	return *st.Label
}

// Script replays a recorded walk through the page, one step per frame once
// the page has mounted. Pointer steps go through the stage's inject queue,
// so the next step waits until they have been consumed. Failed expect
// steps are collected rather than stopping the run.
type Script struct {
	steps    []ScriptStep
	next     int
	wait     int
	done     bool
	failures []string
}

// ParseScript decodes a YAML script of the form
//
//	steps:
//	  - {action: click, x: 148, y: 192}
//	  - {action: expect, section: projects}
func ParseScript(data []byte) (*Script, error) {
	var doc struct {
		Steps []ScriptStep `yaml:"steps"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(doc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range doc.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse script: step %d: %w", i, err)
		}
	}
	return &Script{steps: doc.Steps}, nil
}

// LoadScript reads and parses a script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load script: %w", err)
	}
	return ParseScript(data)
}

func (st ScriptStep) validate() error {
	switch st.Action {
	case ActionMove, ActionPress, ActionRelease, ActionClick, ActionWait, ActionScreenshot:
	case ActionScroll:
		if st.DY == 0 {
			return fmt.Errorf("scroll needs a non-zero dy")
		}
	case ActionJump:
		if st.Section == "" {
			return fmt.Errorf("jump needs a section")
		}
	case ActionExpect:
		if st.Section == "" && st.Label == nil {
			return fmt.Errorf("expect needs a section or a label")
		}
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

// Done reports whether every step has run.
func (sc *Script) Done() bool { return sc.done }

// Failures returns one message per failed expect step.
func (sc *Script) Failures() []string { return sc.failures }

// SetScript attaches sc to the app, replacing any previous script. Section
// names in jump and expect steps must exist on this page. A nil sc detaches.
func (a *App) SetScript(sc *Script) error {
	if sc != nil {
		for i, st := range sc.steps {
			if st.Section == "" {
				continue
			}
			if _, ok := a.sections.Section(st.Section); !ok {
				return fmt.Errorf("script step %d: %w %q", i, ErrUnknownSection, st.Section)
			}
		}
	}
	a.script = sc
	return nil
}

// Script returns the attached script, or nil.
func (a *App) Script() *Script { return a.script }

// step runs at most one step. Called from App.Update before input is
// processed.
func (sc *Script) step(a *App) {
	if sc.done || len(a.stage.injectQueue) > 0 {
		return
	}
	if sc.wait > 0 {
		sc.wait--
		return
	}
	if sc.next >= len(sc.steps) {
		sc.done = true
		return
	}

	st := sc.steps[sc.next]
	sc.next++

	switch st.Action {
	case ActionMove:
		a.stage.InjectMove(st.X, st.Y)
	case ActionPress:
		a.stage.InjectPress(st.X, st.Y)
	case ActionRelease:
		a.stage.InjectRelease(st.X, st.Y)
	case ActionClick:
		a.stage.InjectClick(st.X, st.Y)
	case ActionScroll:
		a.sections.Scroll(st.DY)
		a.syncScroll()
	case ActionJump:
		a.jump(st.Section)
	case ActionWait:
		// This frame counts as one.
		sc.wait = max(st.Frames-1, 0)
	case ActionScreenshot:
		a.stage.Screenshot(st.label())
	case ActionExpect:
		sc.expect(a, st)
	}

	if sc.next >= len(sc.steps) && sc.wait == 0 && len(a.stage.injectQueue) == 0 {
		sc.done = true
	}
}

func (sc *Script) expect(a *App, st ScriptStep) {
	if st.Section != "" {
		if got := a.sections.Current(); got != st.Section {
			sc.fail(a, "step %d: section is %q, want %q", sc.next-1, got, st.Section)
		}
	}
	if st.Label != nil {
		if got := a.PointerState().HoverLabel; got != *st.Label {
			sc.fail(a, "step %d: hover label is %q, want %q", sc.next-1, got, *st.Label)
		}
	}
}

func (sc *Script) fail(a *App, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	sc.failures = append(sc.failures, msg)
	debugf(a.cfg.Debug, "script: %s", msg)
}
