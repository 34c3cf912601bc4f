package folio

import (
	"errors"
	"fmt"
)

// ErrUnknownSection is returned when navigating to a section that is not on the page.
var ErrUnknownSection = errors.New("folio: unknown section")

// focusLine is where, as a fraction of the viewport height, a section has
// to reach before it becomes current.
const focusLine = 0.4

// Section is one vertical band of the page.
type Section struct {
	Name   string
	Top    float64
	Height float64
}

// Bottom returns the page Y just past the section.
func (s Section) Bottom() float64 {
	return s.Top + s.Height
}

type sectionHandler struct {
	id      uint32
	fn      func(prev, next string)
	removed bool
}

// SectionHandle allows removing a registered section-change callback.
type SectionHandle struct {
	id uint32
	t  *SectionTracker
}

// Remove unregisters the callback. Removing twice is a no-op.
func (h SectionHandle) Remove() {
	if h.t == nil {
		return
	}
	hs := h.t.handlers
	for i, sh := range hs {
		if sh.id == h.id {
			// Rebuild rather than shift so a refresh in progress keeps
			// its own view of the list.
			sh.removed = true
			h.t.handlers = append(hs[:i:i], hs[i+1:]...)
			return
		}
	}
}

// SectionTracker follows the scroll position and reports which section is
// current. It is the source of the "current section" the ambient field
// reacts to.
type SectionTracker struct {
	sections []Section
	viewport float64
	scroll   float64
	current  string

	handlers []*sectionHandler
	nextID   uint32
}

// NewSectionTracker lays sections out in order. Every section needs a
// unique non-empty name and a positive height. Top is ignored; sections
// are stacked top to bottom.
func NewSectionTracker(sections []Section, viewportHeight float64) (*SectionTracker, error) {
	if len(sections) == 0 {
		return nil, fmt.Errorf("%w: no sections", ErrInvalidConfiguration)
	}
	seen := make(map[string]bool, len(sections))
	laid := make([]Section, len(sections))
	top := 0.0
	for i, s := range sections {
		if s.Name == "" {
			return nil, fmt.Errorf("%w: section %d has no name", ErrInvalidConfiguration, i)
		}
		if seen[s.Name] {
			return nil, fmt.Errorf("%w: duplicate section %q", ErrInvalidConfiguration, s.Name)
		}
		if !(s.Height > 0) {
			return nil, fmt.Errorf("%w: section %q height %v must be positive", ErrInvalidConfiguration, s.Name, s.Height)
		}
		seen[s.Name] = true
		laid[i] = Section{Name: s.Name, Top: top, Height: s.Height}
		top += s.Height
	}
	t := &SectionTracker{
		sections: laid,
		viewport: viewportHeight,
		current:  laid[0].Name,
	}
	t.refresh()
	return t, nil
}

// Sections returns the laid-out sections. The returned slice MUST NOT be mutated.
func (t *SectionTracker) Sections() []Section {
	return t.sections
}

// Section looks up a section by name.
func (t *SectionTracker) Section(name string) (Section, bool) {
	for _, s := range t.sections {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}

// Current returns the name of the section under the focus line.
func (t *SectionTracker) Current() string {
	return t.current
}

// ScrollOffset returns the page Y at the top of the viewport.
func (t *SectionTracker) ScrollOffset() float64 {
	return t.scroll
}

// PageHeight returns the total height of all sections.
func (t *SectionTracker) PageHeight() float64 {
	last := t.sections[len(t.sections)-1]
	return last.Bottom()
}

// MaxScroll returns the largest valid scroll offset.
func (t *SectionTracker) MaxScroll() float64 {
	return max(t.PageHeight()-t.viewport, 0)
}

// SetViewportHeight updates the viewport height and re-clamps the scroll.
func (t *SectionTracker) SetViewportHeight(h float64) {
	t.viewport = h
	t.setScroll(t.scroll)
}

// Scroll moves the viewport by dy pixels, clamped to the page.
func (t *SectionTracker) Scroll(dy float64) {
	t.setScroll(t.scroll + dy)
}

// ScrollTo brings the named section to the top of the viewport.
func (t *SectionTracker) ScrollTo(name string) error {
	s, ok := t.Section(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSection, name)
	}
	t.setScroll(s.Top)
	return nil
}

// OnChange registers fn to run whenever the current section changes.
func (t *SectionTracker) OnChange(fn func(prev, next string)) SectionHandle {
	t.nextID++
	t.handlers = append(t.handlers, &sectionHandler{id: t.nextID, fn: fn})
	return SectionHandle{id: t.nextID, t: t}
}

func (t *SectionTracker) setScroll(y float64) {
	t.scroll = min(max(y, 0), t.MaxScroll())
	t.refresh()
}

func (t *SectionTracker) refresh() {
	focus := t.scroll + t.viewport*focusLine
	next := t.sections[len(t.sections)-1].Name
	for _, s := range t.sections {
		if focus < s.Bottom() {
			next = s.Name
			break
		}
	}
	if next == t.current {
		return
	}
	prev := t.current
	t.current = next
	for _, h := range t.handlers {
		if !h.removed {
			h.fn(prev, next)
		}
	}
}
