package folio

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame event counts and timing.
// Only populated when Stage.debug is true.
type debugStats struct {
	inputTime time.Duration
	moves     int
	enters    int
	leaves    int
	downs     int
	ups       int
	clicks    int
}

func (d *debugStats) count(event EventType) {
	switch event {
	case EventPointerMove:
		d.moves++
	case EventPointerEnter:
		d.enters++
	case EventPointerLeave:
		d.leaves++
	case EventPointerDown:
		d.downs++
	case EventPointerUp:
		d.ups++
	case EventClick:
		d.clicks++
	}
}

func (d debugStats) quiet() bool {
	return d.enters+d.leaves+d.downs+d.ups+d.clicks == 0
}

// debugLog prints event stats to stderr for frames that changed hover or
// button state. Pure pointer motion is not logged.
func (s *Stage) debugLog(stats debugStats) {
	if !s.debug || stats.quiet() {
		return
	}
	hovered := "<none>"
	if n := s.pointer.hoverNode; n != nil {
		hovered = n.Name
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[folio] input: %v | move: %d enter: %d leave: %d down: %d up: %d click: %d | hover: %s\n",
		stats.inputTime, stats.moves, stats.enters, stats.leaves, stats.downs, stats.ups, stats.clicks, hovered)
}

// debugf prints a line to stderr when enabled is true.
func debugf(enabled bool, format string, args ...any) {
	if !enabled {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[folio] "+format+"\n", args...)
}
