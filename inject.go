package folio

// InjectMove queues a pointer sample at the given viewport coordinates with
// the button state left as it is. Each queued sample consumes one frame and
// takes priority over real input.
func (s *Stage) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, PointerInput{
		X: x, Y: y,
		Pressed: s.queuedPressed(),
		Button:  MouseButtonLeft,
	})
}

// InjectPress queues a left-button press at the given viewport coordinates.
func (s *Stage) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, PointerInput{
		X: x, Y: y,
		Pressed: true,
		Button:  MouseButtonLeft,
	})
}

// InjectRelease queues a release at the given viewport coordinates.
func (s *Stage) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, PointerInput{
		X: x, Y: y,
		Pressed: false,
		Button:  MouseButtonLeft,
	})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same coordinates. Consumes two frames.
func (s *Stage) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// PendingInjections returns the number of queued synthetic samples.
func (s *Stage) PendingInjections() int {
	return len(s.injectQueue)
}

// queuedPressed returns the button state after all queued samples run.
func (s *Stage) queuedPressed() bool {
	if n := len(s.injectQueue); n > 0 {
		return s.injectQueue[n-1].Pressed
	}
	return s.pointer.down
}
