package app

// shouldAdvance reports whether the viewer steps the simulation this frame. A
// completed simulation never advances; otherwise it runs when unpaused and a
// tick is due, or when a single step was requested.
func shouldAdvance(complete, paused, due, tickOnce bool) bool {
	if complete {
		return false
	}
	return (!paused && due) || tickOnce
}
