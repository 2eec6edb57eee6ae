package service

import "time"

// Pacing holds the two delays of the solved-level sequence: input is
// blocked at once, the overlay shows after OverlayDelay and the next level
// is installed AdvanceDelay after that.
type Pacing struct {
	OverlayDelay time.Duration
	AdvanceDelay time.Duration
}

func DefaultPacing() Pacing {
	return Pacing{OverlayDelay: 300 * time.Millisecond, AdvanceDelay: 1500 * time.Millisecond}
}
