package domain

// State is a read-only view of a game for rendering. Every slice is a copy.
type State struct {
	SessionID     string
	Level         int
	HighScore     int
	Left          []Endpoint
	Right         []Endpoint
	Connections   []Connection
	Curves        []Curve
	Gesture       Gesture
	Dragging      bool
	Transitioning bool
	Overlay       bool
}

// Solved reports whether every pair on the level is connected.
func (s State) Solved() bool {
	return len(s.Left) > 0 && len(s.Connections) == len(s.Left)
}
