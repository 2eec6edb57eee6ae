package domain

import "time"

type EventKind string

const (
	EventLevelStarted     EventKind = "level_started"
	EventGestureStarted   EventKind = "gesture_started"
	EventGestureIgnored   EventKind = "gesture_ignored"
	EventGestureRejected  EventKind = "gesture_rejected"
	EventGestureCancelled EventKind = "gesture_cancelled"
	EventConnection       EventKind = "connection_committed"
	EventLevelSolved      EventKind = "level_solved"
	EventOverlayShown     EventKind = "overlay_shown"
	EventLevelAdvanced    EventKind = "level_advanced"
	EventHighScore        EventKind = "high_score"
	EventGameReset        EventKind = "game_reset"
)

// Event is published for every state change worth observing outside the
// game loop (logs, metrics).
type Event struct {
	Kind      EventKind
	SessionID string
	Level     int
	HighScore int
	Identity  Identity
	Reason    error
	At        time.Time
}
