package apperrors

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("not found")
	ErrNotStarted    = errors.New("game not started")
	ErrTransitioning = errors.New("level transition in progress")

	ErrInvalidGestureTarget = errors.New("invalid gesture target")
	ErrGestureInProgress    = errors.New("gesture already in progress")
	ErrMismatchedCommit     = errors.New("mismatched commit")
	ErrAlreadyConnected     = errors.New("endpoint already connected")
)
