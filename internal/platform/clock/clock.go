package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// Timer is a pending callback registered with a Scheduler.
type Timer interface {
	// Stop prevents the callback from running. It reports whether the call
	// stopped the timer, false if it already fired or was stopped.
	Stop() bool
}

// Scheduler runs callbacks after a delay. Implementations decide on which
// goroutine fn runs; the game requires it to be the same single context that
// delivers input events.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}
