package app

import (
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"wirematch/internal/platform/clock"
)

// TimerFiredMsg carries a scheduled callback into the event loop so it runs
// inside Update, never alongside input handling.
type TimerFiredMsg struct {
	timer *loopTimer
	fn    func()
}

type loopTimer struct {
	timer   *time.Timer
	stopped atomic.Bool
}

// Stop prevents fn from running even when its message is already queued.
func (t *loopTimer) Stop() bool {
	if t.stopped.Swap(true) {
		return false
	}
	t.timer.Stop()
	return true
}

// LoopScheduler implements clock.Scheduler on top of a running program.
type LoopScheduler struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

func NewLoopScheduler() *LoopScheduler {
	return &LoopScheduler{}
}

// Attach binds the scheduler to the program that will receive timer
// messages. Timers firing before Attach are dropped.
func (s *LoopScheduler) Attach(send func(tea.Msg)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.send = send
}

func (s *LoopScheduler) AfterFunc(d time.Duration, fn func()) clock.Timer {
	t := &loopTimer{}
	t.timer = time.AfterFunc(d, func() {
		s.mu.Lock()
		send := s.send
		s.mu.Unlock()
		if send != nil {
			send(TimerFiredMsg{timer: t, fn: fn})
		}
	})
	return t
}

// run executes the callback unless its timer was stopped after firing.
func (msg TimerFiredMsg) run() bool {
	if msg.timer != nil && msg.timer.stopped.Swap(true) {
		return false
	}
	msg.fn()
	return true
}
