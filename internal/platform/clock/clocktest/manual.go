// Package clocktest provides a deterministic scheduler for tests.
package clocktest

import (
	"sort"
	"time"

	"wirematch/internal/platform/clock"
)

// ManualScheduler collects callbacks and only runs them when Advance moves
// its virtual time past their deadline.
type ManualScheduler struct {
	now     time.Duration
	seq     int
	pending []*manualTimer
}

type manualTimer struct {
	owner    *ManualScheduler
	deadline time.Duration
	seq      int
	fn       func()
	done     bool
}

func (t *manualTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	t.owner.remove(t)
	return true
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) clock.Timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &manualTimer{owner: s, deadline: s.now + d, seq: s.seq, fn: fn}
	s.pending = append(s.pending, t)
	return t
}

// Pending returns the number of callbacks that have not fired or been stopped.
func (s *ManualScheduler) Pending() int { return len(s.pending) }

// Elapsed returns the virtual time consumed so far.
func (s *ManualScheduler) Elapsed() time.Duration { return s.now }

// Advance moves virtual time forward by d, firing due callbacks in deadline
// order. Callbacks scheduled by a firing callback run in the same call when
// they fall due within the window.
func (s *ManualScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}
		s.now = next.deadline
		next.done = true
		s.remove(next)
		next.fn()
	}
	s.now = target
}

func (s *ManualScheduler) nextDue(target time.Duration) *manualTimer {
	if len(s.pending) == 0 {
		return nil
	}
	sort.SliceStable(s.pending, func(i, j int) bool {
		if s.pending[i].deadline == s.pending[j].deadline {
			return s.pending[i].seq < s.pending[j].seq
		}
		return s.pending[i].deadline < s.pending[j].deadline
	})
	if s.pending[0].deadline > target {
		return nil
	}
	return s.pending[0]
}

func (s *ManualScheduler) remove(t *manualTimer) {
	for i, p := range s.pending {
		if p == t {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}
