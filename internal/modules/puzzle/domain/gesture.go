package domain

import (
	apperrors "wirematch/internal/platform/errors"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseActive
)

func (p Phase) String() string {
	if p == PhaseActive {
		return "active"
	}
	return "idle"
}

type Outcome int

const (
	OutcomeIgnored Outcome = iota
	OutcomeStarted
	OutcomeMoved
	OutcomeCommitted
	OutcomeRejected
	OutcomeCancelled
)

var outcomeNames = [...]string{"ignored", "started", "moved", "committed", "rejected", "cancelled"}

func (o Outcome) String() string {
	if int(o) < 0 || int(o) >= len(outcomeNames) {
		return "unknown"
	}
	return outcomeNames[o]
}

// Gesture is the in-progress connection attempt.
type Gesture struct {
	Origin      Endpoint
	OriginPoint Point
	Pointer     Point
}

// Curve is the provisional curve from the origin to the live pointer.
func (g Gesture) Curve() Curve {
	return NewCurve(g.OriginPoint, g.Pointer)
}

// Target is what the hit-test collaborator resolved a screen point to.
// Found is false for empty space.
type Target struct {
	Ref    EndpointRef
	Anchor Point
	Found  bool
}

// Step reports what one input did to the machine. Reason carries the
// rejection sentinel for ignored and rejected inputs; it is informational
// and never a failure of the call.
type Step struct {
	Outcome    Outcome
	Reason     error
	Connection Connection
	Curve      Curve
}

// GestureMachine tracks at most one drag from a left endpoint and commits it
// into the registry and ledger when it ends on the matching right endpoint.
type GestureMachine struct {
	registry *Registry
	ledger   *Ledger
	phase    Phase
	active   Gesture
}

func NewGestureMachine(registry *Registry, ledger *Ledger) *GestureMachine {
	return &GestureMachine{registry: registry, ledger: ledger}
}

func (m *GestureMachine) Phase() Phase { return m.phase }

func (m *GestureMachine) Active() (Gesture, bool) {
	if m.phase != PhaseActive {
		return Gesture{}, false
	}
	return m.active, true
}

// Start begins a gesture when target is an unconnected left endpoint.
func (m *GestureMachine) Start(target Target) Step {
	if m.phase == PhaseActive {
		return Step{Outcome: OutcomeIgnored, Reason: apperrors.ErrGestureInProgress}
	}
	if !target.Found || target.Ref.Side != SideLeft {
		return Step{Outcome: OutcomeIgnored, Reason: apperrors.ErrInvalidGestureTarget}
	}
	origin, ok := m.registry.Find(target.Ref)
	if !ok || origin.Connected {
		return Step{Outcome: OutcomeIgnored, Reason: apperrors.ErrInvalidGestureTarget}
	}
	m.phase = PhaseActive
	m.active = Gesture{Origin: origin, OriginPoint: target.Anchor, Pointer: target.Anchor}
	return Step{Outcome: OutcomeStarted, Curve: m.active.Curve()}
}

// Move tracks the pointer. It never changes the origin.
func (m *GestureMachine) Move(p Point) Step {
	if m.phase != PhaseActive {
		return Step{Outcome: OutcomeIgnored}
	}
	m.active.Pointer = p
	return Step{Outcome: OutcomeMoved, Curve: m.active.Curve()}
}

// End resolves the gesture against the release target. The machine is idle
// afterwards whatever the outcome.
func (m *GestureMachine) End(target Target) Step {
	if m.phase != PhaseActive {
		return Step{Outcome: OutcomeIgnored}
	}
	g := m.active
	m.reset()

	if !target.Found {
		return Step{Outcome: OutcomeRejected, Reason: apperrors.ErrMismatchedCommit}
	}
	candidate, ok := m.registry.Find(target.Ref)
	if !ok || candidate.Ref.Side != SideRight || candidate.Connected || candidate.Identity != g.Origin.Identity {
		return Step{Outcome: OutcomeRejected, Reason: apperrors.ErrMismatchedCommit}
	}
	// The origin is re-read so a connection recorded after Start is refused.
	origin, ok := m.registry.Find(g.Origin.Ref)
	if !ok || origin.Connected {
		return Step{Outcome: OutcomeRejected, Reason: apperrors.ErrMismatchedCommit}
	}

	if err := m.registry.MarkConnected(origin.Ref); err != nil {
		return Step{Outcome: OutcomeRejected, Reason: err}
	}
	if err := m.registry.MarkConnected(candidate.Ref); err != nil {
		return Step{Outcome: OutcomeRejected, Reason: err}
	}
	conn := Connection{Identity: origin.Identity, Left: origin.Ref, Right: candidate.Ref}
	m.ledger.Append(conn)
	return Step{Outcome: OutcomeCommitted, Connection: conn, Curve: NewCurve(g.OriginPoint, target.Anchor)}
}

// Cancel discards an active gesture without touching the registry.
func (m *GestureMachine) Cancel() Step {
	if m.phase != PhaseActive {
		return Step{Outcome: OutcomeIgnored}
	}
	m.reset()
	return Step{Outcome: OutcomeCancelled}
}

func (m *GestureMachine) reset() {
	m.phase = PhaseIdle
	m.active = Gesture{}
}
