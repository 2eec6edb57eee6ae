package domain

import (
	"fmt"

	apperrors "wirematch/internal/platform/errors"
)

// Registry is the source of truth for endpoint status within one level.
type Registry struct {
	left  []Endpoint
	right []Endpoint
}

func NewRegistry(level Level) *Registry {
	r := &Registry{
		left:  make([]Endpoint, len(level.Left)),
		right: make([]Endpoint, len(level.Right)),
	}
	copy(r.left, level.Left)
	copy(r.right, level.Right)
	return r
}

func (r *Registry) side(side Side) []Endpoint {
	if side == SideLeft {
		return r.left
	}
	if side == SideRight {
		return r.right
	}
	return nil
}

func (r *Registry) Find(ref EndpointRef) (Endpoint, bool) {
	eps := r.side(ref.Side)
	if ref.Index < 0 || ref.Index >= len(eps) {
		return Endpoint{}, false
	}
	return eps[ref.Index], true
}

func (r *Registry) FindByIdentity(side Side, id Identity) (Endpoint, bool) {
	for _, ep := range r.side(side) {
		if ep.Identity == id {
			return ep, true
		}
	}
	return Endpoint{}, false
}

// MarkConnected flips an endpoint to connected. A second call for the same
// endpoint leaves it untouched and returns ErrAlreadyConnected.
func (r *Registry) MarkConnected(ref EndpointRef) error {
	eps := r.side(ref.Side)
	if ref.Index < 0 || ref.Index >= len(eps) {
		return fmt.Errorf("endpoint %s/%d: %w", ref.Side, ref.Index, apperrors.ErrNotFound)
	}
	if eps[ref.Index].Connected {
		return apperrors.ErrAlreadyConnected
	}
	eps[ref.Index].Connected = true
	return nil
}

func (r *Registry) TotalCount(side Side) int { return len(r.side(side)) }

func (r *Registry) ConnectedCount(side Side) int {
	n := 0
	for _, ep := range r.side(side) {
		if ep.Connected {
			n++
		}
	}
	return n
}

func (r *Registry) UnconnectedCount(side Side) int {
	return r.TotalCount(side) - r.ConnectedCount(side)
}

// Endpoints returns a copy of one side in display order.
func (r *Registry) Endpoints(side Side) []Endpoint {
	eps := r.side(side)
	out := make([]Endpoint, len(eps))
	copy(out, eps)
	return out
}
