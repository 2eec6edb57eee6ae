package domain

import "fmt"

const (
	FirstLevel    = 1
	baseEndpoints = 3
)

type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return fmt.Sprintf("side(%d)", int(s))
	}
}

// EndpointRef is the stable reference to one endpoint within a level.
type EndpointRef struct {
	Side  Side
	Index int
}

type Endpoint struct {
	Ref       EndpointRef
	Identity  Identity
	Connected bool
}

type Level struct {
	Number int
	Left   []Endpoint
	Right  []Endpoint
}

func (l Level) EndpointCount() int { return len(l.Left) }

// EndpointCount is the number of pairs on a level: three plus one for every
// two levels, capped at the catalog size.
func EndpointCount(levelNumber int) int {
	if levelNumber < FirstLevel {
		levelNumber = FirstLevel
	}
	n := baseEndpoints + levelNumber/2
	if n > CatalogSize {
		n = CatalogSize
	}
	return n
}

func newEndpoints(side Side, ids []Identity) []Endpoint {
	out := make([]Endpoint, len(ids))
	for i, id := range ids {
		out[i] = Endpoint{Ref: EndpointRef{Side: side, Index: i}, Identity: id}
	}
	return out
}
