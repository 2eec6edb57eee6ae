package out

import (
	"context"

	"wirematch/internal/modules/puzzle/domain"
)

// Layout is the hit-test collaborator owned by the presentation layer.
type Layout interface {
	// HitTest resolves a screen point to the endpoint whose hit region
	// contains it.
	HitTest(p domain.Point) (domain.EndpointRef, bool)
	// Anchor is the screen position curves attach to for an endpoint.
	Anchor(ref domain.EndpointRef) (domain.Point, bool)
}

// ScorePort persists the high-water-mark level.
type ScorePort interface {
	Load(ctx context.Context) (int, error)
	Record(ctx context.Context, level int) (int, error)
}

type EventSink interface {
	Publish(ctx context.Context, event domain.Event)
}
