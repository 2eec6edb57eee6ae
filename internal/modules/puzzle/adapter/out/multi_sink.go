package out

import (
	"context"

	"wirematch/internal/modules/puzzle/domain"
	puzzleout "wirematch/internal/modules/puzzle/port/out"
)

type MultiSink []puzzleout.EventSink

func NewMultiSink(sinks ...puzzleout.EventSink) puzzleout.EventSink {
	out := make(MultiSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

func (m MultiSink) Publish(ctx context.Context, event domain.Event) {
	for _, s := range m {
		s.Publish(ctx, event)
	}
}
