package usecase

import (
	"context"
	"fmt"
	"math/rand/v2"

	"wirematch/internal/modules/puzzle/domain"
	"wirematch/internal/modules/puzzle/dto"
	puzzlein "wirematch/internal/modules/puzzle/port/in"
	"wirematch/internal/modules/puzzle/service"
	apperrors "wirematch/internal/platform/errors"
)

type Interactor struct {
	svc *service.GameService
}

func NewInteractor(svc *service.GameService) puzzlein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Start(ctx context.Context) (dto.StateOutput, error) {
	return toStateOutput(i.svc.Start(ctx)), nil
}

func (i *Interactor) PointerDown(ctx context.Context, input dto.PointerInput) (dto.GestureOutput, error) {
	step, err := i.svc.DragStart(ctx, toPoint(input))
	if err != nil {
		return dto.GestureOutput{}, err
	}
	return i.toGestureOutput(step), nil
}

func (i *Interactor) PointerMove(ctx context.Context, input dto.PointerInput) (dto.GestureOutput, error) {
	step, err := i.svc.DragMove(ctx, toPoint(input))
	if err != nil {
		return dto.GestureOutput{}, err
	}
	return i.toGestureOutput(step), nil
}

func (i *Interactor) PointerUp(ctx context.Context, input dto.PointerInput) (dto.GestureOutput, error) {
	step, err := i.svc.DragEnd(ctx, toPoint(input))
	if err != nil {
		return dto.GestureOutput{}, err
	}
	return i.toGestureOutput(step), nil
}

// Select replays a keyboard pick as pointer input at the endpoint's anchor.
// Picking a left endpoint while another is held switches the origin.
func (i *Interactor) Select(ctx context.Context, input dto.SelectInput) (dto.GestureOutput, error) {
	side, err := parseSide(input.Side)
	if err != nil {
		return dto.GestureOutput{}, err
	}
	anchor, ok := i.svc.Anchor(domain.EndpointRef{Side: side, Index: input.Index})
	if !ok {
		return dto.GestureOutput{}, fmt.Errorf("%w: no %s endpoint %d", apperrors.ErrInvalidInput, side, input.Index+1)
	}
	if side == domain.SideRight {
		return i.PointerUp(ctx, dto.PointerInput{X: anchor.X, Y: anchor.Y})
	}
	if i.svc.State().Dragging {
		if _, err := i.svc.CancelGesture(ctx); err != nil {
			return dto.GestureOutput{}, err
		}
	}
	return i.PointerDown(ctx, dto.PointerInput{X: anchor.X, Y: anchor.Y})
}

func (i *Interactor) CancelGesture(ctx context.Context) (dto.GestureOutput, error) {
	step, err := i.svc.CancelGesture(ctx)
	if err != nil {
		return dto.GestureOutput{}, err
	}
	return i.toGestureOutput(step), nil
}

func (i *Interactor) Reset(ctx context.Context) (dto.StateOutput, error) {
	state, err := i.svc.Reset(ctx)
	if err != nil {
		return dto.StateOutput{}, err
	}
	return toStateOutput(state), nil
}

func (i *Interactor) State(context.Context) (dto.StateOutput, error) {
	return toStateOutput(i.svc.State()), nil
}

func (i *Interactor) toGestureOutput(step domain.Step) dto.GestureOutput {
	out := dto.GestureOutput{Outcome: step.Outcome.String()}
	if step.Reason != nil {
		out.Reason = step.Reason.Error()
	}
	switch step.Outcome {
	case domain.OutcomeStarted, domain.OutcomeMoved:
		if state := i.svc.State(); state.Dragging {
			out.Identity = state.Gesture.Origin.Identity.Name
			live := toCurveOutput(step.Curve, state.Gesture.Origin.Identity)
			out.Live = &live
		}
	case domain.OutcomeCommitted:
		out.Identity = step.Connection.Identity.Name
		final := toCurveOutput(step.Curve, step.Connection.Identity)
		out.Final = &final
	}
	return out
}

type PreviewInteractor struct{}

func NewPreviewInteractor() puzzlein.PreviewUsecase {
	return PreviewInteractor{}
}

// Preview generates a level without playing it. A zero seed picks a random
// one, which is reported back so the layout can be reproduced.
func (PreviewInteractor) Preview(_ context.Context, input dto.PreviewInput) (dto.LevelOutput, error) {
	if input.Level < domain.FirstLevel {
		return dto.LevelOutput{}, fmt.Errorf("%w: level must be at least %d", apperrors.ErrInvalidInput, domain.FirstLevel)
	}
	seed := input.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	level := domain.NewGenerator(rand.New(rand.NewPCG(seed, seed))).Generate(input.Level)
	return dto.LevelOutput{
		Level:         level.Number,
		EndpointCount: level.EndpointCount(),
		Seed:          seed,
		Left:          toEndpointOutputs(level.Left),
		Right:         toEndpointOutputs(level.Right),
	}, nil
}

func parseSide(raw string) (domain.Side, error) {
	switch raw {
	case "left", "l":
		return domain.SideLeft, nil
	case "right", "r":
		return domain.SideRight, nil
	default:
		return 0, fmt.Errorf("%w: unknown side %q", apperrors.ErrInvalidInput, raw)
	}
}

func toPoint(in dto.PointerInput) domain.Point {
	return domain.Point{X: in.X, Y: in.Y}
}

func toStateOutput(state domain.State) dto.StateOutput {
	out := dto.StateOutput{
		SessionID:     state.SessionID,
		Level:         state.Level,
		HighScore:     state.HighScore,
		Left:          toEndpointOutputs(state.Left),
		Right:         toEndpointOutputs(state.Right),
		Connected:     len(state.Connections),
		Dragging:      state.Dragging,
		Transitioning: state.Transitioning,
		Overlay:       state.Overlay,
	}
	out.Curves = make([]dto.CurveOutput, 0, len(state.Curves))
	for idx, curve := range state.Curves {
		var identity domain.Identity
		if idx < len(state.Connections) {
			identity = state.Connections[idx].Identity
		}
		out.Curves = append(out.Curves, toCurveOutput(curve, identity))
	}
	if state.Dragging {
		live := toCurveOutput(state.Gesture.Curve(), state.Gesture.Origin.Identity)
		out.Live = &live
		out.Holding = state.Gesture.Origin.Identity.Name
	}
	return out
}

func toEndpointOutputs(endpoints []domain.Endpoint) []dto.EndpointOutput {
	out := make([]dto.EndpointOutput, 0, len(endpoints))
	for _, ep := range endpoints {
		out = append(out, dto.EndpointOutput{
			Side:      ep.Ref.Side.String(),
			Index:     ep.Ref.Index,
			Name:      ep.Identity.Name,
			Color:     ep.Identity.Color,
			Symbol:    ep.Identity.Symbol,
			DarkGlyph: ep.Identity.DarkGlyph,
			Connected: ep.Connected,
		})
	}
	return out
}

func toCurveOutput(c domain.Curve, identity domain.Identity) dto.CurveOutput {
	return dto.CurveOutput{
		From:     dto.PointOutput{X: c.From.X, Y: c.From.Y},
		Control1: dto.PointOutput{X: c.Control1.X, Y: c.Control1.Y},
		Control2: dto.PointOutput{X: c.Control2.X, Y: c.Control2.Y},
		To:       dto.PointOutput{X: c.To.X, Y: c.To.Y},
		Color:    identity.Color,
	}
}
