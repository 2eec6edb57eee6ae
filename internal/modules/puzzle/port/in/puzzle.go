package in

import (
	"context"

	"wirematch/internal/modules/puzzle/dto"
)

type Usecase interface {
	Start(ctx context.Context) (dto.StateOutput, error)
	PointerDown(ctx context.Context, input dto.PointerInput) (dto.GestureOutput, error)
	PointerMove(ctx context.Context, input dto.PointerInput) (dto.GestureOutput, error)
	PointerUp(ctx context.Context, input dto.PointerInput) (dto.GestureOutput, error)
	Select(ctx context.Context, input dto.SelectInput) (dto.GestureOutput, error)
	CancelGesture(ctx context.Context) (dto.GestureOutput, error)
	Reset(ctx context.Context) (dto.StateOutput, error)
	State(ctx context.Context) (dto.StateOutput, error)
}

// PreviewUsecase generates levels outside of a game.
type PreviewUsecase interface {
	Preview(ctx context.Context, input dto.PreviewInput) (dto.LevelOutput, error)
}
