package in

import (
	"context"

	"wirematch/internal/modules/puzzle/dto"
	puzzlein "wirematch/internal/modules/puzzle/port/in"
)

type TUIHandler struct {
	usecase puzzlein.Usecase
}

func NewTUIHandler(usecase puzzlein.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Start(ctx context.Context) (dto.StateOutput, error) {
	return h.usecase.Start(ctx)
}

func (h TUIHandler) PointerDown(ctx context.Context, x, y float64) (dto.GestureOutput, error) {
	return h.usecase.PointerDown(ctx, dto.PointerInput{X: x, Y: y})
}

func (h TUIHandler) PointerMove(ctx context.Context, x, y float64) (dto.GestureOutput, error) {
	return h.usecase.PointerMove(ctx, dto.PointerInput{X: x, Y: y})
}

func (h TUIHandler) PointerUp(ctx context.Context, x, y float64) (dto.GestureOutput, error) {
	return h.usecase.PointerUp(ctx, dto.PointerInput{X: x, Y: y})
}

func (h TUIHandler) Select(ctx context.Context, side string, index int) (dto.GestureOutput, error) {
	return h.usecase.Select(ctx, dto.SelectInput{Side: side, Index: index})
}

func (h TUIHandler) Cancel(ctx context.Context) (dto.GestureOutput, error) {
	return h.usecase.CancelGesture(ctx)
}

func (h TUIHandler) Reset(ctx context.Context) (dto.StateOutput, error) {
	return h.usecase.Reset(ctx)
}

func (h TUIHandler) State(ctx context.Context) (dto.StateOutput, error) {
	return h.usecase.State(ctx)
}
