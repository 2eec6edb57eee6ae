package in

import (
	"context"

	"wirematch/internal/modules/score/dto"
	scorein "wirematch/internal/modules/score/port/in"
)

type CLIHandler struct {
	usecase scorein.Usecase
}

func NewCLIHandler(usecase scorein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Show(ctx context.Context) (dto.ScoreOutput, error) {
	return h.usecase.Show(ctx)
}

func (h CLIHandler) Clear(ctx context.Context) error {
	return h.usecase.Clear(ctx)
}
