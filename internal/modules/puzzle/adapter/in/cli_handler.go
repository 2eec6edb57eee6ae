package in

import (
	"context"

	"wirematch/internal/modules/puzzle/dto"
	puzzlein "wirematch/internal/modules/puzzle/port/in"
)

type CLIHandler struct {
	preview puzzlein.PreviewUsecase
}

func NewCLIHandler(preview puzzlein.PreviewUsecase) CLIHandler {
	return CLIHandler{preview: preview}
}

func (h CLIHandler) Preview(ctx context.Context, level int, seed uint64) (dto.LevelOutput, error) {
	return h.preview.Preview(ctx, dto.PreviewInput{Level: level, Seed: seed})
}
