package in

import (
	"context"

	"wirematch/internal/modules/score/dto"
)

type Usecase interface {
	Load(ctx context.Context) (dto.ScoreOutput, error)
	Record(ctx context.Context, input dto.RecordInput) (dto.ScoreOutput, error)
	Show(ctx context.Context) (dto.ScoreOutput, error)
	Clear(ctx context.Context) error
}
