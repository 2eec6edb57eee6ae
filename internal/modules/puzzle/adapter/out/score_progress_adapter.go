package out

import (
	"context"

	puzzleout "wirematch/internal/modules/puzzle/port/out"
	"wirematch/internal/modules/score/dto"
	scorein "wirematch/internal/modules/score/port/in"
)

type ScoreProgressAdapter struct {
	scores scorein.Usecase
}

func NewScoreProgressAdapter(scores scorein.Usecase) puzzleout.ScorePort {
	return &ScoreProgressAdapter{scores: scores}
}

func (a *ScoreProgressAdapter) Load(ctx context.Context) (int, error) {
	out, err := a.scores.Load(ctx)
	return out.HighScore, err
}

func (a *ScoreProgressAdapter) Record(ctx context.Context, level int) (int, error) {
	out, err := a.scores.Record(ctx, dto.RecordInput{Level: level})
	return out.HighScore, err
}
