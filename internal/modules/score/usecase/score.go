package usecase

import (
	"context"

	"wirematch/internal/modules/score/domain"
	"wirematch/internal/modules/score/dto"
	scorein "wirematch/internal/modules/score/port/in"
	"wirematch/internal/modules/score/service"
)

type Interactor struct {
	svc *service.ScoreService
}

func NewInteractor(svc *service.ScoreService) scorein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Load(ctx context.Context) (dto.ScoreOutput, error) {
	score, err := i.svc.Load(ctx)
	return dto.ScoreOutput{Key: i.svc.Key(), HighScore: score}, err
}

func (i *Interactor) Record(ctx context.Context, input dto.RecordInput) (dto.ScoreOutput, error) {
	score, err := i.svc.Record(ctx, input.Level)
	return dto.ScoreOutput{Key: i.svc.Key(), HighScore: score}, err
}

func (i *Interactor) Show(ctx context.Context) (dto.ScoreOutput, error) {
	snap, err := i.svc.Inspect(ctx)
	if err != nil {
		return dto.ScoreOutput{}, err
	}
	return toOutput(snap), nil
}

func (i *Interactor) Clear(ctx context.Context) error {
	return i.svc.Clear(ctx)
}

func toOutput(snap domain.Snapshot) dto.ScoreOutput {
	return dto.ScoreOutput{
		Key:       snap.Key,
		HighScore: snap.Value,
		Raw:       snap.Raw,
		Present:   snap.Present,
		Corrupt:   snap.Corrupt,
	}
}
