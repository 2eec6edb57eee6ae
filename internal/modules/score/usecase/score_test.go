package usecase_test

import (
	"context"
	"testing"

	scoreadapter "wirematch/internal/modules/score/adapter/out"
	"wirematch/internal/modules/score/domain"
	"wirematch/internal/modules/score/dto"
	"wirematch/internal/modules/score/service"
	"wirematch/internal/modules/score/usecase"
)

func TestShowReportsStoredAndCorruptValues(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := scoreadapter.NewMemoryKVStore()
	uc := usecase.NewInteractor(service.NewScoreService(store, domain.DefaultKey, nil))

	empty, err := uc.Show(ctx)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if empty.Present || empty.HighScore != 1 {
		t.Fatalf("expected absent score defaulting to 1, got %+v", empty)
	}

	if _, err := uc.Record(ctx, dto.RecordInput{Level: 4}); err != nil {
		t.Fatalf("record: %v", err)
	}
	stored, _ := uc.Show(ctx)
	if !stored.Present || stored.HighScore != 4 || stored.Raw != "4" {
		t.Fatalf("expected stored 4, got %+v", stored)
	}

	if err := store.Set(ctx, domain.DefaultKey, "corrupt"); err != nil {
		t.Fatalf("set: %v", err)
	}
	corrupt, _ := uc.Show(ctx)
	if !corrupt.Corrupt || corrupt.HighScore != 1 {
		t.Fatalf("expected corrupt score read as 1, got %+v", corrupt)
	}
	loaded, err := uc.Load(ctx)
	if err != nil || loaded.HighScore != 1 {
		t.Fatalf("expected load to recover to 1, got %+v (%v)", loaded, err)
	}
}

func TestClearThenLoad(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := usecase.NewInteractor(service.NewScoreService(scoreadapter.NewMemoryKVStore(), "custom", nil))
	if _, err := uc.Record(ctx, dto.RecordInput{Level: 3}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := uc.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	out, err := uc.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out.Key != "custom" || out.HighScore != 1 {
		t.Fatalf("unexpected output %+v", out)
	}
}
