package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"wirematch/internal/modules/score/domain"
	scoreout "wirematch/internal/modules/score/port/out"
)

// ScoreService keeps the high-water-mark level. It never lowers the stored
// value and treats missing or corrupt data as Minimum.
type ScoreService struct {
	store  scoreout.KVStore
	key    string
	logger *zap.Logger
}

func NewScoreService(store scoreout.KVStore, key string, logger *zap.Logger) *ScoreService {
	if key == "" {
		key = domain.DefaultKey
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScoreService{store: store, key: key, logger: logger.With(zap.String("score_key", key))}
}

func (s *ScoreService) Key() string { return s.key }

// Inspect reads the raw stored value without applying defaults.
func (s *ScoreService) Inspect(ctx context.Context) (domain.Snapshot, error) {
	raw, found, err := s.store.Get(ctx, s.key)
	if err != nil {
		return domain.Snapshot{Key: s.key, Value: domain.Minimum}, fmt.Errorf("read score: %w", err)
	}
	snap := domain.Snapshot{Key: s.key, Raw: raw, Present: found, Value: domain.Minimum}
	if !found {
		return snap, nil
	}
	value, err := domain.Parse(raw)
	if err != nil {
		snap.Corrupt = true
		return snap, nil
	}
	snap.Value = value
	return snap, nil
}

// Load returns the current high score. Corrupt data is logged and read as
// Minimum; store failures are returned alongside Minimum.
func (s *ScoreService) Load(ctx context.Context) (int, error) {
	snap, err := s.Inspect(ctx)
	if err != nil {
		return domain.Minimum, err
	}
	if snap.Corrupt {
		s.logger.Warn("stored high score is corrupt, using default", zap.String("raw", snap.Raw))
	}
	return snap.Value, nil
}

// Record raises the stored score to level when level is higher and returns
// the resulting high score. Nothing is written when the current value cannot
// be read.
func (s *ScoreService) Record(ctx context.Context, level int) (int, error) {
	current, err := s.Load(ctx)
	if err != nil {
		return current, err
	}
	if level <= current {
		return current, nil
	}
	if err := s.store.Set(ctx, s.key, domain.Format(level)); err != nil {
		return current, fmt.Errorf("write score: %w", err)
	}
	s.logger.Info("high score recorded", zap.Int("level", level))
	return level, nil
}

func (s *ScoreService) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("clear score: %w", err)
	}
	return nil
}
