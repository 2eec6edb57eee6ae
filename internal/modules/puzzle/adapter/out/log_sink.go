package out

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"wirematch/internal/modules/puzzle/domain"
	puzzleout "wirematch/internal/modules/puzzle/port/out"
)

// LogSink writes game events to a zap logger. Gesture noise goes to debug,
// progression to info.
type LogSink struct {
	logger *zap.Logger
}

func NewLogSink(logger *zap.Logger) puzzleout.EventSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Publish(_ context.Context, event domain.Event) {
	level := zapcore.DebugLevel
	switch event.Kind {
	case domain.EventLevelSolved, domain.EventLevelAdvanced, domain.EventHighScore, domain.EventGameReset:
		level = zapcore.InfoLevel
	}
	if event.Kind == domain.EventHighScore && event.Reason != nil {
		level = zapcore.WarnLevel
	}
	ce := s.logger.Check(level, string(event.Kind))
	if ce == nil {
		return
	}
	fields := []zap.Field{
		zap.String("session_id", event.SessionID),
		zap.Int("level", event.Level),
		zap.Int("high_score", event.HighScore),
	}
	if event.Identity.Name != "" {
		fields = append(fields, zap.String("identity", event.Identity.Name))
	}
	if event.Reason != nil {
		fields = append(fields, zap.NamedError("reason", event.Reason))
	}
	ce.Write(fields...)
}
