package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"wirematch/internal/modules/puzzle/domain"
	puzzleout "wirematch/internal/modules/puzzle/port/out"
	"wirematch/internal/platform/clock"
	apperrors "wirematch/internal/platform/errors"
	"wirematch/internal/platform/id"
)

// GameService owns one game: the current level, its registry, ledger and
// gesture machine, and the progression between levels. It is not safe for
// concurrent use; input handlers and scheduler callbacks must be delivered
// from a single goroutine.
type GameService struct {
	clock     clock.Clock
	generator *domain.Generator
	layout    puzzleout.Layout
	scores    puzzleout.ScorePort
	scheduler clock.Scheduler
	events    puzzleout.EventSink
	pacing    Pacing
	logger    *zap.Logger
	sessionID string

	started       bool
	level         domain.Level
	registry      *domain.Registry
	ledger        *domain.Ledger
	gesture       *domain.GestureMachine
	curves        []domain.Curve
	highScore     int
	transitioning bool
	overlay       bool

	// epoch changes whenever a level is installed so callbacks scheduled for
	// an earlier level never act on the current one.
	epoch   uint64
	pending []clock.Timer
}

func NewGameService(
	clk clock.Clock,
	ids id.Generator,
	generator *domain.Generator,
	layout puzzleout.Layout,
	scores puzzleout.ScorePort,
	scheduler clock.Scheduler,
	events puzzleout.EventSink,
	pacing Pacing,
	logger *zap.Logger,
) *GameService {
	if logger == nil {
		logger = zap.NewNop()
	}
	sessionID := ids.New()
	return &GameService{
		clock:     clk,
		generator: generator,
		layout:    layout,
		scores:    scores,
		scheduler: scheduler,
		events:    events,
		pacing:    pacing,
		logger:    logger.With(zap.String("session_id", sessionID)),
		sessionID: sessionID,
	}
}

// Start loads the persisted high score and installs level 1.
func (s *GameService) Start(ctx context.Context) domain.State {
	s.highScore = s.loadHighScore(ctx)
	s.started = true
	s.install(ctx, domain.FirstLevel)
	return s.State()
}

func (s *GameService) loadHighScore(ctx context.Context) int {
	high, err := s.scores.Load(ctx)
	if err != nil {
		s.logger.Warn("load high score failed, using default", zap.Error(err))
		return domain.FirstLevel
	}
	if high < domain.FirstLevel {
		return domain.FirstLevel
	}
	return high
}

func (s *GameService) DragStart(ctx context.Context, p domain.Point) (domain.Step, error) {
	if !s.started {
		return domain.Step{}, apperrors.ErrNotStarted
	}
	if s.transitioning {
		step := domain.Step{Outcome: domain.OutcomeIgnored, Reason: apperrors.ErrTransitioning}
		s.emit(ctx, domain.Event{Kind: domain.EventGestureIgnored, Reason: step.Reason})
		return step, nil
	}
	step := s.gesture.Start(s.resolve(p))
	if step.Outcome == domain.OutcomeStarted {
		g, _ := s.gesture.Active()
		s.emit(ctx, domain.Event{Kind: domain.EventGestureStarted, Identity: g.Origin.Identity})
	} else {
		s.emit(ctx, domain.Event{Kind: domain.EventGestureIgnored, Reason: step.Reason})
	}
	return step, nil
}

// DragMove only tracks the pointer and publishes nothing.
func (s *GameService) DragMove(_ context.Context, p domain.Point) (domain.Step, error) {
	if !s.started {
		return domain.Step{}, apperrors.ErrNotStarted
	}
	return s.gesture.Move(p), nil
}

func (s *GameService) DragEnd(ctx context.Context, p domain.Point) (domain.Step, error) {
	if !s.started {
		return domain.Step{}, apperrors.ErrNotStarted
	}
	g, _ := s.gesture.Active()
	step := s.gesture.End(s.resolve(p))
	switch step.Outcome {
	case domain.OutcomeCommitted:
		s.curves = append(s.curves, step.Curve)
		s.emit(ctx, domain.Event{Kind: domain.EventConnection, Identity: step.Connection.Identity})
		s.checkWin(ctx)
	case domain.OutcomeRejected:
		s.emit(ctx, domain.Event{Kind: domain.EventGestureRejected, Identity: g.Origin.Identity, Reason: step.Reason})
	}
	return step, nil
}

func (s *GameService) CancelGesture(ctx context.Context) (domain.Step, error) {
	if !s.started {
		return domain.Step{}, apperrors.ErrNotStarted
	}
	g, _ := s.gesture.Active()
	step := s.gesture.Cancel()
	if step.Outcome == domain.OutcomeCancelled {
		s.emit(ctx, domain.Event{Kind: domain.EventGestureCancelled, Identity: g.Origin.Identity})
	}
	return step, nil
}

// Reset returns to level 1 with a fresh level. The high score is untouched.
func (s *GameService) Reset(ctx context.Context) (domain.State, error) {
	if !s.started {
		return domain.State{}, apperrors.ErrNotStarted
	}
	s.install(ctx, domain.FirstLevel)
	s.emit(ctx, domain.Event{Kind: domain.EventGameReset})
	return s.State(), nil
}

func (s *GameService) State() domain.State {
	if !s.started {
		return domain.State{SessionID: s.sessionID, HighScore: s.highScore}
	}
	state := domain.State{
		SessionID:     s.sessionID,
		Level:         s.level.Number,
		HighScore:     s.highScore,
		Left:          s.registry.Endpoints(domain.SideLeft),
		Right:         s.registry.Endpoints(domain.SideRight),
		Connections:   s.ledger.All(),
		Curves:        append([]domain.Curve(nil), s.curves...),
		Transitioning: s.transitioning,
		Overlay:       s.overlay,
	}
	if g, ok := s.gesture.Active(); ok {
		state.Gesture = g
		state.Dragging = true
	}
	return state
}

// Anchor exposes the layout position of an endpoint so keyboard input can be
// replayed as pointer input at the endpoint centre.
func (s *GameService) Anchor(ref domain.EndpointRef) (domain.Point, bool) {
	return s.layout.Anchor(ref)
}

func (s *GameService) resolve(p domain.Point) domain.Target {
	ref, ok := s.layout.HitTest(p)
	if !ok {
		return domain.Target{}
	}
	anchor, ok := s.layout.Anchor(ref)
	if !ok {
		anchor = p
	}
	return domain.Target{Ref: ref, Anchor: anchor, Found: true}
}

func (s *GameService) checkWin(ctx context.Context) {
	if s.ledger.Count() != s.level.EndpointCount() {
		return
	}
	s.transitioning = true
	s.emit(ctx, domain.Event{Kind: domain.EventLevelSolved})

	epoch := s.epoch
	s.schedule(s.pacing.OverlayDelay, func() {
		if epoch != s.epoch {
			return
		}
		s.overlay = true
		s.emit(context.Background(), domain.Event{Kind: domain.EventOverlayShown})
		s.schedule(s.pacing.AdvanceDelay, func() {
			if epoch != s.epoch {
				return
			}
			s.advance(context.Background())
		})
	})
}

func (s *GameService) advance(ctx context.Context) {
	next := s.level.Number + 1
	if next > s.highScore {
		recorded, err := s.scores.Record(ctx, next)
		if err != nil {
			s.logger.Warn("persist high score failed", zap.Int("level", next), zap.Error(err))
		}
		if recorded < next {
			recorded = next
		}
		s.highScore = recorded
		s.emit(ctx, domain.Event{Kind: domain.EventHighScore, Level: next, Reason: err})
	}
	s.install(ctx, next)
	s.logger.Info("level advanced", zap.Int("level", next), zap.Int("high_score", s.highScore))
	s.emit(ctx, domain.Event{Kind: domain.EventLevelAdvanced})
}

func (s *GameService) install(ctx context.Context, number int) {
	s.epoch++
	for _, t := range s.pending {
		t.Stop()
	}
	s.pending = nil

	s.level = s.generator.Generate(number)
	s.registry = domain.NewRegistry(s.level)
	s.ledger = domain.NewLedger()
	s.gesture = domain.NewGestureMachine(s.registry, s.ledger)
	s.curves = nil
	s.transitioning = false
	s.overlay = false
	s.emit(ctx, domain.Event{Kind: domain.EventLevelStarted})
}

func (s *GameService) schedule(d time.Duration, fn func()) {
	var t clock.Timer
	t = s.scheduler.AfterFunc(d, func() {
		s.forget(t)
		fn()
	})
	s.pending = append(s.pending, t)
}

func (s *GameService) forget(t clock.Timer) {
	for i, p := range s.pending {
		if p == t {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}

func (s *GameService) emit(ctx context.Context, event domain.Event) {
	if s.events == nil {
		return
	}
	event.SessionID = s.sessionID
	if event.Level == 0 {
		event.Level = s.level.Number
	}
	event.HighScore = s.highScore
	event.At = s.clock.Now()
	s.events.Publish(ctx, event)
}
