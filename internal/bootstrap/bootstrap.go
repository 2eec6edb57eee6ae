package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	puzzleinadapter "wirematch/internal/modules/puzzle/adapter/in"
	puzzleoutadapter "wirematch/internal/modules/puzzle/adapter/out"
	"wirematch/internal/modules/puzzle/domain"
	puzzleservice "wirematch/internal/modules/puzzle/service"
	puzzleusecase "wirematch/internal/modules/puzzle/usecase"
	scoreinadapter "wirematch/internal/modules/score/adapter/in"
	scoreoutadapter "wirematch/internal/modules/score/adapter/out"
	scorein "wirematch/internal/modules/score/port/in"
	scoreout "wirematch/internal/modules/score/port/out"
	scoreservice "wirematch/internal/modules/score/service"
	scoreusecase "wirematch/internal/modules/score/usecase"
	"wirematch/internal/platform/clock"
	"wirematch/internal/platform/config"
	"wirematch/internal/platform/id"
	"wirematch/internal/platform/telemetry"
	uiapp "wirematch/internal/ui/app"
	"wirematch/internal/ui/views/board"
)

const redisDialTimeout = 3 * time.Second

type App struct {
	Config     config.Config
	Logger     *zap.Logger
	ScoreCLI   scoreinadapter.CLIHandler
	PreviewCLI puzzleinadapter.CLIHandler

	scores  scorein.Usecase
	closers []io.Closer
}

func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	store, closer, err := newKVStore(cfg)
	if err != nil {
		return nil, err
	}
	scoreUC := scoreusecase.NewInteractor(scoreservice.NewScoreService(store, cfg.ScoreKey, logger.Named("score")))

	app := &App{
		Config:     cfg,
		Logger:     logger,
		ScoreCLI:   scoreinadapter.NewCLIHandler(scoreUC),
		PreviewCLI: NewPreview(),
		scores:     scoreUC,
	}
	if closer != nil {
		app.closers = append(app.closers, closer)
	}
	return app, nil
}

func newKVStore(cfg config.Config) (scoreout.KVStore, io.Closer, error) {
	switch cfg.ScoreBackend {
	case config.BackendSQLite:
		store, err := scoreoutadapter.NewSQLiteKVStore(cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("new sqlite score store: %w", err)
		}
		return store, store, nil
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB, DialTimeout: redisDialTimeout})
		ctx, cancel := context.WithTimeout(context.Background(), redisDialTimeout)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("connect redis %s: %w", cfg.RedisAddr, err)
		}
		store := scoreoutadapter.NewRedisKVStore(client)
		return store, store, nil
	case config.BackendMemory:
		return scoreoutadapter.NewMemoryKVStore(), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown score backend %q", cfg.ScoreBackend)
	}
}

func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	a.closers = nil
	return errors.Join(errs...)
}

// Game is one wired game session ready to be driven by the terminal UI.
type Game struct {
	Handler   puzzleinadapter.TUIHandler
	Layout    *board.Layout
	Scheduler *uiapp.LoopScheduler
	Registry  *prometheus.Registry
	Seed      uint64
}

// NewGame wires a fresh game. A zero seed picks a random one.
func (a *App) NewGame(seed uint64) (*Game, error) {
	if seed == 0 {
		seed = a.Config.Seed
	}
	if seed == 0 {
		seed = rand.Uint64()
	}
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	metrics, err := puzzleoutadapter.NewPrometheusSink(registry)
	if err != nil {
		return nil, fmt.Errorf("register game metrics: %w", err)
	}
	layout := board.NewLayout()
	scheduler := uiapp.NewLoopScheduler()
	logger := a.Logger.Named("puzzle").With(zap.Uint64("seed", seed))

	svc := puzzleservice.NewGameService(
		clock.SystemClock{},
		id.UUID{},
		domain.NewGenerator(rand.New(rand.NewPCG(seed, seed))),
		layout,
		puzzleoutadapter.NewScoreProgressAdapter(a.scores),
		scheduler,
		puzzleoutadapter.NewMultiSink(puzzleoutadapter.NewLogSink(logger), metrics),
		puzzleservice.Pacing{OverlayDelay: a.Config.OverlayDelay, AdvanceDelay: a.Config.AdvanceDelay},
		logger,
	)
	return &Game{
		Handler:   puzzleinadapter.NewTUIHandler(puzzleusecase.NewInteractor(svc)),
		Layout:    layout,
		Scheduler: scheduler,
		Registry:  registry,
		Seed:      seed,
	}, nil
}

// RunTUI plays game until the user quits. When metricsAddr is set the game's
// metrics are served there for the duration of the run.
func RunTUI(ctx context.Context, app *App, game *Game, metricsAddr string) error {
	initial, err := game.Handler.Start(ctx)
	if err != nil {
		return err
	}
	model := uiapp.NewModel(game.Handler, game.Layout, initial)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	game.Scheduler.Attach(program.Send)

	if metricsAddr != "" {
		srvCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			if err := telemetry.Serve(srvCtx, metricsAddr, telemetry.NewRouter(game.Registry), app.Logger); err != nil {
				app.Logger.Error("metrics server stopped", zap.Error(err))
			}
		}()
	}

	app.Logger.Info("game started", zap.Uint64("seed", game.Seed), zap.String("session_id", initial.SessionID))
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// NewPreview wires level previews, which need no storage or logging.
func NewPreview() puzzleinadapter.CLIHandler {
	return puzzleinadapter.NewCLIHandler(puzzleusecase.NewPreviewInteractor())
}
