package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"wirematch/internal/bootstrap"
	"wirematch/internal/platform/config"
	"wirematch/internal/platform/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath   string
	dataDir      string
	dataDirSet   bool
	scoreBackend string
	redisAddr    string
	logLevel     string
	logFormat    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "wirematch",
		Short:         "Match the wires, beat your best level",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opts.dataDirSet = cmd.Flags().Changed("data-dir")
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&opts.dataDir, "data-dir", defaultDataDir(), "directory for the score database and logs")
	root.PersistentFlags().StringVar(&opts.scoreBackend, "score-backend", "", "score store: sqlite|redis|memory")
	root.PersistentFlags().StringVar(&opts.redisAddr, "redis-addr", "", "redis host:port for the redis score store")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "debug|info|warn|error")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "json|console")

	root.AddCommand(newPlayCmd(opts))
	root.AddCommand(newScoreCmd(opts))
	root.AddCommand(newPreviewCmd())
	return root
}

func defaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".wirematch"
	}
	return filepath.Join(dir, "wirematch")
}

func loadConfig(opts *rootOptions) (config.Config, error) {
	cfg, err := config.Load(opts.configPath, opts.dataDir)
	if err != nil {
		return config.Config{}, err
	}
	if opts.dataDirSet && cfg.DataDir != opts.dataDir {
		cfg.SetDataDir(opts.dataDir)
	}
	if opts.scoreBackend != "" {
		cfg.ScoreBackend = opts.scoreBackend
	}
	if opts.redisAddr != "" {
		cfg.RedisAddr = opts.redisAddr
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.logFormat != "" {
		cfg.LogFormat = opts.logFormat
	}
	return cfg, cfg.Validate()
}

func loadApp(opts *rootOptions) (*bootstrap.App, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, Path: cfg.LogPath})
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg, logger)
}

func newPlayCmd(opts *rootOptions) *cobra.Command {
	var seed uint64
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal (mouse or number keys)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()
			defer func() { _ = app.Logger.Sync() }()

			if metricsAddr == "" {
				metricsAddr = app.Config.MetricsAddr
			}
			game, err := app.NewGame(seed)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return bootstrap.RunTUI(ctx, app, game, metricsAddr)
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "deal levels from this seed (0 = random)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve /metrics and /healthz on host:port while playing")
	return cmd
}

func newScoreCmd(opts *rootOptions) *cobra.Command {
	score := &cobra.Command{Use: "score", Short: "Inspect or clear the stored high score"}

	score.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the stored high score",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.ScoreCLI.Show(context.Background())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			switch {
			case !out.Present:
				_, _ = fmt.Fprintf(w, "high score: %d (nothing stored under %s)\n", out.HighScore, out.Key)
			case out.Corrupt:
				_, _ = fmt.Fprintf(w, "high score: %d (stored value %q under %s is not a level)\n", out.HighScore, out.Raw, out.Key)
			default:
				_, _ = fmt.Fprintf(w, "high score: %d\n", out.HighScore)
			}
			return nil
		},
	})

	var yes bool
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the stored high score",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("refusing to clear the high score without --yes")
			}
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.ScoreCLI.Clear(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "high score cleared")
			return nil
		},
	}
	clearCmd.Flags().BoolVar(&yes, "yes", false, "confirm deletion")

	score.AddCommand(clearCmd)
	return score
}

func newPreviewCmd() *cobra.Command {
	var level int
	var seed uint64

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the wires a level would deal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := bootstrap.NewPreview()
			out, err := app.Preview(context.Background(), level, seed)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "level %d: %d pairs (seed %d)\n", out.Level, out.EndpointCount, out.Seed)
			for i := range out.Left {
				l, r := out.Left[i], out.Right[i]
				_, _ = fmt.Fprintf(w, "%2d  %s %-8s  %s %-8s\n", i+1, l.Symbol, l.Name, r.Symbol, r.Name)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&level, "level", 1, "level number")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "generator seed (0 = random)")
	return cmd
}
