package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"

	DefaultScoreKey     = "wiringHighScore"
	DefaultOverlayDelay = 300 * time.Millisecond
	DefaultAdvanceDelay = 1500 * time.Millisecond
)

type Config struct {
	DataDir      string        `yaml:"data_dir" validate:"required"`
	DBPath       string        `yaml:"db_path"`
	ScoreBackend string        `yaml:"score_backend" validate:"required,oneof=sqlite redis memory"`
	ScoreKey     string        `yaml:"score_key" validate:"required"`
	RedisAddr    string        `yaml:"redis_addr" validate:"required_if=ScoreBackend redis"`
	RedisDB      int           `yaml:"redis_db" validate:"min=0"`
	OverlayDelay time.Duration `yaml:"overlay_delay" validate:"min=0"`
	AdvanceDelay time.Duration `yaml:"advance_delay" validate:"min=0"`
	Seed         uint64        `yaml:"seed"`
	LogLevel     string        `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	LogFormat    string        `yaml:"log_format" validate:"omitempty,oneof=json console"`
	LogPath      string        `yaml:"log_path"`
	MetricsAddr  string        `yaml:"metrics_addr" validate:"omitempty,hostname_port"`
}

var validate = validator.New()

// Default returns the configuration used when no file or flag overrides it.
func Default(dataDir string) Config {
	return Config{
		DataDir:      dataDir,
		DBPath:       filepath.Join(dataDir, "wirematch.db"),
		ScoreBackend: BackendSQLite,
		ScoreKey:     DefaultScoreKey,
		OverlayDelay: DefaultOverlayDelay,
		AdvanceDelay: DefaultAdvanceDelay,
		LogLevel:     "info",
		LogFormat:    "json",
		LogPath:      filepath.Join(dataDir, "wirematch.log"),
	}
}

// Load layers the optional YAML file at path over the defaults for dataDir.
// A missing file is only an error when the path was given explicitly.
func Load(path, dataDir string) (Config, error) {
	if strings.TrimSpace(dataDir) == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	cfg := Default(dataDir)
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.DataDir != dataDir {
		cfg.rebaseDefaults(dataDir)
	}
	return cfg, nil
}

// SetDataDir points the config at dir and moves file locations that were
// still derived from the previous data dir.
func (c *Config) SetDataDir(dir string) {
	previous := c.DataDir
	c.DataDir = dir
	c.rebaseDefaults(previous)
}

// rebaseDefaults moves file locations that still point at the old data dir.
func (c *Config) rebaseDefaults(previous string) {
	old := Default(previous)
	if c.DBPath == old.DBPath {
		c.DBPath = filepath.Join(c.DataDir, "wirematch.db")
	}
	if c.LogPath == old.LogPath {
		c.LogPath = filepath.Join(c.DataDir, "wirematch.log")
	}
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, formatFieldError(fe))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.ScoreBackend == BackendSQLite && strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("invalid config: db_path is required for the sqlite backend")
	}
	return nil
}

func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Field())
	switch e.Tag() {
	case "required", "required_if":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "hostname_port":
		return fmt.Sprintf("%s must be host:port", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
