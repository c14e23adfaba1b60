package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// newLogger builds the session logger. A --log path always wins; otherwise
// logs go to fallback. The returned closer releases the log file.
func newLogger(fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	w, closer := fallback, io.Closer(nopCloser{})
	if flagLog != "" {
		f, err := os.OpenFile(flagLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// loadConfig reads the game config and applies flag overrides.
func loadConfig(overrides func(*config.SnakeConfig)) (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}
	if overrides != nil {
		overrides(&cfg)
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
	}
	return cfg, nil
}

// resolveSeed returns the --seed value, or a time-based seed when unset.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// newSession builds a session from cfg, logging the start parameters.
func newSession(cfg config.SnakeConfig, seed int64, logger *log.Logger) (*snake.Session, error) {
	s, err := snake.NewSession(cfg, seed)
	if err != nil {
		return nil, err
	}
	logger.Info("session started",
		"grid", fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height),
		"seed", seed,
		"rate", s.TickRate(),
	)
	return s, nil
}
