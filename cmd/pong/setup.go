package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
)

// loadConfig loads the configuration named by --config and applies the
// global flag overrides.
func loadConfig() (config.PongConfig, string, error) {
	cfg, source, err := config.LoadPong(flagConfig)
	if err != nil {
		return config.PongConfig{}, "", err
	}
	if flagTPS != 0 {
		cfg.Loop.TickRate = flagTPS
		if err := cfg.Validate(); err != nil {
			return config.PongConfig{}, "", err
		}
	}
	return cfg, source, nil
}

// newLogger builds the command logger. Output goes to --log-file when set,
// otherwise to fallback. The returned closer releases the log file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closer := func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closer = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}
