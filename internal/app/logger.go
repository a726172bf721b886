package app

import (
	"fmt"

	"go.uber.org/zap"
)

// initLogger создает логгер. "development" включает консольный формат,
// остальные значения трактуются как уровень JSON логгера (debug, info, warn, error).
func initLogger(logLevel string) (*zap.Logger, error) {
	if logLevel == "development" {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("failed to init logger: %w", err)
		}
		return logger, nil
	}

	level, err := zap.ParseAtomicLevel(logLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = level
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}

	return logger, nil
}
