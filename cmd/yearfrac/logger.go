package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iwvelando/yearfrac/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logLevels = map[string]zapcore.Level{
	"debug":   zapcore.DebugLevel,
	"info":    zapcore.InfoLevel,
	"warn":    zapcore.WarnLevel,
	"warning": zapcore.WarnLevel,
	"error":   zapcore.ErrorLevel,
}

// initializeLogger builds the zap logger for a command. The --log-level flag
// overrides the configured level. Logs go to stderr unless an output file is
// configured, since stdout carries the results.
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	levelName := firstNonEmpty(logLevelOverride, loggingConfig.Level, "info")
	level, ok := logLevels[levelName]
	if !ok {
		return nil, fmt.Errorf("invalid log level: %s", levelName)
	}

	var zapConfig zap.Config
	switch format := firstNonEmpty(loggingConfig.Format, "json"); format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
	case "json":
		zapConfig = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	sink := "stderr"
	if path := loggingConfig.OutputFile; path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory for %s: %w", path, err)
		}
		sink = path
	}
	zapConfig.OutputPaths = []string{sink}
	zapConfig.ErrorOutputPaths = []string{sink}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger writing to %s: %w", sink, err)
	}
	return logger, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
