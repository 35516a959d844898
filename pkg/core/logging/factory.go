// ============================================================================
// veeks - Veek-Date Toolkit
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers from configuration
// Author:      msto63
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/msto63/veeks/foundation/core/config"
	mdwerror "github.com/msto63/veeks/foundation/core/error"
	mdwlog "github.com/msto63/veeks/foundation/core/log"
)

// Configuration keys read by FromConfig
const (
	KeyLevel  = "log.level"
	KeyFormat = "log.format"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name shown in every line
	ServiceName string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format: "text" or "json" (default: text)
	Format string

	// Lowers the level to debug when set
	Verbose bool

	// Destination (default: stderr)
	Output io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       mdwlog.DefaultLevel().String(),
		Format:      mdwlog.FormatText.String(),
		Output:      os.Stderr,
	}
}

// NewLogger creates a logger tagged with a fresh correlation id
func NewLogger(cfg LoggerConfig) (*mdwlog.Logger, error) {
	level, err := mdwlog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid log level").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("logging.NewLogger").
			WithDetail("level", cfg.Level)
	}
	if cfg.Verbose && level > mdwlog.LevelDebug {
		level = mdwlog.LevelDebug
	}

	format, err := mdwlog.ParseFormat(cfg.Format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid log format").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("logging.NewLogger").
			WithDetail("format", cfg.Format)
	}

	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: cfg.Output,
		Name:   cfg.ServiceName,
	})
	return logger.WithCorrelationID(uuid.NewString()), nil
}

// FromConfig reads log.level and log.format from cfg
func FromConfig(cfg *config.Config, serviceName string, output io.Writer, verbose bool) (*mdwlog.Logger, error) {
	lc := DefaultLoggerConfig(serviceName)
	lc.Level = cfg.GetString(KeyLevel, lc.Level)
	lc.Format = cfg.GetString(KeyFormat, lc.Format)
	lc.Verbose = verbose
	if output != nil {
		lc.Output = output
	}
	return NewLogger(lc)
}
