// Package log provides structured, leveled logging for the veeks tools.
//
// Package: log
// Title: veeks Structured Logging
// Description: Leveled logger with JSON and text formatters, persistent context
//              fields, correlation ids and integration with the structured error
//              type. Loggers are immutable: every With* call returns a clone.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
// - 2026-10-16 v0.2.0: Dropped async buffering, LogError maps severity to level
//
// Usage:
//
//	import mdwlog "github.com/msto63/veeks/foundation/core/log"
//
//	logger := mdwlog.NewWithConfig(mdwlog.Config{
//		Level:  mdwlog.LevelDebug,
//		Format: mdwlog.FormatText,
//		Output: os.Stderr,
//		Name:   "veeks",
//	})
//	logger.WithCorrelationID(id).Info("converted", mdwlog.String("veek", "2021c 09v 3d"))
package log
