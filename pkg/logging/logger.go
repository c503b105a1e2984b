// Package logging provides structured logging for robotpath components.
//
// It wraps the standard library's slog with the two output modes the
// service needs: human-readable text for local development and JSON for
// production, where it is scraped by a log aggregator.
package logging

import (
	"log/slog"
	"os"
)

// Config configures a Logger. A zero-value Config produces an Info-level,
// text-format logger writing to stdout.
type Config struct {
	// Level is the minimum level that will be emitted.
	Level slog.Level

	// Service is attached to every log line as the "service" attribute.
	Service string

	// JSON selects JSON output. When false, logs are text-formatted.
	JSON bool
}

// New builds an slog.Logger per cfg and installs it as the process default.
func New(cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level}

	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	if cfg.Service != "" {
		logger = logger.With("service", cfg.Service)
	}
	slog.SetDefault(logger)
	return logger
}

// Default returns an Info-level, JSON-format logger writing to stdout,
// matching the format robotpathd runs with in production.
func Default(service string) *slog.Logger {
	return New(Config{Level: slog.LevelInfo, Service: service, JSON: true})
}
