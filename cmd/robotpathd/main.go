// Command robotpathd starts the robot-path HTTP service.
//
// # Environment Variables
//
//   - ROBOTPATH_PORT: HTTP server port (default: 8080)
//   - DATABASE_URL: Postgres connection string, required. May be wrapped
//     in stray quotes; these are stripped before use.
//   - OTEL_EXPORTER_OTLP_ENDPOINT: OTLP/gRPC collector address
//     (default: otel-collector:4317)
//   - GIN_MODE: Gin framework mode (default: release)
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/lukaism/tibber-technical-case/pkg/envconfig"
	"github.com/lukaism/tibber-technical-case/pkg/logging"
	"github.com/lukaism/tibber-technical-case/services/robotpath"
)

func main() {
	logging.Default("robotpathd")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := robotpath.Config{
		Port:         envconfig.Int("ROBOTPATH_PORT", 8080),
		DatabaseURL:  envconfig.String("DATABASE_URL", ""),
		OTelEndpoint: envconfig.String("OTEL_EXPORTER_OTLP_ENDPOINT", "otel-collector:4317"),
		GinMode:      envconfig.String("GIN_MODE", "release"),
	}

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL must be set")
	}

	svc, err := robotpath.New(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to create robotpath service: %v", err)
	}

	if err := svc.Run(ctx); err != nil {
		log.Fatalf("robotpath service error: %v", err)
	}
}
