// Package robotpath wires together the HTTP layer, persistence, tracing,
// and metrics for the robot-path unique-cell-count service. The core
// counting algorithm itself lives in internal/engine; this package is the
// thin external-interface shim described as out-of-core.
package robotpath

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/lukaism/tibber-technical-case/services/robotpath/handlers"
	"github.com/lukaism/tibber-technical-case/services/robotpath/observability"
	"github.com/lukaism/tibber-technical-case/services/robotpath/routes"
	"github.com/lukaism/tibber-technical-case/services/robotpath/store"
)

// Config configures a Service. Zero-valued fields are replaced with
// sensible defaults by applyConfigDefaults.
type Config struct {
	// Port is the HTTP listen port. Default: 8080.
	Port int

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// OTelEndpoint is the OTLP/gRPC collector address. Default:
	// "otel-collector:4317".
	OTelEndpoint string

	// GinMode sets the Gin framework mode ("debug", "release", "test").
	// Default: "release".
	GinMode string
}

func applyConfigDefaults(cfg Config) Config {
	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	if cfg.OTelEndpoint == "" {
		cfg.OTelEndpoint = "otel-collector:4317"
	}
	if cfg.GinMode == "" {
		cfg.GinMode = gin.ReleaseMode
	}
	return cfg
}

// Service is the robotpath HTTP service: router, store, and tracing all
// constructed and ready to serve.
type Service struct {
	config Config
	router *gin.Engine
	pool   *pgxpool.Pool
	server *http.Server

	tracerCleanup func(context.Context)
}

// New constructs a Service from cfg. The returned Service owns a
// connection pool to DatabaseURL and an OTLP exporter; call Close (or let
// Run's shutdown path do it) to release them.
func New(ctx context.Context, cfg Config) (*Service, error) {
	cfg = applyConfigDefaults(cfg)
	gin.SetMode(cfg.GinMode)

	s := &Service{config: cfg}

	cleanup, err := initTracer(ctx, cfg.OTelEndpoint)
	if err != nil {
		return nil, fmt.Errorf("robotpath: init tracer: %w", err)
	}
	s.tracerCleanup = cleanup

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		s.tracerCleanup(ctx)
		return nil, fmt.Errorf("robotpath: connect to database: %w", err)
	}
	s.pool = pool

	st := store.New(pool)
	if err := st.EnsureSchema(ctx); err != nil {
		s.Close(ctx)
		return nil, fmt.Errorf("robotpath: ensure schema: %w", err)
	}

	metrics := observability.NewMetrics()
	pathHandler := handlers.NewPathHandler(st, metrics)

	router := gin.New()
	router.Use(gin.Recovery(), otelgin.Middleware("robotpath"))
	routes.SetupRoutes(router, pathHandler)
	s.router = router

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	return s, nil
}

// Router exposes the configured Gin engine for integration testing.
func (s *Service) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP server and blocks until ctx is cancelled, at which
// point it drains in-flight requests and returns. Resources acquired by
// New are released before Run returns.
func (s *Service) Run(ctx context.Context) error {
	defer s.Close(context.Background())

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("starting robotpath server", "port", s.config.Port)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("robotpath: server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		slog.Info("shutting down robotpath server")
		return s.server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// Close releases the database pool and flushes the trace exporter. Safe to
// call even if Run was never invoked.
func (s *Service) Close(ctx context.Context) {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.tracerCleanup != nil {
		s.tracerCleanup(ctx)
	}
}

func initTracer(ctx context.Context, endpoint string) (func(context.Context), error) {
	conn, err := grpc.NewClient(endpoint, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	traceExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, err
	}
	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceNameKey.String("robotpath")))
	if err != nil {
		return nil, err
	}
	bsp := sdktrace.NewBatchSpanProcessor(traceExporter)
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(bsp),
	)
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return func(ctx context.Context) {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := traceExporter.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown OTLP exporter", "error", err)
		}
	}, nil
}
