package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/lukaism/tibber-technical-case/internal/engine"
	"github.com/lukaism/tibber-technical-case/services/robotpath/datatypes"
	"github.com/lukaism/tibber-technical-case/services/robotpath/observability"
	"github.com/lukaism/tibber-technical-case/services/robotpath/store"
)

// PathHandler handles the enter-path endpoint.
type PathHandler interface {
	HandleEnterPath(c *gin.Context)
}

// recordInserter is the persistence dependency HandleEnterPath needs. It
// is satisfied by *store.Store; tests supply a fake instead of standing up
// Postgres.
type recordInserter interface {
	Insert(ctx context.Context, rec store.Record) (store.Record, error)
}

type pathHandler struct {
	store   recordInserter
	metrics *observability.Metrics
	tracer  trace.Tracer
}

// NewPathHandler builds a PathHandler backed by st. metrics may be nil, in
// which case metric recording is skipped.
func NewPathHandler(st recordInserter, metrics *observability.Metrics) PathHandler {
	if st == nil {
		panic("NewPathHandler: store must not be nil")
	}
	return &pathHandler{
		store:   st,
		metrics: metrics,
		tracer:  otel.Tracer("robotpath.handlers.path"),
	}
}

// HandleEnterPath processes POST /tibber-developer-test/enter-path.
//
// Flow: parse -> validate -> translate to engine commands -> compute ->
// persist -> respond. MalformedInput and EngineInvariantViolation collapse
// to the generic "Internal Server Error" message (spec §7); a
// PersistenceFailure instead carries a descriptive message built from the
// store error, matching the original's "There was a problem inserting the
// record into the database: ..." response.
func (h *pathHandler) HandleEnterPath(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "HandleEnterPath")
	defer span.End()

	start := time.Now()

	var req datatypes.EnterPathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid request body")
		slog.Error("failed to parse enter-path request", "error", err)
		h.fail(c, "validation_error")
		return
	}

	if err := req.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation failed")
		slog.Error("enter-path request failed validation", "error", err)
		h.fail(c, "validation_error")
		return
	}

	commands := make([]engine.Command, len(req.Commands))
	for i, c := range req.Commands {
		commands[i] = engine.Command{
			Direction: engine.Direction(c.Direction),
			Steps:     c.Steps,
		}
	}

	computeStart := time.Now()
	result, err := engine.Compute(engine.Position{X: req.Start.X, Y: req.Start.Y}, commands)
	computeDuration := time.Since(computeStart)
	if h.metrics != nil {
		h.metrics.ComputeDurationSeconds.Observe(computeDuration.Seconds())
		h.metrics.CommandsPerRequest.Observe(float64(len(commands)))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "engine computation failed")
		slog.Error("engine.Compute failed",
			"error", err,
			"invariant_violation", errors.Is(err, engine.ErrEngineInvariant),
		)
		h.fail(c, "engine_error")
		return
	}
	if h.metrics != nil {
		h.metrics.ResultCells.Observe(float64(result))
	}

	now := time.Now()
	rec, err := h.store.Insert(ctx, store.Record{
		Timestamp: now,
		Commands:  len(req.Commands),
		Result:    result,
		Duration:  time.Since(start).Seconds(),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "persistence failed")
		slog.Error("failed to persist enter-path record", "error", err)
		h.failPersistence(c, err)
		return
	}

	if h.metrics != nil {
		h.metrics.RequestsTotal.WithLabelValues("success").Inc()
	}

	c.JSON(http.StatusCreated, datatypes.EnterPathResponse{
		ID:        rec.ID,
		Timestamp: rec.Timestamp.UTC().Format(time.RFC3339),
		Commands:  rec.Commands,
		Result:    rec.Result,
		Duration:  rec.Duration,
		Message:   "Record inserted successfully.",
	})
}

// fail records outcome and writes the generic HTTP 500 error shape for
// MalformedInput and engine invariant failures. It never includes internal
// error detail in the response body.
func (h *pathHandler) fail(c *gin.Context, outcome string) {
	if h.metrics != nil {
		h.metrics.RequestsTotal.WithLabelValues(outcome).Inc()
	}
	c.JSON(http.StatusInternalServerError, datatypes.ErrorResponse{Error: "Internal Server Error"})
}

// failPersistence records a persistence_error outcome and writes an HTTP
// 500 whose message describes the store error, mirroring the original's
// "There was a problem inserting the record into the database: {e}"
// response.
func (h *pathHandler) failPersistence(c *gin.Context, err error) {
	if h.metrics != nil {
		h.metrics.RequestsTotal.WithLabelValues("persistence_error").Inc()
	}
	c.JSON(http.StatusInternalServerError, datatypes.ErrorResponse{
		Error: fmt.Sprintf("There was a problem inserting the record into the database: %v", err),
	})
}
