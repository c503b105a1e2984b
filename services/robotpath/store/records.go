// Package store persists enter-path records to Postgres via pgx.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Record mirrors the records table: one row per processed enter-path
// request.
//
// Result is stored as bigint rather than the 32-bit column a literal
// reading of the original schema would suggest — see the Open Questions
// resolution on Result overflow. Paths with large bounding boxes routinely
// produce counts above 2^31-1, and failing every such request at the
// storage layer would make the persistence collaborator the system's
// effective input-size limit instead of an implementation detail.
type Record struct {
	ID        int64
	Timestamp time.Time
	Commands  int
	Result    uint64
	Duration  float64
}

// Store inserts enter-path records into Postgres.
type Store struct {
	pool *pgxpool.Pool
}

// New wraps an existing connection pool. The caller owns the pool's
// lifecycle (creation and Close); Store never closes it.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// EnsureSchema creates the records table if it does not already exist.
// Safe to call on every process start.
func (s *Store) EnsureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS records (
	id         SERIAL PRIMARY KEY,
	"Timestamp" TIMESTAMPTZ NOT NULL,
	"Commands"  INTEGER NOT NULL,
	"Result"    BIGINT NOT NULL,
	"Duration"  DOUBLE PRECISION NOT NULL
)`
	if _, err := s.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("store: ensure schema: %w", err)
	}
	return nil
}

// Insert writes rec and returns it with ID populated from the generated
// serial key.
func (s *Store) Insert(ctx context.Context, rec Record) (Record, error) {
	const q = `
INSERT INTO records ("Timestamp", "Commands", "Result", "Duration")
VALUES ($1, $2, $3, $4)
RETURNING id`

	err := s.pool.QueryRow(ctx, q, rec.Timestamp, rec.Commands, rec.Result, rec.Duration).Scan(&rec.ID)
	if err != nil {
		return Record{}, fmt.Errorf("store: insert record: %w", err)
	}
	return rec, nil
}
