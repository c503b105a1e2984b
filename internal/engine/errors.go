package engine

import "errors"

// ErrInvalidCommand is returned when a command cannot be built into a
// segment: an unrecognized direction. Callers that bind commands from JSON
// with a validated enum should never see this; it exists so the engine is
// also safe to call directly (e.g. from the CLI replay tool) without a
// prior validation pass.
var ErrInvalidCommand = errors.New("engine: invalid command")

// ErrEngineInvariant indicates a condition the design asserts cannot occur
// in correctly implemented code (for example a segment with lo > hi). It is
// never expected to surface outside of a bug and is recovered from a panic
// at the Compute boundary so callers never need to guard against the
// engine itself crashing the process.
var ErrEngineInvariant = errors.New("engine: invariant violation")
