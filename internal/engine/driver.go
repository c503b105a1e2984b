package engine

import "fmt"

// state holds everything a single Compute invocation needs. It is created
// fresh per call, mutated only by Compute, and discarded on return — no
// state outlives one invocation, and nothing here is shared across
// concurrent calls.
type state struct {
	h, v     *segmentIndex
	counter  counter
	position Position
}

func newState(start Position) *state {
	return &state{
		h:        newSegmentIndex(),
		v:        newSegmentIndex(),
		position: start,
	}
}

// Compute runs commands starting from start and returns the number of
// distinct lattice points the robot occupies at any time during the
// traversal, including the starting point.
//
// Compute never panics past its own boundary: a violated invariant (a bug,
// not a user-input problem) is recovered and reported as
// ErrEngineInvariant so callers never need a bare recover() around engine
// code.
func Compute(start Position, commands []Command) (result uint64, err error) {
	defer func() {
		if r := recover(); r != nil {
			if errVal, ok := r.(error); ok {
				err = fmt.Errorf("%w: %v", ErrEngineInvariant, errVal)
				return
			}
			err = fmt.Errorf("%w: %v", ErrEngineInvariant, r)
		}
	}()

	s := newState(start)
	for _, cmd := range commands {
		if err := s.step(cmd); err != nil {
			return 0, err
		}
	}
	return s.counter.result(), nil
}

// step builds the segment for one command, folds its overlap with the
// history into the running counters, records it in the owning index, and
// advances the current position.
func (s *state) step(cmd Command) error {
	seg, next, err := buildSegment(s.position, cmd)
	if err != nil {
		return err
	}

	var own, other *segmentIndex
	if seg.Orientation == Horizontal {
		own, other = s.h, s.v
	} else {
		own, other = s.v, s.h
	}

	absorbed := absorb(seg, own, other)
	s.counter.addCommand(cmd.Steps, absorbed)
	own.append(seg)
	s.position = next

	return nil
}
