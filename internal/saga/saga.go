// Package saga records compensating actions for multi-step operations that
// span the database and the filesystem.
package saga

import (
	"context"
	"errors"
	"fmt"

	"knowgent/internal/contextutil"
)

type step struct {
	name string
	undo func(ctx context.Context) error
}

// Saga collects undo actions for the steps that succeeded so far.
// It is not safe for concurrent use; each operation builds its own.
type Saga struct {
	name  string
	steps []step
}

// New starts an empty saga for the named operation.
func New(name string) *Saga {
	return &Saga{name: name}
}

// Do runs action and, if it succeeds, records undo for it.
// A nil undo records nothing.
func (s *Saga) Do(ctx context.Context, name string, action func(ctx context.Context) error, undo func(ctx context.Context) error) error {
	if err := action(ctx); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if undo != nil {
		s.steps = append(s.steps, step{name: name, undo: undo})
	}
	return nil
}

// Len returns the number of recorded undo actions.
func (s *Saga) Len() int {
	return len(s.steps)
}

// Compensate runs the recorded undo actions in reverse order. Every undo is
// attempted even if an earlier one fails; failures are logged and returned
// joined. The saga is empty afterwards.
func (s *Saga) Compensate(ctx context.Context) error {
	logger := contextutil.LoggerFromContext(ctx).With("saga", s.name)

	var errs []error
	for i := len(s.steps) - 1; i >= 0; i-- {
		st := s.steps[i]
		if err := st.undo(ctx); err != nil {
			logger.ErrorContext(ctx, "compensation failed", "step", st.name, "error", err)
			errs = append(errs, fmt.Errorf("undo %s: %w", st.name, err))
			continue
		}
		logger.WarnContext(ctx, "compensated", "step", st.name)
	}
	s.steps = nil

	return errors.Join(errs...)
}

// Run executes fn with a fresh saga. When fn fails the recorded steps are
// compensated and the compensation failures, if any, are joined onto fn's error.
func Run(ctx context.Context, name string, fn func(ctx context.Context, s *Saga) error) error {
	s := New(name)
	err := fn(ctx, s)
	if err == nil {
		return nil
	}

	if s.Len() > 0 {
		if cErr := s.Compensate(ctx); cErr != nil {
			return errors.Join(err, cErr)
		}
	}
	return err
}
