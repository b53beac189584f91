// Package solve provides tunable options and error definitions for the
// minimum-energy arrangement search.
package solve

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for the solver.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("solve: grid is nil")

	// ErrNoSolution is returned when the frontier is exhausted without the
	// target arrangement ever being dequeued. A well-formed but unsolvable
	// arrangement is an expected outcome, not a defect; check with
	// errors.Is.
	ErrNoSolution = errors.New("solve: no sequence of legal moves reaches the target arrangement")

	// ErrCostExceeded is returned when the cheapest frontier entry passes
	// the configured MaxCost before the target is dequeued. It means
	// "unknown under this bound", which is distinct from ErrNoSolution.
	ErrCostExceeded = errors.New("solve: cost bound exceeded before reaching the target arrangement")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solve: invalid option supplied")
)

// Option configures MinEnergy via functional arguments. An invalid
// Option (e.g. negative cost bound) is recorded internally and surfaced
// as ErrOptionViolation when MinEnergy is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search run.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per dequeue.
	Ctx context.Context

	// MaxCost stops the search once the cheapest frontier entry exceeds
	// it, yielding ErrCostExceeded. Default math.MaxInt64 (no bound).
	MaxCost int64

	// OnExpand is called once per expanded arrangement (dequeued and not
	// stale), with the arrangement's key and the final cost at which it
	// was dequeued. Useful for instrumentation and tests.
	OnExpand func(key string, cost int64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no cost bound (MaxCost == math.MaxInt64)
//   - no-op OnExpand hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxCost:  math.MaxInt64,
		OnExpand: func(string, int64) {},
		err:      nil,
	}
}

// WithContext sets a custom context for cancellation. Callers needing
// bounded latency should cancel and treat the result as unknown rather
// than unsolvable.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxCost caps the total cost explored.
//
//	c > 0:  stop once the cheapest frontier entry exceeds c
//	c == 0: only a grid already equal to the target can succeed
//	c < 0:  invalid option → ErrOptionViolation
func WithMaxCost(c int64) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, c)

			return
		}
		o.MaxCost = c
	}
}

// WithOnExpand registers a callback to run on each expansion.
func WithOnExpand(fn func(key string, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
