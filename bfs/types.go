// Package bfs defines tunable options and error definitions for
// breadth-first traversal.
package bfs

import (
	"context"
	"errors"
)

// ErrOptionViolation is returned when an invalid Option is supplied,
// such as a negative depth limit.
var ErrOptionViolation = errors.New("bfs: invalid option supplied")

// Option configures BFS behavior via functional arguments. An invalid
// value is recorded internally and surfaced as ErrOptionViolation when the
// traversal is invoked.
type Option func(*Options)

// Options holds parameters and callbacks customizing a traversal.
type Options struct {
	// Ctx allows cancellation and deadlines; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked with each value and its depth as it
	// is visited. Returning an error aborts the traversal.
	OnVisit func(value float64, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// err records an invalid option, surfaced when the traversal runs.
	err error
}

// DefaultOptions returns Options with a background context, no hook, and
// no depth limit.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: 0,
	}
}

// WithContext returns an Option that sets the Context for the traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as the visit hook.
func WithOnVisit(fn func(value float64, depth int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithMaxDepth returns an Option limiting traversal depth to d levels
// below the root. Zero disables the limit; a negative d is recorded as
// ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = ErrOptionViolation
			return
		}
		o.MaxDepth = d
	}
}
