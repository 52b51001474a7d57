// Package dfs defines the execution-mode enumeration, functional options,
// and sentinel errors for depth-first traversal.
package dfs

import (
	"context"
	"errors"
)

// ErrUnknownMode is returned when the traversal mode is not one of
// Recursive or Iterative.
var ErrUnknownMode = errors.New("dfs: unknown traversal mode")

// Mode selects how the traversal executes. Both modes produce the
// identical output sequence.
type Mode int

const (
	// Recursive runs on the call stack; depth is bounded by tree depth.
	Recursive Mode = iota

	// Iterative runs on an explicit stack; use it for very deep trees.
	Iterative
)

// String returns the mode name for diagnostics.
func (m Mode) String() string {
	switch m {
	case Recursive:
		return "Recursive"
	case Iterative:
		return "Iterative"
	default:
		return "Mode(?)"
	}
}

// Option configures optional behavior of DFS traversal.
// Use with DFS(root, opts...) or Binary(root, opts...).
type Option func(*Options)

// Options holds configurable parameters for a traversal.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// Mode selects recursive or iterative execution; defaults to Recursive.
	Mode Mode

	// OnVisit, if non-nil, is invoked with each value as it is emitted
	// (post-order). Returning an error aborts the traversal.
	OnVisit func(value float64) error

	// err records an invalid option, surfaced when the traversal runs.
	err error
}

// DefaultOptions returns Options with a background context, Recursive mode,
// and no visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:  context.Background(),
		Mode: Recursive,
	}
}

// WithMode returns an Option selecting the execution mode.
// An undefined mode is surfaced as ErrUnknownMode when the traversal runs.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m != Recursive && m != Iterative {
			o.err = ErrUnknownMode
			return
		}
		o.Mode = m
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

// WithOnVisit returns an Option that installs fn as the emit hook.
func WithOnVisit(fn func(value float64) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}
