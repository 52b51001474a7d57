// Package bst defines the search-strategy enumeration and sentinel errors
// for binary search tree lookups.
package bst

import "errors"

// ErrUnknownStrategy is returned by Search when the supplied SearchStrategy
// is not one of Exact, FromAbove, FromBelow.
var ErrUnknownStrategy = errors.New("bst: unknown search strategy")

// SearchStrategy dictates how Search matches are conducted.
type SearchStrategy int

const (
	// Exact matches only the target value itself.
	Exact SearchStrategy = iota

	// FromAbove matches the nearest upper bound: the smallest value >= target.
	FromAbove

	// FromBelow matches the nearest lower bound: the largest value <= target.
	FromBelow
)

// String returns the strategy name for diagnostics.
func (s SearchStrategy) String() string {
	switch s {
	case Exact:
		return "Exact"
	case FromAbove:
		return "FromAbove"
	case FromBelow:
		return "FromBelow"
	default:
		return "SearchStrategy(?)"
	}
}

// valid reports whether s is a defined strategy.
func (s SearchStrategy) valid() bool {
	return s == Exact || s == FromAbove || s == FromBelow
}
