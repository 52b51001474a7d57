// Package bfs provides breadth-first (level-order) traversal of treelab
// trees, with optional hooks, depth limiting, and cancellation.
//
// BFS visits values in strict level order: the root first, then every
// value at depth 1 in child order, then depth 2, and so on. It is always
// iterative — a FIFO queue seeded with the root — and never mutates the
// tree it walks.
//
// Empty handling: a nil root, a root without a value, an empty child slot,
// and a valueless child are all simply skipped — never an error, never in
// the output.
//
// Complexity:
//
//   - Time:   O(n)
//   - Memory: O(w) for the queue, w = widest level.
//
// Options:
//
//   - WithContext(ctx)  allows cancellation via context.Context.
//   - WithOnVisit(fn)   hook invoked as each value is visited; error aborts.
//   - WithMaxDepth(d)   stops exploring beyond depth d (> 0); 0 disables
//     the limit; negative values surface ErrOptionViolation.
//
// Errors:
//
//   - ErrOptionViolation  an invalid option value was supplied.
//   - context.Canceled    if ctx is done.
//   - any error returned by OnVisit (wrapped).
package bfs
