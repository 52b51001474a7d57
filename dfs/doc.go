// Package dfs implements depth-first traversal of treelab trees in two
// execution modes — Recursive and Iterative — that are guaranteed to
// produce the identical value sequence.
//
// What:
//
//   - DFS(root, opts...): traverse a generic tree.Node of any arity
//   - Binary(root, opts...): the same traversal specialized for bst.Tree
//   - Modes: Recursive (default) uses the call stack; Iterative uses an
//     explicit stack and is the fallback for adversarially deep trees
//
// Ordering contract: child-major post-order. For each node, the full
// subtree of every non-empty child is emitted left-to-right, then the
// node's own value last. This is deliberately neither classic pre-order
// nor in-order; both modes reproduce it exactly.
//
// Isolation contract: neither mode mutates the caller's tree. The
// iterative walk needs a visited marker, so it operates on a private deep
// clone (generic nodes, clearing values as it emits them) or an external
// visited set (binary nodes); a second traversal or a SortedValues call
// after DFS sees the original tree unchanged.
//
// Empty handling: a nil root, a root without a value, an empty child slot,
// and a valueless child are all simply skipped — never an error, never in
// the output.
//
// Complexity:
//
//   - Time:   O(n); Iterative adds an O(n) clone for generic trees.
//   - Memory: O(depth) recursion or explicit stack.
//
// Options:
//
//   - WithMode(m)       select Recursive or Iterative execution.
//   - WithContext(ctx)  allows cancellation via context.Context.
//   - WithOnVisit(fn)   hook invoked as each value is emitted; error aborts.
//
// Errors:
//
//   - ErrUnknownMode    mode is not Recursive or Iterative.
//   - context.Canceled  if ctx is done.
//   - any error returned by OnVisit (wrapped).
package dfs
