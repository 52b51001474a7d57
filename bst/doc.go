// Package bst implements a binary search tree over float64 values with
// idempotent insertion, exact and approximate (nearest-bound) search, and
// in-order flattening.
//
// Key features:
//
//   - Insert(v): ordered insert, no duplicates — inserting an existing value
//     is a no-op that still returns the value. No rebalancing is performed,
//     so the tree shape records the insertion order.
//   - Search(v, strategy): Exact match, or nearest bound via FromAbove
//     (smallest value >= v) and FromBelow (largest value <= v). A running
//     closest-candidate is threaded down the descent so the best value seen
//     along the path is returned when the descent exhausts the tree.
//   - SortedValues(): in-order traversal — the canonical way to verify the
//     ordering invariant.
//   - AsNode(): a deep structural copy as a generic tree.Node (left = slot 0,
//     right = slot 1), so the dfs and bfs packages can walk a BST.
//
// Invariant: for every node holding v, all values in the left subtree are
// strictly less than v and all values in the right subtree strictly greater.
//
// Complexity (d = tree depth; O(n) worst case for adversarial insert order):
//
//   - Insert, Search: O(d) time, O(d) stack
//   - SortedValues, AsNode: O(n)
//
// Errors:
//
//   - ErrUnknownStrategy — Search called with an undefined SearchStrategy.
//
// A missing match is not an error: Search returns a nil node with a nil
// error. Behavior under NaN inputs is unspecified.
package bst
