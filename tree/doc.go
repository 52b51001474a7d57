// Package tree defines the generic n-ary tree node used throughout treelab.
//
// A Node holds an optional float64 value and an ordered sequence of child
// slots. A slot may be nil, and a node without a value is treated as
// logically non-existent by every consumer (traversal and search skip it
// and never report it). This "optional value" convention is what lets a
// fixed-arity subtype such as bst.Tree encode a missing child as an empty
// slot without a separate sentinel type.
//
// Ownership model:
//
//   - Each node exclusively owns its children: tree topology only, no
//     sharing, no cycles, no parent links.
//   - Clone produces a fully independent deep copy; mutating the copy never
//     affects the original. Iterative traversal relies on this to keep its
//     visited markers private.
//
// Complexity:
//
//   - All accessors: O(1)
//   - Clone: O(n) over reachable nodes
//
// NaN values are not rejected; comparison behavior under NaN is unspecified.
package tree
