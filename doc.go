// Package treelab is a small, in-memory playground for learning core
// tree and graph data structures — from generic n-ary nodes to binary
// search trees with approximate matching, plus the classic traversals.
//
// 🌱 What is treelab?
//
//	A beginner-friendly, single-threaded library that brings together:
//		• tree/  — generic n-ary nodes with optional values and deep cloning
//		• bst/   — binary search trees: ordered insert, exact and nearest
//		           (from-above / from-below) search, in-order flattening
//		• dfs/   — depth-first traversal in two guaranteed-equivalent modes
//		           (recursive and iterative)
//		• bfs/   — breadth-first (level-order) traversal
//		• graph/ — vertex/edge bookkeeping with adjacency-map and dense
//		           adjacency-matrix representations
//
// ✨ Why choose treelab?
//
//   - Teaching-first – every algorithm is written to be read, with the
//     invariants spelled out in package docs
//   - Predictable – pure call-and-return semantics, no goroutines, no I/O;
//     traversals never mutate the tree they are handed
//   - Extensible – functional options (OnVisit hooks, context cancellation,
//     depth limits) on every traversal
//
// Quick ASCII example, the tree built by inserting 4, -3, 2.2, 9:
//
//	      4
//	     / \
//	   -3   9
//	     \
//	     2.2
//
// Insert never rebalances, so the shape records the insertion order —
// which is exactly what makes the traversals worth studying.
//
//	go get github.com/katalvlaran/treelab
package treelab
