// Package graph provides small graph representations for teaching:
// vertex/edge bookkeeping over an adjacency map, plus a dense
// adjacency-matrix view.
//
// Vertices carry a float64 value and have identity semantics: two distinct
// *Vertex values are distinct graph nodes even when their values are equal.
// Edges are directed start→end with an optional weight (default 1); two
// edges are the same edge exactly when start, end, and weight all match.
//
// Graph stores membership only — a vertex set and a
// (start, end) → weight-set map — so vertex, edge, and connectivity checks
// are all O(1). It deliberately has no traversal or pathfinding: for
// algorithmic structure, see the tree, bst, dfs, and bfs packages.
//
// Duplicate rule: registering an edge whose (start, end, weight) triple
// already exists fails with ErrDuplicateEdge. This is the one
// externally-visible failure in the library. Parallel edges with a
// different weight are fine.
//
// AdjacencyMatrix freezes a Graph into dense rows for index-based lookup.
// A zero entry means "no edge", so a genuinely zero-weight edge is not
// representable in the matrix view (the map-backed Graph keeps it).
//
// Errors:
//
//   - ErrNilVertex        a nil *Vertex was supplied.
//   - ErrDuplicateEdge    exact (start, end, weight) triple already present.
//   - ErrVertexNotFound   matrix lookup on a vertex outside the matrix.
package graph
