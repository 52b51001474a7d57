package graph

import "errors"

// Sentinel errors for graph operations.
var (
	// ErrNilVertex indicates a nil *Vertex was supplied.
	ErrNilVertex = errors.New("graph: vertex is nil")

	// ErrDuplicateEdge indicates an edge with an identical
	// (start, end, weight) triple is already registered.
	ErrDuplicateEdge = errors.New("graph: duplicate edge")

	// ErrVertexNotFound indicates an operation referenced a vertex outside
	// the structure.
	ErrVertexNotFound = errors.New("graph: vertex not found")
)

// Vertex is a graph node holding a float64 value. Vertices have identity
// semantics: membership and connectivity are keyed on the pointer, not the
// value, so two vertices with equal values remain distinct nodes.
type Vertex struct {
	Value float64
}

// NewVertex returns a vertex holding value.
func NewVertex(value float64) *Vertex {
	return &Vertex{Value: value}
}

// Edge is a directed connection start→end with a weight (default 1).
// Two Edge values describe the same edge when start, end, and weight are
// all equal.
type Edge struct {
	Start  *Vertex
	End    *Vertex
	Weight float64
}

// NewEdge returns a start→end edge with the default weight 1.
func NewEdge(start, end *Vertex) *Edge {
	return &Edge{Start: start, End: end, Weight: 1}
}

// NewWeightedEdge returns a start→end edge with the given weight.
func NewWeightedEdge(start, end *Vertex, weight float64) *Edge {
	return &Edge{Start: start, End: end, Weight: weight}
}

// Vertices returns the edge's endpoints in start, end order.
func (e *Edge) Vertices() []*Vertex {
	return []*Vertex{e.Start, e.End}
}

// Connects reports whether this edge connects a to b. When directed, a
// must be the start and b the end; otherwise either orientation matches.
func (e *Edge) Connects(a, b *Vertex, directed bool) bool {
	if directed {
		return a == e.Start && b == e.End
	}
	return (a == e.Start || a == e.End) && (b == e.Start || b == e.End)
}

// endpoints keys the edge map on the ordered (start, end) pair; the inner
// weight set is what makes parallel edges with different weights legal.
type endpoints struct {
	start *Vertex
	end   *Vertex
}

// Graph is a membership container: a vertex set plus a
// (start, end) → weight-set edge map. Lookups are O(1); iteration order of
// Vertices and Edges is registration order (deterministic).
type Graph struct {
	vertexSet map[*Vertex]struct{}
	vertexSeq []*Vertex
	edgeMap   map[endpoints]map[float64]struct{}
	edgeSeq   []Edge
}

// New builds a graph from the given vertices and edges.
// Duplicate vertices are silently dropped; a duplicate edge triple fails
// with ErrDuplicateEdge, as does a nil vertex or edge endpoint.
func New(vertices []*Vertex, edges []*Edge) (*Graph, error) {
	g := &Graph{
		vertexSet: make(map[*Vertex]struct{}, len(vertices)),
		edgeMap:   make(map[endpoints]map[float64]struct{}, len(edges)),
	}
	if err := g.AddVertices(vertices); err != nil {
		return nil, err
	}
	if err := g.AddEdges(edges); err != nil {
		return nil, err
	}
	return g, nil
}

// NewEmpty returns a graph with no vertices and no edges.
func NewEmpty() *Graph {
	g, _ := New(nil, nil)
	return g
}

// Vertices returns the registered vertices in registration order.
func (g *Graph) Vertices() []*Vertex {
	out := make([]*Vertex, len(g.vertexSeq))
	copy(out, g.vertexSeq)
	return out
}

// Edges returns fresh Edge values for every registered
// (start, end, weight) triple, in registration order. The graph itself
// never stores caller-supplied *Edge references.
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edgeSeq))
	for i := range g.edgeSeq {
		e := g.edgeSeq[i]
		out[i] = &e
	}
	return out
}

// NumVertices returns the number of registered vertices.
func (g *Graph) NumVertices() int {
	return len(g.vertexSeq)
}

// NumEdges returns the number of registered edge triples.
func (g *Graph) NumEdges() int {
	return len(g.edgeSeq)
}

// AddVertex registers vertex. Re-adding a vertex is a silent no-op.
func (g *Graph) AddVertex(vertex *Vertex) error {
	if vertex == nil {
		return ErrNilVertex
	}
	if _, ok := g.vertexSet[vertex]; ok {
		return nil
	}
	g.vertexSet[vertex] = struct{}{}
	g.vertexSeq = append(g.vertexSeq, vertex)
	return nil
}

// AddVertices registers several vertices.
func (g *Graph) AddVertices(vertices []*Vertex) error {
	for _, v := range vertices {
		if err := g.AddVertex(v); err != nil {
			return err
		}
	}
	return nil
}

// AddEdge registers edge, registering its endpoints as vertices when they
// are not yet known. An edge duplicating an existing (start, end, weight)
// triple is rejected with ErrDuplicateEdge.
func (g *Graph) AddEdge(edge *Edge) error {
	if edge == nil || edge.Start == nil || edge.End == nil {
		return ErrNilVertex
	}

	key := endpoints{start: edge.Start, end: edge.End}
	weights, ok := g.edgeMap[key]
	if ok {
		if _, dup := weights[edge.Weight]; dup {
			return ErrDuplicateEdge
		}
	} else {
		weights = make(map[float64]struct{}, 1)
		g.edgeMap[key] = weights
	}

	if err := g.AddVertex(edge.Start); err != nil {
		return err
	}
	if err := g.AddVertex(edge.End); err != nil {
		return err
	}

	weights[edge.Weight] = struct{}{}
	g.edgeSeq = append(g.edgeSeq, *edge)
	return nil
}

// AddEdges registers several edges, stopping at the first failure.
func (g *Graph) AddEdges(edges []*Edge) error {
	for _, e := range edges {
		if err := g.AddEdge(e); err != nil {
			return err
		}
	}
	return nil
}

// HasVertex reports whether vertex is registered.
func (g *Graph) HasVertex(vertex *Vertex) bool {
	_, ok := g.vertexSet[vertex]
	return ok
}

// HasEdge reports whether an edge with the same (start, end, weight)
// triple is registered.
func (g *Graph) HasEdge(edge *Edge) bool {
	if edge == nil {
		return false
	}
	weights, ok := g.edgeMap[endpoints{start: edge.Start, end: edge.End}]
	if !ok {
		return false
	}
	_, ok = weights[edge.Weight]
	return ok
}

// Connects reports whether a and b are connected by some registered edge,
// regardless of weight. When directed, only a→b counts; otherwise b→a
// matches too. Unregistered vertices are never connected.
func (g *Graph) Connects(a, b *Vertex, directed bool) bool {
	if !g.HasVertex(a) || !g.HasVertex(b) {
		return false
	}
	if _, ok := g.edgeMap[endpoints{start: a, end: b}]; ok {
		return true
	}
	if !directed {
		if _, ok := g.edgeMap[endpoints{start: b, end: a}]; ok {
			return true
		}
	}
	return false
}
