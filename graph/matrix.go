package graph

// AdjacencyMatrix is a dense snapshot of a Graph: row i, column j holds
// the weight of the first registered i→j edge, zero meaning "no edge".
// It is a read-only view; later Graph mutations are not reflected.
type AdjacencyMatrix struct {
	index map[*Vertex]int // vertex → row/column index
	verts []*Vertex       // index → vertex, registration order
	data  [][]float64
}

// NewAdjacencyMatrix builds the dense view of g. When parallel edges exist
// between the same endpoints, the earliest registered weight wins.
func NewAdjacencyMatrix(g *Graph) *AdjacencyMatrix {
	verts := g.Vertices()
	n := len(verts)

	index := make(map[*Vertex]int, n)
	for i, v := range verts {
		index[v] = i
	}

	data := make([][]float64, n)
	for i := range data {
		data[i] = make([]float64, n)
	}
	for _, e := range g.Edges() {
		i, j := index[e.Start], index[e.End]
		if data[i][j] == 0 {
			data[i][j] = e.Weight
		}
	}

	return &AdjacencyMatrix{index: index, verts: verts, data: data}
}

// Dim returns the matrix dimension (number of vertices).
func (m *AdjacencyMatrix) Dim() int {
	return len(m.verts)
}

// Weight returns the stored a→b weight, zero when no edge is present.
// ErrVertexNotFound is returned for vertices outside the matrix.
func (m *AdjacencyMatrix) Weight(a, b *Vertex) (float64, error) {
	i, ok := m.index[a]
	if !ok {
		return 0, ErrVertexNotFound
	}
	j, ok := m.index[b]
	if !ok {
		return 0, ErrVertexNotFound
	}
	return m.data[i][j], nil
}

// Connects reports whether a and b are connected in the snapshot. When
// directed, only a→b counts; otherwise b→a matches too.
func (m *AdjacencyMatrix) Connects(a, b *Vertex, directed bool) (bool, error) {
	w, err := m.Weight(a, b)
	if err != nil {
		return false, err
	}
	if w != 0 {
		return true, nil
	}
	if directed {
		return false, nil
	}
	w, err = m.Weight(b, a)
	if err != nil {
		return false, err
	}
	return w != 0, nil
}

// Neighbors returns the vertices reachable from v by a direct edge, in
// registration order.
func (m *AdjacencyMatrix) Neighbors(v *Vertex) ([]*Vertex, error) {
	i, ok := m.index[v]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]*Vertex, 0)
	for j, w := range m.data[i] {
		if w != 0 {
			out = append(out, m.verts[j])
		}
	}
	return out, nil
}
