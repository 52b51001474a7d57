package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treelab/graph"
)

func TestAdjacencyMatrix_AgreesWithGraph(t *testing.T) {
	g, a, b, c := fixture(t)
	m := graph.NewAdjacencyMatrix(g)

	require.Equal(t, g.NumVertices(), m.Dim())

	// Every registered pair agrees with the map view, both orientations.
	for _, u := range g.Vertices() {
		for _, v := range g.Vertices() {
			got, err := m.Connects(u, v, true)
			require.NoError(t, err)
			require.Equal(t, g.Connects(u, v, true), got, "directed %v->%v", u.Value, v.Value)

			got, err = m.Connects(u, v, false)
			require.NoError(t, err)
			require.Equal(t, g.Connects(u, v, false), got, "undirected %v--%v", u.Value, v.Value)
		}
	}

	w, err := m.Weight(b, c)
	require.NoError(t, err)
	require.Equal(t, 2.5, w)

	w, err = m.Weight(a, c)
	require.NoError(t, err)
	require.Zero(t, w, "absent edge reads as zero")
}

func TestAdjacencyMatrix_Neighbors(t *testing.T) {
	g, a, b, c := fixture(t)
	m := graph.NewAdjacencyMatrix(g)

	nbs, err := m.Neighbors(a)
	require.NoError(t, err)
	require.Equal(t, []*graph.Vertex{b}, nbs)

	nbs, err = m.Neighbors(c)
	require.NoError(t, err)
	require.Empty(t, nbs, "c has outgoing edges to nobody")
}

func TestAdjacencyMatrix_UnknownVertex(t *testing.T) {
	g, a, _, _ := fixture(t)
	m := graph.NewAdjacencyMatrix(g)
	stranger := graph.NewVertex(99)

	_, err := m.Weight(a, stranger)
	require.ErrorIs(t, err, graph.ErrVertexNotFound)
	_, err = m.Connects(stranger, a, false)
	require.ErrorIs(t, err, graph.ErrVertexNotFound)
	_, err = m.Neighbors(stranger)
	require.ErrorIs(t, err, graph.ErrVertexNotFound)
}

// TestAdjacencyMatrix_Snapshot: the matrix is frozen at build time.
func TestAdjacencyMatrix_Snapshot(t *testing.T) {
	g, a, _, c := fixture(t)
	m := graph.NewAdjacencyMatrix(g)

	require.NoError(t, g.AddEdge(graph.NewEdge(a, c)))
	connected, err := m.Connects(a, c, true)
	require.NoError(t, err)
	require.False(t, connected, "matrix must not track later graph mutations")
}

// TestAdjacencyMatrix_ParallelEdges: the earliest weight wins in the view.
func TestAdjacencyMatrix_ParallelEdges(t *testing.T) {
	a, b := graph.NewVertex(1), graph.NewVertex(2)
	g, err := graph.New(nil, []*graph.Edge{
		graph.NewWeightedEdge(a, b, 3),
		graph.NewWeightedEdge(a, b, 8),
	})
	require.NoError(t, err)

	m := graph.NewAdjacencyMatrix(g)
	w, err := m.Weight(a, b)
	require.NoError(t, err)
	require.Equal(t, 3.0, w)
}
