package bst_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/google/btree"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treelab/bst"
)

// boundaryValues is the insertion set used across the nearest-bound cases.
var boundaryValues = []float64{4, -3, 2.2, 9, 5.6, 6.7, 1.2, 8.9}

func buildTree(values []float64) *bst.Tree {
	t := bst.NewEmpty()
	for _, v := range values {
		t.Insert(v)
	}
	return t
}

// checkInvariant walks the tree verifying the strict ordering invariant:
// left descendants < node < right descendants, within (lo, hi) bounds.
func checkInvariant(t *testing.T, node *bst.Tree, lo, hi float64) {
	t.Helper()
	if node == nil {
		return
	}
	v, ok := node.Value()
	if !ok {
		require.Nil(t, node.Left(), "valueless node must be a bare root")
		require.Nil(t, node.Right(), "valueless node must be a bare root")
		return
	}
	require.Greater(t, v, lo, "value must exceed every ancestor lower bound")
	require.Less(t, v, hi, "value must stay below every ancestor upper bound")
	checkInvariant(t, node.Left(), lo, v)
	checkInvariant(t, node.Right(), v, hi)
}

func TestInsert_Idempotent(t *testing.T) {
	tr := bst.NewEmpty()
	require.Equal(t, 5.0, tr.Insert(5))
	require.Equal(t, 5.0, tr.Insert(5), "second insert returns the value too")
	require.Equal(t, []float64{5}, tr.SortedValues())

	tr.Insert(3)
	tr.Insert(3)
	tr.Insert(7)
	require.Equal(t, []float64{3, 5, 7}, tr.SortedValues())
}

func TestInsert_Invariant(t *testing.T) {
	rng := rand.New(rand.NewSource(458))
	for trial := 0; trial < 25; trial++ {
		values := make([]float64, 64)
		for i := range values {
			values[i] = math.Round(rng.Float64()*2000-1000) / 10
		}
		tr := buildTree(values)
		checkInvariant(t, tr, math.Inf(-1), math.Inf(1))
	}
}

// TestSortedValues_RoundTrip: sorted flattening equals the sorted set of
// inserted values, for arbitrary insertion orders with duplicates.
func TestSortedValues_RoundTrip(t *testing.T) {
	values := []float64{4, -3, 2.2, 9, 5.6, 6.7, 1.2, 8.9, 4, -3, 9}
	tr := buildTree(values)

	seen := make(map[float64]struct{})
	want := make([]float64, 0, len(values))
	for _, v := range values {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		want = append(want, v)
	}
	sort.Float64s(want)
	require.Equal(t, want, tr.SortedValues())
}

// TestSortedValues_BTreeOracle cross-checks in-order flattening against an
// independent ordered container fed the same inserts.
func TestSortedValues_BTreeOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(1881))
	tr := bst.NewEmpty()
	oracle := btree.NewG[float64](2, func(a, b float64) bool { return a < b })
	for i := 0; i < 500; i++ {
		v := math.Round(rng.Float64()*1e4-5e3) / 100
		tr.Insert(v)
		oracle.ReplaceOrInsert(v)
	}

	want := make([]float64, 0, oracle.Len())
	oracle.Ascend(func(v float64) bool {
		want = append(want, v)
		return true
	})
	require.Equal(t, want, tr.SortedValues())
}

func TestSearch_Exact(t *testing.T) {
	tr := buildTree(boundaryValues)
	for _, v := range boundaryValues {
		node, err := tr.Search(v, bst.Exact)
		require.NoError(t, err)
		require.NotNil(t, node, "inserted value %v must be found", v)
		got, ok := node.Value()
		require.True(t, ok)
		require.Equal(t, v, got)
	}
	for _, v := range []float64{0, -100, 100, 4.0001} {
		node, err := tr.Search(v, bst.Exact)
		require.NoError(t, err)
		require.Nil(t, node, "absent value %v must not be found", v)
	}
}

// TestSearch_NearestBounds pins the boundary cases for both approximate
// strategies on the shared insertion set.
func TestSearch_NearestBounds(t *testing.T) {
	tr := buildTree(boundaryValues)
	cases := []struct {
		name     string
		target   float64
		strategy bst.SearchStrategy
		want     float64
		miss     bool
	}{
		{"above/inside", 5, bst.FromAbove, 5.6, false},
		{"above/below-min", -4, bst.FromAbove, -3, false},
		{"above/past-max", 10, bst.FromAbove, 0, true},
		{"below/inside", 5, bst.FromBelow, 4, false},
		{"below/past-min", -4, bst.FromBelow, 0, true},
		{"below/above-max", 10, bst.FromBelow, 9, false},
		{"above/exact-hit", 2.2, bst.FromAbove, 2.2, false},
		{"below/exact-hit", 8.9, bst.FromBelow, 8.9, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			node, err := tr.Search(tc.target, tc.strategy)
			require.NoError(t, err)
			if tc.miss {
				require.Nil(t, node)
				return
			}
			require.NotNil(t, node)
			got, ok := node.Value()
			require.True(t, ok)
			require.Equal(t, tc.want, got)
		})
	}
}

// TestSearch_AccumulatedCandidate forces the descent to carry the best-seen
// candidate past a subtree that cannot improve on it.
func TestSearch_AccumulatedCandidate(t *testing.T) {
	// Shape:      10
	//            /
	//           2
	//            \
	//             7
	//            /
	//           5
	tr := buildTree([]float64{10, 2, 7, 5})

	// Target 6: descent 10 -> 2 -> 7 -> 5, then falls off 5's right side.
	// FromBelow answers with the current node 5; FromAbove must fall back on
	// the accumulated candidate 7 even though the walk ended below it.
	node, err := tr.Search(6, bst.FromAbove)
	require.NoError(t, err)
	require.NotNil(t, node)
	v, _ := node.Value()
	require.Equal(t, 7.0, v)

	node, err = tr.Search(6, bst.FromBelow)
	require.NoError(t, err)
	require.NotNil(t, node)
	v, _ = node.Value()
	require.Equal(t, 5.0, v)

	// Target 3: descent 10 -> 2 -> 7 -> 5, falls off 5's left side.
	// FromAbove answers with the current node 5; FromBelow falls back on 2.
	node, err = tr.Search(3, bst.FromAbove)
	require.NoError(t, err)
	v, _ = node.Value()
	require.Equal(t, 5.0, v)

	node, err = tr.Search(3, bst.FromBelow)
	require.NoError(t, err)
	v, _ = node.Value()
	require.Equal(t, 2.0, v)
}

func TestSearch_EmptyTree(t *testing.T) {
	tr := bst.NewEmpty()
	for _, s := range []bst.SearchStrategy{bst.Exact, bst.FromAbove, bst.FromBelow} {
		node, err := tr.Search(1, s)
		require.NoError(t, err)
		require.Nil(t, node, "strategy %v on empty tree", s)
	}
	require.Empty(t, tr.SortedValues())
}

func TestSearch_UnknownStrategy(t *testing.T) {
	tr := buildTree(boundaryValues)
	_, err := tr.Search(5, bst.SearchStrategy(42))
	require.ErrorIs(t, err, bst.ErrUnknownStrategy)
}

func TestAsNode_Shape(t *testing.T) {
	tr := buildTree([]float64{4, -3, 9})
	n := tr.AsNode()
	require.Equal(t, 2, n.ChildCount())

	v, ok := n.Value()
	require.True(t, ok)
	require.Equal(t, 4.0, v)

	left, right := n.Children()[0], n.Children()[1]
	v, _ = left.Value()
	require.Equal(t, -3.0, v)
	v, _ = right.Value()
	require.Equal(t, 9.0, v)
	require.Nil(t, left.Children()[0], "empty slot must map to nil")

	// The copy is independent of the BST.
	n.ClearValue()
	_, ok = tr.Value()
	require.True(t, ok)
}
