package bst

import "github.com/katalvlaran/treelab/tree"

// Tree is a binary search tree node: an optional float64 value and two
// child slots (left, right). The zero value / NewEmpty() is an empty tree;
// the first Insert turns it into a leaf.
//
// Nodes compare by value only; topology never participates in comparison.
// That is what the closest-candidate tie-break in Search relies on.
type Tree struct {
	value    float64
	hasValue bool
	left     *Tree
	right    *Tree
}

// New returns a leaf holding value.
func New(value float64) *Tree {
	return &Tree{value: value, hasValue: true}
}

// NewEmpty returns an empty tree. Search on it finds nothing for every
// strategy; the first Insert fills it in place.
func NewEmpty() *Tree {
	return &Tree{}
}

// Value returns the node's value and whether one is present.
func (t *Tree) Value() (float64, bool) {
	return t.value, t.hasValue
}

// Left returns the left child, or nil if the slot is empty.
func (t *Tree) Left() *Tree {
	return t.left
}

// Right returns the right child, or nil if the slot is empty.
func (t *Tree) Right() *Tree {
	return t.right
}

// Insert places value into the tree and returns it.
//
// An empty node becomes a leaf holding value. An equal value is an
// idempotent no-op. A strictly smaller value descends left, a strictly
// greater one right, allocating at most one new leaf per call. No
// rebalancing: the final shape depends on the insertion order.
func (t *Tree) Insert(value float64) float64 {
	if !t.hasValue {
		t.value = value
		t.hasValue = true
		return value
	}
	if value == t.value {
		return value
	}
	if value < t.value {
		if t.left == nil {
			t.left = New(value)
			return value
		}
		return t.left.Insert(value)
	}
	if t.right == nil {
		t.right = New(value)
		return value
	}
	return t.right.Insert(value)
}

// closer picks the better of closest and candidate for target under the
// given strategy, or nil if neither is suitable.
//
// The single rule, applied in both directions: a candidate violating the
// strategy's directional constraint never replaces a valid closest; any
// valid candidate replaces a nil closest; among valid candidates FromBelow
// keeps the larger and FromAbove the smaller. An exact match is handled by
// Search itself, so equal values simply keep the incumbent here.
func closer(target float64, closest, candidate *Tree, strategy SearchStrategy) *Tree {
	cand, ok := candidate.Value()
	if !ok {
		return closest
	}
	if target == cand {
		return closest
	}
	if closest != nil {
		if best, has := closest.Value(); has && target == best {
			return closest
		}
	}
	switch strategy {
	case FromBelow:
		// candidate must sit at or below the target
		if target-cand < 0 {
			return closest
		}
		if closest == nil {
			return candidate
		}
		if best, _ := closest.Value(); cand >= best {
			return candidate
		}
		return closest
	case FromAbove:
		// candidate must sit at or above the target
		if target-cand > 0 {
			return closest
		}
		if closest == nil {
			return candidate
		}
		if best, _ := closest.Value(); cand <= best {
			return candidate
		}
		return closest
	}
	// Exact never accumulates a candidate.
	return closest
}

// Search looks value up in the tree.
//
// With Exact, it returns the node holding value, or nil if the descent
// reaches an empty slot. With FromAbove / FromBelow it returns the nearest
// upper / lower bound instead: when the descent falls off the tree on the
// side the strategy can still satisfy, the current node is the answer;
// otherwise the best candidate accumulated along the path (possibly nil)
// is returned. An exact match short-circuits for every strategy.
//
// A nil result with a nil error means no value in the tree satisfies the
// strategy. The only error is ErrUnknownStrategy.
func (t *Tree) Search(value float64, strategy SearchStrategy) (*Tree, error) {
	if !strategy.valid() {
		return nil, ErrUnknownStrategy
	}
	return t.search(value, strategy, nil), nil
}

// search is the recursive descent, threading the closest-candidate
// accumulator so the leaf-boundary cases can fall back on it.
func (t *Tree) search(value float64, strategy SearchStrategy, closest *Tree) *Tree {
	// Fold the current node into the running candidate before branching.
	closest = closer(value, closest, t, strategy)

	v, ok := t.Value()
	if !ok {
		return nil
	}
	if value == v {
		return t
	}
	if value < v {
		if t.left == nil {
			// Fell off on the low side: this node already bounds value
			// from above, so FromAbove is satisfied right here.
			if strategy == FromAbove {
				return t
			}
			return closest
		}
		return t.left.search(value, strategy, closest)
	}
	if t.right == nil {
		// Symmetric: this node bounds value from below.
		if strategy == FromBelow {
			return t
		}
		return closest
	}
	return t.right.search(value, strategy, closest)
}

// SortedValues returns the tree's values in ascending order via in-order
// traversal. An empty tree yields an empty slice. Because Insert drops
// duplicates, the result equals the sorted set of all inserted values.
func (t *Tree) SortedValues() []float64 {
	out := make([]float64, 0)
	return t.appendInOrder(out)
}

func (t *Tree) appendInOrder(out []float64) []float64 {
	if !t.hasValue {
		return out
	}
	if t.left != nil {
		out = t.left.appendInOrder(out)
	}
	out = append(out, t.value)
	if t.right != nil {
		out = t.right.appendInOrder(out)
	}
	return out
}

// AsNode returns a deep copy of the tree as a generic tree.Node with two
// child slots per node (slot 0 = left, slot 1 = right; empty slots are nil),
// for use with the generic dfs and bfs traversals. Mutating the copy never
// affects the BST.
func (t *Tree) AsNode() *tree.Node {
	if t == nil {
		return nil
	}
	n := tree.NewEmpty()
	if t.hasValue {
		n.SetValue(t.value)
	}
	n.AddChild(t.left.AsNode())
	n.AddChild(t.right.AsNode())
	return n
}
