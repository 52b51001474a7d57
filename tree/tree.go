package tree

// Node is a generic tree node: an optional value plus ordered child slots.
//
// The zero value is an empty node with no children. A nil child slot and a
// child without a value are both skipped by traversal, never reported.
type Node struct {
	value    float64
	hasValue bool
	children []*Node
}

// New returns a node holding value, with no children.
func New(value float64) *Node {
	return &Node{value: value, hasValue: true}
}

// NewEmpty returns a node with no value and no children.
// An empty node is logically non-existent until SetValue is called.
func NewEmpty() *Node {
	return &Node{}
}

// NewWithChildren returns a node holding value with the given child slots,
// in order. Nil entries are kept as empty slots.
func NewWithChildren(value float64, children ...*Node) *Node {
	return &Node{value: value, hasValue: true, children: children}
}

// Value returns the node's value and whether one is present.
func (n *Node) Value() (float64, bool) {
	return n.value, n.hasValue
}

// HasValue reports whether the node holds a value.
func (n *Node) HasValue() bool {
	return n.hasValue
}

// SetValue stores value in the node.
func (n *Node) SetValue(value float64) {
	n.value = value
	n.hasValue = true
}

// ClearValue removes the node's value, making it logically non-existent.
// The child slots are left untouched.
func (n *Node) ClearValue() {
	n.value = 0
	n.hasValue = false
}

// Children returns the node's child slots in order, including nil slots.
// The slice is the node's own storage; callers must treat it as read-only.
func (n *Node) Children() []*Node {
	return n.children
}

// ChildCount returns the number of child slots, counting empty (nil) slots.
// For fixed-arity trees this is the arity, not the number of live children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// AddChild appends child as a new slot. A nil child records an empty slot.
func (n *Node) AddChild(child *Node) {
	n.children = append(n.children, child)
}

// Clone returns a deep copy of the subtree rooted at n.
// Nil slots are preserved so arity is identical to the original.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	cp := &Node{value: n.value, hasValue: n.hasValue}
	if n.children != nil {
		cp.children = make([]*Node, len(n.children))
		for i, c := range n.children {
			cp.children[i] = c.Clone()
		}
	}
	return cp
}
