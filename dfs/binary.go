package dfs

import "github.com/katalvlaran/treelab/bst"

// Binary performs the same depth-first traversal specialized for a binary
// search tree: left subtree, right subtree, then the node's own value.
// For any tree of arity at most two, Binary and DFS produce the identical
// sequence. The caller's tree is unchanged in both modes.
func Binary(root *bst.Tree, opts ...Option) ([]float64, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{opts: o, out: make([]float64, 0)}

	if root == nil {
		return w.out, nil
	}
	if _, ok := root.Value(); !ok {
		return w.out, nil
	}

	switch o.Mode {
	case Recursive:
		if err := w.recurseBinary(root); err != nil {
			return nil, err
		}
	case Iterative:
		if err := w.iterateBinary(root); err != nil {
			return nil, err
		}
	default:
		return nil, ErrUnknownMode
	}

	return w.out, nil
}

// recurseBinary emits left subtree, right subtree, then the node's value.
func (w *walker) recurseBinary(t *bst.Tree) error {
	if err := w.cancelled(); err != nil {
		return err
	}
	if left := t.Left(); left != nil {
		if err := w.recurseBinary(left); err != nil {
			return err
		}
	}
	if right := t.Right(); right != nil {
		if err := w.recurseBinary(right); err != nil {
			return err
		}
	}
	v, _ := t.Value()
	return w.emit(v)
}

// iterateBinary reproduces the recursive ordering with an explicit stack.
//
// Unlike the generic walk, the visited marker is an external set keyed by
// node identity, so no clone is needed and the tree is never touched.
func (w *walker) iterateBinary(root *bst.Tree) error {
	stack := []*bst.Tree{root}
	visited := make(map[*bst.Tree]bool)

	for len(stack) > 0 {
		if err := w.cancelled(); err != nil {
			return err
		}

		cur := stack[len(stack)-1]

		if left := cur.Left(); left != nil && !visited[left] {
			stack = append(stack, left)
			continue
		}
		if right := cur.Right(); right != nil && !visited[right] {
			stack = append(stack, right)
			continue
		}

		v, _ := cur.Value()
		if err := w.emit(v); err != nil {
			return err
		}
		visited[cur] = true
		stack = stack[:len(stack)-1]
	}
	return nil
}
