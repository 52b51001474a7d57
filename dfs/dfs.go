package dfs

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/treelab/tree"
)

// walker encapsulates state during a traversal.
type walker struct {
	opts Options
	out  []float64
}

// DFS performs depth-first traversal of the tree rooted at root, returning
// the child-major post-order value sequence. A nil or valueless root yields
// an empty sequence. The caller's tree is unchanged in both modes.
func DFS(root *tree.Node, opts ...Option) ([]float64, error) {
	// 1. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{opts: o, out: make([]float64, 0)}

	// 2. Empty tree: nothing to do
	if root == nil || !root.HasValue() {
		return w.out, nil
	}

	// 3. Dispatch on execution mode
	switch o.Mode {
	case Recursive:
		if err := w.recurse(root); err != nil {
			return nil, err
		}
	case Iterative:
		if err := w.iterate(root); err != nil {
			return nil, err
		}
	default:
		return nil, ErrUnknownMode
	}

	return w.out, nil
}

// emit appends v to the output and fires the OnVisit hook.
func (w *walker) emit(v float64) error {
	w.out = append(w.out, v)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit hook at %v: %w", v, err)
		}
	}
	return nil
}

// cancelled reports the context error once the context is done.
func (w *walker) cancelled() error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
		return nil
	}
}

// recurse emits every non-empty child subtree left-to-right, then the
// node's own value. Callers guarantee n is non-nil and has a value.
func (w *walker) recurse(n *tree.Node) error {
	if err := w.cancelled(); err != nil {
		return err
	}
	for _, child := range n.Children() {
		if child == nil || !child.HasValue() {
			continue
		}
		if err := w.recurse(child); err != nil {
			return err
		}
	}
	v, _ := n.Value()
	return w.emit(v)
}

// iterate reproduces the recursive ordering with an explicit stack.
//
// The top of the stack pushes its first non-empty, not-yet-visited child;
// when none remains, its value is emitted, cleared to mark it visited, and
// the node is popped. Clearing mutates the tree, so the walk runs on a
// private deep clone and the caller's tree stays intact.
func (w *walker) iterate(root *tree.Node) error {
	work := root.Clone()
	stack := arraystack.New()
	stack.Push(work)

	for !stack.Empty() {
		if err := w.cancelled(); err != nil {
			return err
		}

		top, _ := stack.Peek()
		cur := top.(*tree.Node)

		// Descend into the first live child, if any.
		pushed := false
		for _, child := range cur.Children() {
			if child != nil && child.HasValue() {
				stack.Push(child)
				pushed = true
				break
			}
		}
		if pushed {
			continue
		}

		// No live children left: emit, mark visited, pop.
		v, _ := cur.Value()
		if err := w.emit(v); err != nil {
			return err
		}
		cur.ClearValue()
		stack.Pop()
	}
	return nil
}
