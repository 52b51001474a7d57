package bfs

import (
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/katalvlaran/treelab/bst"
	"github.com/katalvlaran/treelab/tree"
)

// item pairs a node with its depth below the root.
type item struct {
	node  *tree.Node
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	opts  Options
	queue *linkedlistqueue.Queue
	out   []float64
}

// BFS performs level-order traversal of the tree rooted at root: dequeue
// the front node, emit its value, enqueue its non-empty children in order.
// A nil or valueless root yields an empty sequence. The tree is never
// mutated.
func BFS(root *tree.Node, opts ...Option) ([]float64, error) {
	// 1. Apply options, surfacing any invalid one immediately
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		opts:  o,
		queue: linkedlistqueue.New(),
		out:   make([]float64, 0),
	}

	// 2. Empty tree: nothing to do
	if root == nil || !root.HasValue() {
		return w.out, nil
	}

	// 3. Seed with root and drain the queue
	w.queue.Enqueue(item{node: root, depth: 0})
	if err := w.loop(); err != nil {
		return nil, err
	}
	return w.out, nil
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for !w.queue.Empty() {
		// cancellation check (once per node)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		front, _ := w.queue.Dequeue()
		it := front.(item)

		v, _ := it.node.Value()
		w.out = append(w.out, v)
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(v, it.depth); err != nil {
				return fmt.Errorf("bfs: OnVisit hook at %v: %w", v, err)
			}
		}

		// Frontier expansion, honoring the depth limit.
		next := it.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, child := range it.node.Children() {
			if child != nil && child.HasValue() {
				w.queue.Enqueue(item{node: child, depth: next})
			}
		}
	}
	return nil
}

// Binary performs the same level-order traversal specialized for a binary
// search tree, enqueueing the left then right child of each node. For any
// tree of arity at most two, Binary and BFS produce the identical sequence.
func Binary(root *bst.Tree, opts ...Option) ([]float64, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	out := make([]float64, 0)
	if root == nil {
		return out, nil
	}
	if _, ok := root.Value(); !ok {
		return out, nil
	}

	type bitem struct {
		node  *bst.Tree
		depth int
	}
	queue := linkedlistqueue.New()
	queue.Enqueue(bitem{node: root, depth: 0})

	for !queue.Empty() {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		front, _ := queue.Dequeue()
		it := front.(bitem)

		v, _ := it.node.Value()
		out = append(out, v)
		if o.OnVisit != nil {
			if err := o.OnVisit(v, it.depth); err != nil {
				return nil, fmt.Errorf("bfs: OnVisit hook at %v: %w", v, err)
			}
		}

		next := it.depth + 1
		if o.MaxDepth > 0 && next > o.MaxDepth {
			continue
		}
		if left := it.node.Left(); left != nil {
			queue.Enqueue(bitem{node: left, depth: next})
		}
		if right := it.node.Right(); right != nil {
			queue.Enqueue(bitem{node: right, depth: next})
		}
	}
	return out, nil
}
