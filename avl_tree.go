// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package avlmap

import (
	"cmp"
	"fmt"
)

// Tree is an AVL-balanced ordered map from K to V. Keys are unique and
// ordered by the three-way comparator supplied at construction.
// Search, Insert and Remove are O(log n); Len and IsEmpty are O(1).
//
// A Tree is not safe for concurrent use. Callers that share one across
// goroutines must serialize every operation, traversals included, with
// their own lock.
type Tree[K, V any] struct {
	root  *Node[K, V]
	count int
	cmp   func(K, K) int
}

// New creates an empty tree ordered by cmp, which must return a value
// <0, 0 or >0 exactly like cmp.Compare does for ordered types.
func New[K, V any](compare func(K, K) int) *Tree[K, V] {
	return &Tree[K, V]{cmp: compare}
}

// NewOrdered creates an empty tree over a naturally ordered key type.
func NewOrdered[K cmp.Ordered, V any]() *Tree[K, V] {
	return New[K, V](cmp.Compare[K])
}

// Len returns the number of entries currently stored.
func (t *Tree[K, V]) Len() int {
	return t.count
}

// IsEmpty is true when the tree holds no entries.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.root == nil
}

// Root returns the root node of the tree, or nil when empty.
func (t *Tree[K, V]) Root() *Node[K, V] {
	return t.root
}

// First returns the node holding the lowest key, or nil when empty.
func (t *Tree[K, V]) First() *Node[K, V] {
	return t.root.min()
}

// Last returns the node holding the highest key, or nil when empty.
func (t *Tree[K, V]) Last() *Node[K, V] {
	return t.root.max()
}

// Min returns the entry with the lowest key.
func (t *Tree[K, V]) Min() (Entry[K, V], bool) {
	if n := t.First(); n != nil {
		return n.entry, true
	}
	return Entry[K, V]{}, false
}

// Max returns the entry with the highest key.
func (t *Tree[K, V]) Max() (Entry[K, V], bool) {
	if n := t.Last(); n != nil {
		return n.entry, true
	}
	return Entry[K, V]{}, false
}

// Search looks up key and returns its value when present.
func (t *Tree[K, V]) Search(key K) (V, bool) {
	if n := t.lookup(key); n != nil {
		return n.entry.Value, true
	}
	var zero V
	return zero, false
}

// SearchNode looks up key and returns its node, usable with Next/Prev
// for resumable ordered scans. Returns nil when the key is absent.
func (t *Tree[K, V]) SearchNode(key K) *Node[K, V] {
	return t.lookup(key)
}

// lookup is the shared iterative binary descent.
func (t *Tree[K, V]) lookup(key K) *Node[K, V] {
	x := t.root
	for x != nil {
		c := t.cmp(key, x.entry.Key)
		switch {
		case c < 0:
			x = x.left
		case c > 0:
			x = x.right
		default:
			return x
		}
	}
	return nil
}

// Insert stores value under key. If the key already exists only the
// value is replaced, the shape of the tree is untouched, and the
// previous value is returned with replaced=true. Otherwise a new leaf
// is attached where the descent ran out of tree and every ancestor up
// to the root is rebalanced.
func (t *Tree[K, V]) Insert(key K, value V) (prev V, replaced bool) {
	if t.root == nil {
		t.setRoot(t.newNode(key, value))
		t.count = 1
		return prev, false
	}
	x := t.root
	for {
		c := t.cmp(key, x.entry.Key)
		if c == 0 {
			prev = x.entry.Value
			x.entry.Value = value
			return prev, true
		}
		if c < 0 {
			if x.left == nil {
				x.setLeft(t.newNode(key, value))
				break
			}
			x = x.left
		} else {
			if x.right == nil {
				x.setRight(t.newNode(key, value))
				break
			}
			x = x.right
		}
	}
	t.count++
	t.rebalanceFrom(x)
	return prev, false
}

// Remove deletes key and returns the value it held. Removing an absent
// key is a no-op reported as removed=false, never an error.
//
// When the target node has two children its entry is overwritten with
// the in-order predecessor's entry and the predecessor node, which has
// at most one child, is the one physically unlinked. A caller holding
// the predecessor's *Node will see it invalidated.
func (t *Tree[K, V]) Remove(key K) (V, bool) {
	x := t.lookup(key)
	if x == nil {
		var zero V
		return zero, false
	}
	return t.unlink(x), true
}

// RemoveNode deletes the entry at an externally held position. The
// handle is validated first; ErrInvalidPosition is returned, with the
// tree unchanged, for a nil, foreign or already-removed node.
func (t *Tree[K, V]) RemoveNode(n *Node[K, V]) (V, error) {
	if err := t.validate(n); err != nil {
		var zero V
		return zero, err
	}
	return t.unlink(n), nil
}

// validate guards every operation that accepts a caller-held node.
func (t *Tree[K, V]) validate(n *Node[K, V]) error {
	switch {
	case n == nil:
		return fmt.Errorf("%w: nil node", ErrInvalidPosition)
	case n.gone:
		return fmt.Errorf("%w: node was removed", ErrInvalidPosition)
	case n.owner != t:
		return fmt.Errorf("%w: node belongs to a different tree", ErrInvalidPosition)
	}
	return nil
}

// unlink removes node x, which must belong to the tree, and returns the
// value it carried before any entry shuffling.
func (t *Tree[K, V]) unlink(x *Node[K, V]) V {
	value := x.entry.Value

	if x.left != nil && x.right != nil {
		// Two children: overwrite with the in-order predecessor
		// (rightmost of the left subtree) and unlink that node
		// instead. It can have a left child at most.
		pred := x.left.max()
		x.entry = pred.entry
		x = pred
	}

	child := x.left
	if child == nil {
		child = x.right
	}
	parent := x.up
	switch {
	case parent == nil:
		t.setRoot(child)
	case parent.left == x:
		parent.setLeft(child)
	default:
		parent.setRight(child)
	}

	t.count--
	x.markRemoved()
	if parent != nil {
		t.rebalanceFrom(parent)
	}
	return value
}

// newNode allocates a leaf owned by this tree.
func (t *Tree[K, V]) newNode(key K, value V) *Node[K, V] {
	return &Node[K, V]{
		entry: Entry[K, V]{Key: key, Value: value},
		owner: t,
	}
}

// setRoot rebinds the tree's root reference.
func (t *Tree[K, V]) setRoot(x *Node[K, V]) {
	t.root = x
	if x != nil {
		x.up = nil
	}
}

// rotateRight lifts n's left child over n. Heights are recomputed
// child-first so the cached values stay consistent. Returns the new
// subtree root; splicing it into n's former slot is the caller's job.
func (t *Tree[K, V]) rotateRight(n *Node[K, V]) *Node[K, V] {
	pivot := n.left
	n.setLeft(pivot.right)
	pivot.setRight(n)
	n.recomputeHeight()
	pivot.recomputeHeight()
	return pivot
}

// rotateLeft is the mirror image of rotateRight.
func (t *Tree[K, V]) rotateLeft(n *Node[K, V]) *Node[K, V] {
	pivot := n.right
	n.setRight(pivot.left)
	pivot.setLeft(n)
	n.recomputeHeight()
	pivot.recomputeHeight()
	return pivot
}

// rebalanceNode restores the AVL property at a single node whose
// children are already balanced and height-correct, and returns the
// root of the resulting subtree.
func (t *Tree[K, V]) rebalanceNode(n *Node[K, V]) *Node[K, V] {
	n.recomputeHeight()
	bf := n.balance()
	switch {
	case bf > 1: // left-heavy
		if n.left.left.safeHeight() >= n.left.right.safeHeight() {
			return t.rotateRight(n) // left-left
		}
		n.setLeft(t.rotateLeft(n.left)) // left-right
		return t.rotateRight(n)
	case bf < -1: // right-heavy
		if n.right.right.safeHeight() >= n.right.left.safeHeight() {
			return t.rotateLeft(n) // right-right
		}
		n.setRight(t.rotateRight(n.right)) // right-left
		return t.rotateLeft(n)
	}
	return n
}

// rebalanceFrom walks from a structurally edited node up to the root,
// restoring height and balance one ancestor at a time. Every ancestor
// is visited even when no rotation fires, because its cached height may
// still have changed. At most one single or double rotation is needed
// per level, keeping each mutation O(log n).
func (t *Tree[K, V]) rebalanceFrom(x *Node[K, V]) {
	for n := x; n != nil; {
		parent := n.up
		wasLeft := parent != nil && parent.left == n
		sub := t.rebalanceNode(n)
		switch {
		case parent == nil:
			t.setRoot(sub)
		case wasLeft:
			parent.setLeft(sub)
		default:
			parent.setRight(sub)
		}
		n = parent
	}
}
