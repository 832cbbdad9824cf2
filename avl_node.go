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

// Entry is a single key/value pair stored in a tree. The key never
// changes after insertion; the value may be replaced by Insert.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Node is the unit of storage: one entry plus the physical shape of the
// subtree rooted here. The tree owns its nodes transitively from the
// root through the left/right links; the up pointer is a non-owning
// back-reference used for walking toward the root.
//
// Nodes never enforce ordering or balance themselves. They are a dumb
// link substrate; the tree methods in avl_tree.go keep the invariants.
type Node[K, V any] struct {
	entry  Entry[K, V]
	height int // height of the subtree rooted here, leaf = 0
	left   *Node[K, V]
	right  *Node[K, V]
	up     *Node[K, V]
	owner  *Tree[K, V] // tree this node belongs to, nil once removed
	gone   bool        // tombstone, set when the node leaves the tree
}

// Key reads the key from a node.
func (n *Node[K, V]) Key() K {
	return n.entry.Key
}

// Value reads the value from a node.
func (n *Node[K, V]) Value() V {
	return n.entry.Value
}

// Entry reads the whole key/value pair from a node.
func (n *Node[K, V]) Entry() Entry[K, V] {
	return n.entry
}

// Parent returns the parent node, or nil for the root.
func (n *Node[K, V]) Parent() *Node[K, V] {
	return n.up
}

// Left returns the left child, or nil.
func (n *Node[K, V]) Left() *Node[K, V] {
	return n.left
}

// Right returns the right child, or nil.
func (n *Node[K, V]) Right() *Node[K, V] {
	return n.right
}

// Height returns the cached height of the subtree rooted at n.
// A leaf has height 0.
func (n *Node[K, V]) Height() int {
	return n.height
}

// Depth counts the links between n and the root.
func (n *Node[K, V]) Depth() int {
	count := 0
	for p := n.up; p != nil; p = p.up {
		count++
	}
	return count
}

// safeHeight is the nil-tolerant height read: an absent subtree has
// height -1 so that a leaf computes to 0. Callers must not expect it to
// recompute anything; after a structural edit recomputeHeight has to be
// called on every touched ancestor, innermost first.
func (n *Node[K, V]) safeHeight() int {
	if n == nil {
		return -1
	}
	return n.height
}

// balance is height(left) - height(right). Positive means left-heavy.
func (n *Node[K, V]) balance() int {
	return n.left.safeHeight() - n.right.safeHeight()
}

// Balance reports the balance factor of n, for inspection tools.
func (n *Node[K, V]) Balance() int {
	return n.balance()
}

// recomputeHeight refreshes the cached height from the children's
// cached heights. Children must already be correct.
func (n *Node[K, V]) recomputeHeight() {
	n.height = 1 + max(n.left.safeHeight(), n.right.safeHeight())
}

// setLeft rebinds the left child link and fixes the child's parent
// back-reference. Heights are deliberately left untouched so rotations
// can compose these calls and recompute once at the end.
func (n *Node[K, V]) setLeft(child *Node[K, V]) {
	n.left = child
	if child != nil {
		child.up = n
	}
}

// setRight is the mirror of setLeft.
func (n *Node[K, V]) setRight(child *Node[K, V]) {
	n.right = child
	if child != nil {
		child.up = n
	}
}

// min returns the leftmost node of the subtree rooted at n.
func (n *Node[K, V]) min() *Node[K, V] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// max returns the rightmost node of the subtree rooted at n.
func (n *Node[K, V]) max() *Node[K, V] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// Next returns the node holding the next higher key, or nil when n is
// the maximum. Walks structurally via the parent links, so it needs no
// comparator and costs amortized O(1) over a full scan.
func (n *Node[K, V]) Next() *Node[K, V] {
	if n.right != nil {
		return n.right.min()
	}
	x := n
	for x.up != nil && x.up.right == x {
		x = x.up
	}
	return x.up
}

// Prev returns the node holding the next lower key, or nil when n is
// the minimum.
func (n *Node[K, V]) Prev() *Node[K, V] {
	if n.left != nil {
		return n.left.max()
	}
	x := n
	for x.up != nil && x.up.left == x {
		x = x.up
	}
	return x.up
}

// markRemoved tombstones a node that has been spliced out of the tree,
// so a stale handle held by a caller is detected instead of silently
// walking dead links.
func (n *Node[K, V]) markRemoved() {
	n.gone = true
	n.owner = nil
	n.left = nil
	n.right = nil
	n.up = nil
}
