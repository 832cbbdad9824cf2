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

import "iter"

// Order selects a traversal order for All. Only these four shapes
// exist; InOrder is the one that yields keys in sorted order.
type Order int

const (
	InOrder Order = iota
	PreOrder
	PostOrder
	LevelOrder
)

func (o Order) String() string {
	switch o {
	case InOrder:
		return "in-order"
	case PreOrder:
		return "pre-order"
	case PostOrder:
		return "post-order"
	case LevelOrder:
		return "level-order"
	}
	return "unknown"
}

// ParseOrder maps the CLI spelling of a traversal order to its tag.
func ParseOrder(s string) (Order, bool) {
	switch s {
	case "in", "in-order", "inorder":
		return InOrder, true
	case "pre", "pre-order", "preorder":
		return PreOrder, true
	case "post", "post-order", "postorder":
		return PostOrder, true
	case "level", "level-order", "levelorder", "bfs":
		return LevelOrder, true
	}
	return InOrder, false
}

// All returns a lazy, restartable sequence over the tree's entries in
// the given order. The sequence is driven on demand and can be ranged
// over any number of times; each range restarts from the beginning.
//
// Mutating the tree while a traversal is in progress is undefined
// behavior. There is no concurrent-modification detection; finish or
// abandon the loop before inserting or removing.
func (t *Tree[K, V]) All(order Order) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		switch order {
		case PreOrder:
			t.root.preorder(yield)
		case PostOrder:
			t.root.postorder(yield)
		case LevelOrder:
			t.root.levelorder(yield)
		default:
			t.root.inorder(yield)
		}
	}
}

// Keys returns the keys in sorted order. Mostly a convenience for
// tests and the CLI.
func (t *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, t.count)
	for k := range t.All(InOrder) {
		keys = append(keys, k)
	}
	return keys
}

func (n *Node[K, V]) inorder(yield func(K, V) bool) bool {
	if n == nil {
		return true
	}
	return n.left.inorder(yield) &&
		yield(n.entry.Key, n.entry.Value) &&
		n.right.inorder(yield)
}

func (n *Node[K, V]) preorder(yield func(K, V) bool) bool {
	if n == nil {
		return true
	}
	return yield(n.entry.Key, n.entry.Value) &&
		n.left.preorder(yield) &&
		n.right.preorder(yield)
}

func (n *Node[K, V]) postorder(yield func(K, V) bool) bool {
	if n == nil {
		return true
	}
	return n.left.postorder(yield) &&
		n.right.postorder(yield) &&
		yield(n.entry.Key, n.entry.Value)
}

// levelorder visits breadth-first using a FIFO queue of pending nodes.
func (n *Node[K, V]) levelorder(yield func(K, V) bool) {
	if n == nil {
		return
	}
	queue := []*Node[K, V]{n}
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		if !yield(x.entry.Key, x.entry.Value) {
			return
		}
		if x.left != nil {
			queue = append(queue, x.left)
		}
		if x.right != nil {
			queue = append(queue, x.right)
		}
	}
}
