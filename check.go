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

import "fmt"

// Check walks the whole tree and verifies the structural invariants:
// strict key ordering, the AVL balance bound, cached heights, parent
// back-references and the entry count. It returns nil on a healthy
// tree.
//
// A non-nil result means an internal defect, not bad input; production
// callers never need this, tests and the CLI's verbose mode do.
func (t *Tree[K, V]) Check() error {
	count, _, err := t.checkNode(t.root, nil)
	if err != nil {
		return err
	}
	if count != t.count {
		return fmt.Errorf("avlmap: size mismatch: counted %d nodes, cached %d", count, t.count)
	}
	return nil
}

// checkNode validates the subtree rooted at n and returns its node
// count and computed height. up is the expected parent back-reference.
func (t *Tree[K, V]) checkNode(n, up *Node[K, V]) (int, int, error) {
	if n == nil {
		return 0, -1, nil
	}
	if n.up != up {
		return 0, 0, fmt.Errorf("avlmap: bad parent link at key %v", n.entry.Key)
	}
	if n.gone || n.owner != t {
		return 0, 0, fmt.Errorf("avlmap: reachable node %v is not owned by this tree", n.entry.Key)
	}
	if n.left != nil && t.cmp(n.left.max().entry.Key, n.entry.Key) >= 0 {
		return 0, 0, fmt.Errorf("avlmap: ordering violated left of key %v", n.entry.Key)
	}
	if n.right != nil && t.cmp(n.right.min().entry.Key, n.entry.Key) <= 0 {
		return 0, 0, fmt.Errorf("avlmap: ordering violated right of key %v", n.entry.Key)
	}

	lc, lh, err := t.checkNode(n.left, n)
	if err != nil {
		return 0, 0, err
	}
	rc, rh, err := t.checkNode(n.right, n)
	if err != nil {
		return 0, 0, err
	}

	h := 1 + max(lh, rh)
	if n.height != h {
		return 0, 0, fmt.Errorf("avlmap: stale height at key %v: cached %d, actual %d", n.entry.Key, n.height, h)
	}
	if bf := lh - rh; bf < -1 || bf > 1 {
		return 0, 0, fmt.Errorf("avlmap: balance factor %d at key %v", bf, n.entry.Key)
	}
	return lc + rc + 1, h, nil
}
