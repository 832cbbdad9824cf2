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
	"fmt"
	"io"
)

// branch tells the printer which connector glyph a node needs.
type branch int

const (
	atRoot branch = iota
	onLeft
	onRight
)

// Fprint writes an ASCII rendering of the tree to w, right subtree on
// top, and returns the depth of the tree. With meta set, each node also
// shows its value, height and balance factor.
func (t *Tree[K, V]) Fprint(w io.Writer, meta bool) int {
	return printNode(w, t.root, "", atRoot, meta)
}

func printNode[K, V any](w io.Writer, n *Node[K, V], prefix string, br branch, meta bool) int {
	if n == nil {
		return 0
	}
	rd := 0
	ld := 0
	if n.right != nil {
		pad := "       "
		if br == onLeft {
			pad = "|      "
		}
		rd = printNode(w, n.right, prefix+pad, onRight, meta)
	}
	switch br {
	case atRoot:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case onLeft:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case onRight:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if meta {
		fmt.Fprintf(w, "%v → %v h=%d %+d\n", n.entry.Key, n.entry.Value, n.height, n.balance())
	} else {
		fmt.Fprintf(w, "%v\n", n.entry.Key)
	}
	if n.left != nil {
		pad := "       "
		if br == onRight {
			pad = "|      "
		}
		ld = printNode(w, n.left, prefix+pad, onLeft, meta)
	}
	return 1 + max(rd, ld)
}
