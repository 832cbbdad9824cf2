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

// Package avlmap implements an ordered map backed by an AVL-balanced
// binary search tree with parent pointers, giving O(log n) search,
// insert and delete plus ordered iteration in four traversal orders.
//
// Nodes are exposed as positions: First, Last and SearchNode return
// *Node handles that support Next and Prev for resumable scans, and
// RemoveNode for positional deletion. Handles are validated on use; a
// handle to a removed node or to a node of another tree is rejected
// with ErrInvalidPosition rather than corrupting the tree.
//
// An individual tree is not thread safe. Either confine it to one
// goroutine or guard every operation, traversals included, with a
// mutex.
package avlmap
