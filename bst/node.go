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

package bst

// Node is a single tree element. The tree owns every node, and each node
// owns its children.
type Node[V any] struct {
	key   int
	Value V
	left  *Node[V]
	right *Node[V]
}

// Key returns the node's key. It is fixed while the node is in the tree.
func (n *Node[V]) Key() int {
	return n.key
}

// Left returns the left child or nil.
func (n *Node[V]) Left() *Node[V] {
	return n.left
}

// Right returns the right child or nil.
func (n *Node[V]) Right() *Node[V] {
	return n.right
}

// IsLeaf reports whether the node has no children.
func (n *Node[V]) IsLeaf() bool {
	return n.left == nil && n.right == nil
}
