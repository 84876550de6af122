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

// Package bst implements an unbalanced binary search tree keyed by integer IDs.
//
// The tree never rotates, so sorted insertion produces a linked list and every
// operation degrades to O(n). All walks are iterative, which keeps such
// degenerate trees from exhausting the stack.
package bst

import (
	"errors"
	"iter"
)

var ErrDuplicateKey = errors.New("duplicate key")

type Tree[V any] struct {
	root *Node[V]
	size int
}

func New[V any]() *Tree[V] {
	return &Tree[V]{root: nil}
}

// Root returns the root node, nil when the tree is empty.
func (tree *Tree[V]) Root() *Node[V] {
	return tree.root
}

// Len returns the number of nodes in the tree.
func (tree *Tree[V]) Len() int {
	return tree.size
}

// link descends from the root and returns the slot holding key, or the empty
// slot where key would be attached.
func (tree *Tree[V]) link(key int) **Node[V] {
	slot := &tree.root
	for *slot != nil {
		node := *slot
		if key < node.key {
			slot = &node.left
		} else if key > node.key {
			slot = &node.right
		} else {
			break
		}
	}
	return slot
}

// Insert attaches a new node for key. Keys are unique: inserting an existing
// key returns ErrDuplicateKey and leaves the tree unchanged.
func (tree *Tree[V]) Insert(key int, value V) error {
	slot := tree.link(key)
	if *slot != nil {
		return ErrDuplicateKey
	}
	*slot = &Node[V]{key: key, Value: value}
	tree.size++
	return nil
}

// Upsert inserts key or replaces the value stored under it.
// It reports whether an existing value was replaced.
func (tree *Tree[V]) Upsert(key int, value V) bool {
	slot := tree.link(key)
	if *slot != nil {
		(*slot).Value = value
		return true
	}
	*slot = &Node[V]{key: key, Value: value}
	tree.size++
	return false
}

// Search returns the node holding key, and false if there is none.
func (tree *Tree[V]) Search(key int) (*Node[V], bool) {
	node := *tree.link(key)
	return node, node != nil
}

// Get returns the value stored under key.
func (tree *Tree[V]) Get(key int) (V, bool) {
	node, ok := tree.Search(key)
	if !ok {
		var zero V
		return zero, false
	}
	return node.Value, true
}

// Remove deletes key from the tree and reports whether it was present.
// Removing from an empty tree or removing a missing key is a no-op.
func (tree *Tree[V]) Remove(key int) bool {
	slot := tree.link(key)
	node := *slot
	if node == nil {
		return false
	}

	switch {
	case node.left == nil:
		// Leaf, or a single right child
		*slot = node.right
	case node.right == nil:
		*slot = node.left
	default:
		// Two children: take over the in-order successor's entry, then
		// unlink the successor, which never has a left child.
		succ := &node.right
		for (*succ).left != nil {
			succ = &(*succ).left
		}
		node.key = (*succ).key
		node.Value = (*succ).Value
		*succ = (*succ).right
	}

	tree.size--
	return true
}

// Min returns the node with the smallest key.
func (tree *Tree[V]) Min() (*Node[V], bool) {
	if tree.root == nil {
		return nil, false
	}
	node := tree.root
	for node.left != nil {
		node = node.left
	}
	return node, true
}

// Max returns the node with the largest key.
func (tree *Tree[V]) Max() (*Node[V], bool) {
	if tree.root == nil {
		return nil, false
	}
	node := tree.root
	for node.right != nil {
		node = node.right
	}
	return node, true
}

// All yields every key and value in ascending key order. The sequence reads
// the tree when iterated, so it can be ranged over any number of times.
func (tree *Tree[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		var stack []*Node[V]
		node := tree.root
		for node != nil || len(stack) > 0 {
			for node != nil {
				stack = append(stack, node)
				node = node.left
			}
			node = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(node.key, node.Value) {
				return
			}
			node = node.right
		}
	}
}

// InOrder returns all values in ascending key order.
func (tree *Tree[V]) InOrder() []V {
	values := make([]V, 0, tree.size)
	for _, v := range tree.All() {
		values = append(values, v)
	}
	return values
}

// Range returns the values whose keys satisfy low <= key < high, in
// ascending order. Subtrees that cannot hold such keys are skipped.
func (tree *Tree[V]) Range(low, high int) []V {
	var results []V
	var stack []*Node[V]
	node := tree.root
	for node != nil || len(stack) > 0 {
		for node != nil {
			stack = append(stack, node)
			if node.key < low {
				// Everything on the left is smaller still
				node = nil
			} else {
				node = node.left
			}
		}
		node = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node.key >= high {
			break
		}
		if node.key >= low {
			results = append(results, node.Value)
		}
		node = node.right
	}
	return results
}

// Walk visits nodes in pre-order (node, left subtree, right subtree).
// Returning false from fn stops the walk.
func (tree *Tree[V]) Walk(fn func(node *Node[V]) bool) {
	if tree.root == nil {
		return
	}
	stack := []*Node[V]{tree.root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(node) {
			return
		}
		if node.right != nil {
			stack = append(stack, node.right)
		}
		if node.left != nil {
			stack = append(stack, node.left)
		}
	}
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (tree *Tree[V]) Height() int {
	type frame struct {
		node  *Node[V]
		depth int
	}

	height := 0
	if tree.root == nil {
		return height
	}
	stack := []frame{{tree.root, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		height = max(height, f.depth)
		if f.node.left != nil {
			stack = append(stack, frame{f.node.left, f.depth + 1})
		}
		if f.node.right != nil {
			stack = append(stack, frame{f.node.right, f.depth + 1})
		}
	}
	return height
}
