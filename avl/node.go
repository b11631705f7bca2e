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

package avl

import "cmp"

// Node is a single element of a Tree. A node belongs to exactly one
// parent (or to the root slot of its tree).
type Node[K cmp.Ordered] struct {
	key    K
	height int
	left   *Node[K]
	right  *Node[K]
}

func newNode[K cmp.Ordered](key K) *Node[K] {
	return &Node[K]{key: key, height: 1}
}

// Key returns the key stored in the node, the zero key for nil.
func (n *Node[K]) Key() K {
	if n == nil {
		var zero K
		return zero
	}
	return n.key
}

// Height returns the cached height of the subtree rooted at n, 0 for nil.
func (n *Node[K]) Height() int {
	return height(n)
}

// Balance returns the height of the left subtree minus the height of
// the right subtree.
func (n *Node[K]) Balance() int {
	return balanceFactor(n)
}

// Left returns the left child or nil.
func (n *Node[K]) Left() *Node[K] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child or nil.
func (n *Node[K]) Right() *Node[K] {
	if n == nil {
		return nil
	}
	return n.right
}

func height[K cmp.Ordered](n *Node[K]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func updateHeight[K cmp.Ordered](n *Node[K]) {
	n.height = max(height(n.left), height(n.right)) + 1
}

func balanceFactor[K cmp.Ordered](n *Node[K]) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

// lowest node in a sub-tree
func (n *Node[K]) first() *Node[K] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// highest node in a sub-tree
func (n *Node[K]) last() *Node[K] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}
