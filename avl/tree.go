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

// Tree holds the root node of an AVL tree. The zero value is an empty
// tree ready to use.
type Tree[K cmp.Ordered] struct {
	root *Node[K]
}

// New creates a tree containing keys. Duplicates are ignored.
func New[K cmp.Ordered](keys ...K) *Tree[K] {
	tree := &Tree[K]{}
	for _, key := range keys {
		tree.Insert(key)
	}
	return tree
}

// Root returns the root node, nil for an empty tree.
func (tree *Tree[K]) Root() *Node[K] {
	return tree.root
}

// IsEmpty reports whether the tree has no nodes.
func (tree *Tree[K]) IsEmpty() bool {
	return tree.root == nil
}

// Height returns the height of the whole tree, 0 when empty.
func (tree *Tree[K]) Height() int {
	return height(tree.root)
}

// Count walks the tree and returns the number of nodes.
func (tree *Tree[K]) Count() int {
	return countNodes(tree.root)
}

// Len is the same as Count.
func (tree *Tree[K]) Len() int {
	return tree.Count()
}

func countNodes[K cmp.Ordered](node *Node[K]) int {
	if node == nil {
		return 0
	}
	return 1 + countNodes(node.left) + countNodes(node.right)
}

// Min returns the smallest key.
func (tree *Tree[K]) Min() (K, bool) {
	if n := tree.root.first(); n != nil {
		return n.key, true
	}
	var zero K
	return zero, false
}

// Max returns the largest key.
func (tree *Tree[K]) Max() (K, bool) {
	if n := tree.root.last(); n != nil {
		return n.key, true
	}
	var zero K
	return zero, false
}
