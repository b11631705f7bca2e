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

// Search returns the node holding key, or nil if the key is absent.
func (tree *Tree[K]) Search(key K) *Node[K] {
	return searchNode(tree.root, key)
}

// Contains reports whether key is in the tree.
func (tree *Tree[K]) Contains(key K) bool {
	return tree.Search(key) != nil
}

func searchNode[K cmp.Ordered](node *Node[K], key K) *Node[K] {
	if node == nil {
		return nil
	}

	switch c := cmp.Compare(key, node.key); {
	case c < 0:
		return searchNode(node.left, key)
	case c > 0:
		return searchNode(node.right, key)
	}
	return node
}
