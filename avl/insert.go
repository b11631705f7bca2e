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

// Insert adds key to the tree and reports whether a new node was
// created. Inserting a key that is already present leaves the tree
// untouched.
func (tree *Tree[K]) Insert(key K) bool {
	added := false
	tree.root = insertRecursive(tree.root, key, &added)
	return added
}

func insertRecursive[K cmp.Ordered](node *Node[K], key K, added *bool) *Node[K] {
	if node == nil {
		*added = true
		return newNode(key)
	}

	switch c := cmp.Compare(key, node.key); {
	case c < 0:
		node.left = insertRecursive(node.left, key, added)
	case c > 0:
		node.right = insertRecursive(node.right, key, added)
	default:
		// duplicate, keep the existing node
		return node
	}

	return rebalance(node)
}
