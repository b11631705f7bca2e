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

// Delete removes key from the tree and reports whether it was present.
func (tree *Tree[K]) Delete(key K) bool {
	removed := false
	tree.root = deleteRecursive(tree.root, key, &removed)
	return removed
}

func deleteRecursive[K cmp.Ordered](node *Node[K], key K, removed *bool) *Node[K] {
	if node == nil {
		return nil // Key not found
	}

	switch c := cmp.Compare(key, node.key); {
	case c < 0:
		node.left = deleteRecursive(node.left, key, removed)
	case c > 0:
		node.right = deleteRecursive(node.right, key, removed)
	default:
		*removed = true

		// Zero or one child: splice the node out
		if node.left == nil {
			return node.right
		}
		if node.right == nil {
			return node.left
		}

		// Two children: take over the in-order successor key, then
		// remove the successor from the right subtree where it has no
		// left child.
		successor := node.right.first()
		node.key = successor.key
		var ignored bool
		node.right = deleteRecursive(node.right, successor.key, &ignored)
	}

	return rebalance(node)
}
