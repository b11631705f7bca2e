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

// Merge inserts every key of other into the tree, visiting other in
// pre-order. Keys already present are kept as they are. other is only
// read and remains a valid, independent tree.
//
// Cost is O(M log(N+M)) for M keys in other and N in the receiver.
func (tree *Tree[K]) Merge(other *Tree[K]) {
	if other == nil || other == tree {
		return
	}
	mergeNodes(tree, other.root)
}

func mergeNodes[K cmp.Ordered](tree *Tree[K], node *Node[K]) {
	if node == nil {
		return
	}
	tree.Insert(node.key)
	mergeNodes(tree, node.left)
	mergeNodes(tree, node.right)
}
