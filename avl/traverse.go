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

// InOrder returns all keys in ascending order.
func (tree *Tree[K]) InOrder() []K {
	result := make([]K, 0, tree.Count())
	inOrderTraversal(tree.root, &result)
	return result
}

// PreOrder returns the keys with every node before its subtrees.
func (tree *Tree[K]) PreOrder() []K {
	result := make([]K, 0, tree.Count())
	preOrderTraversal(tree.root, &result)
	return result
}

// PostOrder returns the keys with every node after its subtrees.
func (tree *Tree[K]) PostOrder() []K {
	result := make([]K, 0, tree.Count())
	postOrderTraversal(tree.root, &result)
	return result
}

func inOrderTraversal[K cmp.Ordered](node *Node[K], result *[]K) {
	if node == nil {
		return
	}
	inOrderTraversal(node.left, result)
	*result = append(*result, node.key)
	inOrderTraversal(node.right, result)
}

func preOrderTraversal[K cmp.Ordered](node *Node[K], result *[]K) {
	if node == nil {
		return
	}
	*result = append(*result, node.key)
	preOrderTraversal(node.left, result)
	preOrderTraversal(node.right, result)
}

func postOrderTraversal[K cmp.Ordered](node *Node[K], result *[]K) {
	if node == nil {
		return
	}
	postOrderTraversal(node.left, result)
	postOrderTraversal(node.right, result)
	*result = append(*result, node.key)
}

// Edge describes one node and the keys of its children, nil where a
// child is absent.
type Edge[K cmp.Ordered] struct {
	Key   K
	Left  *K
	Right *K
}

// Edges returns one Edge per node in pre-order, enough for an external
// renderer to draw the tree.
func (tree *Tree[K]) Edges() []Edge[K] {
	edges := make([]Edge[K], 0, tree.Count())
	collectEdges(tree.root, &edges)
	return edges
}

func collectEdges[K cmp.Ordered](node *Node[K], edges *[]Edge[K]) {
	if node == nil {
		return
	}
	edge := Edge[K]{Key: node.key}
	if node.left != nil {
		k := node.left.key
		edge.Left = &k
	}
	if node.right != nil {
		k := node.right.key
		edge.Right = &k
	}
	*edges = append(*edges, edge)
	collectEdges(node.left, edges)
	collectEdges(node.right, edges)
}
