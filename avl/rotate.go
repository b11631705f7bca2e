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

// rotateRight lifts y.left above y and returns it as the new subtree root.
//
//	    y            x
//	   / \          / \
//	  x   C   =>   A   y
//	 / \              / \
//	A   T            T   C
func rotateRight[K cmp.Ordered](y *Node[K]) *Node[K] {
	if y == nil || y.left == nil {
		panic("avl: rotateRight on a node without a left child")
	}

	x := y.left
	t := x.right

	x.right = y
	y.left = t

	// child first, the parent height depends on it
	updateHeight(y)
	updateHeight(x)

	return x
}

// rotateLeft is the mirror of rotateRight.
func rotateLeft[K cmp.Ordered](x *Node[K]) *Node[K] {
	if x == nil || x.right == nil {
		panic("avl: rotateLeft on a node without a right child")
	}

	y := x.right
	t := y.left

	y.left = x
	x.right = t

	updateHeight(x)
	updateHeight(y)

	return y
}

// rebalance restores |balance| <= 1 at node, whose children must already
// be valid AVL subtrees. The node height is recomputed first so callers
// can pass a node whose children were just replaced.
func rebalance[K cmp.Ordered](node *Node[K]) *Node[K] {
	if node == nil {
		return nil
	}
	updateHeight(node)

	balance := balanceFactor(node)

	// Left-heavy
	if balance > 1 {
		if balanceFactor(node.left) < 0 {
			// Left-Right case
			node.left = rotateLeft(node.left)
		}
		return rotateRight(node)
	}

	// Right-heavy
	if balance < -1 {
		if balanceFactor(node.right) > 0 {
			// Right-Left case
			node.right = rotateRight(node.right)
		}
		return rotateLeft(node)
	}

	return node
}
