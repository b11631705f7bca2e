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

import (
	"cmp"
	"fmt"
)

// Validate reports whether every node satisfies the AVL balance rule.
// Children are checked before their parent, so any violation anywhere
// fails the whole call.
func (tree *Tree[K]) Validate() bool {
	return validate(tree.root)
}

func validate[K cmp.Ordered](node *Node[K]) bool {
	if node == nil {
		return true
	}
	if !validate(node.left) || !validate(node.right) {
		return false
	}
	balance := balanceFactor(node)
	return balance >= -1 && balance <= 1
}

// Check is a stricter consistency checker than Validate. Besides the
// balance rule it verifies key ordering and that every cached height
// matches the real height of its subtree.
func (tree *Tree[K]) Check() error {
	_, err := check(tree.root, nil, nil)
	return err
}

// internal: returns the recomputed height of node
func check[K cmp.Ordered](node *Node[K], lower, upper *K) (int, error) {
	if node == nil {
		return 0, nil
	}
	if lower != nil && cmp.Compare(node.key, *lower) <= 0 {
		return 0, fmt.Errorf("node %v below lower bound %v: %w", node.key, *lower, ErrOrder)
	}
	if upper != nil && cmp.Compare(node.key, *upper) >= 0 {
		return 0, fmt.Errorf("node %v above upper bound %v: %w", node.key, *upper, ErrOrder)
	}

	lh, err := check(node.left, lower, &node.key)
	if err != nil {
		return 0, err
	}
	rh, err := check(node.right, &node.key, upper)
	if err != nil {
		return 0, err
	}

	h := max(lh, rh) + 1
	if node.height != h {
		return 0, fmt.Errorf("node %v height %d, expected %d: %w", node.key, node.height, h, ErrHeight)
	}
	if d := lh - rh; d < -1 || d > 1 {
		return 0, fmt.Errorf("node %v balance %+d: %w", node.key, d, ErrUnbalanced)
	}
	return h, nil
}
