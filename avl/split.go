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

// Split moves every key smaller than key into the left tree and every
// larger key into the right tree. A node holding key itself is dropped.
// All nodes are transferred, so the receiver is empty afterwards.
func (tree *Tree[K]) Split(key K) (*Tree[K], *Tree[K]) {
	left, right, _ := tree.SplitFound(key)
	return left, right
}

// SplitFound is Split that also reports whether key was in the tree.
func (tree *Tree[K]) SplitFound(key K) (*Tree[K], *Tree[K], bool) {
	l, r, found := split(tree.root, key)
	tree.root = nil
	return &Tree[K]{root: l}, &Tree[K]{root: r}, found
}

/*
   split(T, k) =
     if T = Leaf then (Leaf, false, Leaf)
     (L, m, R) = expose(T)
     if k = m then (L, true, R)
     if k < m then (LL, b, LR) = split(L, k); (LL, b, join(LR, m, R))
     else          (RL, b, RR) = split(R, k); (join(L, m, RL), b, RR)
*/
func split[K cmp.Ordered](node *Node[K], key K) (*Node[K], *Node[K], bool) {
	if node == nil {
		return nil, nil, false
	}

	left, right := node.left, node.right
	node.left, node.right = nil, nil

	c := cmp.Compare(key, node.key)
	if c < 0 {
		ll, lr, found := split(left, key)
		return ll, join(lr, node, right), found
	}
	if c > 0 {
		rl, rr, found := split(right, key)
		return join(left, node, rl), rr, found
	}

	// pivot: detached here and not reused
	node.height = 1
	return left, right, true
}

// join links left and right under mid, where every key of left is
// smaller than mid.key and every key of right is larger. The taller
// tree is descended along its inner spine until the heights are within
// one, mid is attached there and the path is rebalanced on the way up.
func join[K cmp.Ordered](left, mid, right *Node[K]) *Node[K] {
	lh, rh := height(left), height(right)

	switch {
	case lh > rh+1:
		left.right = join(left.right, mid, right)
		return rebalance(left)
	case rh > lh+1:
		right.left = join(left, mid, right.left)
		return rebalance(right)
	}

	mid.left = left
	mid.right = right
	updateHeight(mid)
	return mid
}

// Join builds a tree from left, key and right. Every key of left must be
// smaller than key and every key of right larger, otherwise ErrJoinOrder
// is returned and neither input changes. On success both inputs are
// emptied since their nodes now belong to the result.
//
// Join takes O(|height(left) - height(right)|) rotations.
func Join[K cmp.Ordered](left *Tree[K], key K, right *Tree[K]) (*Tree[K], error) {
	var l, r *Node[K]
	if left != nil {
		if m, ok := left.Max(); ok && cmp.Compare(m, key) >= 0 {
			return nil, fmt.Errorf("left max %v, separator %v: %w", m, key, ErrJoinOrder)
		}
		l = left.root
	}
	if right != nil {
		if m, ok := right.Min(); ok && cmp.Compare(m, key) <= 0 {
			return nil, fmt.Errorf("right min %v, separator %v: %w", m, key, ErrJoinOrder)
		}
		r = right.root
	}
	root := join(l, newNode(key), r)
	if left != nil {
		left.root = nil
	}
	if right != nil {
		right.root = nil
	}
	return &Tree[K]{root: root}, nil
}
