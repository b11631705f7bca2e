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

// The diagram layout below is adapted from bitmarkd avl/print.go:
//
// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
//
// Permission to use, copy, modify, and/or distribute this software for any
// purpose with or without fee is hereby granted, provided that the above
// copyright notice and this permission notice appear in all copies.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
// WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
// MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
// ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
// WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
// ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
// OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.

package avl

import (
	"cmp"
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Print writes a sideways ASCII diagram of the tree to w, right subtree
// on top, and returns the depth of the tree.
func (tree *Tree[K]) Print(w io.Writer) int {
	return printTree(w, tree.root, "", rootBranch)
}

func printTree[K cmp.Ordered](w io.Writer, node *Node[K], prefix string, br branch) int {
	if node == nil {
		return 0
	}
	rd := 0
	ld := 0
	if node.right != nil {
		t := "       "
		if br == leftBranch {
			t = "|      "
		}
		rd = printTree(w, node.right, prefix+t, rightBranch)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%v h=%d %+d\n", node.key, node.height, balanceFactor(node))
	if node.left != nil {
		t := "       "
		if br == rightBranch {
			t = "|      "
		}
		ld = printTree(w, node.left, prefix+t, leftBranch)
	}
	return 1 + max(ld, rd)
}
