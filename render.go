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

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cybrota/avlkit/avl"
)

// writeDOT emits a Graphviz digraph for tree. Only the text is produced,
// turning it into an image is left to the dot tool.
func writeDOT(w io.Writer, name string, tree *avl.Tree[int]) {
	fmt.Fprintf(w, "digraph %s {\n", strconv.Quote(name))
	fmt.Fprintln(w, "  node [shape=circle];")
	for _, e := range tree.Edges() {
		fmt.Fprintf(w, "  \"%d\";\n", e.Key)
		if e.Left != nil {
			fmt.Fprintf(w, "  \"%d\" -> \"%d\" [label=\"L\"];\n", e.Key, *e.Left)
		}
		if e.Right != nil {
			fmt.Fprintf(w, "  \"%d\" -> \"%d\" [label=\"R\"];\n", e.Key, *e.Right)
		}
	}
	fmt.Fprintln(w, "}")
}

func dotString(name string, tree *avl.Tree[int]) string {
	var sb strings.Builder
	writeDOT(&sb, name, tree)
	return sb.String()
}

func formatKeys(keys []int) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strconv.Itoa(k)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func diagramString(tree *avl.Tree[int]) string {
	var sb strings.Builder
	if tree.Print(&sb) == 0 {
		return "(empty)\n"
	}
	return sb.String()
}

// writeSummary prints the traversals and checks of one tree.
func writeSummary(w io.Writer, name string, tree *avl.Tree[int], styles *Styles) {
	fmt.Fprintln(w, styles.Title.Render(name))
	fmt.Fprintf(w, "  %s %s\n", styles.Label.Render("inorder:  "), formatKeys(tree.InOrder()))
	fmt.Fprintf(w, "  %s %s\n", styles.Label.Render("preorder: "), formatKeys(tree.PreOrder()))
	fmt.Fprintf(w, "  %s %s\n", styles.Label.Render("postorder:"), formatKeys(tree.PostOrder()))
	fmt.Fprintf(w, "  %s %d\n", styles.Label.Render("count:    "), tree.Count())
	fmt.Fprintf(w, "  %s %d\n", styles.Label.Render("height:   "), tree.Height())
	fmt.Fprintf(w, "  %s %s\n", styles.Label.Render("valid:    "), validityString(tree, styles))
}

func validityString(tree *avl.Tree[int], styles *Styles) string {
	if err := tree.Check(); err != nil {
		return styles.Error.Render("false (" + err.Error() + ")")
	}
	return styles.Success.Render("true")
}
