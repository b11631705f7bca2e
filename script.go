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
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/cybrota/avlkit/avl"
	"github.com/mattn/go-shellwords"
)

type statement struct {
	usage   string
	minArgs int
	maxArgs int // -1 for no limit
	run     func(w *Workspace, args []string) (string, error)
}

var statements = map[string]statement{
	"new":       {"new NAME [KEY...]", 1, -1, execNew},
	"insert":    {"insert NAME KEY...", 2, -1, execInsert},
	"delete":    {"delete NAME KEY...", 2, -1, execDelete},
	"search":    {"search NAME KEY", 2, 2, execSearch},
	"inorder":   {"inorder NAME", 1, 1, traversal((*avl.Tree[int]).InOrder)},
	"preorder":  {"preorder NAME", 1, 1, traversal((*avl.Tree[int]).PreOrder)},
	"postorder": {"postorder NAME", 1, 1, traversal((*avl.Tree[int]).PostOrder)},
	"count":     {"count NAME", 1, 1, execCount},
	"min":       {"min NAME", 1, 1, execMin},
	"max":       {"max NAME", 1, 1, execMax},
	"validate":  {"validate NAME", 1, 1, execValidate},
	"print":     {"print NAME", 1, 1, execPrint},
	"dot":       {"dot NAME", 1, 1, execDot},
	"merge":     {"merge DST SRC", 2, 2, execMerge},
	"split":     {"split SRC KEY LEFT RIGHT", 4, 4, execSplit},
	"join":      {"join LEFT KEY RIGHT DST", 4, 4, execJoin},
	"load":      {"load NAME FILE", 2, 2, execLoad},
	"drop":      {"drop NAME", 1, 1, execDrop},
	"list":      {"list [GLOB]", 0, 1, execList},
}

// statementHelp lists the usage line of every statement.
func statementHelp() string {
	usages := make([]string, 0, len(statements)+1)
	for _, s := range statements {
		usages = append(usages, s.usage)
	}
	usages = append(usages, "help")
	sort.Strings(usages)
	return strings.Join(usages, "\n")
}

// Exec runs one statement and returns its output.
func (w *Workspace) Exec(line string) (string, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", nil
	}

	words, err := shellwords.Parse(line)
	if err != nil {
		return "", fmt.Errorf("failed to parse %q: %w", line, err)
	}
	if len(words) == 0 {
		return "", nil
	}

	keyword, args := strings.ToLower(words[0]), words[1:]
	if keyword == "help" {
		return statementHelp(), nil
	}

	stmt, ok := statements[keyword]
	if !ok {
		return "", fmt.Errorf("%q: %w", keyword, ErrUnknownStatement)
	}
	if len(args) < stmt.minArgs || (stmt.maxArgs >= 0 && len(args) > stmt.maxArgs) {
		return "", fmt.Errorf("usage: %s: %w", stmt.usage, ErrUsage)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.logger.Debug("exec", "statement", keyword, "args", args)
	return stmt.run(w, args)
}

// RunScript executes every line of r, writing the output of each
// statement to out. With echo set each statement is printed before its
// output. Execution stops at the first failing line.
func (w *Workspace) RunScript(r io.Reader, out io.Writer, echo bool) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if echo {
			fmt.Fprintf(out, "%s %s\n", w.styles.Prompt.Render(">"), line)
		}

		result, err := w.Exec(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if result != "" {
			fmt.Fprintln(out, result)
		}
	}
	return scanner.Err()
}

func execNew(w *Workspace, args []string) (string, error) {
	if err := validName(args[0]); err != nil {
		return "", err
	}
	keys, err := parseKeyArgs(args[1:])
	if err != nil {
		return "", err
	}
	tree := avl.New(keys...)
	w.put(args[0], tree)
	return fmt.Sprintf("%s: %d keys", args[0], tree.Count()), nil
}

func execInsert(w *Workspace, args []string) (string, error) {
	keys, err := parseKeyArgs(args[1:])
	if err != nil {
		return "", err
	}
	tree, err := w.orCreate(args[0])
	if err != nil {
		return "", err
	}
	added := 0
	for _, k := range keys {
		if tree.Insert(k) {
			added++
		}
	}
	w.put(args[0], tree)
	return fmt.Sprintf("%s: added %d of %d, count %d", args[0], added, len(keys), tree.Count()), nil
}

func execDelete(w *Workspace, args []string) (string, error) {
	keys, err := parseKeyArgs(args[1:])
	if err != nil {
		return "", err
	}
	tree, err := w.tree(args[0])
	if err != nil {
		return "", err
	}
	removed := 0
	for _, k := range keys {
		if tree.Delete(k) {
			removed++
		}
	}
	w.put(args[0], tree)
	return fmt.Sprintf("%s: removed %d of %d, count %d", args[0], removed, len(keys), tree.Count()), nil
}

func execSearch(w *Workspace, args []string) (string, error) {
	tree, err := w.tree(args[0])
	if err != nil {
		return "", err
	}
	key, err := parseKey(args[1])
	if err != nil {
		return "", err
	}
	node := tree.Search(key)
	if node == nil {
		return fmt.Sprintf("%d not found", key), nil
	}
	return fmt.Sprintf("%d found (height %d, balance %+d)", key, node.Height(), node.Balance()), nil
}

func traversal(order func(*avl.Tree[int]) []int) func(*Workspace, []string) (string, error) {
	return func(w *Workspace, args []string) (string, error) {
		tree, err := w.tree(args[0])
		if err != nil {
			return "", err
		}
		return formatKeys(order(tree)), nil
	}
}

func execCount(w *Workspace, args []string) (string, error) {
	tree, err := w.tree(args[0])
	if err != nil {
		return "", err
	}
	return strconv.Itoa(tree.Count()), nil
}

func execMin(w *Workspace, args []string) (string, error) {
	tree, err := w.tree(args[0])
	if err != nil {
		return "", err
	}
	if k, ok := tree.Min(); ok {
		return strconv.Itoa(k), nil
	}
	return "(empty)", nil
}

func execMax(w *Workspace, args []string) (string, error) {
	tree, err := w.tree(args[0])
	if err != nil {
		return "", err
	}
	if k, ok := tree.Max(); ok {
		return strconv.Itoa(k), nil
	}
	return "(empty)", nil
}

func execValidate(w *Workspace, args []string) (string, error) {
	tree, err := w.tree(args[0])
	if err != nil {
		return "", err
	}
	if !tree.Validate() {
		return "false", nil
	}
	if err := tree.Check(); err != nil {
		return "false (" + err.Error() + ")", nil
	}
	return "true", nil
}

func execPrint(w *Workspace, args []string) (string, error) {
	tree, err := w.tree(args[0])
	if err != nil {
		return "", err
	}
	return strings.TrimRight(diagramString(tree), "\n"), nil
}

func execDot(w *Workspace, args []string) (string, error) {
	tree, err := w.tree(args[0])
	if err != nil {
		return "", err
	}
	return strings.TrimRight(dotString(args[0], tree), "\n"), nil
}

func execMerge(w *Workspace, args []string) (string, error) {
	src, err := w.tree(args[1])
	if err != nil {
		return "", err
	}
	dst, err := w.orCreate(args[0])
	if err != nil {
		return "", err
	}
	before := dst.Count()
	dst.Merge(src)
	w.put(args[0], dst)
	return fmt.Sprintf("%s: merged %d new keys from %s, count %d", args[0], dst.Count()-before, args[1], dst.Count()), nil
}

func execSplit(w *Workspace, args []string) (string, error) {
	srcName, leftName, rightName := args[0], args[2], args[3]
	if leftName == rightName {
		return "", fmt.Errorf("left and right must differ: %w", ErrUsage)
	}
	for _, name := range []string{leftName, rightName} {
		if err := validName(name); err != nil {
			return "", err
		}
	}
	src, err := w.tree(srcName)
	if err != nil {
		return "", err
	}
	key, err := parseKey(args[1])
	if err != nil {
		return "", err
	}

	left, right, found := src.SplitFound(key)
	// the source tree gave all its nodes away
	w.trees.Delete(srcName)
	w.put(leftName, left)
	w.put(rightName, right)
	w.logger.Debug("split", "source", srcName, "pivot", key, "found", found)

	pivot := "absent"
	if found {
		pivot = "consumed"
	}
	return fmt.Sprintf("%s: %d keys, %s: %d keys, pivot %d %s",
		leftName, left.Count(), rightName, right.Count(), key, pivot), nil
}

func execJoin(w *Workspace, args []string) (string, error) {
	leftName, rightName, dstName := args[0], args[2], args[3]
	if err := validName(dstName); err != nil {
		return "", err
	}
	left, err := w.tree(leftName)
	if err != nil {
		return "", err
	}
	right, err := w.tree(rightName)
	if err != nil {
		return "", err
	}
	key, err := parseKey(args[1])
	if err != nil {
		return "", err
	}

	joined, err := avl.Join(left, key, right)
	if err != nil {
		return "", err
	}
	w.trees.Delete(leftName)
	w.trees.Delete(rightName)
	w.put(dstName, joined)
	return fmt.Sprintf("%s: count %d", dstName, joined.Count()), nil
}

// execLoad keeps the tree even when the file fails partway, holding the
// keys read before the bad line.
func execLoad(w *Workspace, args []string) (string, error) {
	tree, err := w.orCreate(args[0])
	if err != nil {
		return "", err
	}
	stats, err := w.loader.LoadFile(args[1], tree)
	w.put(args[0], tree)
	if err != nil {
		return "", err
	}
	w.logger.Info("keys loaded", "tree", args[0], "file", args[1], "read", stats.Read, "added", stats.Added)
	return fmt.Sprintf("%s: %s, count %d", args[0], stats, tree.Count()), nil
}

func execDrop(w *Workspace, args []string) (string, error) {
	if err := w.drop(args[0]); err != nil {
		return "", err
	}
	return "dropped " + args[0], nil
}

func execList(w *Workspace, args []string) (string, error) {
	pattern := ""
	if len(args) == 1 {
		pattern = args[0]
	}
	names, err := w.names(pattern)
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "(no trees)", nil
	}

	lines := make([]string, 0, len(names))
	for _, name := range names {
		tree, ok := GetTree(w.trees, name)
		if !ok {
			continue // expired between listing and lookup
		}
		lines = append(lines, fmt.Sprintf("%s\tcount=%d height=%d", name, tree.Count(), tree.Height()))
	}
	return strings.Join(lines, "\n"), nil
}
