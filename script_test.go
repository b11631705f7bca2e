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
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorkspace(t *testing.T) *Workspace {
	t.Helper()
	config := defaults()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewWorkspace(config, NewKeyLoader(config.Loader, nil), NewStyles(false), logger)
}

func mustExec(t *testing.T, ws *Workspace, line string) string {
	t.Helper()
	out, err := ws.Exec(line)
	require.NoError(t, err, "exec %q", line)
	return out
}

func TestExecStatements(t *testing.T) {
	ws := newTestWorkspace(t)

	testCases := []struct {
		Line     string
		Expected string
	}{
		{"new main 10 20 30 40 50 25 60", "main: 7 keys"},
		{"inorder main", "[10, 20, 25, 30, 40, 50, 60]"},
		{"preorder main", "[30, 20, 10, 25, 50, 40, 60]"},
		{"postorder main", "[10, 25, 20, 40, 60, 50, 30]"},
		{"count main", "7"},
		{"min main", "10"},
		{"max main", "60"},
		{"search main 20", "20 found (height 2, balance +0)"},
		{"search main 21", "21 not found"},
		{"validate main", "true"},
		{"insert main 10 70", "main: added 1 of 2, count 8"},
		{"delete main 30 99", "main: removed 1 of 2, count 7"},
		{"inorder main", "[10, 20, 25, 40, 50, 60, 70]"},
		{"insert fresh 3,1,2", "fresh: added 3 of 3, count 3"},
		{"new empty", "empty: 0 keys"},
		{"min empty", "(empty)"},
		{"inorder empty", "[]"},
		{"# a comment", ""},
		{"   ", ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.Expected, mustExec(t, ws, tc.Line), "exec %q", tc.Line)
	}
}

func TestExecErrors(t *testing.T) {
	ws := newTestWorkspace(t)
	mustExec(t, ws, "new main 1 2 3")

	testCases := []struct {
		Line string
		Err  error
	}{
		{"frobnicate main", ErrUnknownStatement},
		{"search main", ErrUsage},
		{"count", ErrUsage},
		{"count main extra", ErrUsage},
		{"inorder ghost", ErrNoSuchTree},
		{"delete ghost 1", ErrNoSuchTree},
		{"insert main ten", ErrInvalidKey},
		{"search main x", ErrInvalidKey},
		{"new 'bad name' 1", ErrInvalidName},
		{"split main 2 same same", ErrUsage},
		{"drop ghost", ErrNoSuchTree},
	}

	for _, tc := range testCases {
		_, err := ws.Exec(tc.Line)
		assert.ErrorIs(t, err, tc.Err, "exec %q", tc.Line)
	}

	_, err := ws.Exec(`insert main "unterminated`)
	assert.Error(t, err)
}

func TestExecSplitAndMerge(t *testing.T) {
	ws := newTestWorkspace(t)
	mustExec(t, ws, "new main 10 20 25 40 50 60")
	mustExec(t, ws, "new other 1 2 3 23 11 124 12 5")

	assert.Equal(t, "main: merged 8 new keys from other, count 14", mustExec(t, ws, "merge main other"))
	assert.Equal(t, "[1, 2, 3, 5, 10, 11, 12, 20, 23, 25, 40, 50, 60, 124]", mustExec(t, ws, "inorder main"))
	// merge leaves the source in place
	assert.Equal(t, "8", mustExec(t, ws, "count other"))

	assert.Equal(t, "lo: 7 keys, hi: 6 keys, pivot 20 consumed", mustExec(t, ws, "split main 20 lo hi"))
	assert.Equal(t, "[1, 2, 3, 5, 10, 11, 12]", mustExec(t, ws, "inorder lo"))
	assert.Equal(t, "[23, 25, 40, 50, 60, 124]", mustExec(t, ws, "inorder hi"))
	assert.Equal(t, "true", mustExec(t, ws, "validate lo"))
	assert.Equal(t, "true", mustExec(t, ws, "validate hi"))

	// the split source is gone from the workspace
	_, err := ws.Exec("count main")
	assert.ErrorIs(t, err, ErrNoSuchTree)

	assert.Equal(t, "lo: 7 keys, hi2: 0 keys, pivot 99 absent", mustExec(t, ws, "split lo 99 lo hi2"))

	assert.Equal(t, "all: count 14", mustExec(t, ws, "join lo 20 hi all"))
	assert.Equal(t, "[1, 2, 3, 5, 10, 11, 12, 20, 23, 25, 40, 50, 60, 124]", mustExec(t, ws, "inorder all"))
	assert.Equal(t, "true", mustExec(t, ws, "validate all"))

	mustExec(t, ws, "new a 1 50")
	mustExec(t, ws, "new b 60")
	_, err = ws.Exec("join a 30 b c")
	assert.Error(t, err)
}

func TestExecListAndDrop(t *testing.T) {
	ws := newTestWorkspace(t)
	assert.Equal(t, "(no trees)", mustExec(t, ws, "list"))

	mustExec(t, ws, "new alpha 1 2 3")
	mustExec(t, ws, "new beta 1")
	mustExec(t, ws, "new alpine")

	assert.Equal(t, "alpha\tcount=3 height=2\nalpine\tcount=0 height=0\nbeta\tcount=1 height=1", mustExec(t, ws, "list"))
	assert.Equal(t, "alpha\tcount=3 height=2\nalpine\tcount=0 height=0", mustExec(t, ws, "list al*"))
	assert.Equal(t, "(no trees)", mustExec(t, ws, "list z?"))

	assert.Equal(t, "dropped beta", mustExec(t, ws, "drop beta"))
	assert.Equal(t, "alpha\tcount=3 height=2\nalpine\tcount=0 height=0", mustExec(t, ws, "list"))

	_, err := ws.Exec("list [")
	assert.Error(t, err)
}

func TestExecLoad(t *testing.T) {
	ws := newTestWorkspace(t)
	path := writeTemp(t, "keys.txt", "5 3 8\n3 1\n")

	out := mustExec(t, ws, "load keys "+path)
	assert.Equal(t, "keys: read 5, added 4, repeated 1, already present 0, count 4", out)
	assert.Equal(t, "[1, 3, 5, 8]", mustExec(t, ws, "inorder keys"))
}

func TestExecLoadKeepsKeysBeforeBadLine(t *testing.T) {
	ws := newTestWorkspace(t)
	path := writeTemp(t, "keys.txt", "4 2\n6\nseven\n8\n")

	_, err := ws.Exec("load partial " + path)
	require.ErrorIs(t, err, ErrInvalidKey)
	assert.Contains(t, err.Error(), "line 3")

	assert.Equal(t, "[2, 4, 6]", mustExec(t, ws, "inorder partial"))
}

func TestExecPrintAndDot(t *testing.T) {
	ws := newTestWorkspace(t)
	mustExec(t, ws, "new t 2 1 3")

	diagram := mustExec(t, ws, "print t")
	lines := strings.Split(diagram, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "|------+ 2 h=2")

	dot := mustExec(t, ws, "dot t")
	assert.True(t, strings.HasPrefix(dot, `digraph "t" {`))
	assert.Contains(t, dot, `"2" -> "1" [label="L"];`)

	mustExec(t, ws, "new e")
	assert.Equal(t, "(empty)", mustExec(t, ws, "print e"))
}

func TestRunScript(t *testing.T) {
	ws := newTestWorkspace(t)

	var out bytes.Buffer
	require.NoError(t, ws.RunScript(strings.NewReader(demoScript), &out, true))

	text := out.String()
	assert.Contains(t, text, "> new main 10 20 30 40 50 25 60")
	assert.Contains(t, text, "[10, 20, 25, 30, 40, 50, 60]")
	assert.Contains(t, text, "[10, 20, 25, 40, 50, 60]")
	assert.Contains(t, text, "[1, 2, 3, 5, 10, 11, 12]")
	assert.Contains(t, text, "[23, 25, 40, 50, 60, 124]")
	assert.NotContains(t, text, "false")
}

func TestRunScriptStopsAtFailingLine(t *testing.T) {
	ws := newTestWorkspace(t)
	script := "new t 1\n\n# comment\ninsert t 2\ncount ghost\ninsert t 3\n"

	var out bytes.Buffer
	err := ws.RunScript(strings.NewReader(script), &out, false)
	require.ErrorIs(t, err, ErrNoSuchTree)
	assert.Contains(t, err.Error(), "line 5")
	assert.Equal(t, "t: 1 keys\nt: added 1 of 1, count 2\n", out.String())
}

func TestWorkspaceTreeTTL(t *testing.T) {
	config := defaults()
	config.Workspace.TreeTTL = 200 * time.Millisecond
	ws := NewWorkspace(config, NewKeyLoader(config.Loader, nil), NewStyles(false), slog.New(slog.NewTextHandler(io.Discard, nil)))

	mustExec(t, ws, "new t 1 2 3")
	assert.Equal(t, "t", ws.Last())

	// reads keep the tree alive well past one ttl
	for i := 0; i < 5; i++ {
		time.Sleep(80 * time.Millisecond)
		assert.Equal(t, "3", mustExec(t, ws, "count t"), "read %d", i)
	}

	time.Sleep(300 * time.Millisecond)
	_, err := ws.Exec("count t")
	assert.ErrorIs(t, err, ErrNoSuchTree)
}

func TestStatementHelp(t *testing.T) {
	help := mustExec(t, newTestWorkspace(t), "help")
	for name := range statements {
		assert.Contains(t, help, name)
	}
}
