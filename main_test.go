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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes avlkit with args against a missing config file
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	base := []string{"--config", filepath.Join(t.TempDir(), "avlkit.yaml"), "--no-color"}
	cmd.SetArgs(append(base, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestBuildAcceptsNegativeKeysAfterSeparator(t *testing.T) {
	out, err := runCommand(t, "build", "--", "-3", "4", "-10")
	require.NoError(t, err)
	assert.Regexp(t, `inorder:\s+\[-10, -3, 4\]`, out)
	assert.Regexp(t, `count:\s+3`, out)

	// without the separator the first key is taken for a flag
	_, err = runCommand(t, "build", "-3", "4")
	assert.ErrorContains(t, err, "unknown shorthand flag")
}

func TestSplitWithNegativePivot(t *testing.T) {
	out, err := runCommand(t, "split", "--", "-3", "-10", "-3", "4", "5")
	require.NoError(t, err)
	assert.Regexp(t, `inorder:\s+\[-10\]`, out)
	assert.Regexp(t, `inorder:\s+\[4, 5\]`, out)
	assert.Contains(t, out, "pivot -3 was consumed")
}

func TestDotWithNegativeKeys(t *testing.T) {
	out, err := runCommand(t, "dot", "--name", "neg", "--", "-1", "0", "1")
	require.NoError(t, err)
	assert.Contains(t, out, `digraph "neg" {`)
	assert.Contains(t, out, `"0" -> "-1" [label="L"];`)
}

func TestCommandUsageMentionsSeparator(t *testing.T) {
	for _, name := range []string{"build", "split", "dot"} {
		cmd, _, err := newRootCmd().Find([]string{name})
		require.NoError(t, err)
		assert.Contains(t, cmd.Use, "[--]", "command %s", name)
	}
}
