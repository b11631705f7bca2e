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
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig, *config)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := writeTemp(t, "avlkit.yaml", `
display:
  color: false
workspace:
  tree_ttl: 90s
log_level: debug
`)
	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.False(t, config.Display.Color)
	assert.Equal(t, 80, config.Display.DiagramWidth)
	assert.Equal(t, 90*time.Second, config.Workspace.TreeTTL)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, defaultConfig.Loader, config.Loader)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := writeTemp(t, "avlkit.yaml", "display: [unterminated")
	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig, *config)
}

func TestLoadConfigFixesZeroValues(t *testing.T) {
	path := writeTemp(t, "avlkit.yaml", `
loader:
  bloom_size: 0
  bloom_hashes: 0
display:
  diagram_width: -3
`)
	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig.Loader.BloomSize, config.Loader.BloomSize)
	assert.Equal(t, defaultConfig.Loader.BloomHashes, config.Loader.BloomHashes)
	assert.Equal(t, defaultConfig.Display.DiagramWidth, config.Display.DiagramWidth)
}

func TestDisplaySettingsCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "avlkit.yaml")

	var out bytes.Buffer
	require.NoError(t, displaySettings(&out, path, NewStyles(false)))
	assert.Contains(t, out.String(), "(newly created)")
	assert.Contains(t, out.String(), "bloom_hashes: 5")

	// the written file round-trips to the defaults
	assert.Equal(t, defaultConfig, *loadConfigFrom(path))

	out.Reset()
	require.NoError(t, displaySettings(&out, path, NewStyles(false)))
	assert.NotContains(t, out.String(), "(newly created)")
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"chatty", slog.LevelInfo},
	}

	for _, tc := range tests {
		if got := parseLogLevel(tc.input); got != tc.expected {
			t.Errorf("parseLogLevel(%q) = %v; want %v", tc.input, got, tc.expected)
		}
	}
}

func TestNewLoggerVerbose(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, "error", false).Debug("hidden")
	assert.Empty(t, buf.String())

	newLogger(&buf, "error", true).Debug("shown", "key", 1)
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "key=1")
}
