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
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const configFileName = ".avlkit.yaml"

type DisplayConfig struct {
	Color        bool `yaml:"color"`
	DiagramWidth int  `yaml:"diagram_width"`
}

type LoaderConfig struct {
	BloomSize        uint  `yaml:"bloom_size"`   // bits
	BloomHashes      uint  `yaml:"bloom_hashes"` // hash functions
	ProgressMinBytes int64 `yaml:"progress_min_bytes"`
}

type WorkspaceConfig struct {
	TreeTTL time.Duration `yaml:"tree_ttl"` // 0 keeps trees forever
}

type Config struct {
	Display   DisplayConfig   `yaml:"display"`
	Loader    LoaderConfig    `yaml:"loader"`
	Workspace WorkspaceConfig `yaml:"workspace"`
	LogLevel  string          `yaml:"log_level"`
}

var defaultConfig = Config{
	Display: DisplayConfig{
		Color:        true,
		DiagramWidth: 80,
	},
	Loader: LoaderConfig{
		BloomSize:        1 << 20,
		BloomHashes:      5,
		ProgressMinBytes: 1 << 20,
	},
	Workspace: WorkspaceConfig{
		TreeTTL: 0,
	},
	LogLevel: "info",
}

// LoadConfig reads the configuration from path, or from ~/.avlkit.yaml
// when path is empty. Any problem falls back to the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return defaults(), nil
		}
		path = p
	}
	return loadConfigFrom(path), nil
}

func defaults() *Config {
	config := defaultConfig
	return &config
}

func loadConfigFrom(path string) *Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return defaults()
	}

	// start from the defaults so missing keys keep their values
	config := defaultConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return defaults()
	}
	if config.Loader.BloomSize == 0 {
		config.Loader.BloomSize = defaultConfig.Loader.BloomSize
	}
	if config.Loader.BloomHashes == 0 {
		config.Loader.BloomHashes = defaultConfig.Loader.BloomHashes
	}
	if config.Display.DiagramWidth <= 0 {
		config.Display.DiagramWidth = defaultConfig.Display.DiagramWidth
	}
	return &config
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeConfigFile(path string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// displaySettings prints the effective configuration and creates the
// default file when there is none yet.
func displaySettings(w io.Writer, path string, styles *Styles) error {
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	created := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := writeConfigFile(path, &defaultConfig); err != nil {
			return err
		}
		created = true
	}

	config := loadConfigFrom(path)

	fmt.Fprintln(w, styles.Title.Render("avlkit configuration"))
	if created {
		fmt.Fprintf(w, "Config file: %s %s\n\n", path, styles.Muted.Render("(newly created)"))
	} else {
		fmt.Fprintf(w, "Config file: %s\n\n", path)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	fmt.Fprint(w, string(data))
	return nil
}
