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
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/cybrota/avlkit/avl"
	"github.com/gobwas/glob"
	"github.com/patrickmn/go-cache"
)

// Workspace is a set of named trees that script statements operate on.
//
// Trees themselves are not safe for concurrent use, so every statement
// runs under the workspace lock. The shell and the file watcher both
// execute statements from their own goroutines.
type Workspace struct {
	mu     sync.Mutex
	trees  *cache.Cache
	loader *KeyLoader
	styles *Styles
	logger *slog.Logger

	last string // most recently used tree name
}

func NewWorkspace(config *Config, loader *KeyLoader, styles *Styles, logger *slog.Logger) *Workspace {
	return &Workspace{
		trees:  NewTreeCache(config.Workspace.TreeTTL),
		loader: loader,
		styles: styles,
		logger: logger,
	}
}

func validName(name string) error {
	if name == "" || strings.ContainsAny(name, " \t\n*?[]{}") {
		return fmt.Errorf("%q: %w", name, ErrInvalidName)
	}
	return nil
}

// tree returns the named tree and restarts its idle timer; callers
// hold w.mu
func (w *Workspace) tree(name string) (*avl.Tree[int], error) {
	tree, ok := GetTree(w.trees, name)
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrNoSuchTree)
	}
	w.put(name, tree)
	return tree, nil
}

// orCreate returns the named tree, creating an empty one when missing.
func (w *Workspace) orCreate(name string) (*avl.Tree[int], error) {
	if err := validName(name); err != nil {
		return nil, err
	}
	if tree, ok := GetTree(w.trees, name); ok {
		w.put(name, tree)
		return tree, nil
	}
	tree := avl.New[int]()
	w.put(name, tree)
	w.logger.Debug("tree created", "name", name)
	return tree, nil
}

func (w *Workspace) put(name string, tree *avl.Tree[int]) {
	CacheTree(w.trees, name, tree)
	w.last = name
}

func (w *Workspace) drop(name string) error {
	if _, ok := GetTree(w.trees, name); !ok {
		return fmt.Errorf("%q: %w", name, ErrNoSuchTree)
	}
	w.trees.Delete(name)
	if w.last == name {
		w.last = ""
	}
	return nil
}

// names lists the tree names matching pattern, all names when empty.
func (w *Workspace) names(pattern string) ([]string, error) {
	var g glob.Glob
	if pattern != "" {
		compiled, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		g = compiled
	}

	var names []string
	for name := range w.trees.Items() {
		if g == nil || g.Match(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Tree returns a named tree for read-only use outside of statements.
func (w *Workspace) Tree(name string) (*avl.Tree[int], error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.tree(name)
}

// Last returns the name of the most recently used tree.
func (w *Workspace) Last() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.last
}
