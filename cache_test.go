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
	"testing"
	"time"

	"github.com/cybrota/avlkit/avl"
)

func TestCacheTreeAndGetTree(t *testing.T) {
	c := NewTreeCache(0)
	name := "main"

	// Initially, GetTree should report a missing tree.
	if _, ok := GetTree(c, name); ok {
		t.Errorf("GetTree(%q) found a tree in an empty cache", name)
	}

	tree := avl.New(3, 1, 2)
	CacheTree(c, name, tree)

	got, ok := GetTree(c, name)
	if !ok {
		t.Fatalf("GetTree(%q) = not found; want the cached tree", name)
	}
	if got != tree {
		t.Errorf("GetTree(%q) returned a different tree", name)
	}
}

func TestCacheExpiration(t *testing.T) {
	// Use a very short ttl to test expiry behavior.
	c := NewTreeCache(100 * time.Millisecond)
	CacheTree(c, "short", avl.New(1))

	// Immediately after caching, the tree should be retrievable.
	if _, ok := GetTree(c, "short"); !ok {
		t.Errorf("GetTree(%q) = not found right after caching", "short")
	}

	// Wait longer than the expiration duration.
	time.Sleep(150 * time.Millisecond)

	// Now, the tree should have expired and not be retrievable.
	if _, ok := GetTree(c, "short"); ok {
		t.Errorf("After expiration, GetTree(%q) still found the tree", "short")
	}
}
