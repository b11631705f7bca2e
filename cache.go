// cache.go

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
	"time"

	"github.com/cybrota/avlkit/avl"
	"github.com/patrickmn/go-cache"
)

// NewTreeCache creates the registry holding named trees. A ttl of zero
// keeps trees until they are dropped.
func NewTreeCache(ttl time.Duration) *cache.Cache {
	if ttl <= 0 {
		return cache.New(cache.NoExpiration, 0)
	}
	// sweep expired trees twice per ttl period
	return cache.New(ttl, ttl/2)
}

// CacheTree stores tree under name; every store restarts its idle timer.
func CacheTree(c *cache.Cache, name string, tree *avl.Tree[int]) {
	c.Set(name, tree, cache.DefaultExpiration)
}

func GetTree(c *cache.Cache, name string) (*avl.Tree[int], bool) {
	val, ok := c.Get(name)
	if !ok {
		return nil, false
	}
	return val.(*avl.Tree[int]), true
}
