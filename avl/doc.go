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

// Package avl implements a height balanced binary search tree over any
// ordered key type.
//
// Every node caches the height of its subtree. After each insert or
// delete the heights on the path back to the root are recomputed and any
// node whose subtrees differ in height by more than one is restored with
// one or two rotations. Split and Join move whole subtrees between trees
// and keep both results balanced.
//
// Keys are ordered with cmp.Compare, so for floating point keys a NaN is
// a single key that sorts before every other value.
//
// A Tree is not safe for concurrent use. Guard it with a mutex if it is
// shared between goroutines.
package avl
