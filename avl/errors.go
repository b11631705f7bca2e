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

package avl

import "errors"

// Structural errors reported by Check
var (
	// ErrUnbalanced indicates a node whose subtree heights differ by more than one.
	ErrUnbalanced = errors.New("subtree heights differ by more than one")

	// ErrOrder indicates a key on the wrong side of an ancestor.
	ErrOrder = errors.New("key out of order")

	// ErrHeight indicates a cached height that does not match its children.
	ErrHeight = errors.New("cached height is stale")
)

// ErrJoinOrder is returned by Join when the separator key does not sit
// strictly between the two trees.
var ErrJoinOrder = errors.New("join: keys of the two trees overlap the separator")
