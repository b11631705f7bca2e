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

import "errors"

// Workspace errors
var (
	// ErrNoSuchTree indicates a statement referring to an unknown tree name.
	ErrNoSuchTree = errors.New("no such tree")

	// ErrInvalidName indicates an empty or malformed tree name.
	ErrInvalidName = errors.New("invalid tree name")
)

// Script errors
var (
	// ErrUnknownStatement indicates a statement keyword the engine does not know.
	ErrUnknownStatement = errors.New("unknown statement")

	// ErrUsage indicates a statement called with the wrong arguments.
	ErrUsage = errors.New("wrong arguments")

	// ErrInvalidKey indicates a key that is not an integer.
	ErrInvalidKey = errors.New("invalid key")
)
