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
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cybrota/avlkit/avl"
	"github.com/schollz/progressbar/v3"
	"github.com/willf/bloom"
)

// LoadStats summarises one key file load.
type LoadStats struct {
	Read           int // keys parsed
	Added          int // new nodes
	RepeatedInFile int // probable repeats inside the same input
	AlreadyPresent int // keys the tree held before the load
}

func (s LoadStats) String() string {
	return fmt.Sprintf("read %d, added %d, repeated %d, already present %d",
		s.Read, s.Added, s.RepeatedInFile, s.AlreadyPresent)
}

// KeyLoader reads integer keys into trees.
type KeyLoader struct {
	config   LoaderConfig
	progress io.Writer // nil disables the progress bar
}

func NewKeyLoader(config LoaderConfig, progress io.Writer) *KeyLoader {
	return &KeyLoader{config: config, progress: progress}
}

// LoadFile inserts every key of the file at path into tree.
func (l *KeyLoader) LoadFile(path string, tree *avl.Tree[int]) (LoadStats, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return LoadStats{}, fmt.Errorf("key file %s not found", path)
		}
		return LoadStats{}, err
	}
	defer file.Close()

	size := int64(-1)
	if stat, err := file.Stat(); err == nil {
		size = stat.Size()
	}

	stats, err := l.Load(file, size, tree)
	if err != nil {
		return stats, fmt.Errorf("%s: %w", path, err)
	}
	return stats, nil
}

// Load inserts every key read from r into tree. size is the input
// length in bytes when known, -1 otherwise.
//
// Loading stops at the first line that does not parse. Keys from the
// lines before it stay in tree and are counted in the returned stats.
//
// Keys the tree rejects are classified with a bloom filter of the keys
// seen so far in this input. A hit means the key most likely repeats
// within the input, a miss means it was already in the tree.
func (l *KeyLoader) Load(r io.Reader, size int64, tree *avl.Tree[int]) (LoadStats, error) {
	var stats LoadStats
	seen := bloom.New(l.config.BloomSize, l.config.BloomHashes)
	buf := make([]byte, 8)

	var bar *progressbar.ProgressBar
	if l.progress != nil && size >= l.config.ProgressMinBytes && size > 0 {
		bar = progressbar.NewOptions64(size,
			progressbar.OptionSetWriter(l.progress),
			progressbar.OptionSetDescription("Loading keys..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowBytes(true),
			progressbar.OptionClearOnFinish(),
		)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if bar != nil {
			bar.Add(len(line) + 1)
		}

		keys, err := parseKeys(line)
		if err != nil {
			return stats, fmt.Errorf("line %d: %w", lineNo, err)
		}

		for _, key := range keys {
			stats.Read++
			binary.BigEndian.PutUint64(buf, uint64(key))
			repeated := seen.TestAndAdd(buf)

			if tree.Insert(key) {
				stats.Added++
			} else if repeated {
				stats.RepeatedInFile++
			} else {
				stats.AlreadyPresent++
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, err
	}
	if bar != nil {
		bar.Finish()
	}
	return stats, nil
}

// parseKeys reads the integers of one input line. Keys are separated by
// whitespace or commas and everything after '#' is a comment.
func parseKeys(line string) ([]int, error) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\r'
	})

	keys := make([]int, 0, len(fields))
	for _, f := range fields {
		key, err := parseKey(f)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func parseKey(s string) (int, error) {
	key, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidKey)
	}
	return key, nil
}

func parseKeyArgs(args []string) ([]int, error) {
	keys := make([]int, 0, len(args))
	for _, arg := range args {
		k, err := parseKeys(arg)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k...)
	}
	return keys, nil
}
