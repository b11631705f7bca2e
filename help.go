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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

const scriptLanguageHelp = `
# Script statements

One statement per line. Lines starting with '#' are comments and
arguments follow shell quoting rules.

| statement | effect |
|---|---|
| new NAME [KEY...] | create or replace a tree |
| insert NAME KEY... | insert keys, creating the tree if needed |
| delete NAME KEY... | delete keys |
| search NAME KEY | look a key up |
| inorder / preorder / postorder NAME | print a traversal |
| count / min / max NAME | size and key range |
| validate NAME | check the balance rule |
| print NAME | sideways diagram |
| dot NAME | Graphviz DOT text |
| merge DST SRC | insert every key of SRC into DST |
| split SRC KEY LEFT RIGHT | partition SRC around KEY, KEY itself is dropped |
| join LEFT KEY RIGHT DST | concatenate LEFT, KEY and RIGHT |
| load NAME FILE | insert integer keys from a file; on a bad line the keys before it stay loaded |
| drop NAME | forget a tree |
| list [GLOB] | list trees |
`

func getHelpMessage(width int) string {
	message := fmt.Sprintf(`
**avlkit %s**

Build, inspect, split and merge height balanced search trees from the
command line.

Built with Go %s

# 1. Commands
* **demo**: run the reference scenario step by step
* **build [KEY...] -f FILE**: build a tree and print its traversals
* **split KEY [KEY...] -f FILE**: build a tree and split it around KEY
* **dot [KEY...] -f FILE**: Graphviz DOT for a tree, --copy puts it on the clipboard
* **run SCRIPT**: execute a script, --watch re-runs it on every save
* **shell**: interactive shell over the script language
* **settings**: show the configuration in ~/.avlkit.yaml

Negative keys must follow **--** so they are not read as flags, for
example *avlkit build -- -5 0 5*.
%s
# License
Licensed under the Apache License, Version 2.0
`, version, runtime.Version(), scriptLanguageHelp)
	result := markdown.Render(message, width, 3)
	return string(result)
}
