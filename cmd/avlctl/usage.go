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

func getUsageMessage() string {
	message := fmt.Sprintf(`

 **avlctl %s**

Inspect and exercise the avlmap AVL tree from the terminal: run scripted
operations, benchmark adversarial inputs, and browse a tree interactively.

Built with Go %s

# 1. Commands
* demo — run a script of insert/remove/search/list operations against a fresh tree
* print — build a tree from key=value arguments and draw it as ASCII art
* explore — interactive browser over the tree with per-node metadata
* bench — bulk insert/remove with a progress bar and an AVL height-bound check
* settings — show (and create) the ~/.avlctl.yaml configuration
* version — print the avlctl version

# 2. Script format
One operation per line, shell quoting rules apply:

    insert "hello world" 42
    search "hello world"
    list level
    remove "hello world"

# 3. Guarantees
* Search, insert and remove are O(log n); the bench command verifies the
  1.44·log2(n+2) height bound on demand
* In-order listing always yields keys in sorted order

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
