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
	"fmt"
	"io"
	"os"
	"strings"

	shellwords "github.com/mattn/go-shellwords"

	"github.com/cybrota/avlmap"
)

// Op is one line of a demo script: a verb plus its arguments.
type Op struct {
	Verb string
	Args []string
}

// parseOps reads a script, one operation per line. Lines are split
// with shell quoting rules so keys may contain spaces:
//
//	insert "hello world" 42
//	search "hello world"
//	remove "hello world"
//
// Blank lines and #-comments are skipped.
func parseOps(r io.Reader) ([]Op, error) {
	var ops []Op
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields, err := shellwords.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", lineNo, err)
		}
		if len(fields) == 0 {
			continue
		}
		ops = append(ops, Op{Verb: strings.ToLower(fields[0]), Args: fields[1:]})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ops, nil
}

// parseOpsFile opens path (or stdin for "-") and parses it.
func parseOpsFile(path string) ([]Op, error) {
	if path == "-" {
		return parseOps(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseOps(f)
}

// applyOps executes a script against tree, writing one result line per
// operation. verify runs a structural check after every mutation.
func applyOps(w io.Writer, tree *avlmap.Tree[string, string], ops []Op, verify bool) error {
	for _, op := range ops {
		switch op.Verb {
		case "insert":
			if len(op.Args) < 1 || len(op.Args) > 2 {
				return fmt.Errorf("insert wants <key> [value], got %d args", len(op.Args))
			}
			value := ""
			if len(op.Args) == 2 {
				value = op.Args[1]
			}
			prev, replaced := tree.Insert(op.Args[0], value)
			if replaced {
				fmt.Fprintf(w, "insert %q replaced %q\n", op.Args[0], prev)
			} else {
				fmt.Fprintf(w, "insert %q added\n", op.Args[0])
			}

		case "remove":
			if len(op.Args) != 1 {
				return fmt.Errorf("remove wants exactly <key>")
			}
			if v, removed := tree.Remove(op.Args[0]); removed {
				fmt.Fprintf(w, "remove %q removed value %q\n", op.Args[0], v)
			} else {
				fmt.Fprintf(w, "remove %q not found\n", op.Args[0])
			}

		case "search":
			if len(op.Args) != 1 {
				return fmt.Errorf("search wants exactly <key>")
			}
			if v, found := tree.Search(op.Args[0]); found {
				fmt.Fprintf(w, "search %q found value %q\n", op.Args[0], v)
			} else {
				fmt.Fprintf(w, "search %q not found\n", op.Args[0])
			}

		case "min":
			if e, ok := tree.Min(); ok {
				fmt.Fprintf(w, "min %q\n", e.Key)
			} else {
				fmt.Fprintf(w, "min: tree is empty\n")
			}

		case "max":
			if e, ok := tree.Max(); ok {
				fmt.Fprintf(w, "max %q\n", e.Key)
			} else {
				fmt.Fprintf(w, "max: tree is empty\n")
			}

		case "list":
			order := avlmap.InOrder
			if len(op.Args) == 1 {
				var ok bool
				if order, ok = avlmap.ParseOrder(op.Args[0]); !ok {
					return fmt.Errorf("unknown traversal order %q", op.Args[0])
				}
			}
			for k := range tree.All(order) {
				fmt.Fprintf(w, "  %s\n", k)
			}

		case "print":
			tree.Fprint(w, false)

		case "check":
			if err := tree.Check(); err != nil {
				return err
			}
			fmt.Fprintf(w, "check ok, %d entries\n", tree.Len())

		default:
			return fmt.Errorf("unknown operation %q", op.Verb)
		}

		if verify {
			if err := tree.Check(); err != nil {
				return fmt.Errorf("after %s: %v", op.Verb, err)
			}
		}
	}
	return nil
}
