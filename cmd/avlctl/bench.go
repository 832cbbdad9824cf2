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
	"math"
	"math/rand"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/avlmap"
)

// runBench inserts n integer keys in the requested pattern, reports
// the resulting height against the theoretical AVL worst case, then
// removes everything again. "sorted" is the adversarial input that
// degenerates an unbalanced BST into a linked list.
func runBench(n int, pattern string, showProgress bool) error {
	keys := make([]int, n)
	switch pattern {
	case "sorted":
		for i := range keys {
			keys[i] = i
		}
	case "random":
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		for i, k := range rng.Perm(n) {
			keys[i] = k
		}
	default:
		return fmt.Errorf("unknown bench pattern %q (want random or sorted)", pattern)
	}

	tree := avlmap.NewOrdered[int, int]()

	bar := newBenchBar(n, "Inserting", showProgress)
	start := time.Now()
	for _, k := range keys {
		tree.Insert(k, k)
		if bar != nil {
			bar.Add(1)
		}
	}
	insertTook := time.Since(start)
	if bar != nil {
		bar.Finish()
		fmt.Println()
	}

	if err := tree.Check(); err != nil {
		return fmt.Errorf("invariants broken after inserts: %v", err)
	}

	height := tree.Root().Height()
	bound := int(math.Floor(1.44*math.Log2(float64(n)+2) - 0.328))
	fmt.Printf("%s%d inserts (%s)%s in %v\n", Green, n, pattern, Reset, insertTook)
	fmt.Printf("height %d, AVL worst-case bound %d, perfect %d\n",
		height, bound, int(math.Ceil(math.Log2(float64(n+1))))-1)
	if height > bound {
		return fmt.Errorf("height %d exceeds the AVL bound %d", height, bound)
	}

	bar = newBenchBar(n, "Removing ", showProgress)
	start = time.Now()
	for _, k := range keys {
		tree.Remove(k)
		if bar != nil {
			bar.Add(1)
		}
	}
	removeTook := time.Since(start)
	if bar != nil {
		bar.Finish()
		fmt.Println()
	}

	if !tree.IsEmpty() {
		return fmt.Errorf("%d entries left after removing every key", tree.Len())
	}
	fmt.Printf("%s%d removes%s in %v, tree is empty again\n", Green, n, Reset, removeTook)
	return nil
}

func newBenchBar(n int, description string, show bool) *progressbar.ProgressBar {
	if !show {
		return nil
	}
	return progressbar.NewOptions(n,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}
