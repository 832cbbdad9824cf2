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

package avlmap_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/avlmap"
)

type treeTestCase struct {
	Name          string
	InitialKeys   []string
	KeysToInsert  []string
	KeysToRemove  []string
	ExpectedOrder []string // in-order traversal expectation after operations
}

func TestTreeOperations(t *testing.T) {
	testCases := []treeTestCase{
		{
			Name:          "Simple Insertion",
			KeysToInsert:  []string{"apple", "banana", "cherry"},
			ExpectedOrder: []string{"apple", "banana", "cherry"},
		},
		{
			Name:          "Insertion with Balancing (Left-Heavy)",
			InitialKeys:   []string{"cherry", "banana"},
			KeysToInsert:  []string{"apple"},
			ExpectedOrder: []string{"apple", "banana", "cherry"},
		},
		{
			Name:          "Insertion with Balancing (Right-Heavy)",
			InitialKeys:   []string{"apple"},
			KeysToInsert:  []string{"banana", "cherry"},
			ExpectedOrder: []string{"apple", "banana", "cherry"},
		},
		{
			Name:          "Removal of Root",
			InitialKeys:   []string{"cherry", "banana", "apple"},
			KeysToRemove:  []string{"banana"},
			ExpectedOrder: []string{"apple", "cherry"},
		},
		{
			Name:          "Removal of Absent Key",
			InitialKeys:   []string{"dog", "cat"},
			KeysToRemove:  []string{"zebra"},
			ExpectedOrder: []string{"cat", "dog"},
		},
		{
			Name:          "Mixed Operations",
			InitialKeys:   []string{"dog", "cat"},
			KeysToInsert:  []string{"elephant", "bird"},
			KeysToRemove:  []string{"cat"},
			ExpectedOrder: []string{"bird", "dog", "elephant"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := avlmap.NewOrdered[string, int]()
			for i, key := range tc.InitialKeys {
				tree.Insert(key, i)
			}
			for i, key := range tc.KeysToInsert {
				tree.Insert(key, i)
			}
			for _, key := range tc.KeysToRemove {
				tree.Remove(key)
			}
			assert.Equal(t, tc.ExpectedOrder, tree.Keys())
			assert.Equal(t, len(tc.ExpectedOrder), tree.Len())
			assert.NoError(t, tree.Check())
		})
	}
}

func TestInsertKeepsBalance(t *testing.T) {
	tree := avlmap.NewOrdered[int, string]()
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		tree.Insert(k, "")
		require.NoError(t, tree.Check())
	}
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, tree.Keys())
}

func TestAscendingInsertStaysLogarithmic(t *testing.T) {
	// A naive BST degenerates to a 7-long line here.
	tree := avlmap.NewOrdered[int, int]()
	for k := 1; k <= 7; k++ {
		tree.Insert(k, k)
	}
	require.NoError(t, tree.Check())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, tree.Keys())
	assert.LessOrEqual(t, tree.Root().Height(), 3)
}

func TestRemoveTwoChildrenUsesPredecessor(t *testing.T) {
	tree := avlmap.NewOrdered[int, string]()
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		tree.Insert(k, "v")
	}
	v, removed := tree.Remove(3) // both children present
	assert.True(t, removed)
	assert.Equal(t, "v", v)
	assert.Equal(t, []int{1, 4, 5, 7, 8, 9}, tree.Keys())
	assert.NoError(t, tree.Check())
}

func TestSearchEmptyTree(t *testing.T) {
	tree := avlmap.NewOrdered[string, int]()
	_, found := tree.Search("anything")
	assert.False(t, found)
	assert.True(t, tree.IsEmpty())
	assert.Zero(t, tree.Len())
}

func TestInsertDuplicateReplacesValue(t *testing.T) {
	tree := avlmap.NewOrdered[int, string]()
	_, replaced := tree.Insert(5, "a")
	assert.False(t, replaced)

	prev, replaced := tree.Insert(5, "b")
	assert.True(t, replaced)
	assert.Equal(t, "a", prev)

	got, found := tree.Search(5)
	assert.True(t, found)
	assert.Equal(t, "b", got)
	assert.Equal(t, 1, tree.Len())
}

func TestRemoveAbsentIsIdempotent(t *testing.T) {
	tree := avlmap.NewOrdered[int, int]()
	tree.Insert(1, 1)
	for i := 0; i < 2; i++ {
		_, removed := tree.Remove(42)
		assert.False(t, removed)
		assert.Equal(t, 1, tree.Len())
	}
}

func TestMinMax(t *testing.T) {
	tree := avlmap.NewOrdered[int, string]()

	_, ok := tree.Min()
	assert.False(t, ok)
	_, ok = tree.Max()
	assert.False(t, ok)

	for _, k := range []int{42, 7, 99, 13, 68} {
		tree.Insert(k, "")
	}
	lo, ok := tree.Min()
	require.True(t, ok)
	assert.Equal(t, 7, lo.Key)
	hi, ok := tree.Max()
	require.True(t, ok)
	assert.Equal(t, 99, hi.Key)
}

// maxAVLHeight is the standard AVL worst-case height for n entries.
func maxAVLHeight(n int) int {
	return int(math.Floor(1.44*math.Log2(float64(n)+2) - 0.328))
}

func TestSortedInsertHeightBound(t *testing.T) {
	const n = 1024
	tree := avlmap.NewOrdered[int, int]()
	for k := 0; k < n; k++ {
		tree.Insert(k, k)
	}
	require.NoError(t, tree.Check())
	assert.LessOrEqual(t, tree.Root().Height(), maxAVLHeight(n))
}

func TestRandomOperationsKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(0x5eed))
	tree := avlmap.NewOrdered[int, int]()
	reference := make(map[int]int)

	for round := 0; round < 50; round++ {
		for i := 0; i < 40; i++ {
			k := rng.Intn(1000)
			tree.Insert(k, round)
			reference[k] = round
		}
		for i := 0; i < 15; i++ {
			k := rng.Intn(1000)
			_, removed := tree.Remove(k)
			_, present := reference[k]
			assert.Equal(t, present, removed)
			delete(reference, k)
		}
		require.NoError(t, tree.Check())
		require.Equal(t, len(reference), tree.Len())
	}

	want := make([]int, 0, len(reference))
	for k := range reference {
		want = append(want, k)
	}
	sort.Ints(want)
	assert.Equal(t, want, tree.Keys())
	assert.LessOrEqual(t, tree.Root().Height(), maxAVLHeight(tree.Len()))

	for k, v := range reference {
		got, found := tree.Search(k)
		require.True(t, found, "key %d should be present", k)
		require.Equal(t, v, got, "key %d holds a stale value", k)
	}
}

func TestInsertThenRemoveAllRoundTrip(t *testing.T) {
	const n = 500
	rng := rand.New(rand.NewSource(7))
	keys := rng.Perm(n)

	tree := avlmap.NewOrdered[int, int]()
	for _, k := range keys {
		tree.Insert(k, k)
	}
	require.Equal(t, n, tree.Len())

	order := rng.Perm(n)
	for i, k := range order {
		_, removed := tree.Remove(k)
		require.True(t, removed)
		if i%97 == 0 {
			require.NoError(t, tree.Check())
		}
	}
	assert.True(t, tree.IsEmpty())
	assert.Zero(t, tree.Len())
	assert.NoError(t, tree.Check())
}

func TestCustomComparator(t *testing.T) {
	// Reverse ordering: highest key first in traversal.
	tree := avlmap.New[int, string](func(a, b int) int { return b - a })
	for _, k := range []int{1, 2, 3, 4, 5} {
		tree.Insert(k, "")
	}
	assert.Equal(t, []int{5, 4, 3, 2, 1}, tree.Keys())
	assert.NoError(t, tree.Check())
}
