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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/avlmap"
)

func TestIndexPutGet(t *testing.T) {
	ix := avlmap.NewIndex[int](0, 0)

	ix.Put("alpha", 1)
	ix.Put("beta", 2)

	v, ok := ix.Get("alpha")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	// Second read is served from the memo cache; must agree.
	v, ok = ix.Get("alpha")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = ix.Get("gamma")
	assert.False(t, ok)
	assert.Equal(t, 2, ix.Len())
}

func TestIndexPutOverwrites(t *testing.T) {
	ix := avlmap.NewIndex[string](0, 0)
	ix.Put("key", "old")
	ix.Put("key", "new")

	v, ok := ix.Get("key")
	require.True(t, ok)
	assert.Equal(t, "new", v)
	assert.Equal(t, 1, ix.Len())
}

func TestIndexMayContain(t *testing.T) {
	ix := avlmap.NewIndex[int](0, 0)
	for i := 0; i < 100; i++ {
		ix.Put(fmt.Sprintf("key-%04d", i), i)
	}
	for i := 0; i < 100; i++ {
		assert.True(t, ix.MayContain(fmt.Sprintf("key-%04d", i)))
	}
	// Bloom filters admit false positives but never false negatives,
	// so Get has to stay exact for never-inserted keys.
	for i := 100; i < 200; i++ {
		_, ok := ix.Get(fmt.Sprintf("key-%04d", i))
		assert.False(t, ok)
	}
}

func TestIndexRemove(t *testing.T) {
	ix := avlmap.NewIndex[int](0, 0)
	ix.Put("gone", 9)

	v, removed := ix.Remove("gone")
	require.True(t, removed)
	assert.Equal(t, 9, v)

	_, ok := ix.Get("gone")
	assert.False(t, ok)
	assert.Zero(t, ix.Len())

	_, removed = ix.Remove("gone")
	assert.False(t, removed)
}

func TestIndexOrderedScan(t *testing.T) {
	ix := avlmap.NewIndex[int](0, 0)
	for _, k := range []string{"pear", "apple", "quince", "fig"} {
		ix.Put(k, 0)
	}
	assert.Equal(t, []string{"apple", "fig", "pear", "quince"}, ix.Tree().Keys())
	assert.NoError(t, ix.Tree().Check())
}
