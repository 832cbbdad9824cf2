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

package avlmap

import (
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/willf/bloom"
)

const (
	// Keep memoized lookups for a short while only; the tree is the
	// source of truth and a stale hit must age out quickly.
	recentExpiration = 5 * time.Minute
	recentCleanup    = 1 * time.Minute

	// Bloom filter defaults, sized for a few hundred thousand keys
	// at a low false-positive rate.
	DefaultFilterSize   = 1 << 20
	DefaultFilterHashes = 5
)

// Index is a string-keyed front for a Tree tuned for lookup-heavy
// workloads: a bloom filter answers definite misses without touching
// the tree, and a TTL cache memoizes recently fetched values.
//
// The bloom filter cannot forget, so after removals MayContain can
// report false positives until the index is rebuilt. Get stays exact:
// it always confirms against the tree.
type Index[V any] struct {
	tree   *Tree[string, V]
	filter *bloom.BloomFilter
	recent *cache.Cache
}

// NewIndex creates an empty index. Size and hashes configure the bloom
// filter; zero values pick the defaults.
func NewIndex[V any](size, hashes uint) *Index[V] {
	if size == 0 {
		size = DefaultFilterSize
	}
	if hashes == 0 {
		hashes = DefaultFilterHashes
	}
	return &Index[V]{
		tree:   NewOrdered[string, V](),
		filter: bloom.New(size, hashes),
		recent: cache.New(recentExpiration, recentCleanup),
	}
}

// Put stores value under key.
func (ix *Index[V]) Put(key string, value V) {
	ix.filter.AddString(key)
	ix.tree.Insert(key, value)
	// Overwrite rather than invalidate, the next Get is warm already.
	ix.recent.Set(key, value, cache.DefaultExpiration)
}

// Get returns the value stored under key. Misses are usually answered
// by the bloom filter alone.
func (ix *Index[V]) Get(key string) (V, bool) {
	if !ix.filter.TestString(key) {
		var zero V
		return zero, false
	}
	if hit, ok := ix.recent.Get(key); ok {
		return hit.(V), true
	}
	value, ok := ix.tree.Search(key)
	if ok {
		ix.recent.Set(key, value, cache.DefaultExpiration)
	}
	return value, ok
}

// MayContain is the probabilistic membership test: false means the key
// was never put, true means it is probably present.
func (ix *Index[V]) MayContain(key string) bool {
	return ix.filter.TestString(key)
}

// Remove deletes key from the tree and the memo cache. The bloom
// filter keeps the key's bits set; see the type comment.
func (ix *Index[V]) Remove(key string) (V, bool) {
	ix.recent.Delete(key)
	return ix.tree.Remove(key)
}

// Len returns the number of entries stored.
func (ix *Index[V]) Len() int {
	return ix.tree.Len()
}

// Tree exposes the underlying ordered map, for ordered scans over the
// indexed keys.
func (ix *Index[V]) Tree() *Tree[string, V] {
	return ix.tree
}
