// Package memseries is the in-tree reference Series implementation: an
// ordered, optionally-growing map backed by a google/btree B-tree, safe for
// one writer racing many cursor readers.
package memseries

import (
	"sync"

	"github.com/google/btree"

	cs "github.com/ygrebnov/cursorseries"
	"github.com/ygrebnov/cursorseries/gate"
)

type entry[K, V any] struct {
	key   K
	value V
}

// Series is a mutable, then optionally sealed, ordered map K->V.
type Series[K, V any] struct {
	mu       sync.RWMutex
	tree     *btree.BTreeG[entry[K, V]]
	cmp      cs.Comparator[K]
	readonly bool
	updated  *gate.ManualGate
}

// New returns an empty, mutable Series ordered by cmp. degree controls the
// backing B-tree's branching factor; 32 is a reasonable default for
// in-memory series of a few thousand to a few million points.
func New[K, V any](cmp cs.Comparator[K], degree int) *Series[K, V] {
	less := func(a, b entry[K, V]) bool { return cmp.Compare(a.key, b.key) < 0 }
	return &Series[K, V]{
		tree:    btree.NewG[entry[K, V]](degree, less),
		cmp:     cmp,
		updated: gate.NewManualGate(),
	}
}

// Append inserts or replaces the value at key. It panics if the series has
// been sealed — callers own the readonly transition and must not race
// Append against Seal.
func (s *Series[K, V]) Append(key K, value V) {
	s.mu.Lock()
	if s.readonly {
		s.mu.Unlock()
		panic("memseries: Append on a sealed series")
	}
	s.tree.ReplaceOrInsert(entry[K, V]{key: key, value: value})
	s.mu.Unlock()

	s.updated.Set()
	s.updated.Reset()
}

// Seal marks the series permanently readonly and wakes any cursor blocked
// in MoveNextAsync so it can observe the terminal state.
func (s *Series[K, V]) Seal() {
	s.mu.Lock()
	s.readonly = true
	s.mu.Unlock()
	s.updated.Set()
}

// Len returns the current element count.
func (s *Series[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Len()
}

func (s *Series[K, V]) Cursor() cs.Cursor[K, V] {
	return &cursor[K, V]{series: s}
}

func (s *Series[K, V]) Comparer() cs.Comparator[K] { return s.cmp }

func (s *Series[K, V]) IsIndexed() bool { return true }

func (s *Series[K, V]) IsReadonly() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.readonly
}

func (s *Series[K, V]) Updated() *gate.Future { return s.updated.Wait() }

func (s *Series[K, V]) first() (entry[K, V], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Min()
}

func (s *Series[K, V]) last() (entry[K, V], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Max()
}

func (s *Series[K, V]) exact(key K) (entry[K, V], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Get(entry[K, V]{key: key})
}

// ceil returns the least entry with key >= pivot.
func (s *Series[K, V]) ceil(pivot K) (entry[K, V], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var found entry[K, V]
	ok := false
	s.tree.AscendGreaterOrEqual(entry[K, V]{key: pivot}, func(e entry[K, V]) bool {
		found, ok = e, true
		return false
	})
	return found, ok
}

// floor returns the greatest entry with key <= pivot.
func (s *Series[K, V]) floor(pivot K) (entry[K, V], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var found entry[K, V]
	ok := false
	s.tree.DescendLessOrEqual(entry[K, V]{key: pivot}, func(e entry[K, V]) bool {
		found, ok = e, true
		return false
	})
	return found, ok
}

// gt returns the least entry with key > pivot.
func (s *Series[K, V]) gt(pivot K) (entry[K, V], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var found entry[K, V]
	ok := false
	s.tree.AscendGreaterOrEqual(entry[K, V]{key: pivot}, func(e entry[K, V]) bool {
		if s.cmp.Compare(e.key, pivot) > 0 {
			found, ok = e, true
			return false
		}
		return true
	})
	return found, ok
}

// lt returns the greatest entry with key < pivot.
func (s *Series[K, V]) lt(pivot K) (entry[K, V], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var found entry[K, V]
	ok := false
	s.tree.DescendLessOrEqual(entry[K, V]{key: pivot}, func(e entry[K, V]) bool {
		if s.cmp.Compare(e.key, pivot) < 0 {
			found, ok = e, true
			return false
		}
		return true
	})
	return found, ok
}

// run returns up to n consecutive entries starting at and including pivot,
// for MoveNextBatch.
func (s *Series[K, V]) run(pivot K, n int) []entry[K, V] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entry[K, V], 0, n)
	s.tree.AscendGreaterOrEqual(entry[K, V]{key: pivot}, func(e entry[K, V]) bool {
		out = append(out, e)
		return len(out) < n
	})
	return out
}
