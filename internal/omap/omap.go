// Package omap provides an insertion ordered hash map whose key hashing and
// equality are supplied by a Strategy rather than by Go's comparable
// semantics. It is used wherever tree nodes act as map keys.
package omap

import "iter"

// Strategy hashes and compares keys. Equal keys must hash equally.
type Strategy[K any] interface {
	Hash(K) uint64
	Equal(a, b K) bool
}

// Funcs adapts a hash function and an equality function to a Strategy.
type Funcs[K any] struct {
	HashFunc  func(K) uint64
	EqualFunc func(a, b K) bool
}

func (f Funcs[K]) Hash(k K) uint64   { return f.HashFunc(k) }
func (f Funcs[K]) Equal(a, b K) bool { return f.EqualFunc(a, b) }

type entry[K, V any] struct {
	key     K
	val     V
	deleted bool
}

// Map is an insertion ordered hash map. The zero value is not usable, use New.
//
// Set on an existing key replaces the value in place and keeps the position
// and the key of the first insertion.
type Map[K, V any] struct {
	strat   Strategy[K]
	entries []entry[K, V]
	buckets map[uint64][]int
	dead    int
}

// New returns an empty map using s for key hashing and equality.
func New[K, V any](s Strategy[K], sizeHint int) *Map[K, V] {
	return &Map[K, V]{
		strat:   s,
		entries: make([]entry[K, V], 0, sizeHint),
		buckets: make(map[uint64][]int, sizeHint),
	}
}

func (m *Map[K, V]) Len() int {
	return len(m.entries) - m.dead
}

func (m *Map[K, V]) find(k K) (int, uint64) {
	h := m.strat.Hash(k)
	for _, i := range m.buckets[h] {
		if m.strat.Equal(m.entries[i].key, k) {
			return i, h
		}
	}
	return -1, h
}

func (m *Map[K, V]) Get(k K) (V, bool) {
	i, _ := m.find(k)
	if i < 0 {
		var zero V
		return zero, false
	}
	return m.entries[i].val, true
}

// Set inserts or replaces the value for k. It reports whether k was new.
func (m *Map[K, V]) Set(k K, v V) bool {
	i, h := m.find(k)
	if i >= 0 {
		m.entries[i].val = v
		return false
	}
	m.buckets[h] = append(m.buckets[h], len(m.entries))
	m.entries = append(m.entries, entry[K, V]{key: k, val: v})
	return true
}

// Delete removes k, reporting whether it was present.
func (m *Map[K, V]) Delete(k K) bool {
	i, h := m.find(k)
	if i < 0 {
		return false
	}
	b := m.buckets[h]
	for j, idx := range b {
		if idx == i {
			b = append(b[:j], b[j+1:]...)
			break
		}
	}
	if len(b) == 0 {
		delete(m.buckets, h)
	} else {
		m.buckets[h] = b
	}
	var zero entry[K, V]
	m.entries[i] = zero
	m.entries[i].deleted = true
	m.dead++
	if m.dead > 16 && m.dead > len(m.entries)/2 {
		m.compact()
	}
	return true
}

func (m *Map[K, V]) compact() {
	live := make([]entry[K, V], 0, m.Len())
	clear(m.buckets)
	for _, e := range m.entries {
		if e.deleted {
			continue
		}
		h := m.strat.Hash(e.key)
		m.buckets[h] = append(m.buckets[h], len(live))
		live = append(live, e)
	}
	m.entries = live
	m.dead = 0
}

// All yields the entries in insertion order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range m.entries {
			e := &m.entries[i]
			if e.deleted {
				continue
			}
			if !yield(e.key, e.val) {
				return
			}
		}
	}
}
