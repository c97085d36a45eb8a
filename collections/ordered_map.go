package collections

import (
	"fmt"

	"github.com/tuannh982/go-collections/utils/math"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type orderedMap[K Key, V any] struct {
	keys    []K
	entries map[K]V
	// next integer key Add assigns, maintained as max integer-valued key + 1
	next int64
}

func newOrderedMap[K Key, V any]() *orderedMap[K, V] {
	return &orderedMap[K, V]{
		keys:    make([]K, 0),
		entries: make(map[K]V),
	}
}

func (m *orderedMap[K, V]) Get(k K) (v V, ok bool) {
	v, ok = m.entries[k]
	return v, ok
}

func (m *orderedMap[K, V]) GetOr(k K, def V) V {
	if v, ok := m.entries[k]; ok {
		return v
	}
	return def
}

func (m *orderedMap[K, V]) GetOrElse(k K, def func(K) V) V {
	if v, ok := m.entries[k]; ok {
		return v
	}
	return def(k)
}

func (m *orderedMap[K, V]) At(k K) (v V, err error) {
	v, ok := m.entries[k]
	if !ok {
		return v, ErrKeyNotFound
	}
	return v, nil
}

func (m *orderedMap[K, V]) First() (v V, ok bool) {
	if len(m.keys) == 0 {
		return v, false
	}
	return m.entries[m.keys[0]], true
}

func (m *orderedMap[K, V]) FirstOr(def V) V {
	if v, ok := m.First(); ok {
		return v
	}
	return def
}

func (m *orderedMap[K, V]) FirstOrElse(def func() V) V {
	if v, ok := m.First(); ok {
		return v
	}
	return def()
}

func (m *orderedMap[K, V]) Last() (v V, ok bool) {
	if len(m.keys) == 0 {
		return v, false
	}
	return m.entries[m.keys[len(m.keys)-1]], true
}

func (m *orderedMap[K, V]) LastOr(def V) V {
	if v, ok := m.Last(); ok {
		return v
	}
	return def
}

func (m *orderedMap[K, V]) LastOrElse(def func() V) V {
	if v, ok := m.Last(); ok {
		return v
	}
	return def()
}

func (m *orderedMap[K, V]) Put(k K, v V) Collection[K, V] {
	if _, ok := m.entries[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.entries[k] = v
	if i, ok := intKey(k); ok {
		m.next = math.Max(m.next, i+1)
	}
	return m
}

func (m *orderedMap[K, V]) Add(v V) Collection[K, V] {
	return m.Put(m.nextFreeKey(), v)
}

func (m *orderedMap[K, V]) nextFreeKey() K {
	if k := keyFromInt[K](m.next); keyRoundTrips(k, m.next) {
		return k
	}
	// the next index exceeds the key type's range, fall back to the
	// lowest free non-negative in-range key instead of letting the
	// rendering wrap onto an occupied key
	for n := int64(0); n < m.next; n++ {
		k := keyFromInt[K](n)
		if !keyRoundTrips(k, n) {
			break
		}
		if _, used := m.entries[k]; !used {
			return k
		}
	}
	panic("collections: integer key space exhausted")
}

func (m *orderedMap[K, V]) Forget(keys ...K) Collection[K, V] {
	for _, k := range keys {
		if _, ok := m.entries[k]; !ok {
			continue
		}
		delete(m.entries, k)
		if i := slices.Index(m.keys, k); i >= 0 {
			m.keys = slices.Delete(m.keys, i, i+1)
		}
		if i, ok := intKey(k); ok && i+1 == m.next {
			m.rescanNext()
		}
	}
	return m
}

func (m *orderedMap[K, V]) rescanNext() {
	m.next = 0
	for _, k := range m.keys {
		if i, ok := intKey(k); ok {
			m.next = math.Max(m.next, i+1)
		}
	}
}

func (m *orderedMap[K, V]) Clear() Collection[K, V] {
	m.keys = m.keys[:0]
	m.entries = make(map[K]V)
	m.next = 0
	return m
}

func (m *orderedMap[K, V]) Has(keys ...K) bool {
	for _, k := range keys {
		if _, ok := m.entries[k]; !ok {
			return false
		}
	}
	return true
}

func (m *orderedMap[K, V]) Count() int {
	return len(m.keys)
}

func (m *orderedMap[K, V]) IsEmpty() bool {
	return len(m.keys) == 0
}

func (m *orderedMap[K, V]) IsNotEmpty() bool {
	return len(m.keys) > 0
}

func (m *orderedMap[K, V]) All() []Entry[K, V] {
	arr := make([]Entry[K, V], 0, len(m.keys))
	for _, k := range m.keys {
		arr = append(arr, Entry[K, V]{Key: k, Value: m.entries[k]})
	}
	return arr
}

func (m *orderedMap[K, V]) ToMap() map[K]V {
	return maps.Clone(m.entries)
}

func (m *orderedMap[K, V]) Keys() Collection[int, K] {
	out := newOrderedMap[int, K]()
	for i, k := range m.keys {
		out.Put(i, k)
	}
	return out
}

func (m *orderedMap[K, V]) Values() Collection[int, V] {
	out := newOrderedMap[int, V]()
	for i, k := range m.keys {
		out.Put(i, m.entries[k])
	}
	return out
}

func (m *orderedMap[K, V]) Map(fn func(V, K) V) Collection[K, V] {
	out := newOrderedMap[K, V]()
	for _, k := range m.keys {
		out.Put(k, fn(m.entries[k], k))
	}
	return out
}

func (m *orderedMap[K, V]) Filter(fn func(V, K) bool) Collection[K, V] {
	return m.keep(fn)
}

func (m *orderedMap[K, V]) Reject(fn func(V, K) bool) Collection[K, V] {
	return m.keep(func(v V, k K) bool {
		return !fn(v, k)
	})
}

func (m *orderedMap[K, V]) Compact() Collection[K, V] {
	return m.keep(func(v V, k K) bool {
		return !isZeroValue(v)
	})
}

func (m *orderedMap[K, V]) keep(fn func(V, K) bool) Collection[K, V] {
	out := newOrderedMap[K, V]()
	for _, k := range m.keys {
		if v := m.entries[k]; fn(v, k) {
			out.Put(k, v)
		}
	}
	return out
}

func (m *orderedMap[K, V]) Clone() Collection[K, V] {
	return &orderedMap[K, V]{
		keys:    slices.Clone(m.keys),
		entries: maps.Clone(m.entries),
		next:    m.next,
	}
}

func (m *orderedMap[K, V]) Each(fn func(V, K)) {
	m.Range(func(k K, v V) bool {
		fn(v, k)
		return true
	})
}

// Range walks a snapshot of the keys taken at call time, in insertion
// order, until fn returns false.
func (m *orderedMap[K, V]) Range(fn func(K, V) bool) {
	for _, k := range slices.Clone(m.keys) {
		v, ok := m.entries[k]
		if !ok {
			continue
		}
		if !fn(k, v) {
			return
		}
	}
}

func (m *orderedMap[K, V]) String() string {
	return fmt.Sprint(m.All())
}
