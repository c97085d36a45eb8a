package collections

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Entry is a single key/value pair of a Collection, in insertion order.
type Entry[K Key, V any] struct {
	Key   K
	Value V
}

// Collection is an insertion-ordered mapping from keys to arbitrary values.
// Keys are unique; writing an existing key overwrites its value in place
// without changing its position. Mutators return the collection itself so
// calls can be chained. Only At fails on a missing key, every other
// accessor falls back to a caller-supplied default or reports absence via
// a second return value.
type Collection[K Key, V any] interface {
	Get(k K) (V, bool)
	GetOr(k K, def V) V
	GetOrElse(k K, def func(K) V) V
	At(k K) (V, error)
	First() (V, bool)
	FirstOr(def V) V
	FirstOrElse(def func() V) V
	Last() (V, bool)
	LastOr(def V) V
	LastOrElse(def func() V) V
	Put(k K, v V) Collection[K, V]
	Add(v V) Collection[K, V]
	Forget(keys ...K) Collection[K, V]
	Clear() Collection[K, V]
	Has(keys ...K) bool
	Count() int
	IsEmpty() bool
	IsNotEmpty() bool
	All() []Entry[K, V]
	ToMap() map[K]V
	Keys() Collection[int, K]
	Values() Collection[int, V]
	Map(fn func(V, K) V) Collection[K, V]
	Filter(fn func(V, K) bool) Collection[K, V]
	Reject(fn func(V, K) bool) Collection[K, V]
	Compact() Collection[K, V]
	Clone() Collection[K, V]
	Each(fn func(V, K))
	Range(fn func(K, V) bool)
}

func NewCollection[K Key, V any]() Collection[K, V] {
	return newOrderedMap[K, V]()
}

// NewCollectionFromEntries inserts the entries in order. Duplicate keys
// follow Put semantics: the last value wins, the first position is kept.
func NewCollectionFromEntries[K Key, V any](entries []Entry[K, V]) Collection[K, V] {
	c := newOrderedMap[K, V]()
	for _, e := range entries {
		c.Put(e.Key, e.Value)
	}
	return c
}

// NewCollectionFromMap inserts the map entries in sorted key order, since
// Go map iteration order is randomized.
func NewCollectionFromMap[K Key, V any](m map[K]V) Collection[K, V] {
	ks := maps.Keys(m)
	slices.Sort(ks)
	c := newOrderedMap[K, V]()
	for _, k := range ks {
		c.Put(k, m[k])
	}
	return c
}

// NewCollectionFromSlice appends the values in order under keys 0..n-1.
func NewCollectionFromSlice[V any](values []V) Collection[int, V] {
	c := newOrderedMap[int, V]()
	for _, v := range values {
		c.Add(v)
	}
	return c
}

// MapCollection is the type-changing counterpart of Collection.Map, kept
// at package level because methods cannot introduce type parameters.
func MapCollection[K Key, V, R any](c Collection[K, V], fn func(V, K) R) Collection[K, R] {
	out := newOrderedMap[K, R]()
	for _, e := range c.All() {
		out.Put(e.Key, fn(e.Value, e.Key))
	}
	return out
}
