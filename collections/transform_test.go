package collections

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollectionMap(t *testing.T) {
	c := NewCollectionFromMap(map[string]int{"a": 1, "b": 2, "c": 3})
	doubled := c.Map(func(v int, _ string) int {
		return v * 2
	})
	require.Equal(t, c.Count(), doubled.Count())
	require.Equal(t, []Entry[string, int]{
		{Key: "a", Value: 2},
		{Key: "b", Value: 4},
		{Key: "c", Value: 6},
	}, doubled.All())
	// original untouched
	v, _ := c.Get("a")
	require.Equal(t, 1, v)
}

func TestCollectionFilter(t *testing.T) {
	c := NewCollectionFromMap(map[string]int{"a": 1, "b": 2, "c": 3})
	kept := c.Filter(func(v int, _ string) bool {
		return v > 1
	})
	require.Equal(t, []Entry[int, int]{
		{Key: 0, Value: 2},
		{Key: 1, Value: 3},
	}, kept.Values().All())
	require.Equal(t, []Entry[string, int]{
		{Key: "b", Value: 2},
		{Key: "c", Value: 3},
	}, kept.All())
}

func TestCollectionReject(t *testing.T) {
	c := NewCollectionFromMap(map[string]int{"a": 1, "b": 2, "c": 3})
	kept := c.Reject(func(v int, _ string) bool {
		return v > 1
	})
	require.Equal(t, []Entry[string, int]{
		{Key: "a", Value: 1},
	}, kept.All())
}

func TestCollectionCompact(t *testing.T) {
	c := NewCollection[string, any]()
	c.Put("a", 1)
	c.Put("b", 0)
	c.Put("c", "")
	c.Put("d", nil)
	c.Put("e", []int{})
	c.Put("f", false)
	c.Put("g", map[string]int{})
	c.Put("h", "x")
	kept := c.Compact()
	require.Equal(t, []Entry[string, any]{
		{Key: "a", Value: 1},
		{Key: "h", Value: "x"},
	}, kept.All())
}

func TestMapCollection(t *testing.T) {
	c := NewCollectionFromSlice([]int{10, 20, 30})
	labels := MapCollection(c, func(v int, k int) string {
		return strconv.Itoa(k) + ":" + strconv.Itoa(v)
	})
	require.Equal(t, []Entry[int, string]{
		{Key: 0, Value: "0:10"},
		{Key: 1, Value: "1:20"},
		{Key: 2, Value: "2:30"},
	}, labels.All())
}

func TestCollectionEach(t *testing.T) {
	c := NewCollectionFromSlice([]string{"aa", "bb", "cc"})
	seen := make([]string, 0)
	c.Each(func(v string, k int) {
		require.Equal(t, len(seen), k)
		seen = append(seen, v)
	})
	require.Equal(t, []string{"aa", "bb", "cc"}, seen)
}

func TestCollectionRange(t *testing.T) {
	c := NewCollectionFromSlice([]string{"aa", "bb", "cc"})
	seen := make([]string, 0)
	c.Range(func(k int, v string) bool {
		seen = append(seen, v)
		return len(seen) < 2
	})
	require.Equal(t, []string{"aa", "bb"}, seen)
}

func TestCollectionString(t *testing.T) {
	c := NewCollection[string, int]()
	c.Put("aa", 1).Put("bb", 2)
	require.Equal(t, "[{aa 1} {bb 2}]", fmt.Sprint(c))
}
