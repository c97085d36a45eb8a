package collections

import (
	"reflect"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Key constrains collection keys to array-key kinds: strings and integers.
type Key interface {
	~string | constraints.Integer
}

// intKey reports the integer interpretation of k. Integer keys map to
// their own value; string keys count only when they are the canonical
// decimal rendering of an integer.
func intKey[K Key](k K) (int64, bool) {
	rv := reflect.ValueOf(k)
	switch {
	case rv.CanInt():
		return rv.Int(), true
	case rv.CanUint():
		u := rv.Uint()
		if u >= 1<<63 {
			return 0, false
		}
		return int64(u), true
	case rv.Kind() == reflect.String:
		s := rv.String()
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil || strconv.FormatInt(i, 10) != s {
			return 0, false
		}
		return i, true
	}
	return 0, false
}

// keyRoundTrips reports whether k is a faithful rendering of n. Rendering
// into a narrow integer kind wraps, so callers must check before trusting
// a key produced by keyFromInt.
func keyRoundTrips[K Key](k K, n int64) bool {
	i, ok := intKey(k)
	return ok && i == n
}

// keyFromInt renders n as a key of type K: the value itself for integer
// kinds, the decimal form for string kinds. The rendering is unchecked,
// see keyRoundTrips.
func keyFromInt[K Key](n int64) K {
	var k K
	rv := reflect.ValueOf(&k).Elem()
	switch {
	case rv.CanInt():
		rv.SetInt(n)
	case rv.CanUint():
		rv.SetUint(uint64(n))
	default:
		rv.SetString(strconv.FormatInt(n, 10))
	}
	return k
}
