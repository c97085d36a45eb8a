package collections

import "reflect"

// isZeroValue is the predicate behind Compact: the type's zero value,
// empty sequences and mappings, and nil all count as removable.
func isZeroValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return rv.IsZero()
}
