package duo

import "reflect"

// IsNil reports whether v is nil or a typed nil of a nil-able kind. Zero
// values of value kinds (0, "", empty struct) are not nil.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// GetErrors flattens err into its joined components.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}

	return []error{err}
}
