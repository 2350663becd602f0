package scope

import (
	"fmt"
	"reflect"
	"strconv"
)

// FormatValue converts a resolved value to its textual form for
// interpolation. Floats drop the trailing zeros JSON decoding introduces,
// so a payload of 42 interpolates as "42" whether it arrived as int or
// float64.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// Truthy implements the boolean-ish test used for conditional visibility.
// Nil, false, empty strings, and numeric zero are falsy; everything else,
// including empty sequences, is truthy.
func Truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case int:
		return val != 0
	case int64:
		return val != 0
	case float64:
		return val != 0
	}
	return true
}

// Sequence coerces a value to an ordered slice of items for repeat
// expansion. JSON payloads decode arrays as []any, but typed slices built
// in Go code are accepted too. The second return value reports whether the
// value was a sequence at all; strings and maps are not.
func Sequence(v any) ([]any, bool) {
	switch val := v.(type) {
	case nil:
		return nil, false
	case []any:
		return val, true
	case []map[string]any:
		items := make([]any, len(val))
		for i, m := range val {
			items[i] = m
		}
		return items, true
	case []string:
		items := make([]any, len(val))
		for i, s := range val {
			items[i] = s
		}
		return items, true
	case string:
		return nil, false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}
