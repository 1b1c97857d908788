package kernel

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"

	"grubdash/internal/pkg/errs"
)

// IsPresent reports whether a client-supplied value counts as given.
// Absent values (nil, or a nil slice, map or pointer) and empty strings are
// missing; anything else, including a numeric zero or an empty list, is present.
func IsPresent(v any) bool {
	switch value := v.(type) {
	case nil:
		return false
	case string:
		return value != ""
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Pointer:
		return !rv.IsNil()
	default:
		return true
	}
}

// PositiveInteger converts a value decoded from JSON into an int64, failing
// unless it is a number with no fractional part that is greater than zero.
func PositiveInteger(paramName string, v any) (int64, error) {
	switch value := v.(type) {
	case int:
		return positiveInt64(paramName, int64(value))
	case int32:
		return positiveInt64(paramName, int64(value))
	case int64:
		return positiveInt64(paramName, value)
	case float64:
		return positiveFloat(paramName, value)
	case json.Number:
		if i, err := value.Int64(); err == nil {
			return positiveInt64(paramName, i)
		}
		f, err := value.Float64()
		if err != nil {
			return 0, errs.NewValueIsInvalidErrorWithCause(paramName, err)
		}
		return positiveFloat(paramName, f)
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%T is not a number", v))
	}
}

func positiveInt64(paramName string, i int64) (int64, error) {
	if i <= 0 {
		return 0, errs.NewValueIsOutOfRangeError(paramName, i, 1, int64(math.MaxInt64))
	}
	return i, nil
}

func positiveFloat(paramName string, f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
		return 0, errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%v is not an integer", f))
	}
	if f <= 0 || f >= math.MaxInt64 {
		return 0, errs.NewValueIsOutOfRangeError(paramName, f, 1, int64(math.MaxInt64))
	}
	return int64(f), nil
}
