package guard

import (
	"cmp"
	"iter"
	"reflect"
	"strings"
)

// RequireNonEmpty fails with ErrInvalidArgument when text is empty or
// consists only of whitespace.
func RequireNonEmpty(text, paramName string) error {
	if strings.TrimSpace(text) == "" {
		return newArgumentError(ErrInvalidArgument, paramName, "%s cannot be nil or empty", paramName)
	}
	return nil
}

// RequireInRange fails with ErrOutOfRange when value is lower than minimum or
// greater than maximum. Both bounds are inclusive.
func RequireInRange[T cmp.Ordered](value, minimum, maximum T, paramName string) error {
	if cmp.Less(value, minimum) || cmp.Less(maximum, value) {
		return newArgumentError(ErrOutOfRange, paramName, "%s must be between %v and %v", paramName, minimum, maximum)
	}
	return nil
}

// RequireNotNil fails with ErrNilArgument when value is nil. Typed nil
// pointers, maps, slices, channels, funcs and interfaces count as nil too.
func RequireNotNil(value any, paramName string) error {
	if isNil(value) {
		return newArgumentError(ErrNilArgument, paramName, "%s cannot be nil", paramName)
	}
	return nil
}

// RequireNonEmptySlice fails with ErrInvalidArgument when items is nil or has
// no elements.
func RequireNonEmptySlice[T any](items []T, paramName string) error {
	if len(items) == 0 {
		return newArgumentError(ErrInvalidArgument, paramName, "%s cannot be nil or empty", paramName)
	}
	return nil
}

// RequireNonEmptySeq fails with ErrInvalidArgument when seq is nil or yields
// no values. At most one value is pulled from seq.
func RequireNonEmptySeq[T any](seq iter.Seq[T], paramName string) error {
	empty := true
	if seq != nil {
		seq(func(T) bool {
			empty = false
			return false
		})
	}

	if empty {
		return newArgumentError(ErrInvalidArgument, paramName, "%s cannot be nil or empty", paramName)
	}
	return nil
}

func isNil(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}
