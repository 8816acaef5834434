package outcome

import (
	"fmt"
	"reflect"
)

// IsNil reports whether i is nil, including typed nils behind pointer, map,
// slice, interface, chan and func kinds.
func IsNil(i any) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return false
	}
}

// Stringify renders a value for a message entry, using the literal "[null]"
// for nil inputs.
func Stringify(v any) string {
	if IsNil(v) {
		return "[null]"
	}
	return fmt.Sprintf("%v", v)
}

// Describe renders a recovered panic value for an "exception" message.
func Describe(recovered any) string {
	if err, ok := recovered.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(recovered)
}

// CallFunc invokes a user-supplied Result-producing function, converting a
// panic into a Failed result that records the panic under "exception" and
// the stringified input under "value". Operators route every callback of
// this shape through here so a misbehaving callback can never abort a chain.
func CallFunc[T, R any](value T, fn func(T) Result[R]) (out Result[R]) {
	defer func() {
		if rec := recover(); rec != nil {
			out = NewBuilder[R]().
				Failed("Exception thrown in specified function").
				AddMessage("exception", Describe(rec)).
				AddMessage("value", Stringify(value)).
				MustBuild()
		}
	}()
	return fn(value)
}

// CallPredicate runs a user predicate, reporting a recovered panic instead
// of letting it escape.
func CallPredicate[T any](v T, predicate func(T) bool) (met bool, recovered any) {
	defer func() {
		if rec := recover(); rec != nil {
			met = false
			recovered = rec
		}
	}()
	return predicate(v), nil
}

// CallSupplier invokes a user-supplied Result supplier, converting a panic
// into a Failed result carrying an "exception" message.
func CallSupplier[R any](supplier func() Result[R]) (out Result[R]) {
	defer func() {
		if rec := recover(); rec != nil {
			out = NewBuilder[R]().
				Failed("Exception thrown in specified supplier").
				AddMessage("exception", Describe(rec)).
				MustBuild()
		}
	}()
	return supplier()
}
