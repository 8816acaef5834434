package mass

import (
	"fmt"

	"github.com/tiggee/outcome/pkg/outcome"
	"github.com/tiggee/outcome/pkg/outcome/solo"
)

// Foreach calls fn on every input, regardless of individual failures, and
// combines the sub-results. When all calls succeed the result holds the
// ordered slice of produced values; an empty input short-circuits to a
// success with an empty slice.
//
// On any failure the combined result is Failed and its messages aggregate,
// under the stringified input, each failing call's full message map. Two
// equal failing inputs keep both maps through the usual key collision rule.
func Foreach[V, E any](inputs []E, fn func(E) outcome.Result[V]) outcome.Result[[]V] {
	if len(inputs) == 0 {
		return outcome.OK([]V{})
	}

	results := make([]outcome.Result[V], 0, len(inputs))
	succeeded := 0
	for _, in := range inputs {
		res := outcome.CallFunc(in, fn)
		if res.IsSuccess() {
			succeeded++
		}
		results = append(results, res)
	}

	if succeeded == len(inputs) {
		values := make([]V, 0, len(results))
		for _, res := range results {
			v, _ := res.Value()
			values = append(values, v)
		}
		return outcome.OK(values)
	}

	b := outcome.NewBuilder[[]V]().WithStatus(outcome.Failed)
	for i, res := range results {
		if res.IsSuccess() {
			continue
		}
		b.AddMessage(outcome.Stringify(inputs[i]), res.Messages())
	}
	return b.MustBuild()
}

// ForeachFailFast calls fn on the inputs in order, accumulating successful
// values, and stops at the first failure. The failure result carries only a
// summary: "Failed to process inputs" under "error" and the stringified
// failing input (or "[null]") under "failed_on"; the failing sub-result's
// own messages are discarded.
func ForeachFailFast[V, E any](inputs []E, fn func(E) outcome.Result[V]) outcome.Result[[]V] {
	values := make([]V, 0, len(inputs))
	for _, in := range inputs {
		res := outcome.CallFunc(in, fn)
		if v, ok := res.Value(); ok {
			values = append(values, v)
		}
		if !res.IsSuccess() {
			return outcome.NewBuilder[[]V]().
				Failed("Failed to process inputs").
				AddMessage("failed_on", outcome.Stringify(in)).
				MustBuild()
		}
	}
	return outcome.OK(values)
}

// ForeachOver is the instance form of Foreach: it iterates the result's own
// value. A []E value is processed element by element with the declared
// element type; a single E is treated as a one-element batch. Without a
// value the result's status and messages are retyped as-is. A value of any
// other type yields a Failed result describing the mismatch.
func ForeachOver[V, E, T any](r outcome.Result[T], fn func(E) outcome.Result[V], failFast bool) outcome.Result[[]V] {
	v, ok := r.Value()
	if !ok {
		return solo.Retype[[]V](r)
	}

	switch elems := any(v).(type) {
	case []E:
		if failFast {
			return ForeachFailFast(elems, fn)
		}
		return Foreach(elems, fn)
	case E:
		return solo.Map(outcome.CallFunc(elems, fn), func(single V) []V {
			return []V{single}
		})
	default:
		return outcome.NewBuilder[[]V]().
			Failed("value does not match the declared element type").
			AddMessage("value", outcome.Stringify(v)).
			MustBuild()
	}
}

// ForeachEntry adapts a map into the exhaustive Foreach over its entries,
// handing fn each key/value pair. Failing entries aggregate under a "k=v"
// key. Entry order follows Go map iteration and is not deterministic.
func ForeachEntry[R any, K comparable, V any](inputs map[K]V, fn func(key K, value V) outcome.Result[R]) outcome.Result[[]R] {
	if len(inputs) == 0 {
		return outcome.OK([]R{})
	}

	entries := make([]entry[K, V], 0, len(inputs))
	for k, v := range inputs {
		entries = append(entries, entry[K, V]{key: k, value: v})
	}
	return Foreach(entries, func(e entry[K, V]) outcome.Result[R] {
		return fn(e.key, e.value)
	})
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

func (e entry[K, V]) String() string {
	return fmt.Sprintf("%v=%v", e.key, e.value)
}
