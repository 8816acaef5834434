package chain

import (
	"github.com/tiggee/outcome/pkg/outcome"
	"github.com/tiggee/outcome/pkg/outcome/solo"
)

// Chain wraps an outcome.Result to enable fluent same-type chaining.
type Chain[T any] struct {
	res outcome.Result[T]
}

// Start begins a chain from an existing result.
func Start[T any](r outcome.Result[T]) Chain[T] {
	return Chain[T]{res: r}
}

// FromValue begins a chain from a successful value.
func FromValue[T any](value T) Chain[T] {
	return Chain[T]{res: outcome.OK(value)}
}

// Result returns the underlying result.
func (c Chain[T]) Result() outcome.Result[T] {
	return c.res
}

// Then binds the chain to a Result-producing step.
func (c Chain[T]) Then(fn func(T) outcome.Result[T]) Chain[T] {
	return Chain[T]{res: solo.AndThen(c.res, fn)}
}

// Map transforms the value.
func (c Chain[T]) Map(fn func(T) T) Chain[T] {
	return Chain[T]{res: solo.Map(c.res, fn)}
}

// Filter drops the value when the predicate rejects it.
func (c Chain[T]) Filter(predicate func(T) bool) Chain[T] {
	return Chain[T]{res: c.res.Filter(predicate)}
}

// Meets branches between two Result-producing steps on the predicate.
func (c Chain[T]) Meets(predicate func(T) bool,
	onMet func(T) outcome.Result[T],
	onNotMet func(T) outcome.Result[T]) Chain[T] {
	return Chain[T]{res: solo.MeetsCondition(c.res, predicate, onMet, onNotMet)}
}

// Ensure runs side effects without changing the result. Either callback may
// be nil.
func (c Chain[T]) Ensure(onSuccess func(T), onFailure func(outcome.Result[T])) Chain[T] {
	if c.res.IsSuccess() {
		if onSuccess != nil {
			v, _ := c.res.Value()
			onSuccess(v)
		}
		return c
	}
	if onFailure != nil {
		onFailure(c.res)
	}
	return c
}

// Recover replaces a failed result using fn; a successful chain passes
// through untouched.
func (c Chain[T]) Recover(fn func(outcome.Result[T]) outcome.Result[T]) Chain[T] {
	return Chain[T]{res: c.res.OnFailureResult(fn)}
}

// OrElse collapses the chain to its value, or to def when absent.
func (c Chain[T]) OrElse(def T) T {
	return c.res.OrElse(def)
}
