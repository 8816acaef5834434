package solo

import (
	"github.com/tiggee/outcome/pkg/outcome"
)

// Retype copies a result's status and messages into a Result of another type
// parameter, with no value. This is the shared short-circuit path for every
// operator that faces a result it cannot transform.
func Retype[R, T any](r outcome.Result[T]) outcome.Result[R] {
	return outcome.NewBuilder[R]().
		WithStatus(r.Status()).
		AddMessages(r.Messages()).
		MustBuild()
}

// Map transforms a present value with fn and wraps the return in a success
// result carrying the original messages forward. Without a value the result
// is retyped as-is.
//
// A panicking mapper does not force status Failed: the returned result keeps
// the original status (possibly Success) with the value absent and an
// "exception" message appended. IsSuccess and IsPresent are the reliable
// checks after a mapping step; Status alone is not.
func Map[T, R any](r outcome.Result[T], fn func(T) R) outcome.Result[R] {
	v, ok := r.Value()
	if !ok {
		return Retype[R](r)
	}
	return mapValue(r, v, fn)
}

func mapValue[T, R any](r outcome.Result[T], v T, fn func(T) R) (out outcome.Result[R]) {
	defer func() {
		if rec := recover(); rec != nil {
			out = outcome.NewBuilder[R]().
				WithStatus(r.Status()).
				AddMessage("exception", outcome.Describe(rec)).
				AddMessages(r.Messages()).
				MustBuild()
		}
	}()
	mapped := fn(v)
	return outcome.NewBuilder[R]().
		Success(mapped).
		AddMessages(r.Messages()).
		MustBuild()
}

// AndThen binds a successful result to the next Result-producing step.
// fn runs only when the status is Success and a value is present; any other
// result short-circuits, retyped with its status and messages. A panicking
// fn yields a Failed result recording the panic under "exception" and the
// stringified input under "value".
func AndThen[T, R any](r outcome.Result[T], fn func(T) outcome.Result[R]) outcome.Result[R] {
	v, ok := r.Value()
	if !ok || r.Status() != outcome.Success {
		return Retype[R](r)
	}
	return outcome.CallFunc(v, fn)
}

// AndThenElse branches on the result's status: the success path delegates to
// AndThen(success), the failure path hands this result to failure. A
// panicking failure function becomes a Failed result describing the panic,
// with the original messages appended.
func AndThenElse[T, R any](r outcome.Result[T],
	success func(T) outcome.Result[R],
	failure func(outcome.Result[T]) outcome.Result[R]) outcome.Result[R] {

	if r.Status() == outcome.Success {
		return AndThen(r, success)
	}
	return callFailure(r, failure)
}

func callFailure[T, R any](r outcome.Result[T],
	failure func(outcome.Result[T]) outcome.Result[R]) (out outcome.Result[R]) {

	defer func() {
		if rec := recover(); rec != nil {
			out = outcome.NewBuilder[R]().
				Failed("Exception thrown in function supplied to solo.AndThenElse").
				AddMessage("exception", outcome.Describe(rec)).
				AddMessages(r.Messages()).
				MustBuild()
		}
	}()
	return failure(r)
}

// MeetsCondition applies the predicate to a successful result's value and
// invokes the matching branch with it. Any status other than Success
// short-circuits to a retyped copy without evaluating the predicate or
// either branch. A panic inside the chosen branch yields a Failed result
// with no value.
func MeetsCondition[T, R any](r outcome.Result[T], predicate func(T) bool,
	onMet func(T) outcome.Result[R],
	onNotMet func(T) outcome.Result[R]) outcome.Result[R] {

	if r.Status() != outcome.Success {
		return Retype[R](r)
	}
	v, _ := r.Value()
	met, rec := outcome.CallPredicate(v, predicate)
	if rec != nil {
		return predicateFailed[R](v, rec)
	}
	if met {
		return outcome.CallFunc(v, onMet)
	}
	return outcome.CallFunc(v, onNotMet)
}

// MeetsConditionSupply is MeetsCondition with zero-argument suppliers for
// both branches; the value decides the branch but is not handed to it.
func MeetsConditionSupply[T, R any](r outcome.Result[T], predicate func(T) bool,
	onMet func() outcome.Result[R],
	onNotMet func() outcome.Result[R]) outcome.Result[R] {

	if r.Status() != outcome.Success {
		return Retype[R](r)
	}
	v, _ := r.Value()
	met, rec := outcome.CallPredicate(v, predicate)
	if rec != nil {
		return predicateFailed[R](v, rec)
	}
	if met {
		return outcome.CallSupplier(onMet)
	}
	return outcome.CallSupplier(onNotMet)
}

// MeetsConditionSupplyNotMet passes the value to the met branch and invokes
// the not-met branch as a supplier.
func MeetsConditionSupplyNotMet[T, R any](r outcome.Result[T], predicate func(T) bool,
	onMet func(T) outcome.Result[R],
	onNotMet func() outcome.Result[R]) outcome.Result[R] {

	if r.Status() != outcome.Success {
		return Retype[R](r)
	}
	v, _ := r.Value()
	met, rec := outcome.CallPredicate(v, predicate)
	if rec != nil {
		return predicateFailed[R](v, rec)
	}
	if met {
		return outcome.CallFunc(v, onMet)
	}
	return outcome.CallSupplier(onNotMet)
}

// MeetsConditionSupplyMet invokes the met branch as a supplier and passes
// the value to the not-met branch.
func MeetsConditionSupplyMet[T, R any](r outcome.Result[T], predicate func(T) bool,
	onMet func() outcome.Result[R],
	onNotMet func(T) outcome.Result[R]) outcome.Result[R] {

	if r.Status() != outcome.Success {
		return Retype[R](r)
	}
	v, _ := r.Value()
	met, rec := outcome.CallPredicate(v, predicate)
	if rec != nil {
		return predicateFailed[R](v, rec)
	}
	if met {
		return outcome.CallSupplier(onMet)
	}
	return outcome.CallFunc(v, onNotMet)
}

func predicateFailed[R any](v any, rec any) outcome.Result[R] {
	return outcome.NewBuilder[R]().
		Failed("Exception thrown in specified predicate").
		AddMessage("exception", outcome.Describe(rec)).
		AddMessage("value", outcome.Stringify(v)).
		MustBuild()
}
