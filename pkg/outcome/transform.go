package outcome

// Same-type transform operators. Operators that change the value's type
// parameter live in the solo package as package-level functions, since Go
// methods cannot introduce type parameters.

// Filter returns this result unchanged when no value is present or the
// predicate holds. When the predicate rejects the value, a valueless copy
// with identical status and messages is returned; filtering removes the
// value but is not an error category of its own.
func (r Result[T]) Filter(predicate func(T) bool) Result[T] {
	if !r.IsPresent() {
		return r
	}
	met, rec := CallPredicate(*r.value, predicate)
	if rec != nil {
		return NewBuilder[T]().
			Failed("Exception thrown in specified predicate").
			AddMessage("exception", Describe(rec)).
			AddMessage("value", Stringify(*r.value)).
			MustBuild()
	}
	if met {
		return r
	}
	return NewBuilder[T]().WithStatus(r.Status()).AddMessages(r.Messages()).MustBuild()
}

// IfPresent invokes the consumer with the value, if one is present.
func (r Result[T]) IfPresent(consumer func(T)) {
	if r.value != nil {
		consumer(*r.value)
	}
}

// IfSuccess invokes the consumer with the value only when IsSuccess holds.
func (r Result[T]) IfSuccess(consumer func(T)) {
	if r.Status() == Success {
		r.IfPresent(consumer)
	}
}

// OnSuccess is IfSuccess returning the receiver for chaining.
func (r Result[T]) OnSuccess(consumer func(T)) Result[T] {
	r.IfSuccess(consumer)
	return r
}

// IfResult dispatches on IsSuccess, invoking exactly one consumer: the
// success consumer with the value, or the failure consumer with this result.
func (r Result[T]) IfResult(success func(T), failure func(Result[T])) {
	if r.IsSuccess() {
		success(*r.value)
	} else {
		failure(r)
	}
}

// OnFailure replaces this result with the supplier's result when the status
// is not Success. A panicking supplier becomes a Failed result carrying the
// panic under "exception", with this result's messages appended.
func (r Result[T]) OnFailure(supplier func() Result[T]) (out Result[T]) {
	if r.Status() == Success {
		return r
	}
	defer func() {
		if rec := recover(); rec != nil {
			out = NewBuilder[T]().
				Failed("Exception thrown in specified supplier").
				AddMessage("exception", Describe(rec)).
				AddMessages(r.Messages()).
				MustBuild()
		}
	}()
	return supplier()
}

// OnFailureResult is OnFailure for replacement functions that want to
// inspect this result's messages before producing a replacement.
func (r Result[T]) OnFailureResult(fn func(Result[T]) Result[T]) (out Result[T]) {
	if r.Status() == Success {
		return r
	}
	defer func() {
		if rec := recover(); rec != nil {
			out = NewBuilder[T]().
				Failed("Exception thrown in specified failure function").
				AddMessage("exception", Describe(rec)).
				AddMessages(r.Messages()).
				MustBuild()
		}
	}()
	return fn(r)
}

// OrElse returns the value if present, otherwise the supplied default. The
// default is always evaluated; use OrElseGet for a lazy alternative.
func (r Result[T]) OrElse(def T) T {
	if r.value != nil {
		return *r.value
	}
	return def
}

// OrElseGet returns the value if present, otherwise the supplier's value.
// The supplier runs only when the value is absent.
func (r Result[T]) OrElseGet(supplier func() T) T {
	if r.value != nil {
		return *r.value
	}
	return supplier()
}

// OrElseGetResult is OrElseGet for fallback functions that want to inspect
// this result.
func (r Result[T]) OrElseGetResult(fn func(Result[T]) T) T {
	if r.value != nil {
		return *r.value
	}
	return fn(r)
}

// OrElseError returns the value if present, otherwise the supplier's error.
// This is the one path where the abstraction reintroduces hard failure, for
// callers at a system boundary.
func (r Result[T]) OrElseError(supplier func() error) (T, error) {
	if r.value != nil {
		return *r.value, nil
	}
	var zero T
	return zero, supplier()
}

// OrElseErrorResult is OrElseError for error factories that want to inspect
// this result's messages.
func (r Result[T]) OrElseErrorResult(fn func(Result[T]) error) (T, error) {
	if r.value != nil {
		return *r.value, nil
	}
	var zero T
	return zero, fn(r)
}
