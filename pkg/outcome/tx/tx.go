package tx

import (
	"github.com/tiggee/outcome/pkg/outcome"
	"github.com/tiggee/outcome/pkg/outcome/solo"
)

const (
	boundedStage  = "Exception thrown in supplied transaction-bounded function"
	commitStage   = "Exception thrown when attempting to commit the transaction"
	rollbackStage = "Exception thrown when attempting to rollback the transaction"
)

// Transaction runs bounded inside the transaction carried as r's value.
// When the bounded result is a success the commit function is called with
// the handle; otherwise the rollback function is. Either way the bounded
// result is what comes back, chained through the commit/rollback result's
// own success: a commit or rollback that fails replaces it.
//
// Without a value r short-circuits, propagating its status and messages.
// A panic in bounded, commit or rollback goes through rollback recovery.
func Transaction[V, T any](r outcome.Result[T],
	bounded func() outcome.Result[V],
	commit func(T) outcome.Result[bool],
	rollback func(T) outcome.Result[bool]) outcome.Result[V] {

	handle, ok := r.Value()
	if !ok {
		return solo.Retype[V](r)
	}
	return run(handle, bounded, commit, rollback, func(T) bool { return true })
}

// TransactionWhen is Transaction gated by a predicate on the handle: only
// when transactional reports true does the outcome drive a commit or
// rollback. When it reports false the bounded result is returned as-is with
// no commit or rollback call, joining an existing transaction owned by an
// outer caller. The predicate is evaluated after the bounded call.
func TransactionWhen[V, T any](r outcome.Result[T],
	transactional func(T) bool,
	bounded func() outcome.Result[V],
	commit func(T) outcome.Result[bool],
	rollback func(T) outcome.Result[bool]) outcome.Result[V] {

	handle, ok := r.Value()
	if !ok {
		return solo.Retype[V](r)
	}
	return run(handle, bounded, commit, rollback, transactional)
}

func run[V, T any](handle T,
	bounded func() outcome.Result[V],
	commit func(T) outcome.Result[bool],
	rollback func(T) outcome.Result[bool],
	transactional func(T) bool) (out outcome.Result[V]) {

	var boundedResult *outcome.Result[V]
	defer func() {
		if rec := recover(); rec != nil {
			out = recoverRollback(boundedResult, rollback, handle, outcome.Describe(rec))
		}
	}()

	res := bounded()
	boundedResult = &res

	if !transactional(handle) {
		return res
	}
	if res.IsSuccess() {
		return solo.AndThen(commit(handle), func(bool) outcome.Result[V] { return res })
	}
	return solo.AndThen(rollback(handle), func(bool) outcome.Result[V] { return res })
}

// recoverRollback is the rollback-recovery procedure: label the stage that
// panicked, attempt one rollback, and report a terminal Failed result. At
// this point the caller owns the transaction, otherwise the bounded result
// would already have been returned without a commit or rollback.
func recoverRollback[V, T any](boundedResult *outcome.Result[V],
	rollback func(T) outcome.Result[bool],
	handle T, panicMsg string) (out outcome.Result[V]) {

	stage := boundedStage
	if boundedResult != nil {
		if boundedResult.IsSuccess() {
			stage = commitStage
		} else {
			stage = rollbackStage
		}
	}

	defer func() {
		if rec := recover(); rec != nil {
			out = outcome.NewBuilder[V]().
				Failed(stage + ", and then again on the final rollback").
				AddMessage("exception", outcome.Describe(rec)).
				AddMessage("original_exception", panicMsg).
				MustBuild()
		}
	}()

	return solo.AndThen(rollback(handle), func(bool) outcome.Result[V] {
		return outcome.NewBuilder[V]().
			Failed(stage).
			AddMessage("exception", panicMsg).
			MustBuild()
	})
}
