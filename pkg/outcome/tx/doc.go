// Package tx binds a bounded operation's outcome to commit/rollback calls on
// a transaction handle carried as a Result's value. The handle is opaque:
// the combinator only hands it to the commit and rollback functions.
//
// Key operations:
//   - Transaction: always transactional; commit on success, rollback on
//     failure, returning the bounded result through the commit/rollback
//     result's success chaining
//   - TransactionWhen: transactional only when the predicate reports the
//     handle as owned here; otherwise the bounded result passes through
//     untouched, modeling joining an outer caller's transaction
//
// Any panic during the bounded call, commit or rollback triggers a recovery
// procedure that attempts one rollback and always hands the caller a
// terminal Failed result, never a propagated panic. A transaction handle is
// never left behind without at least one rollback attempt.
package tx
