// Package solo contains the single-result operators that change the value's
// type parameter, as package-level generic functions over outcome.Result.
//
// Key operations:
//   - Map: transform the value (T -> R), wrapping the return in a success
//   - AndThen: bind to a Result-producing step, short-circuiting on failure
//   - AndThenElse: branch a bind on the result's status
//   - MeetsCondition (and its Supply variants): predicate branching on a
//     successful result
//   - Retype: copy status and messages into a Result of another type
//
// Every user-supplied callback runs behind the panic boundary: a panic in a
// mapper, bind step or branch becomes a failure result instead of escaping.
package solo
