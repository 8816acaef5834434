// Package chain provides a fluent wrapper around outcome.Result[T] for
// same-type pipelines, composing the core and solo operators behind a
// convenient Chain[T] type.
//
// Key operations:
//   - Start/FromValue: begin a chain from a Result[T] or a value
//   - Then: bind to a Result-producing step
//   - Map: transform the value
//   - Filter: drop the value when the predicate rejects it
//   - Meets: predicate branching between two Result-producing steps
//   - Ensure: run side effects without changing the result
//   - Recover: replace a failed result
//   - Result/OrElse: leave the chain
//
// Go methods cannot introduce type parameters, so a Chain stays on one value
// type; switch to the solo functions when a step changes the type.
package chain
