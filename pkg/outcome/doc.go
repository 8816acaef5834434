// Package outcome provides an immutable Result[T] value that carries the
// outcome of an operation: a status from a closed enumeration, an optional
// value, and an ordered map of name-value messages describing the outcome.
// Failures travel as data rather than as errors, so callers compose
// operations without checking an error at every step.
//
// Typical usage at a failure origin (a repository, a remote call):
//
//	res, err := repo.Load(id)
//	if err != nil {
//		return outcome.NewBuilder[User]().
//			ConnectionFailed(err.Error()).
//			AddMessage("user_id", id).
//			MustBuild()
//	}
//	return outcome.OK(res)
//
// Key pieces:
//   - Result[T]: the immutable value with Value/Status/Messages queries
//   - Builder[T]: the only construction path, validated at Build
//   - Status: SUCCESS plus five failure categories
//   - Messages: read-only ordered view; re-written keys keep their history
//     under underscore-suffixed shadow keys
//   - CallFunc/CallSupplier: panic boundary used by the operator packages
//
// Type-changing operators live in the solo, mass and tx subpackages; the
// chain subpackage offers a fluent wrapper for same-type pipelines.
//
// Results are immutable and safe to share between goroutines. The Builder is
// a mutable accumulator and must stay confined to a single construction call
// chain.
package outcome
