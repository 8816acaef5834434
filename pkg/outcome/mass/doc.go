// Package mass applies a Result-producing function across a collection of
// inputs and folds the sub-results into one Result.
//
// Key operations:
//   - Foreach: exhaustive mode, every input is processed and all failures
//     are aggregated per input into a nested message map
//   - ForeachFailFast: stops at the first failing input, reporting only a
//     summary ("Failed to process inputs" plus "failed_on")
//   - ForeachOver: the instance form, iterating a Result's own value as a
//     slice or as a one-element batch
//   - ForeachEntry: adapts a map's entries to the exhaustive Foreach
//
// Each per-element invocation is panic-guarded into a failed sub-result, so
// one misbehaving element can never abort the whole batch ungracefully.
package mass
