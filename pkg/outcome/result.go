package outcome

import (
	"time"

	"github.com/google/uuid"
)

// Result is an immutable outcome value: an optional value of type T plus an
// ordered message map that always carries the operation's Status under the
// reserved "status" key. A Result is created once through a Builder and never
// mutated; every operator produces a fresh Result.
//
// A Result can hold a Success status and yet have no value: a lossy mapping
// step removes the value while keeping the original status metadata. That
// state is deliberate ("the operation category succeeded but no
// transformation result exists"); IsSuccess and IsPresent are the reliable
// checks, Status alone is not.
type Result[T any] struct {
	value     *T
	messages  *messageMap
	id        uuid.UUID
	createdAt time.Time
}

// Value returns the result's value if one is present. Presence is
// independent of status.
func (r Result[T]) Value() (T, bool) {
	if r.value == nil {
		var zero T
		return zero, false
	}
	return *r.value, true
}

// Status returns the status tag recorded at construction.
func (r Result[T]) Status() Status {
	v, ok := r.messages.get(StatusKey)
	if !ok {
		return ""
	}
	s, _ := v.(Status)
	return s
}

// Messages returns the full, read-only message view, including the status
// entry.
func (r Result[T]) Messages() Messages {
	return Messages{m: r.messages}
}

// Message returns the single message stored under key, if any.
func (r Result[T]) Message(key string) (any, bool) {
	return r.messages.get(key)
}

// IsPresent reports whether the result holds a value.
func (r Result[T]) IsPresent() bool {
	return r.value != nil
}

// IsSuccess reports whether the status is Success and a value is present.
func (r Result[T]) IsSuccess() bool {
	return r.Status() == Success && r.IsPresent()
}

// Satisfies reports whether a value is present and meets the predicate.
func (r Result[T]) Satisfies(predicate func(T) bool) bool {
	return r.value != nil && predicate(*r.value)
}

// ID identifies this Result instance.
func (r Result[T]) ID() uuid.UUID {
	return r.id
}

// CreatedAt is the construction time (UTC).
func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}
