package outcome

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNoStatus is returned by Build when no status was ever set.
var ErrNoStatus = errors.New("the status must be specified and cannot be empty")

// Builder accumulates the parts of a Result and validates them at Build.
// It is the only construction path; there is no way to obtain a Result that
// skipped validation. The zero Builder is not usable, start with NewBuilder.
//
// A Builder is mutable and not safe for concurrent use; confine it to a
// single construction call chain.
type Builder[T any] struct {
	value  *T
	status Status
	msgs   *messageMap
}

// NewBuilder starts an empty Builder.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{msgs: newMessageMap()}
}

// WithValue sets the result's value. A nil-typed value (nil pointer, map,
// slice, interface, chan or func) counts as absent.
func (b *Builder[T]) WithValue(value T) *Builder[T] {
	if IsNil(value) {
		b.value = nil
		return b
	}
	v := value
	b.value = &v
	return b
}

// WithStatus sets the result's status.
func (b *Builder[T]) WithStatus(status Status) *Builder[T] {
	b.status = status
	return b
}

// Success sets status Success and the value in one call.
func (b *Builder[T]) Success(value T) *Builder[T] {
	b.status = Success
	return b.WithValue(value)
}

// NotFound sets status NotFound and records msg under "error".
func (b *Builder[T]) NotFound(msg string) *Builder[T] {
	b.status = NotFound
	b.msgs.pushBack("error", msg)
	return b
}

// BadRequest sets status BadRequest and records msg under "error".
func (b *Builder[T]) BadRequest(msg string) *Builder[T] {
	b.status = BadRequest
	b.msgs.pushBack("error", msg)
	return b
}

// Failed sets status Failed and records msg under "error".
func (b *Builder[T]) Failed(msg string) *Builder[T] {
	b.status = Failed
	b.msgs.pushBack("error", msg)
	return b
}

// ConnectionFailed sets status ConnectionFailed and records msg under "error".
func (b *Builder[T]) ConnectionFailed(msg string) *Builder[T] {
	b.status = ConnectionFailed
	b.msgs.pushBack("error", msg)
	return b
}

// Indeterminant sets status Indeterminant and records msg under "error".
func (b *Builder[T]) Indeterminant(msg string) *Builder[T] {
	b.status = Indeterminant
	b.msgs.pushBack("error", msg)
	return b
}

// AddMessage appends a name-value message. Re-adding an existing key pushes
// the previous value to an underscore-suffixed shadow key.
func (b *Builder[T]) AddMessage(key string, value any) *Builder[T] {
	b.msgs.pushBack(key, value)
	return b
}

// AddMessages appends every entry of an existing message view, in order.
// The collision rule applies per key.
func (b *Builder[T]) AddMessages(messages Messages) *Builder[T] {
	for _, k := range messages.Keys() {
		v, _ := messages.Get(k)
		b.msgs.pushBack(k, v)
	}
	return b
}

// AddMessageMap appends every entry of a plain map. Iteration order follows
// the map, so use AddMessage or AddMessages when ordering matters.
func (b *Builder[T]) AddMessageMap(messages map[string]any) *Builder[T] {
	for k, v := range messages {
		b.msgs.pushBack(k, v)
	}
	return b
}

// Build validates and returns the immutable Result. It fails with
// ErrNoStatus when no status was set. Message entries with blank keys or nil
// values are stripped, and the final status is written under the reserved
// "status" key.
func (b *Builder[T]) Build() (Result[T], error) {
	if b.status == "" {
		zap.L().Error(ErrNoStatus.Error())
		return Result[T]{}, ErrNoStatus
	}

	clean := newMessageMap()
	for _, k := range b.msgs.keys {
		if strings.TrimSpace(k) == "" {
			continue
		}
		v := b.msgs.values[k]
		if IsNil(v) {
			continue
		}
		clean.set(k, v)
	}
	clean.set(StatusKey, b.status)

	return Result[T]{
		value:     b.value,
		messages:  clean,
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
	}, nil
}

// MustBuild is Build for call sites that have already set a status; it
// panics on ErrNoStatus.
func (b *Builder[T]) MustBuild() Result[T] {
	r, err := b.Build()
	if err != nil {
		panic(err)
	}
	return r
}

// OK builds a successful Result holding value. Shorthand for
// NewBuilder[T]().Success(value).MustBuild().
func OK[T any](value T) Result[T] {
	return NewBuilder[T]().Success(value).MustBuild()
}
