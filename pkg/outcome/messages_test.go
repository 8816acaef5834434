package outcome

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageCollisionCascade(t *testing.T) {
	t.Parallel()
	r := NewBuilder[int]().
		WithStatus(Failed).
		AddMessage("k", "a").
		AddMessage("k", "b").
		AddMessage("k", "c").
		MustBuild()

	msgs := r.Messages()
	v, ok := msgs.Get("k")
	require.True(t, ok)
	assert.Equal(t, "c", v)
	v, ok = msgs.Get("k_")
	require.True(t, ok)
	assert.Equal(t, "b", v)
	v, ok = msgs.Get("k__")
	require.True(t, ok)
	assert.Equal(t, "a", v)
}

func TestMessageOrderPreserved(t *testing.T) {
	t.Parallel()
	r := NewBuilder[int]().
		WithStatus(Failed).
		AddMessage("error", "boom").
		AddMessage("user_id", 42).
		AddMessage("attempt", 3).
		MustBuild()

	assert.Equal(t, []string{"error", "user_id", "attempt", "status"}, r.Messages().Keys())
}

func TestMessagesReadOnly(t *testing.T) {
	t.Parallel()
	r := NewBuilder[int]().Failed("boom").MustBuild()

	first := r.Messages().AsMap()
	second := r.Messages().AsMap()
	assert.Equal(t, first, second)

	// mutating a copy must not leak back into the result
	first["error"] = "tampered"
	v, _ := r.Message("error")
	assert.Equal(t, "boom", v)
}

func TestMessagesZeroView(t *testing.T) {
	t.Parallel()
	var ms Messages
	assert.Zero(t, ms.Len())
	assert.Nil(t, ms.Keys())
	_, ok := ms.Get("anything")
	assert.False(t, ok)
	assert.Empty(t, ms.AsMap())
}
