package outcome

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRequiresStatus(t *testing.T) {
	t.Parallel()
	_, err := NewBuilder[int]().WithValue(1).Build()
	assert.ErrorIs(t, err, ErrNoStatus)

	assert.Panics(t, func() {
		NewBuilder[int]().MustBuild()
	})
}

func TestSuccessShorthand(t *testing.T) {
	t.Parallel()
	r := OK(10)

	v, ok := r.Value()
	require.True(t, ok)
	assert.Equal(t, 10, v)
	assert.Equal(t, Success, r.Status())
	assert.True(t, r.IsSuccess())

	s, ok := r.Message(StatusKey)
	require.True(t, ok)
	assert.Equal(t, Success, s)
}

func TestFailureShorthands(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		build  func(msg string) Result[int]
		status Status
	}{
		{"notFound", func(m string) Result[int] { return NewBuilder[int]().NotFound(m).MustBuild() }, NotFound},
		{"badRequest", func(m string) Result[int] { return NewBuilder[int]().BadRequest(m).MustBuild() }, BadRequest},
		{"failed", func(m string) Result[int] { return NewBuilder[int]().Failed(m).MustBuild() }, Failed},
		{"connectionFailed", func(m string) Result[int] { return NewBuilder[int]().ConnectionFailed(m).MustBuild() }, ConnectionFailed},
		{"indeterminant", func(m string) Result[int] { return NewBuilder[int]().Indeterminant(m).MustBuild() }, Indeterminant},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r := tc.build("went wrong")
			assert.Equal(t, tc.status, r.Status())
			assert.False(t, r.IsPresent())
			assert.False(t, r.IsSuccess())
			v, ok := r.Message("error")
			require.True(t, ok)
			assert.Equal(t, "went wrong", v)
		})
	}
}

func TestFailureShorthandsStackErrors(t *testing.T) {
	t.Parallel()
	r := NewBuilder[int]().
		NotFound("first").
		Failed("second").
		MustBuild()

	assert.Equal(t, Failed, r.Status())
	v, _ := r.Message("error")
	assert.Equal(t, "second", v)
	v, _ = r.Message("error_")
	assert.Equal(t, "first", v)
}

func TestBuildStripsBlankKeysAndNilValues(t *testing.T) {
	t.Parallel()
	var nilPtr *int
	r := NewBuilder[int]().
		WithStatus(Failed).
		AddMessage("", "dropped").
		AddMessage("   ", "dropped").
		AddMessage("nil", nil).
		AddMessage("typed_nil", nilPtr).
		AddMessage("kept", "value").
		MustBuild()

	assert.Equal(t, []string{"kept", "status"}, r.Messages().Keys())
}

func TestWithValueNilCountsAsAbsent(t *testing.T) {
	t.Parallel()
	var p *int
	r := NewBuilder[*int]().WithStatus(Success).WithValue(p).MustBuild()

	assert.False(t, r.IsPresent())
	assert.False(t, r.IsSuccess())
	assert.Equal(t, Success, r.Status())
}

func TestAddMessagesCopiesInOrder(t *testing.T) {
	t.Parallel()
	src := NewBuilder[int]().
		Failed("origin").
		AddMessage("id", 7).
		MustBuild()

	r := NewBuilder[string]().
		WithStatus(src.Status()).
		AddMessages(src.Messages()).
		MustBuild()

	assert.Equal(t, Failed, r.Status())
	v, _ := r.Message("error")
	assert.Equal(t, "origin", v)
	v, _ = r.Message("id")
	assert.Equal(t, 7, v)
	// exactly one status entry survives the copy
	assert.Equal(t, []string{"error", "id", "status"}, r.Messages().Keys())
}

func TestAddMessageMap(t *testing.T) {
	t.Parallel()
	r := NewBuilder[int]().
		Failed("boom").
		AddMessageMap(map[string]any{"host": "db-1"}).
		MustBuild()

	v, ok := r.Message("host")
	require.True(t, ok)
	assert.Equal(t, "db-1", v)
}

func TestBuilderReuseProducesIndependentResults(t *testing.T) {
	t.Parallel()
	a := OK(1)
	b := OK(1)
	assert.NotEqual(t, a.ID(), b.ID())
}
