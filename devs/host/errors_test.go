package host

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorIndicator_FetchClears(t *testing.T) {
	// GIVEN a raised error
	rt := NewRuntime()
	rt.Raise("ValueError", "boom")
	require.True(t, rt.Occurred())

	// WHEN it is fetched
	st, ok := rt.Fetch()

	// THEN the indicator is cleared and a second fetch finds nothing
	require.True(t, ok)
	assert.Equal(t, "boom", st.Value.String())
	assert.False(t, rt.Occurred())
	_, ok = rt.Fetch()
	assert.False(t, ok)

	st.Release()
	assert.Equal(t, 0, rt.Live())
}

func TestErrorIndicator_SetErrorReplacesPending(t *testing.T) {
	rt := NewRuntime()
	rt.Raise("ValueError", "first")
	rt.Raise("TypeError", "second")
	st, ok := rt.Fetch()
	require.True(t, ok)
	defer st.Release()
	assert.Equal(t, "TypeError", st.Type)
	assert.Equal(t, 1, rt.Live())
}

func TestRaise_CapturesCallStack(t *testing.T) {
	// GIVEN an outer function calling an inner one that raises
	rt := NewRuntime()
	inner := rt.NewFunc("inner", func(rt *Runtime, _ []*Value) *Value {
		rt.Raise("KeyError", "missing")
		return nil
	})
	defer inner.DecRef()
	outer := rt.NewFunc("outer", func(rt *Runtime, _ []*Value) *Value {
		return inner.Call()
	})
	defer outer.DecRef()

	// WHEN the outer function runs
	assert.Nil(t, outer.Call())

	// THEN the traceback lists both frames, outermost first
	st, ok := rt.Fetch()
	require.True(t, ok)
	defer st.Release()
	require.Len(t, st.Traceback, 2)
	assert.Equal(t, "outer", st.Traceback[0].Func)
	assert.Equal(t, "inner", st.Traceback[1].Func)
	assert.NotEmpty(t, st.Traceback[1].File)

	text, err := rt.FormatException(st)
	require.NoError(t, err)
	assert.Contains(t, text, "Traceback (most recent call last):")
	assert.Contains(t, text, "in inner")
	assert.Contains(t, text, "KeyError: missing")
}

type failingFormatter struct{}

func (failingFormatter) FormatException(ErrorState) (string, error) {
	return "", errors.New("formatter unavailable")
}

func TestFormatException_CustomFormatter(t *testing.T) {
	rt := NewRuntime(WithFormatter(failingFormatter{}))
	rt.Raise("ValueError", "x")
	st, _ := rt.Fetch()
	defer st.Release()
	_, err := rt.FormatException(st)
	assert.Error(t, err)
}

func TestTracebackFormatter_NoFrames(t *testing.T) {
	rt := NewRuntime()
	rt.Raise("ValueError", "plain")
	st, _ := rt.Fetch()
	defer st.Release()
	text, err := TracebackFormatter{}.FormatException(st)
	require.NoError(t, err)
	assert.Equal(t, "ValueError: plain\n", text)
}
