package devs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/hostdevs/devs/host"
)

func TestErrorBridge_NoPendingError(t *testing.T) {
	msg, ok := NewErrorBridge(host.NewRuntime()).FetchAndFormat()
	assert.False(t, ok)
	assert.Empty(t, msg)
}

func TestErrorBridge_FetchOnce(t *testing.T) {
	// GIVEN a raised error
	rt := host.NewRuntime()
	rt.Raise("ValueError", "bad port")
	b := NewErrorBridge(rt)

	// WHEN fetched twice
	msg, ok := b.FetchAndFormat()
	_, again := b.FetchAndFormat()

	// THEN only the first fetch reports it, with message then traceback
	require.True(t, ok)
	assert.False(t, again)
	assert.True(t, len(msg) > 0)
	assert.Contains(t, msg, "bad port\n")
	assert.Contains(t, msg, "ValueError: bad port")
	assert.False(t, rt.Occurred())
	assert.Equal(t, 0, rt.Live())
}

func TestErrorBridge_IncludesMultiFrameTraceback(t *testing.T) {
	rt := host.NewRuntime()
	inner := rt.NewFunc("validate", func(rt *host.Runtime, _ []*host.Value) *host.Value {
		rt.Raise("RuntimeError", "queue overflow")
		return nil
	})
	defer inner.DecRef()
	outer := rt.NewFunc("delta_int", func(*host.Runtime, []*host.Value) *host.Value {
		return inner.Call()
	})
	defer outer.DecRef()
	assert.Nil(t, outer.Call())

	msg, ok := NewErrorBridge(rt).FetchAndFormat()
	require.True(t, ok)
	assert.Contains(t, msg, "Traceback (most recent call last):")
	assert.Contains(t, msg, "in delta_int")
	assert.Contains(t, msg, "in validate")
}

type brokenFormatter struct{}

func (brokenFormatter) FormatException(host.ErrorState) (string, error) {
	return "", errors.New("no traceback module")
}

func TestErrorBridge_FormatterFailure_ReturnsMessageAlone(t *testing.T) {
	rt := host.NewRuntime(host.WithFormatter(brokenFormatter{}))
	rt.Raise("ValueError", "only the message")

	msg, ok := NewErrorBridge(rt).FetchAndFormat()
	require.True(t, ok)
	assert.Equal(t, "only the message", msg)
	assert.False(t, rt.Occurred())
}

func TestErrorBridge_NilRuntime(t *testing.T) {
	_, ok := ErrorBridge{}.FetchAndFormat()
	assert.False(t, ok)
}
