package handler_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plumeframe/plume/core/handler"
	"github.com/plumeframe/plume/core/httpx"
)

func TestContext(t *testing.T) {
	t.Parallel()

	t.Run("values shadow the base context", func(t *testing.T) {
		t.Parallel()

		type key struct{}
		base := context.WithValue(context.Background(), key{}, "base")
		ctx := handler.NewContext(base, &httpx.Request{}, httpx.NewResponseWriter())

		assert.Equal(t, "base", ctx.Value(key{}))

		ctx.SetValue(key{}, "override")
		assert.Equal(t, "override", ctx.Value(key{}))
	})

	t.Run("params read through to the request", func(t *testing.T) {
		t.Parallel()

		req := &httpx.Request{}
		req.SetParams(map[string]string{"id": "42"})

		ctx := handler.NewContext(context.Background(), req, httpx.NewResponseWriter())
		assert.Equal(t, "42", ctx.Param("id"))
		assert.Equal(t, "", ctx.Param("missing"))
	})

	t.Run("delegates cancellation to base", func(t *testing.T) {
		t.Parallel()

		base, cancel := context.WithCancel(context.Background())
		ctx := handler.NewContext(base, &httpx.Request{}, httpx.NewResponseWriter())

		require.NoError(t, ctx.Err())
		cancel()
		assert.ErrorIs(t, ctx.Err(), context.Canceled)
	})

	t.Run("nil base defaults to background", func(t *testing.T) {
		t.Parallel()

		ctx := handler.NewContext(nil, &httpx.Request{}, httpx.NewResponseWriter())
		assert.NoError(t, ctx.Err())
	})

	t.Run("deadline can be armed after construction", func(t *testing.T) {
		t.Parallel()

		ctx := handler.NewContext(context.Background(), &httpx.Request{}, httpx.NewResponseWriter())

		_, ok := ctx.Deadline()
		require.False(t, ok)

		cancel := ctx.WithDeadline(time.Now().Add(time.Minute))
		defer cancel()

		d, ok := ctx.Deadline()
		require.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(time.Minute), d, 5*time.Second)
	})

	t.Run("abort is sticky", func(t *testing.T) {
		t.Parallel()

		ctx := handler.NewContext(context.Background(), &httpx.Request{}, httpx.NewResponseWriter())
		assert.False(t, ctx.Aborted())
		ctx.Abort()
		assert.True(t, ctx.Aborted())
	})
}
