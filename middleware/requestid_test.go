package middleware_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plumeframe/plume/core/handler"
	"github.com/plumeframe/plume/core/httpx"
	"github.com/plumeframe/plume/middleware"
)

func newTestContext() *handler.Context {
	req := &httpx.Request{
		Method: "GET",
		Path:   "/test",
		Header: make(http.Header),
		Body:   map[string]any{},
	}
	return handler.NewContext(context.Background(), req, httpx.NewResponseWriter())
}

func run(t *testing.T, mw handler.Middleware, ctx *handler.Context) {
	t.Helper()

	fn := mw(func(ctx *handler.Context) error { return nil })
	require.NoError(t, fn(ctx))
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	t.Run("assigns a fresh id", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext()
		run(t, middleware.RequestID(), ctx)

		id, ok := middleware.GetRequestID(ctx)
		require.True(t, ok)
		assert.NotEmpty(t, id)
		assert.Equal(t, id, ctx.Response().Header().Get("X-Request-ID"))
	})

	t.Run("ids are unique per request", func(t *testing.T) {
		t.Parallel()

		first := newTestContext()
		second := newTestContext()
		run(t, middleware.RequestID(), first)
		run(t, middleware.RequestID(), second)

		a, _ := middleware.GetRequestID(first)
		b, _ := middleware.GetRequestID(second)
		assert.NotEqual(t, a, b)
	})

	t.Run("reuses incoming id when configured", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext()
		ctx.Request().Header.Set("X-Request-ID", "upstream-id")

		run(t, middleware.RequestIDWithConfig(middleware.RequestIDConfig{UseExisting: true}), ctx)

		id, ok := middleware.GetRequestID(ctx)
		require.True(t, ok)
		assert.Equal(t, "upstream-id", id)
	})

	t.Run("ignores incoming id by default", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext()
		ctx.Request().Header.Set("X-Request-ID", "upstream-id")

		run(t, middleware.RequestID(), ctx)

		id, _ := middleware.GetRequestID(ctx)
		assert.NotEqual(t, "upstream-id", id)
	})

	t.Run("custom generator and header", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext()
		run(t, middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			HeaderName: "X-Trace-ID",
			Generator:  func() string { return "fixed" },
		}), ctx)

		assert.Equal(t, "fixed", ctx.Response().Header().Get("X-Trace-ID"))
	})

	t.Run("skip leaves the request untouched", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext()
		run(t, middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			Skip: func(ctx *handler.Context) bool { return true },
		}), ctx)

		_, ok := middleware.GetRequestID(ctx)
		assert.False(t, ok)
	})
}
