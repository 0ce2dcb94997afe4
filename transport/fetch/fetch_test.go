package fetch_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plumeframe/plume/core/app"
	"github.com/plumeframe/plume/core/handler"
	"github.com/plumeframe/plume/core/response"
	"github.com/plumeframe/plume/pkg/clientip"
	"github.com/plumeframe/plume/transport/fetch"
)

func newApp(t *testing.T) *app.App {
	t.Helper()

	a := app.New()
	a.Get("/users/:id", func(ctx *handler.Context) error {
		return response.JSON(ctx.Response(), map[string]any{
			"id":   ctx.Param("id"),
			"page": ctx.Request().QueryParam("page"),
		})
	})
	a.Post("/users", func(ctx *handler.Context) error {
		return response.JSONWithStatus(ctx.Response(), ctx.Request().Body, http.StatusCreated)
	})
	return a
}

func jsonHeader() http.Header {
	h := make(http.Header)
	h.Set("Content-Type", "application/json")
	return h
}

func TestHandler(t *testing.T) {
	t.Parallel()

	t.Run("routes with params and query", func(t *testing.T) {
		t.Parallel()

		h := fetch.Handler(newApp(t))
		res, err := h(context.Background(), &fetch.Request{
			Method: "GET",
			URL:    "/users/42?page=3",
		})
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, res.Status)
		assert.Equal(t, "application/json; charset=utf-8", res.Header.Get("Content-Type"))
		assert.JSONEq(t, `{"id":"42","page":"3"}`, string(res.Body))
	})

	t.Run("absolute urls are handled", func(t *testing.T) {
		t.Parallel()

		h := fetch.Handler(newApp(t))
		res, err := h(context.Background(), &fetch.Request{
			Method: "GET",
			URL:    "https://example.com/users/7?page=1",
		})
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"7","page":"1"}`, string(res.Body))
	})

	t.Run("lowercase method is normalized", func(t *testing.T) {
		t.Parallel()

		h := fetch.Handler(newApp(t))
		res, err := h(context.Background(), &fetch.Request{Method: "get", URL: "/users/1"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.Status)
	})

	t.Run("json body is decoded", func(t *testing.T) {
		t.Parallel()

		h := fetch.Handler(newApp(t))
		res, err := h(context.Background(), &fetch.Request{
			Method: "POST",
			URL:    "/users",
			Header: jsonHeader(),
			Body:   []byte(`{"name":"plume"}`),
		})
		require.NoError(t, err)

		assert.Equal(t, http.StatusCreated, res.Status)
		assert.JSONEq(t, `{"name":"plume"}`, string(res.Body))
	})

	t.Run("malformed body does not fail the request", func(t *testing.T) {
		t.Parallel()

		h := fetch.Handler(newApp(t))
		res, err := h(context.Background(), &fetch.Request{
			Method: "POST",
			URL:    "/users",
			Header: jsonHeader(),
			Body:   []byte(`{broken`),
		})
		require.NoError(t, err)

		assert.Equal(t, http.StatusCreated, res.Status)
		assert.JSONEq(t, `{}`, string(res.Body))
	})

	t.Run("unknown route returns 404 without a transport error", func(t *testing.T) {
		t.Parallel()

		h := fetch.Handler(newApp(t))
		res, err := h(context.Background(), &fetch.Request{Method: "GET", URL: "/nowhere"})
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, res.Status)
		assert.Contains(t, string(res.Body), "not_found")
	})

	t.Run("nil header request is tolerated", func(t *testing.T) {
		t.Parallel()

		h := fetch.Handler(newApp(t))
		res, err := h(context.Background(), &fetch.Request{Method: "GET", URL: "/users/1"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.Status)
	})

	t.Run("trust policy resolves forwarded client", func(t *testing.T) {
		t.Parallel()

		a := app.New()
		a.Get("/ip", func(ctx *handler.Context) error {
			return response.JSON(ctx.Response(), map[string]any{"ip": ctx.Request().ClientIP})
		})

		h := fetch.Handler(a, fetch.WithTrustPolicy(clientip.TrustAll()))

		hdr := make(http.Header)
		hdr.Set("X-Forwarded-For", "203.0.113.5")
		res, err := h(context.Background(), &fetch.Request{
			Method:     "GET",
			URL:        "/ip",
			Header:     hdr,
			RemoteAddr: "10.0.0.1:1",
		})
		require.NoError(t, err)
		assert.JSONEq(t, `{"ip":"203.0.113.5"}`, string(res.Body))
	})

	t.Run("response is detached from internal buffers", func(t *testing.T) {
		t.Parallel()

		a := app.New()
		a.Get("/x", func(ctx *handler.Context) error {
			_, err := ctx.Response().WriteString("payload")
			return err
		})

		h := fetch.Handler(a)
		res, err := h(context.Background(), &fetch.Request{Method: "GET", URL: "/x"})
		require.NoError(t, err)

		res.Body[0] = '!'
		res.Header.Set("X-Mutated", "yes")

		again, err := h(context.Background(), &fetch.Request{Method: "GET", URL: "/x"})
		require.NoError(t, err)
		assert.Equal(t, "payload", string(again.Body))
		assert.Empty(t, again.Header.Get("X-Mutated"))
	})
}
