package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plumeframe/plume/core/httpx"
	"github.com/plumeframe/plume/core/response"
)

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("writes body with content type", func(t *testing.T) {
		t.Parallel()

		w := httpx.NewResponseWriter()
		require.NoError(t, response.JSON(w, map[string]any{"ok": true}))

		assert.Equal(t, http.StatusOK, w.Status())
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"ok":true}`, string(w.Body()))
	})

	t.Run("custom status", func(t *testing.T) {
		t.Parallel()

		w := httpx.NewResponseWriter()
		require.NoError(t, response.JSONWithStatus(w, map[string]any{"id": 1}, http.StatusCreated))
		assert.Equal(t, http.StatusCreated, w.Status())
	})

	t.Run("zero status with nil data is 204 without body", func(t *testing.T) {
		t.Parallel()

		w := httpx.NewResponseWriter()
		require.NoError(t, response.JSONWithStatus(w, nil, 0))
		assert.Equal(t, http.StatusNoContent, w.Status())
		assert.Empty(t, w.Body())
	})
}

func TestWriteError(t *testing.T) {
	t.Parallel()

	t.Run("plain error becomes 500 with error body", func(t *testing.T) {
		t.Parallel()

		w := httpx.NewResponseWriter()
		response.WriteError(w, errors.New("something broke"))

		assert.Equal(t, http.StatusInternalServerError, w.Status())
		assert.JSONEq(t, `{"error":"something broke"}`, string(w.Body()))
	})

	t.Run("status-bearing error propagates status and payload", func(t *testing.T) {
		t.Parallel()

		w := httpx.NewResponseWriter()
		response.WriteError(w, response.ErrNotFound)

		assert.Equal(t, http.StatusNotFound, w.Status())

		var body struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(w.Body(), &body))
		assert.Equal(t, "not_found", body.Code)
		assert.Equal(t, http.StatusText(http.StatusNotFound), body.Message)
	})

	t.Run("details survive the round trip", func(t *testing.T) {
		t.Parallel()

		w := httpx.NewResponseWriter()
		response.WriteError(w, response.ErrBadRequest.WithDetails(map[string]any{"field": "name"}))

		var body struct {
			Details map[string]any `json:"details"`
		}
		require.NoError(t, json.Unmarshal(w.Body(), &body))
		assert.Equal(t, "name", body.Details["field"])
	})

	t.Run("committed response left alone", func(t *testing.T) {
		t.Parallel()

		w := httpx.NewResponseWriter()
		w.WriteHeader(http.StatusOK)
		_, _ = w.WriteString("partial")

		response.WriteError(w, errors.New("late failure"))

		assert.Equal(t, http.StatusOK, w.Status())
		assert.Equal(t, "partial", string(w.Body()))
	})
}

func TestHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("copy-on-write modifiers", func(t *testing.T) {
		t.Parallel()

		base := response.ErrForbidden
		modified := base.WithMessage("no access").WithError(errors.New("token expired"))

		assert.Equal(t, http.StatusText(http.StatusForbidden), base.Message)
		assert.Nil(t, base.Details)
		assert.Equal(t, "no access", modified.Message)
		assert.Equal(t, "token expired", modified.Details["cause"])
	})

	t.Run("status code accessor", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, http.StatusNotFound, response.ErrNotFound.StatusCode())
		assert.Equal(t, http.StatusInternalServerError, response.NewHTTPError("x").StatusCode())
	})

	t.Run("status of plain error defaults to 500", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, http.StatusInternalServerError, response.StatusOf(errors.New("x")))
		assert.Equal(t, http.StatusTooManyRequests, response.StatusOf(response.ErrTooManyRequests))
	})
}
