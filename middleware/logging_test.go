package middleware_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plumeframe/plume/core/handler"
	"github.com/plumeframe/plume/middleware"
)

// capture collects structured records as decoded JSON objects.
func capture() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func lastRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &rec))
	return rec
}

func TestLogging(t *testing.T) {
	t.Parallel()

	t.Run("logs one record per completed request", func(t *testing.T) {
		t.Parallel()

		log, buf := capture()
		ctx := newTestContext()
		ctx.Request().RawQuery = "page=2"

		fn := middleware.LoggingWithLogger(log)(func(ctx *handler.Context) error {
			ctx.Response().WriteHeader(http.StatusOK)
			_, _ = ctx.Response().WriteString("ok")
			return nil
		})
		require.NoError(t, fn(ctx))

		rec := lastRecord(t, buf)
		assert.Equal(t, "request completed", rec["msg"])
		assert.Equal(t, "INFO", rec["level"])
		assert.Equal(t, "GET", rec["method"])
		assert.Equal(t, "/test", rec["path"])
		assert.Equal(t, "page=2", rec["query"])
		assert.EqualValues(t, http.StatusOK, rec["status"])
		assert.EqualValues(t, 2, rec["bytes_out"])
	})

	t.Run("handler error escalates to error level", func(t *testing.T) {
		t.Parallel()

		log, buf := capture()
		fn := middleware.LoggingWithLogger(log)(func(ctx *handler.Context) error {
			return errors.New("boom")
		})
		assert.Error(t, fn(newTestContext()))

		rec := lastRecord(t, buf)
		assert.Equal(t, "ERROR", rec["level"])
		assert.Equal(t, "boom", rec["error"])
	})

	t.Run("4xx status escalates to warn", func(t *testing.T) {
		t.Parallel()

		log, buf := capture()
		fn := middleware.LoggingWithLogger(log)(func(ctx *handler.Context) error {
			ctx.Response().WriteHeader(http.StatusNotFound)
			return nil
		})
		require.NoError(t, fn(newTestContext()))

		assert.Equal(t, "WARN", lastRecord(t, buf)["level"])
	})

	t.Run("includes request id when present", func(t *testing.T) {
		t.Parallel()

		log, buf := capture()
		chain := middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			Generator: func() string { return "rid-1" },
		})(middleware.LoggingWithLogger(log)(func(ctx *handler.Context) error {
			return nil
		}))
		require.NoError(t, chain(newTestContext()))

		assert.Equal(t, "rid-1", lastRecord(t, buf)["request_id"])
	})

	t.Run("skip suppresses the record", func(t *testing.T) {
		t.Parallel()

		log, buf := capture()
		fn := middleware.LoggingWithConfig(middleware.LoggingConfig{
			Logger: log,
			Skip:   func(ctx *handler.Context) bool { return true },
		})(func(ctx *handler.Context) error { return nil })

		require.NoError(t, fn(newTestContext()))
		assert.Empty(t, buf.Bytes())
	})
}
