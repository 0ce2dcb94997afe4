package logger

import (
	"log/slog"
	"time"
)

// Attribute helpers use the empty Attr pattern for nil safety, so calls
// like log.Info("msg", logger.Error(err)) need no explicit nil checks.

// Error creates an attribute for a single error under the key "error".
// Returns an empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component tags log records with the emitting component name.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event tags log records with a short event name.
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Method creates an attribute for an HTTP method.
func Method(m string) slog.Attr {
	return slog.String("method", m)
}

// Path creates an attribute for a request path.
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// Query creates an attribute for a raw query string.
func Query(q string) slog.Attr {
	return slog.String("query", q)
}

// RemoteAddr creates an attribute for the transport peer address.
func RemoteAddr(addr string) slog.Attr {
	return slog.String("remote_addr", addr)
}

// ClientIP creates an attribute for the resolved client address.
func ClientIP(ip string) slog.Attr {
	return slog.String("client_ip", ip)
}

// RequestID creates an attribute for a request identifier.
func RequestID(id string) slog.Attr {
	return slog.String("request_id", id)
}

// StatusCode creates an attribute for an HTTP status code.
func StatusCode(code int) slog.Attr {
	return slog.Int("status", code)
}

// BytesOut creates an attribute for the response body size.
func BytesOut(n int64) slog.Attr {
	return slog.Int64("bytes_out", n)
}

// Duration creates an attribute for elapsed time.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
