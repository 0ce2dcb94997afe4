package httpx

import (
	"bytes"
	"net/http"
)

// ResponseWriter is the transport-agnostic response facade. Handlers write
// status, headers, and body into it; the transport binding flushes the
// accumulated state to the real transport exactly once after dispatch.
//
// The first WriteHeader call wins; later calls are no-ops. This mirrors the
// one-shot semantics of the underlying transports and guards handlers
// against double-write bugs.
type ResponseWriter struct {
	status  int
	header  http.Header
	body    bytes.Buffer
	written bool
}

// NewResponseWriter creates an empty response facade with a 200 default status.
func NewResponseWriter() *ResponseWriter {
	return &ResponseWriter{
		status: http.StatusOK,
		header: make(http.Header),
	}
}

// Header returns the response headers. Mutable until the transport flushes.
func (w *ResponseWriter) Header() http.Header {
	return w.header
}

// WriteHeader records the response status code. Only the first call has effect.
func (w *ResponseWriter) WriteHeader(status int) {
	if w.written {
		return
	}
	w.status = status
	w.written = true
}

// Write appends b to the response body, committing the current status code
// on first write.
func (w *ResponseWriter) Write(b []byte) (int, error) {
	if !w.written {
		w.WriteHeader(w.status)
	}
	return w.body.Write(b)
}

// WriteString appends s to the response body.
func (w *ResponseWriter) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// SetCookie adds a Set-Cookie header for the given cookie.
func (w *ResponseWriter) SetCookie(c *http.Cookie) {
	if v := c.String(); v != "" {
		w.header.Add("Set-Cookie", v)
	}
}

// Status returns the status code that will be flushed.
func (w *ResponseWriter) Status() int {
	return w.status
}

// Written reports whether a status code or body has been committed.
func (w *ResponseWriter) Written() bool {
	return w.written
}

// Body returns the accumulated response body.
func (w *ResponseWriter) Body() []byte {
	return w.body.Bytes()
}

// Size returns the number of body bytes accumulated so far.
func (w *ResponseWriter) Size() int {
	return w.body.Len()
}
