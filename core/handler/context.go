package handler

import (
	"context"
	"time"

	"github.com/plumeframe/plume/core/httpx"
)

// Context carries one request through the dispatch pipeline. It bundles the
// request and response facades with a per-request value store and implements
// context.Context by delegating to the transport's base context.
//
// A Context belongs to exactly one in-flight request and is discarded after
// the response is flushed.
type Context struct {
	base    context.Context
	req     *httpx.Request
	res     *httpx.ResponseWriter
	values  map[any]any
	aborted bool
}

// NewContext creates a request context around the given facades.
func NewContext(base context.Context, req *httpx.Request, res *httpx.ResponseWriter) *Context {
	if base == nil {
		base = context.Background()
	}
	return &Context{base: base, req: req, res: res}
}

// Deadline returns the deadline of the underlying transport context.
func (c *Context) Deadline() (deadline time.Time, ok bool) {
	return c.base.Deadline()
}

// Done returns the cancellation channel of the underlying transport context.
func (c *Context) Done() <-chan struct{} {
	return c.base.Done()
}

// Err returns a non-nil error after Done is closed.
func (c *Context) Err() error {
	return c.base.Err()
}

// Value returns request-scoped values set via SetValue, falling back to the
// underlying transport context.
func (c *Context) Value(key any) any {
	if c.values != nil {
		if v, ok := c.values[key]; ok {
			return v
		}
	}
	return c.base.Value(key)
}

// SetValue stores a request-scoped value. Handlers later in the chain
// observe it through Value.
func (c *Context) SetValue(key, val any) {
	if c.values == nil {
		c.values = make(map[any]any)
	}
	c.values[key] = val
}

// Request returns the request facade.
func (c *Context) Request() *httpx.Request {
	return c.req
}

// Response returns the response facade.
func (c *Context) Response() *httpx.ResponseWriter {
	return c.res
}

// Param returns the value of the URL parameter for the given key.
func (c *Context) Param(key string) string {
	return c.req.Param(key)
}

// Abort stops chain execution after the current handler returns. Unlike an
// error return, aborting finalizes the response with whatever state handlers
// have written.
func (c *Context) Abort() {
	c.aborted = true
}

// Aborted reports whether Abort has been called.
func (c *Context) Aborted() bool {
	return c.aborted
}

// WithDeadline replaces the base context with one carrying the given
// deadline. Used by the optional per-request timeout; the returned cancel
// function must be called when dispatch completes.
func (c *Context) WithDeadline(d time.Time) context.CancelFunc {
	base, cancel := context.WithDeadline(c.base, d)
	c.base = base
	return cancel
}
