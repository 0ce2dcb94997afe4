package handler

import "github.com/plumeframe/plume/core/httpx"

// HandlerFunc is the canonical handler shape driven by the dispatch
// pipeline. Returning a non-nil error short-circuits the remainder of the
// chain and routes the request to the error responder.
type HandlerFunc func(ctx *Context) error

// Handler is the interface form of HandlerFunc for handlers that carry state.
type Handler interface {
	Serve(ctx *Context) error
}

// NextFunc is the continuation passed to callback-style handlers. Calling it
// with nil continues the chain; calling it with an error aborts the chain
// with that error. Only the first call has effect.
type NextFunc func(err error)

// CallbackFunc is the traditional (req, res, next) handler idiom. The
// callback must invoke next before returning to continue the chain; a
// handler that returns without calling next ends the request with whatever
// response state it has written.
type CallbackFunc func(req *httpx.Request, res *httpx.ResponseWriter, next NextFunc)

// ErrorHandler converts errors raised during dispatch into client responses.
type ErrorHandler func(ctx *Context, err error)

// Middleware wraps handlers to add cross-cutting functionality. Middleware
// composes outside-in: the first registered middleware observes the request
// first and the response last.
type Middleware func(next HandlerFunc) HandlerFunc

// Chain builds a single handler from a middleware stack and endpoint.
func Chain(middlewares []Middleware, endpoint HandlerFunc) HandlerFunc {
	h := endpoint

	// Wrap in reverse order so the first middleware runs first.
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}

	return h
}
