package handler

import (
	"errors"
	"fmt"
	"sync"

	"github.com/plumeframe/plume/core/httpx"
)

// ErrUnsupportedHandler is returned by Adapt for values outside the
// supported handler shapes.
var ErrUnsupportedHandler = errors.New("unsupported handler shape")

// Adapt normalizes any supported handler shape into the canonical
// HandlerFunc. The supported shapes form a closed set chosen at registration
// time rather than inspected at call time:
//
//   - HandlerFunc and func(*Context) error: passed through unchanged.
//   - func(*Context): bare style, adapted to always return nil.
//   - CallbackFunc and func(*Request, *ResponseWriter, NextFunc): callback
//     style with one-shot next semantics, see adaptCallback.
//   - Handler: its Serve method.
//
// Adapt never wraps error paths away: whatever the underlying handler
// returns or signals via next propagates to the caller verbatim.
func Adapt(h any) (HandlerFunc, error) {
	switch h := h.(type) {
	case HandlerFunc:
		return h, nil
	case func(*Context) error:
		return HandlerFunc(h), nil
	case func(*Context):
		return func(ctx *Context) error {
			h(ctx)
			return nil
		}, nil
	case CallbackFunc:
		return adaptCallback(h), nil
	case func(*httpx.Request, *httpx.ResponseWriter, NextFunc):
		return adaptCallback(h), nil
	case Handler:
		return h.Serve, nil
	case nil:
		return nil, fmt.Errorf("%w: nil handler", ErrUnsupportedHandler)
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedHandler, h)
}

// MustAdapt is Adapt but panics on unsupported shapes. Registration happens
// at startup, so a bad handler shape is a programming error worth failing
// loudly on, matching how route pattern validation behaves.
func MustAdapt(h any) HandlerFunc {
	fn, err := Adapt(h)
	if err != nil {
		panic(err)
	}
	return fn
}

// AdaptAll adapts a slice of heterogeneous handlers, panicking on the first
// unsupported shape.
func AdaptAll(hs ...any) []HandlerFunc {
	fns := make([]HandlerFunc, len(hs))
	for i, h := range hs {
		fns[i] = MustAdapt(h)
	}
	return fns
}

// adaptCallback wraps a (req, res, next) callback handler. The continuation
// is one-shot: the first next call records the outcome and every subsequent
// call is a no-op, guarding against double-next bugs. The callback must
// settle next before returning; if it never does, the chain stops after it
// with whatever response state it has produced.
func adaptCallback(h CallbackFunc) HandlerFunc {
	return func(ctx *Context) error {
		var (
			once   sync.Once
			called bool
			nerr   error
		)
		next := func(err error) {
			once.Do(func() {
				called = true
				nerr = err
			})
		}

		h(ctx.Request(), ctx.Response(), next)

		if !called {
			ctx.Abort()
			return nil
		}
		return nerr
	}
}
