package app

import (
	"runtime/debug"
	"time"

	"github.com/plumeframe/plume/core/handler"
	"github.com/plumeframe/plume/core/logger"
)

// Dispatch drives one request through the pipeline: proxy check, route
// resolution, chain build, sequential execution, and error handling. The
// transport binding constructs the Context beforehand and flushes the
// response facade afterwards.
//
// Errors never escape Dispatch; a failing request is fatal only to itself
// and the hosting process stays up.
func (a *App) Dispatch(ctx *handler.Context) {
	defer func() {
		if p := recover(); p != nil {
			panicErr := &panicError{value: p, stack: debug.Stack()}

			if ctx.Response().Written() {
				// Too late for an error response; log and move on.
				a.logger.Error("panic after response written",
					"value", panicErr.value,
					logger.Method(ctx.Request().Method),
					logger.Path(ctx.Request().Path),
					"stack", string(panicErr.stack),
				)
				return
			}
			a.errorHandler(ctx, panicErr)
		}
	}()

	if a.requestTimeout > 0 {
		cancel := ctx.WithDeadline(time.Now().Add(a.requestTimeout))
		defer cancel()
	}

	req := ctx.Request()

	// Proxy prefixes are checked before generic routing and bypass it,
	// including the global middleware stack.
	if fn := a.matchProxy(req.Path); fn != nil {
		if err := fn(ctx); err != nil {
			a.errorHandler(ctx, err)
		}
		return
	}

	match, err := a.router.Find(req.Method, req.Path)
	if err != nil {
		a.errorHandler(ctx, err)
		return
	}

	req.SetParams(match.Params)

	fn := sequential(match.Handlers)
	if len(a.middlewares) > 0 {
		fn = handler.Chain(a.middlewares, fn)
	}

	if err := fn(ctx); err != nil {
		a.errorHandler(ctx, err)
	}
}

// sequential runs a handler chain strictly left to right. Handler N+1 never
// starts until handler N has returned; an error return jumps straight to
// the error responder and an abort ends the request with the response state
// accumulated so far. Exhausting the chain is not an error even if nothing
// wrote a response.
func sequential(hs []handler.HandlerFunc) handler.HandlerFunc {
	if len(hs) == 1 {
		return hs[0]
	}
	return func(ctx *handler.Context) error {
		for _, h := range hs {
			if err := h(ctx); err != nil {
				return err
			}
			if ctx.Aborted() {
				return nil
			}
		}
		return nil
	}
}
