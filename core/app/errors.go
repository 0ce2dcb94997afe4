package app

import (
	"errors"
	"fmt"

	"github.com/plumeframe/plume/core/handler"
	"github.com/plumeframe/plume/core/response"
	"github.com/plumeframe/plume/core/router"
)

// defaultErrorHandler converts dispatch errors into JSON responses. Both
// routing failure kinds collapse to 404, matching the reference behavior;
// status-bearing errors propagate their status verbatim and everything else
// becomes a 500 with a generic body.
func defaultErrorHandler(ctx *handler.Context, err error) {
	switch {
	case errors.Is(err, router.ErrRouteNotFound), errors.Is(err, router.ErrMethodNotAllowed):
		response.WriteError(ctx.Response(), response.ErrNotFound)
	default:
		response.WriteError(ctx.Response(), err)
	}
}

// PanicError lets external error handlers detect recovered panics and reach
// the original panic value and stack trace.
type PanicError interface {
	error
	// Value returns the original panic value.
	Value() any
	// Stack returns the stack trace captured at the panic point.
	Stack() []byte
}

// panicError is the private implementation of PanicError.
type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

func (e *panicError) Value() any {
	return e.value
}

func (e *panicError) Stack() []byte {
	return e.stack
}

// Unwrap allows errors.Is/As to work with wrapped panics.
func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}
