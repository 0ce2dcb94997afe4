package app

import (
	"log/slog"
	"time"

	"github.com/plumeframe/plume/core/handler"
	"github.com/plumeframe/plume/core/router"
)

// Option configures an App during creation.
type Option func(*App)

// WithErrorHandler sets a custom error handler for dispatch failures.
func WithErrorHandler(h handler.ErrorHandler) Option {
	return func(a *App) {
		if h != nil {
			a.errorHandler = h
		}
	}
}

// WithLogger sets the application logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithRouter replaces the default empty router.
func WithRouter(r *router.Router) Option {
	return func(a *App) {
		if r != nil {
			a.router = r
		}
	}
}

// WithMiddleware adds global middleware at construction time.
func WithMiddleware(mws ...handler.Middleware) Option {
	return func(a *App) {
		a.middlewares = append(a.middlewares, mws...)
	}
}

// WithRequestTimeout arms a per-request deadline on the dispatch context.
// Cancellation is cooperative: handlers observe it through the Context they
// receive, so a handler that ignores its context can still stall its own
// request. Zero disables the deadline, which is the default.
func WithRequestTimeout(d time.Duration) Option {
	return func(a *App) {
		a.requestTimeout = d
	}
}
