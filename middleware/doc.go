// Package middleware provides reusable cross-cutting middleware for the
// dispatch pipeline: request identifiers for tracing and structured
// request logging.
//
// Middleware composes outside-in via handler.Middleware; register globally
// with App.Use or wrap individual chains with handler.Chain.
package middleware
