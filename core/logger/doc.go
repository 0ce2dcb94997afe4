// Package logger provides slog constructors and typed attribute helpers
// shared across the framework, keeping log field names consistent between
// the dispatch pipeline, middleware, and transports.
package logger
