// Package server wraps http.Server with graceful shutdown, environment
// configuration, and errgroup-friendly lifecycle helpers for hosting the
// stdhttp transport binding.
package server
