// Package stdhttp binds an application to Go's net/http server: the
// streaming-transport entry point.
//
// The binding buffers and decodes bodies for mutating methods, resolves the
// client IP through the configured trust-proxy policy, runs the shared
// dispatch pipeline, and flushes the response facade to the underlying
// ResponseWriter. It is behaviorally interchangeable with transport/fetch
// for identical inputs.
package stdhttp
