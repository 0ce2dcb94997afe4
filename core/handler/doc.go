// Package handler defines the canonical handler contract shared by the
// router, the dispatch pipeline, and both transport bindings.
//
// Handlers come in several registration shapes (canonical, bare, callback
// style, interface form); Adapt normalizes them into the single HandlerFunc
// shape the pipeline executes. Middleware composes around handlers with an
// explicit continuation, and Context carries the request and response
// facades plus request-scoped values through the chain.
package handler
