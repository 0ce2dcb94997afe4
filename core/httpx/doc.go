// Package httpx defines the transport-agnostic request and response facades
// that flow through the dispatch pipeline.
//
// A transport binding (see transport/stdhttp and transport/fetch) constructs
// a Request from its native input, hands it to the application for dispatch,
// and flushes the accumulated ResponseWriter state back to its native output.
// Handlers never see transport types directly, which is what lets the same
// application run unchanged over a streaming HTTP server and a synchronous
// request/response contract.
//
// Facades are exclusively owned by one in-flight request. They must not be
// retained or mutated after the response has been flushed.
package httpx
