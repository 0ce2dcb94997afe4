// Package app ties the router, handler adaptation, and middleware
// composition together into the per-request dispatch pipeline.
//
// An App is transport-neutral: transport bindings (transport/stdhttp,
// transport/fetch) build the request/response facades, call Dispatch, and
// flush the result. Given identical method, path, headers, and body, both
// bindings produce identical routing and middleware behavior because they
// share this pipeline.
package app
