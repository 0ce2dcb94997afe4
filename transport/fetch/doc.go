// Package fetch binds an application to a Web-fetch-style contract: one
// synchronous call that takes a materialized request and returns a complete
// response, with no network listener involved.
//
// It exists for hosts with a functional invocation model (edge runtimes,
// test harnesses, in-process composition) and shares the dispatch pipeline,
// body decoding, and trust-proxy resolution with transport/stdhttp so both
// bindings behave identically for identical inputs.
package fetch
