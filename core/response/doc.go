// Package response renders handler output into the response facade.
//
// It provides JSON helpers, the structured HTTPError type, and WriteError,
// the single place where dispatch errors become client-visible JSON bodies
// with mapped status codes.
package response
