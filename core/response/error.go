package response

import (
	"encoding/json"
	"net/http"

	"github.com/plumeframe/plume/core/httpx"
)

// statusCode is an unexported interface that errors can implement to
// provide a custom HTTP status code.
type statusCode interface {
	StatusCode() int
}

// payloader is an unexported interface that errors can implement to supply
// a structured body that is written verbatim instead of the default
// {"error": message} shape.
type payloader interface {
	ErrorPayload() any
}

// errorBody is the default JSON error payload.
type errorBody struct {
	Error string `json:"error"`
}

// StatusOf extracts the HTTP status carried by err, defaulting to 500 for
// errors without one.
func StatusOf(err error) int {
	if sc, ok := err.(statusCode); ok {
		return sc.StatusCode()
	}
	return http.StatusInternalServerError
}

// WriteError renders err as a well-formed JSON error response. The status
// comes from the error's StatusCode method when present, otherwise 500. The
// body is the error's structured payload verbatim when it provides one, or
// {"error": <message>}. Raw stack traces never reach the client.
//
// If a handler already committed a response, WriteError leaves it alone to
// avoid corrupting what was written.
func WriteError(w *httpx.ResponseWriter, err error) {
	if w.Written() {
		return
	}

	var body any = errorBody{Error: err.Error()}
	if p, ok := err.(payloader); ok {
		body = p.ErrorPayload()
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(StatusOf(err))

	// Encoding an already-validated payload cannot reasonably fail; fall
	// back to the plain shape if it somehow does.
	if encErr := json.NewEncoder(w).Encode(body); encErr != nil {
		_ = json.NewEncoder(w).Encode(errorBody{Error: err.Error()})
	}
}
