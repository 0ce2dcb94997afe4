package router

import "errors"

var (
	// ErrRouteNotFound signals that no registered path matches the request
	// segments at all, regardless of method.
	ErrRouteNotFound = errors.New("route not found")

	// ErrMethodNotAllowed signals that the path exists in the tree but no
	// chain is registered for the requested method. The default error
	// responder maps both lookup failures to 404; the distinct sentinel is
	// kept for diagnostics.
	ErrMethodNotAllowed = errors.New("method not allowed for route")

	// ErrNilRouter is raised when mounting a nil sub-router.
	ErrNilRouter = errors.New("nil router")
)
