package router

import (
	"log/slog"
	"strings"

	"github.com/plumeframe/plume/core/handler"
	"github.com/plumeframe/plume/core/logger"
)

// Router matches method+path pairs to registered handler chains using a
// prefix tree keyed by path segments.
//
// Registration is a startup-time activity: the tree is built by Add and
// Mount calls and is read-only afterwards, so concurrent Find calls from
// in-flight requests need no locking. There is no route removal.
type Router struct {
	root   *node
	logger *slog.Logger
}

// Match is the result of a successful route lookup.
type Match struct {
	// Handlers is the full chain registered for the matched method+path,
	// borrowed by reference for the duration of one request.
	Handlers []handler.HandlerFunc

	// Params maps parameter names to the path segments they captured.
	// Only parameters encountered along the matched path are present.
	Params map[string]string
}

// Route describes a registered route for introspection.
type Route struct {
	Method  string
	Pattern string
}

// Option configures a Router during creation.
type Option func(*Router)

// WithLogger sets the logger used for registration-time diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates an empty router.
func New(opts ...Option) *Router {
	r := &Router{
		root:   newNode(),
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add registers a handler chain for method at path. The method is stored
// uppercased; path segments prefixed with ':' capture the corresponding
// request segment under the given name. Registering the same method+path
// twice silently replaces the earlier chain.
func (r *Router) Add(method, path string, hs ...handler.HandlerFunc) {
	n := r.root
	for _, seg := range splitPath(path) {
		if strings.HasPrefix(seg, ":") {
			name := seg[1:]
			child, ok := n.param(name)
			if !ok {
				// The first name registered at this depth stays in force.
				r.logger.Debug("conflicting parameter name ignored",
					"path", path,
					"requested", name,
					"existing", n.paramName,
				)
			}
			n = child
			continue
		}
		n = n.child(seg)
	}
	n.setHandlers(strings.ToUpper(method), hs)
}

// Find resolves method+path to the registered handler chain and captured
// parameters. Anything after a '?' in path is ignored.
//
// At every level a literal child is tried first; the dynamic child is the
// fallback. Returns ErrRouteNotFound when no tree path matches the segments
// at all, and ErrMethodNotAllowed when the path exists but carries no chain
// for the method.
func (r *Router) Find(method, path string) (Match, error) {
	n := r.root
	var params map[string]string

	for _, seg := range splitPath(path) {
		if c, ok := n.children[seg]; ok {
			n = c
			continue
		}
		if n.paramChild != nil {
			if params == nil {
				params = make(map[string]string)
			}
			params[n.paramName] = seg
			n = n.paramChild
			continue
		}
		return Match{}, ErrRouteNotFound
	}

	hs, ok := n.handlers[strings.ToUpper(method)]
	if !ok {
		if n.isLeaf() {
			return Match{}, ErrMethodNotAllowed
		}
		return Match{}, ErrRouteNotFound
	}

	return Match{Handlers: hs, Params: params}, nil
}

// Mount flattens every route of sub into r under the given prefix. This is
// a one-time structural merge at registration time: after mounting, sub's
// identity plays no part in dispatch.
func (r *Router) Mount(prefix string, sub *Router) {
	if sub == nil {
		panic(ErrNilRouter)
	}
	sub.root.walk("", func(method, pattern string) {
		hs := sub.lookupExact(method, pattern)
		mounted := strings.TrimSuffix(prefix, "/") + pattern
		r.Add(method, mounted, hs...)
	})
}

// ListRoutes returns every registered method+pattern pair via depth-first
// traversal. Intended for diagnostics, not the request hot path.
func (r *Router) ListRoutes() []Route {
	routes := []Route{}
	r.root.walk("", func(method, pattern string) {
		routes = append(routes, Route{Method: method, Pattern: pattern})
	})
	return routes
}

// lookupExact retrieves the chain registered at the literal pattern,
// following parameter segments structurally rather than by capture.
func (r *Router) lookupExact(method, pattern string) []handler.HandlerFunc {
	n := r.root
	for _, seg := range splitPath(pattern) {
		if strings.HasPrefix(seg, ":") {
			if n.paramChild == nil {
				return nil
			}
			n = n.paramChild
			continue
		}
		c, ok := n.children[seg]
		if !ok {
			return nil
		}
		n = c
	}
	return n.handlers[method]
}
