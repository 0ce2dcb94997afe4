package app

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/plumeframe/plume/core/handler"
	"github.com/plumeframe/plume/core/logger"
	"github.com/plumeframe/plume/core/router"
)

// App owns the routing tree, the global middleware stack, and the proxy
// table, and drives the dispatch pipeline for every incoming request.
//
// Registration (AddRoute, Use, Mount, Proxy) is a startup-time activity.
// Once requests are flowing, all registered state is read-only and shared
// across concurrent dispatches without locking; everything mutable lives in
// the per-request Context.
type App struct {
	router         *router.Router
	middlewares    []handler.Middleware
	proxies        []proxyRoute
	errorHandler   handler.ErrorHandler
	logger         *slog.Logger
	requestTimeout time.Duration
}

// proxyRoute is a prefix-matched handler checked before generic routing.
type proxyRoute struct {
	prefix string
	fn     handler.HandlerFunc
}

// New creates an App with an empty router and default error handling.
func New(opts ...Option) *App {
	a := &App{
		logger: logger.Discard(),
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.router == nil {
		a.router = router.New(router.WithLogger(a.logger))
	}
	if a.errorHandler == nil {
		a.errorHandler = defaultErrorHandler
	}

	return a
}

// AddRoute registers a handler chain for method at path. Handlers may be in
// any shape supported by handler.Adapt; unsupported shapes panic, since
// registration runs at startup.
func (a *App) AddRoute(method, path string, hs ...any) {
	if len(hs) == 0 {
		panic("app: route registered without handlers: " + method + " " + path)
	}
	a.router.Add(method, path, handler.AdaptAll(hs...)...)
}

// Get registers a handler chain for GET requests.
func (a *App) Get(path string, hs ...any) {
	a.AddRoute(http.MethodGet, path, hs...)
}

// Post registers a handler chain for POST requests.
func (a *App) Post(path string, hs ...any) {
	a.AddRoute(http.MethodPost, path, hs...)
}

// Put registers a handler chain for PUT requests.
func (a *App) Put(path string, hs ...any) {
	a.AddRoute(http.MethodPut, path, hs...)
}

// Delete registers a handler chain for DELETE requests.
func (a *App) Delete(path string, hs ...any) {
	a.AddRoute(http.MethodDelete, path, hs...)
}

// Patch registers a handler chain for PATCH requests.
func (a *App) Patch(path string, hs ...any) {
	a.AddRoute(http.MethodPatch, path, hs...)
}

// Head registers a handler chain for HEAD requests.
func (a *App) Head(path string, hs ...any) {
	a.AddRoute(http.MethodHead, path, hs...)
}

// Options registers a handler chain for OPTIONS requests.
func (a *App) Options(path string, hs ...any) {
	a.AddRoute(http.MethodOptions, path, hs...)
}

// Use appends global middleware executed before route handlers on every
// dispatched request, in registration order. Each argument is either a
// handler.Middleware or any adaptable handler shape; plain handlers are
// lifted into middleware that runs them and then continues the chain.
func (a *App) Use(mws ...any) {
	for _, mw := range mws {
		switch mw := mw.(type) {
		case handler.Middleware:
			a.middlewares = append(a.middlewares, mw)
		case func(handler.HandlerFunc) handler.HandlerFunc:
			a.middlewares = append(a.middlewares, handler.Middleware(mw))
		default:
			a.middlewares = append(a.middlewares, liftHandler(handler.MustAdapt(mw)))
		}
	}
}

// liftHandler turns a plain handler into pass-through middleware: the
// handler runs to completion, then the chain continues unless it errored or
// aborted.
func liftHandler(h handler.HandlerFunc) handler.Middleware {
	return func(next handler.HandlerFunc) handler.HandlerFunc {
		return func(ctx *handler.Context) error {
			if err := h(ctx); err != nil {
				return err
			}
			if ctx.Aborted() {
				return nil
			}
			return next(ctx)
		}
	}
}

// Mount flattens every route of sub into the application router under
// prefix. The merge happens now; sub can be discarded afterwards.
func (a *App) Mount(prefix string, sub *router.Router) {
	a.router.Mount(prefix, sub)
}

// Router exposes the underlying router, mainly so sub-routers can be built
// with the same logger before mounting.
func (a *App) Router() *router.Router {
	return a.router
}

// Routes returns all registered routes for diagnostics.
func (a *App) Routes() []router.Route {
	return a.router.ListRoutes()
}

// Proxy registers a handler for all paths under prefix, checked before
// generic routing. A proxy match short-circuits routing and the global
// middleware stack entirely for that request. Registration order decides
// between overlapping prefixes.
func (a *App) Proxy(prefix string, h any) {
	a.proxies = append(a.proxies, proxyRoute{
		prefix: "/" + strings.Trim(prefix, "/"),
		fn:     handler.MustAdapt(h),
	})
}

// matchProxy returns the first proxy handler whose prefix covers path on a
// segment boundary, or nil.
func (a *App) matchProxy(path string) handler.HandlerFunc {
	if len(a.proxies) == 0 {
		return nil
	}
	path = "/" + strings.Trim(path, "/")
	for _, p := range a.proxies {
		if path == p.prefix || strings.HasPrefix(path, p.prefix+"/") {
			return p.fn
		}
	}
	return nil
}
