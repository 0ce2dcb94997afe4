package fetch

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/plumeframe/plume/core/app"
	"github.com/plumeframe/plume/core/handler"
	"github.com/plumeframe/plume/core/httpx"
	"github.com/plumeframe/plume/pkg/clientip"
)

// Request mirrors the Web fetch request contract: a fully materialized
// method, URL, header set, and body with no streaming involved.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte

	// RemoteAddr is the peer address when the host runtime knows one;
	// fetch-style hosts often only have header-derived addresses, which the
	// trust policy evaluates the same way as for the streaming transport.
	RemoteAddr string
}

// Response mirrors the Web fetch response contract.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// HandlerFunc is the fetch-style entry point: one synchronous call per
// request, producing a complete response.
type HandlerFunc func(ctx context.Context, req *Request) (*Response, error)

// binding adapts the dispatch pipeline to the fetch contract.
type binding struct {
	app   *app.App
	trust clientip.Policy
}

// Option configures the binding.
type Option func(*binding)

// WithTrustPolicy sets the client IP resolution policy.
func WithTrustPolicy(p clientip.Policy) Option {
	return func(b *binding) {
		b.trust = p
	}
}

// Handler binds an application to the fetch contract. The returned function
// runs the same dispatch pipeline as the net/http binding and therefore
// produces identical routing, middleware, and error behavior for identical
// method+path+headers+body.
func Handler(a *app.App, opts ...Option) HandlerFunc {
	b := &binding{
		app:   a,
		trust: clientip.TrustNone(),
	}
	for _, opt := range opts {
		opt(b)
	}

	return func(ctx context.Context, req *Request) (*Response, error) {
		hreq := b.buildRequest(req)
		res := httpx.NewResponseWriter()
		hctx := handler.NewContext(ctx, hreq, res)

		b.app.Dispatch(hctx)

		return &Response{
			Status: res.Status(),
			Header: res.Header().Clone(),
			Body:   append([]byte(nil), res.Body()...),
		}, nil
	}
}

// buildRequest normalizes a fetch request into the facade, going through
// the same body decoding and IP resolution paths as the streaming binding.
func (b *binding) buildRequest(r *Request) *httpx.Request {
	path, rawQuery := splitURL(r.URL)

	header := r.Header
	if header == nil {
		header = make(http.Header)
	}

	req := &httpx.Request{
		Method:     strings.ToUpper(r.Method),
		Path:       path,
		RawQuery:   rawQuery,
		Header:     header,
		RemoteAddr: r.RemoteAddr,
		ClientIP:   b.trust.Resolve(r.RemoteAddr, header),
		Body:       map[string]any{},
	}

	if httpx.IsMutating(req.Method) && len(r.Body) > 0 {
		req.RawBody = r.Body
		req.Body = httpx.ParseBody(header.Get("Content-Type"), r.Body)
	}

	return req
}

// splitURL extracts the path and raw query from an absolute or
// origin-relative URL string. An unparseable URL falls back to treating the
// whole string as a path, letting routing decide what to do with it.
func splitURL(raw string) (path, rawQuery string) {
	u, err := url.Parse(raw)
	if err != nil {
		if idx := strings.IndexByte(raw, '?'); idx != -1 {
			return raw[:idx], raw[idx+1:]
		}
		return raw, ""
	}
	if u.Path == "" {
		return "/", u.RawQuery
	}
	return u.Path, u.RawQuery
}
