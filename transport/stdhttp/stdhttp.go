package stdhttp

import (
	"io"
	"net/http"
	"strconv"

	"github.com/plumeframe/plume/core/app"
	"github.com/plumeframe/plume/core/handler"
	"github.com/plumeframe/plume/core/httpx"
	"github.com/plumeframe/plume/pkg/clientip"
)

// binding adapts the dispatch pipeline to net/http's streaming server model.
type binding struct {
	app          *app.App
	trust        clientip.Policy
	maxBodyBytes int64
}

// Handler binds an application to net/http. The returned handler builds the
// request facade from the incoming *http.Request, dispatches it, and
// flushes the response facade to the ResponseWriter.
func Handler(a *app.App, opts ...Option) http.Handler {
	b := &binding{
		app:          a,
		trust:        clientip.TrustNone(),
		maxBodyBytes: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewFromConfig builds the binding from environment-derived configuration.
func NewFromConfig(a *app.App, cfg Config, opts ...Option) (http.Handler, error) {
	trust, err := clientip.Parse(cfg.TrustProxy)
	if err != nil {
		return nil, err
	}
	base := []Option{WithTrustPolicy(trust)}
	if cfg.MaxBodyBytes > 0 {
		base = append(base, WithMaxBodyBytes(cfg.MaxBodyBytes))
	}
	return Handler(a, append(base, opts...)...), nil
}

func (b *binding) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req := b.buildRequest(r)
	res := httpx.NewResponseWriter()
	ctx := handler.NewContext(r.Context(), req, res)

	b.app.Dispatch(ctx)

	flush(w, res)
}

// buildRequest normalizes the streaming request into the facade. The body
// is buffered and decoded up front for mutating methods so handlers see a
// ready map instead of a stream.
func (b *binding) buildRequest(r *http.Request) *httpx.Request {
	req := &httpx.Request{
		Method:     r.Method,
		Path:       r.URL.Path,
		RawQuery:   r.URL.RawQuery,
		Header:     r.Header,
		RemoteAddr: r.RemoteAddr,
		ClientIP:   b.trust.Resolve(r.RemoteAddr, r.Header),
		Body:       map[string]any{},
	}

	if httpx.IsMutating(r.Method) && r.Body != nil {
		// Read errors are treated like malformed bodies: the request
		// proceeds with whatever bytes arrived.
		raw, _ := io.ReadAll(io.LimitReader(r.Body, b.maxBodyBytes))
		req.RawBody = raw
		req.Body = httpx.ParseBody(r.Header.Get("Content-Type"), raw)
	}

	return req
}

// flush writes the accumulated facade state to the real transport exactly
// once: headers first, then status, then body.
func flush(w http.ResponseWriter, res *httpx.ResponseWriter) {
	dst := w.Header()
	for k, vs := range res.Header() {
		dst[k] = vs
	}

	body := res.Body()
	if _, ok := dst["Content-Length"]; !ok && len(body) > 0 {
		dst.Set("Content-Length", strconv.Itoa(len(body)))
	}

	w.WriteHeader(res.Status())
	if len(body) > 0 {
		_, _ = w.Write(body)
	}
}
