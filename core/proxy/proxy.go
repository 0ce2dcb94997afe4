package proxy

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/plumeframe/plume/core/handler"
	"github.com/plumeframe/plume/core/response"
)

// forwarder rewrites facade requests onto a target origin and copies the
// upstream response back into the facade.
type forwarder struct {
	target      string
	client      *retryablehttp.Client
	stripPrefix string
	maxBody     int64
}

// Option configures a forwarder.
type Option func(*forwarder)

// WithClient replaces the default retrying HTTP client.
func WithClient(c *retryablehttp.Client) Option {
	return func(f *forwarder) {
		if c != nil {
			f.client = c
		}
	}
}

// WithStripPrefix removes the given prefix from the request path before it
// is appended to the target, so a proxy mounted at /api can forward /api/x
// as /x.
func WithStripPrefix(prefix string) Option {
	return func(f *forwarder) {
		f.stripPrefix = "/" + strings.Trim(prefix, "/")
	}
}

// WithLogger routes the retry client's internal logging to the given logger.
func WithLogger(logger *slog.Logger) Option {
	return func(f *forwarder) {
		if logger != nil {
			f.client.Logger = slog.NewLogLogger(logger.Handler(), slog.LevelDebug)
		}
	}
}

// WithMaxResponseBytes caps how much upstream body is copied back.
func WithMaxResponseBytes(n int64) Option {
	return func(f *forwarder) {
		if n > 0 {
			f.maxBody = n
		}
	}
}

// Forward returns a handler that forwards the request to the target origin
// and writes the upstream status, headers, and body into the response
// facade. Outbound calls retry transient failures; an upstream that stays
// unreachable surfaces as a 502.
func Forward(target string, opts ...Option) handler.HandlerFunc {
	client := retryablehttp.NewClient()
	client.RetryMax = 2
	client.RetryWaitMin = 100 * time.Millisecond
	client.RetryWaitMax = time.Second
	client.Logger = nil

	f := &forwarder{
		target:  strings.TrimSuffix(target, "/"),
		client:  client,
		maxBody: 10 << 20,
	}
	for _, opt := range opts {
		opt(f)
	}

	return f.serve
}

func (f *forwarder) serve(ctx *handler.Context) error {
	req := ctx.Request()

	path := req.Path
	if f.stripPrefix != "" && f.stripPrefix != "/" {
		trimmed := strings.TrimPrefix("/"+strings.Trim(path, "/"), f.stripPrefix)
		if trimmed == "" {
			trimmed = "/"
		}
		path = trimmed
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	u := f.target + path
	if req.RawQuery != "" {
		u += "?" + req.RawQuery
	}

	var body io.Reader
	if len(req.RawBody) > 0 {
		body = bytes.NewReader(req.RawBody)
	}

	out, err := retryablehttp.NewRequestWithContext(ctx, req.Method, u, body)
	if err != nil {
		return fmt.Errorf("proxy: build upstream request: %w", err)
	}

	for k, vs := range req.Header {
		if isHopByHop(k) {
			continue
		}
		out.Header[k] = vs
	}
	if req.ClientIP != "" {
		out.Header.Add("X-Forwarded-For", req.ClientIP)
	}

	resp, err := f.client.Do(out)
	if err != nil {
		return response.ErrBadGateway.WithError(err)
	}
	defer resp.Body.Close()

	res := ctx.Response()
	for k, vs := range resp.Header {
		if isHopByHop(k) {
			continue
		}
		res.Header()[k] = vs
	}
	res.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(res, io.LimitReader(resp.Body, f.maxBody)); err != nil {
		return fmt.Errorf("proxy: copy upstream body: %w", err)
	}
	return nil
}

// isHopByHop filters headers that must not be forwarded between hops.
func isHopByHop(name string) bool {
	switch http.CanonicalHeaderKey(name) {
	case "Connection", "Keep-Alive", "Proxy-Authenticate", "Proxy-Authorization",
		"Te", "Trailer", "Transfer-Encoding", "Upgrade", "Content-Length":
		return true
	}
	return false
}
