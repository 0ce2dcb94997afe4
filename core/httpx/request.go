package httpx

import (
	"encoding/json"
	"net/http"
	"net/url"
)

// Request is the transport-agnostic request facade passed through the
// dispatch pipeline. It is built once by a transport binding, owned
// exclusively by its single in-flight request, and never shared, so no
// synchronization is needed on its lazy fields.
type Request struct {
	// Method is the uppercased HTTP method.
	Method string

	// Path is the request path with any query string stripped.
	Path string

	// RawQuery holds the unparsed query string. Use Query for parsed access.
	RawQuery string

	// Header carries the request headers as received from the transport.
	Header http.Header

	// RemoteAddr is the raw transport-level peer address (host:port or host).
	RemoteAddr string

	// ClientIP is the resolved client address after the trust-proxy policy
	// has been applied by the transport binding.
	ClientIP string

	// Body holds the decoded request body for mutating methods. It is always
	// non-nil after facade construction; an unparseable or absent body yields
	// an empty map.
	Body map[string]any

	// RawBody is the buffered request body exactly as received.
	RawBody []byte

	params  map[string]string
	query   url.Values
	cookies []*http.Cookie
}

// Param returns the path parameter captured under key, or "" when absent.
func (r *Request) Param(key string) string {
	if r.params == nil {
		return ""
	}
	return r.params[key]
}

// Params returns the captured path parameters. The returned map may be nil
// when the matched route has no dynamic segments.
func (r *Request) Params() map[string]string {
	return r.params
}

// SetParams merges captured path parameters into the request. Called by the
// dispatch pipeline after route resolution.
func (r *Request) SetParams(params map[string]string) {
	if len(params) == 0 {
		return
	}
	if r.params == nil {
		r.params = make(map[string]string, len(params))
	}
	for k, v := range params {
		r.params[k] = v
	}
}

// Query returns the parsed query string. Parsing happens on first use;
// malformed pairs are dropped the same way net/url drops them.
func (r *Request) Query() url.Values {
	if r.query == nil {
		q, err := url.ParseQuery(r.RawQuery)
		if err != nil && q == nil {
			q = url.Values{}
		}
		r.query = q
	}
	return r.query
}

// QueryParam returns the first query value for key, or "" when absent.
func (r *Request) QueryParam(key string) string {
	return r.Query().Get(key)
}

// Cookies returns the request cookies, parsed lazily from the Cookie header.
func (r *Request) Cookies() []*http.Cookie {
	if r.cookies == nil {
		hr := http.Request{Header: r.Header}
		r.cookies = hr.Cookies()
		if r.cookies == nil {
			r.cookies = []*http.Cookie{}
		}
	}
	return r.cookies
}

// Cookie returns the named cookie or http.ErrNoCookie.
func (r *Request) Cookie(name string) (*http.Cookie, error) {
	for _, c := range r.Cookies() {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, http.ErrNoCookie
}

// DecodeBody unmarshals the raw request body into v. Unlike the Body map,
// which recovers silently from malformed input, DecodeBody reports decoding
// errors so handlers can reject bad payloads explicitly.
func (r *Request) DecodeBody(v any) error {
	return json.Unmarshal(r.RawBody, v)
}
