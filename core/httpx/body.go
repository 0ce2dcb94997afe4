package httpx

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
)

// IsMutating reports whether the method carries a request body that the
// transport bindings should buffer and decode before dispatch.
func IsMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	}
	return false
}

// ParseBody decodes a buffered request body according to its Content-Type.
// Both transport bindings go through this single function, which keeps
// their body handling behaviorally identical.
//
// Supported media types are application/json (top-level objects only) and
// application/x-www-form-urlencoded. Anything else, including malformed
// input, yields an empty map: body-parse failures are recovered silently
// and never surfaced to the client.
func ParseBody(contentType string, raw []byte) map[string]any {
	if len(raw) == 0 {
		return map[string]any{}
	}

	mediaType := contentType
	if idx := strings.Index(contentType, ";"); idx != -1 {
		mediaType = strings.TrimSpace(contentType[:idx])
	}

	switch mediaType {
	case "application/json":
		var body map[string]any
		if err := json.Unmarshal(raw, &body); err != nil || body == nil {
			return map[string]any{}
		}
		return body

	case "application/x-www-form-urlencoded":
		values, err := url.ParseQuery(string(raw))
		if err != nil {
			return map[string]any{}
		}
		body := make(map[string]any, len(values))
		for k, vs := range values {
			if len(vs) == 1 {
				body[k] = vs[0]
			} else {
				body[k] = vs
			}
		}
		return body
	}

	return map[string]any{}
}
