package response

import (
	"encoding/json"
	"net/http"

	"github.com/plumeframe/plume/core/httpx"
)

// JSON writes v as an application/json response with 200 OK status.
func JSON(w *httpx.ResponseWriter, v any) error {
	return JSONWithStatus(w, v, http.StatusOK)
}

// JSONWithStatus writes v as an application/json response with a custom
// status code. A zero status defaults to 200, or 204 when v is nil; 204 and
// 304 responses carry no body per the HTTP spec.
func JSONWithStatus(w *httpx.ResponseWriter, v any, status int) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	if status == 0 {
		if v == nil {
			status = http.StatusNoContent
		} else {
			status = http.StatusOK
		}
	}

	w.WriteHeader(status)

	switch status {
	case http.StatusNoContent, http.StatusNotModified:
		return nil
	}

	return json.NewEncoder(w).Encode(v)
}
