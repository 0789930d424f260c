// Package httpapi exposes the tunedeck services over HTTP. Handlers decode
// the request, call exactly one service method and translate the result into
// the response envelope; no business rules live here.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/tunedeck/internal/common"
	"github.com/dmitrijs2005/tunedeck/internal/logging"
)

// envelope is the uniform response body. Status is "success" for 2xx,
// "fail" for 4xx and "error" for 5xx.
type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// statusOf maps service errors onto HTTP status codes. Unrecognized errors
// come back as 500 and must not leak details to the client.
func statusOf(err error) int {
	switch {
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, common.ErrDispatch):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, code int, body envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

func respondSuccess(w http.ResponseWriter, code int, message string, data any) {
	writeJSON(w, code, envelope{Status: "success", Message: message, Data: data})
}

func respondError(ctx context.Context, w http.ResponseWriter, logger logging.Logger, err error) {
	code := statusOf(err)
	if code >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", "error", err.Error())
		writeJSON(w, code, envelope{Status: "error", Message: "internal server error"})
		return
	}
	writeJSON(w, code, envelope{Status: "fail", Message: err.Error()})
}

func respondBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, envelope{Status: "fail", Message: message})
}

// decodeBody parses the JSON request body into dst.
func decodeBody(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
