package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/CashPoolRPG_Go/internal/domain"
	"github.com/osse101/CashPoolRPG_Go/internal/logger"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode before writing headers so an encoding failure can still become a 500.
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{Error: message, Code: code})
}

// mapServiceError converts a service error into a status code, an error code
// and a user-facing message. Domain errors carry readable detail and are
// passed through; storage and unknown failures are replaced by generic text.
func mapServiceError(err error) (int, string, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrCodeInternal, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrStorage):
		return http.StatusInternalServerError, ErrCodeStorage, ErrMsgStorageUnavailable
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, ErrCodeNotFound, err.Error()
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrCodeInvalidInput, err.Error()
	case errors.Is(err, domain.ErrInsufficientResource):
		return http.StatusBadRequest, ErrCodeInsufficientResource, err.Error()
	case errors.Is(err, domain.ErrStateConflict):
		return http.StatusConflict, ErrCodeStateConflict, err.Error()
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden, ErrCodeUnauthorized, err.Error()
	}
	return http.StatusInternalServerError, ErrCodeInternal, ErrMsgGenericServerError
}

// respondServiceError logs err at a level matching its category and writes
// the mapped response.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, code, message := mapServiceError(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err, "code", code)
	}
	respondError(w, status, code, message)
}
