package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/coursehub/backend/libs/apperrors"
	"github.com/coursehub/backend/libs/middlewares"
	"go.uber.org/zap"
)

// BaseHandler provides common handler functionality
type BaseHandler struct {
	Logger *zap.Logger
}

// RespondJSON sends a JSON response
func (h *BaseHandler) RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// RespondError sends an error JSON response
func (h *BaseHandler) RespondError(w http.ResponseWriter, status int, message string) {
	h.RespondJSON(w, status, map[string]string{"error": message})
}

// RespondServiceError maps a service error onto its HTTP status and logs it.
// Internal failures are logged at error level and hidden from the client.
func (h *BaseHandler) RespondServiceError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	status := apperrors.HTTPStatus(err)
	fields := []zap.Field{
		zap.Error(err),
		zap.String("request_id", middlewares.GetRequestID(r.Context())),
	}
	if status >= http.StatusInternalServerError {
		h.Logger.Error(msg, fields...)
	} else {
		h.Logger.Info(msg, fields...)
	}
	h.RespondError(w, status, apperrors.Message(err))
}

// DecodeJSON decodes the request body into dst, rejecting unknown trailing data
func (h *BaseHandler) DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperrors.Validation("request body is required")
		}
		return apperrors.Validation(fmt.Sprintf("invalid request body: %v", err))
	}
	if dec.More() {
		return apperrors.Validation("invalid request body: unexpected trailing data")
	}
	return nil
}
