package transport

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/hr-records/internal"
	"github.com/frahmantamala/hr-records/internal/response"
	"github.com/frahmantamala/hr-records/pkg/logger"
)

// BaseHandler provides common functionality for HTTP handlers
type BaseHandler struct {
	Logger *slog.Logger
}

// NewBaseHandler creates a base handler with logger
func NewBaseHandler(lg *slog.Logger) *BaseHandler {
	if lg == nil {
		lg = logger.LoggerWrapper()
		if lg == nil {
			lg = slog.Default()
		}
	}
	return &BaseHandler{Logger: lg}
}

// WriteJSON writes a JSON response
func (h *BaseHandler) WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes a failure envelope. With no errs the message is the only
// entry of the errors list.
func (h *BaseHandler) WriteError(w http.ResponseWriter, status int, message string, errs ...string) {
	h.WriteJSON(w, status, response.Failure(message, errs...))
}

// HandleServiceError maps an error returned by a service onto the HTTP
// response. Application errors carry their own status; a request the client
// abandoned gets 499; anything else is an internal failure.
func (h *BaseHandler) HandleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if appErr, ok := internal.IsAppError(err); ok {
		status := appErr.StatusCode
		if status == 0 {
			status = http.StatusInternalServerError
		}
		h.WriteError(w, status, appErr.Message, appErr.Messages()...)
		return
	}

	if internal.IsCanceled(err) {
		logger.From(r.Context()).Debug("request cancelled by client", "path", r.URL.Path)
		h.WriteError(w, internal.StatusClientClosedRequest, "Request cancelled.")
		return
	}

	logger.From(r.Context()).Error("unhandled service error", "error", err, "path", r.URL.Path)
	h.WriteError(w, http.StatusInternalServerError, "Internal server error.")
}

// DecodeJSON reads the request body into dst. An empty or malformed body is
// a validation error.
func (h *BaseHandler) DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return internal.NewValidationError("request body is required", internal.ErrCodeInvalidRequest)
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return internal.NewValidationError("request body is required", internal.ErrCodeInvalidRequest)
		}
		return internal.NewValidationError("invalid request body: "+err.Error(), internal.ErrCodeInvalidRequest)
	}
	return nil
}

// ParseID reads the {id} route parameter.
func (h *BaseHandler) ParseID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, internal.NewValidationFieldError("id", "id must be a positive integer", internal.ErrCodeInvalidRequest)
	}
	return id, nil
}
