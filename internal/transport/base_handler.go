package transport

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	errors "github.com/frahmantamala/employee-directory/internal"
	"github.com/frahmantamala/employee-directory/pkg/logger"
	"github.com/go-chi/chi"
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

// HandleError writes the AppError envelope with the error's status code.
func (h *BaseHandler) HandleError(w http.ResponseWriter, appErr *errors.AppError) {
	status, body := appErr.ToHTTPResponse()
	h.WriteJSON(w, status, body)
}

// HandleServiceError maps any service error onto a response. Errors that are
// not an AppError become an opaque 500; their text never reaches the client.
func (h *BaseHandler) HandleServiceError(w http.ResponseWriter, err error) {
	appErr, ok := errors.IsAppError(err)
	if !ok {
		h.Logger.Error("unexpected service error", "error", err)
		appErr = errors.NewInternalError("internal server error", err)
	}

	switch {
	case appErr.StatusCode >= http.StatusInternalServerError:
		h.Logger.Error("service failure", "code", appErr.Code, "error", appErr.Error())
	case errors.IsNotFound(appErr):
		h.Logger.Debug("resource not found", "code", appErr.Code, "message", appErr.Message)
	default:
		h.Logger.Info("request rejected", "code", appErr.Code, "reason", appErr.GetDetailedMessage())
	}
	h.HandleError(w, appErr)
}

// DecodeJSON decodes the request body into dst. Any failure is reported as an
// INVALID_BODY validation error.
func (h *BaseHandler) DecodeJSON(r *http.Request, dst interface{}) *errors.AppError {
	if r.Body == nil || r.Body == http.NoBody {
		return errors.NewValidationError("request body is required", errors.ErrCodeInvalidBody)
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.NewValidationError(fmt.Sprintf("invalid request body: %v", err), errors.ErrCodeInvalidBody).WithCause(err)
	}
	return nil
}

// PathID parses the named chi URL parameter as an int64 id.
func (h *BaseHandler) PathID(r *http.Request, param string) (int64, *errors.AppError) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.NewValidationError(fmt.Sprintf("invalid id %q", raw), errors.ErrCodeInvalidID)
	}
	return id, nil
}
