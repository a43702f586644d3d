package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	errors "github.com/frahmantamala/employee-directory/internal"
	"github.com/frahmantamala/employee-directory/internal/transport"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

// RecoveryMiddleware answers a panicking handler with the generic 500
// envelope. The panic value and stack only reach the log.
func RecoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	base := transport.NewBaseHandler(logger)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				base.Logger.ErrorContext(r.Context(), "handler panicked",
					"panic", fmt.Sprint(rec),
					"request_id", chiMiddleware.GetReqID(r.Context()),
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()))

				base.HandleError(w, errors.NewInternalError("internal server error", nil))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
