package rest

import (
	"log/slog"

	"github.com/frahmantamala/employee-directory/internal/department"
	"github.com/frahmantamala/employee-directory/internal/employee"
	"github.com/frahmantamala/employee-directory/internal/transport/middleware"
	"github.com/frahmantamala/employee-directory/internal/transport/swagger"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

const DocsPath = "/api/v1/docs"

// RegisterAllRoutes mounts every endpoint under /api. docs may be nil, which
// leaves the OpenAPI document and Swagger UI unrouted.
func RegisterAllRoutes(router *chi.Mux, healthHandler *HealthHandler, departmentHandler *department.Handler, employeeHandler *employee.Handler, docs *swagger.Docs, logger *slog.Logger) {
	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	if docs != nil {
		// Swagger UI route at root
		router.Handle("/swagger/*", swagger.Handler(DocsPath))
	}

	router.Route("/api", func(r chi.Router) {
		if healthHandler != nil {
			r.Get("/health", healthHandler.healthCheckHandler)
			r.Get("/ping", healthHandler.pingHandler)
		}

		if docs != nil {
			r.Get("/v1/docs", docs.ServeSpec)
		}

		if departmentHandler != nil {
			r.Route("/department", func(dr chi.Router) {
				departmentHandler.Routes(dr)

				if employeeHandler != nil {
					dr.Get("/{id}/employees", employeeHandler.ListByDepartment) // GET /department/:id/employees
				}
			})
		}

		if employeeHandler != nil {
			r.Route("/employee", employeeHandler.Routes)
		}
	})
}
