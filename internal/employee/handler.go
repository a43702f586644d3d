package employee

import (
	"context"
	"net/http"

	"github.com/frahmantamala/employee-directory/internal/core/resource"
	"github.com/frahmantamala/employee-directory/internal/transport"
	"github.com/go-chi/chi"
)

const BasePath = "/api/employee"

type ServiceAPI interface {
	resource.ServiceAPI[EmployeeDTO]
	ListByDepartment(ctx context.Context, departmentID int64) ([]EmployeeDTO, error)
}

type Handler struct {
	*resource.Handler[EmployeeDTO]
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		Handler: resource.NewHandler[EmployeeDTO](baseHandler, service, "employee", BasePath, Mapper{}.IDOf),
		Service: service,
	}
}

// ListByDepartment serves GET /api/department/{id}/employees.
func (h *Handler) ListByDepartment(w http.ResponseWriter, r *http.Request) {
	departmentID, appErr := h.PathID(r, "id")
	if appErr != nil {
		h.Logger.Warn("ListByDepartment: invalid department id", "id", chi.URLParam(r, "id"))
		h.HandleError(w, appErr)
		return
	}

	employees, err := h.Service.ListByDepartment(r.Context(), departmentID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, employees)
}
