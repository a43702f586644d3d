package department

import (
	"github.com/frahmantamala/employee-directory/internal/core/resource"
	"github.com/frahmantamala/employee-directory/internal/transport"
)

const BasePath = "/api/department"

type Handler = resource.Handler[DepartmentDTO]

func NewHandler(baseHandler *transport.BaseHandler, service resource.ServiceAPI[DepartmentDTO]) *Handler {
	return resource.NewHandler[DepartmentDTO](baseHandler, service, "department", BasePath, Mapper{}.IDOf)
}
