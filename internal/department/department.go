package department

import (
	errors "github.com/frahmantamala/employee-directory/internal"
	"github.com/frahmantamala/employee-directory/internal/core/common/validation"
	departmentDatamodel "github.com/frahmantamala/employee-directory/internal/core/datamodel/department"
)

// Department is an organizational unit. Its employees are not held here; they
// are looked up by department id when asked for.
type Department struct {
	ID   int64
	Name string
}

func NewDepartment(name string) *Department {
	return &Department{Name: name}
}

func (d *Department) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("departmentName", d.Name).Required()
	return v.Validate()
}

func ToDataModel(d *Department) *departmentDatamodel.Department {
	return &departmentDatamodel.Department{
		ID:   d.ID,
		Name: d.Name,
	}
}

func FromDataModel(d *departmentDatamodel.Department) *Department {
	return &Department{
		ID:   d.ID,
		Name: d.Name,
	}
}
