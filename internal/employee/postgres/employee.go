package postgres

import (
	"context"
	"time"

	employeeDatamodel "github.com/frahmantamala/employee-directory/internal/core/datamodel/employee"
	resourcePostgres "github.com/frahmantamala/employee-directory/internal/core/resource/postgres"
	"github.com/frahmantamala/employee-directory/internal/employee"
	"gorm.io/gorm"
)

type EmployeeRepository struct {
	*resourcePostgres.Repository[employee.Employee, employeeDatamodel.Employee, *employeeDatamodel.Employee]
}

func NewEmployeeRepository(db *gorm.DB, queryTimeout time.Duration) employee.RepositoryAPI {
	return &EmployeeRepository{
		Repository: resourcePostgres.NewRepository[employee.Employee, employeeDatamodel.Employee, *employeeDatamodel.Employee](
			db, queryTimeout, employee.ToDataModel, employee.FromDataModel,
		),
	}
}

// ListByDepartment joins employees to their department, so rows that point at
// a deleted department are left out.
func (r *EmployeeRepository) ListByDepartment(ctx context.Context, departmentID int64) ([]*employee.Employee, error) {
	db, cancel := r.Session(ctx)
	defer cancel()

	var rows []employeeDatamodel.Employee
	err := db.InnerJoins("Department").
		Where("employees.department_id = ?", departmentID).
		Order("employees.id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, resourcePostgres.WrapError("list by department", err)
	}
	return r.FromRows(rows), nil
}
