package postgres

import (
	"context"
	"time"

	departmentDatamodel "github.com/frahmantamala/employee-directory/internal/core/datamodel/department"
	resourcePostgres "github.com/frahmantamala/employee-directory/internal/core/resource/postgres"
	"github.com/frahmantamala/employee-directory/internal/department"
	"gorm.io/gorm"
)

type DepartmentRepository struct {
	*resourcePostgres.Repository[department.Department, departmentDatamodel.Department, *departmentDatamodel.Department]
}

func NewDepartmentRepository(db *gorm.DB, queryTimeout time.Duration) department.RepositoryAPI {
	return &DepartmentRepository{
		Repository: resourcePostgres.NewRepository[department.Department, departmentDatamodel.Department, *departmentDatamodel.Department](
			db, queryTimeout, department.ToDataModel, department.FromDataModel,
		),
	}
}

func (r *DepartmentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	db, cancel := r.Session(ctx)
	defer cancel()

	var count int64
	if err := db.Model(&departmentDatamodel.Department{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, resourcePostgres.WrapError("exists", err)
	}
	return count > 0, nil
}
