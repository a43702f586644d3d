package employee

import (
	"time"

	"github.com/frahmantamala/employee-directory/internal/core/datamodel/department"
	"github.com/shopspring/decimal"
)

// Employee belongs to a Department through DepartmentID. The association
// lives on the model only: gorm must be opened with
// DisableForeignKeyConstraintWhenMigrating, and the migrations declare no
// constraint, so deleting a department leaves its employees in place.
type Employee struct {
	ID           int64           `gorm:"primaryKey"`
	FirstName    string          `gorm:"column:first_name;not null"`
	LastName     string          `gorm:"column:last_name;not null"`
	DateOfBirth  time.Time       `gorm:"column:date_of_birth;not null"`
	HireDate     time.Time       `gorm:"column:hire_date;not null"`
	Salary       decimal.Decimal `gorm:"column:salary;type:numeric(18,2);not null"`
	DepartmentID int64           `gorm:"column:department_id;index;not null"`

	Department *department.Department `gorm:"foreignKey:DepartmentID"`
}

func (Employee) TableName() string {
	return "employees"
}

func (e *Employee) GetID() int64   { return e.ID }
func (e *Employee) SetID(id int64) { e.ID = id }
