package employee

import (
	"time"

	errors "github.com/frahmantamala/employee-directory/internal"
	"github.com/frahmantamala/employee-directory/internal/core/common/validation"
	employeeDatamodel "github.com/frahmantamala/employee-directory/internal/core/datamodel/employee"
	"github.com/shopspring/decimal"
)

const SalaryScale = 2

// MaxSalary is the first value that no longer fits numeric(18,2).
var MaxSalary = decimal.New(1, 16)

// Employee belongs to the department named by DepartmentID. A zero
// DateOfBirth or HireDate means the date was never supplied.
type Employee struct {
	ID           int64
	FirstName    string
	LastName     string
	DateOfBirth  time.Time
	HireDate     time.Time
	Salary       decimal.Decimal
	DepartmentID int64
}

func (e *Employee) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("firstName", e.FirstName).Required()
	v.Field("lastName", e.LastName).Required()
	v.Field("salary", e.Salary).
		NonNegative(errors.ErrCodeNegativeSalary).
		Below(MaxSalary, errors.ErrCodeValidationFailed)
	v.Field("departmentId", e.DepartmentID).MinInt(1, errors.ErrCodeValidationFailed)
	return v.Validate()
}

// SalaryFromFloat narrows a wire salary to two decimal places.
func SalaryFromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f).Round(SalaryScale)
}

// NormalizeDate maps an absent date to the zero time and a present one to UTC.
func NormalizeDate(d *Date) time.Time {
	if d == nil {
		return time.Time{}
	}
	return d.UTC()
}

func ToDataModel(e *Employee) *employeeDatamodel.Employee {
	return &employeeDatamodel.Employee{
		ID:           e.ID,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		DateOfBirth:  e.DateOfBirth,
		HireDate:     e.HireDate,
		Salary:       e.Salary,
		DepartmentID: e.DepartmentID,
	}
}

func FromDataModel(e *employeeDatamodel.Employee) *Employee {
	return &Employee{
		ID:           e.ID,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		DateOfBirth:  e.DateOfBirth.UTC(),
		HireDate:     e.HireDate.UTC(),
		Salary:       e.Salary,
		DepartmentID: e.DepartmentID,
	}
}
