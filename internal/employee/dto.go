package employee

// EmployeeDTO is the wire form of an Employee. Dates may be null or omitted
// on input; responses always carry them, using 0001-01-01T00:00:00Z for a
// date that was never supplied.
type EmployeeDTO struct {
	EmployeeID   int64   `json:"employeeId"`
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	DateOfBirth  *Date   `json:"dateOfBirth"`
	HireDate     *Date   `json:"hireDate"`
	Salary       float64 `json:"salary"`
	DepartmentID int64   `json:"departmentId"`
}

type Mapper struct{}

func (Mapper) ToEntity(dto EmployeeDTO) (*Employee, error) {
	e := &Employee{
		ID:           dto.EmployeeID,
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		DateOfBirth:  NormalizeDate(dto.DateOfBirth),
		HireDate:     NormalizeDate(dto.HireDate),
		Salary:       SalaryFromFloat(dto.Salary),
		DepartmentID: dto.DepartmentID,
	}
	if appErr := e.Validate(); appErr != nil {
		return nil, appErr
	}
	return e, nil
}

func (Mapper) ToDTO(e *Employee) EmployeeDTO {
	return EmployeeDTO{
		EmployeeID:   e.ID,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		DateOfBirth:  &Date{Time: e.DateOfBirth.UTC()},
		HireDate:     &Date{Time: e.HireDate.UTC()},
		Salary:       e.Salary.InexactFloat64(),
		DepartmentID: e.DepartmentID,
	}
}

func (Mapper) IDOf(dto EmployeeDTO) int64 {
	return dto.EmployeeID
}
