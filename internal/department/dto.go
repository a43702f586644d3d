package department

type DepartmentDTO struct {
	DepartmentID   int64  `json:"departmentId"`
	DepartmentName string `json:"departmentName"`
}

// Mapper converts between DepartmentDTO and Department.
type Mapper struct{}

func (Mapper) ToEntity(dto DepartmentDTO) (*Department, error) {
	d := &Department{
		ID:   dto.DepartmentID,
		Name: dto.DepartmentName,
	}
	if appErr := d.Validate(); appErr != nil {
		return nil, appErr
	}
	return d, nil
}

func (Mapper) ToDTO(d *Department) DepartmentDTO {
	return DepartmentDTO{
		DepartmentID:   d.ID,
		DepartmentName: d.Name,
	}
}

func (Mapper) IDOf(dto DepartmentDTO) int64 {
	return dto.DepartmentID
}
