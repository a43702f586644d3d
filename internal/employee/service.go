package employee

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/frahmantamala/employee-directory/internal"
	"github.com/frahmantamala/employee-directory/internal/core/resource"
)

type RepositoryAPI interface {
	resource.Repository[Employee]
	ListByDepartment(ctx context.Context, departmentID int64) ([]*Employee, error)
}

// DepartmentChecker is the view of the department store employees need.
type DepartmentChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	*resource.Service[Employee, EmployeeDTO]
	repo        RepositoryAPI
	departments DepartmentChecker
	logger      *slog.Logger
}

// NewService builds the employee service. With cfg.CheckDepartmentReference
// set, writes naming a department that does not exist are rejected.
func NewService(repo RepositoryAPI, departments DepartmentChecker, cfg internal.ResourceConfig, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Service{
		repo:        repo,
		departments: departments,
		logger:      logger,
	}

	s.Service = resource.NewService[Employee, EmployeeDTO]("employee", repo, Mapper{}, internal.ErrCodeEmployeeNotFound, logger).
		WithStrictReplace(cfg.StrictReplace())
	if cfg.CheckDepartmentReference {
		s.Service.WithGuard(s.checkDepartmentReference)
	}

	return s
}

// ListByDepartment returns the employees whose departmentId is departmentID.
func (s *Service) ListByDepartment(ctx context.Context, departmentID int64) ([]EmployeeDTO, error) {
	exists, err := s.departments.Exists(ctx, departmentID)
	if err != nil {
		s.logger.Error("failed to check department", "department_id", departmentID, "error", err)
		return nil, internal.NewInternalError("failed to list department employees", err)
	}
	if !exists {
		return nil, internal.NewNotFoundError(fmt.Sprintf("department %d not found", departmentID), internal.ErrCodeDepartmentNotFound)
	}

	employees, err := s.repo.ListByDepartment(ctx, departmentID)
	if err != nil {
		s.logger.Error("failed to list employees by department", "department_id", departmentID, "error", err)
		return nil, internal.NewInternalError("failed to list department employees", err)
	}

	mapper := Mapper{}
	dtos := make([]EmployeeDTO, 0, len(employees))
	for _, e := range employees {
		dtos = append(dtos, mapper.ToDTO(e))
	}
	return dtos, nil
}

func (s *Service) checkDepartmentReference(ctx context.Context, e *Employee) error {
	exists, err := s.departments.Exists(ctx, e.DepartmentID)
	if err != nil {
		s.logger.Error("failed to check department reference", "department_id", e.DepartmentID, "error", err)
		return internal.NewInternalError("failed to check department", err)
	}
	if !exists {
		return internal.NewValidationError(
			fmt.Sprintf("department %d does not exist", e.DepartmentID),
			internal.ErrCodeInvalidDepartmentReference,
		)
	}
	return nil
}
