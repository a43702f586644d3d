package department

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/employee-directory/internal"
	"github.com/frahmantamala/employee-directory/internal/core/resource"
)

type RepositoryAPI interface {
	resource.Repository[Department]
	Exists(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	*resource.Service[Department, DepartmentDTO]
	repo RepositoryAPI
}

func NewService(repo RepositoryAPI, cfg internal.ResourceConfig, logger *slog.Logger) *Service {
	base := resource.NewService[Department, DepartmentDTO]("department", repo, Mapper{}, internal.ErrCodeDepartmentNotFound, logger).
		WithStrictReplace(cfg.StrictReplace())

	return &Service{
		Service: base,
		repo:    repo,
	}
}

// Exists reports whether a department with id is stored.
func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	return s.repo.Exists(ctx, id)
}
