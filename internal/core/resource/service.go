package resource

import (
	"context"
	"fmt"
	"log/slog"

	errors "github.com/frahmantamala/employee-directory/internal"
)

type Service[E any, D any] struct {
	name          string
	repo          Repository[E]
	mapper        Mapper[E, D]
	notFoundCode  errors.ErrorCode
	strictReplace bool
	guard         Guard[E]
	logger        *slog.Logger
}

func NewService[E any, D any](name string, repo Repository[E], mapper Mapper[E, D], notFoundCode errors.ErrorCode, logger *slog.Logger) *Service[E, D] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service[E, D]{
		name:         name,
		repo:         repo,
		mapper:       mapper,
		notFoundCode: notFoundCode,
		logger:       logger,
	}
}

// WithStrictReplace makes Replace answer not found when no row has the id.
// Without it a replace of a missing id succeeds and changes nothing.
func (s *Service[E, D]) WithStrictReplace(strict bool) *Service[E, D] {
	s.strictReplace = strict
	return s
}

func (s *Service[E, D]) WithGuard(guard Guard[E]) *Service[E, D] {
	s.guard = guard
	return s
}

func (s *Service[E, D]) List(ctx context.Context) ([]D, error) {
	entities, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list from repository", "resource", s.name, "error", err)
		return nil, errors.NewInternalError(fmt.Sprintf("failed to list %s", s.name), err)
	}

	dtos := make([]D, 0, len(entities))
	for _, entity := range entities {
		dtos = append(dtos, s.mapper.ToDTO(entity))
	}
	return dtos, nil
}

func (s *Service[E, D]) Get(ctx context.Context, id int64) (D, error) {
	var zero D

	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get from repository", "resource", s.name, "id", id, "error", err)
		return zero, errors.NewInternalError(fmt.Sprintf("failed to get %s", s.name), err)
	}
	if entity == nil {
		return zero, s.notFound(id)
	}

	return s.mapper.ToDTO(entity), nil
}

// Create persists the DTO as a new entity and returns it as stored, with the
// id the store assigned. Any id carried by the DTO is ignored.
func (s *Service[E, D]) Create(ctx context.Context, dto D) (D, error) {
	var zero D

	entity, err := s.toEntity(ctx, dto)
	if err != nil {
		return zero, err
	}

	if err := s.repo.Create(ctx, entity); err != nil {
		s.logger.Error("failed to create in repository", "resource", s.name, "error", err)
		return zero, errors.NewInternalError(fmt.Sprintf("failed to create %s", s.name), err)
	}

	created := s.mapper.ToDTO(entity)
	s.logger.Info("created", "resource", s.name, "id", s.mapper.IDOf(created))
	return created, nil
}

// Replace overwrites every field of the entity at id. The DTO must carry the
// same id as the path; a mismatch is rejected before anything is written.
func (s *Service[E, D]) Replace(ctx context.Context, id int64, dto D) error {
	if bodyID := s.mapper.IDOf(dto); bodyID != id {
		return errors.NewValidationError(
			fmt.Sprintf("%s id %d in body does not match id %d in path", s.name, bodyID, id),
			errors.ErrCodeIDMismatch,
		)
	}

	entity, err := s.toEntity(ctx, dto)
	if err != nil {
		return err
	}

	matched, err := s.repo.Replace(ctx, id, entity)
	if err != nil {
		s.logger.Error("failed to replace in repository", "resource", s.name, "id", id, "error", err)
		return errors.NewInternalError(fmt.Sprintf("failed to update %s", s.name), err)
	}
	if !matched {
		if s.strictReplace {
			return s.notFound(id)
		}
		s.logger.Warn("replace matched no row", "resource", s.name, "id", id)
	}

	return nil
}

func (s *Service[E, D]) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete from repository", "resource", s.name, "id", id, "error", err)
		return errors.NewInternalError(fmt.Sprintf("failed to delete %s", s.name), err)
	}
	if !deleted {
		return s.notFound(id)
	}

	s.logger.Info("deleted", "resource", s.name, "id", id)
	return nil
}

func (s *Service[E, D]) toEntity(ctx context.Context, dto D) (*E, error) {
	entity, err := s.mapper.ToEntity(dto)
	if err != nil {
		return nil, err
	}

	if s.guard != nil {
		if err := s.guard(ctx, entity); err != nil {
			return nil, err
		}
	}
	return entity, nil
}

func (s *Service[E, D]) notFound(id int64) *errors.AppError {
	return errors.NewNotFoundError(fmt.Sprintf("%s %d not found", s.name, id), s.notFoundCode)
}
