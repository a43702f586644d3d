// Package resource holds the five-operation CRUD contract shared by every
// resource the API exposes: list, get by id, create, full replace and delete.
// A resource plugs in an entity type, its wire DTO and a Mapper between them.
package resource

import "context"

// Repository persists entities of one kind. GetByID returns (nil, nil) when
// the id is absent. Replace and Delete report whether a row matched.
type Repository[E any] interface {
	List(ctx context.Context) ([]*E, error)
	GetByID(ctx context.Context, id int64) (*E, error)
	Create(ctx context.Context, entity *E) error
	Replace(ctx context.Context, id int64, entity *E) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Mapper translates between the wire DTO and the entity. ToEntity enforces
// the entity invariants and returns an *internal.AppError when they fail.
type Mapper[E any, D any] interface {
	ToEntity(dto D) (*E, error)
	ToDTO(entity *E) D
	IDOf(dto D) int64
}

// Guard runs after mapping and before a write reaches the repository.
type Guard[E any] func(ctx context.Context, entity *E) error
