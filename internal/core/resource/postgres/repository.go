package postgres

import (
	"context"
	stdErrors "errors"
	"fmt"
	"time"

	"github.com/frahmantamala/employee-directory/internal"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Row is the constraint on gorm row types: a pointer to the row struct that
// exposes its primary key.
type Row[M any] interface {
	*M
	GetID() int64
	SetID(id int64)
}

// Repository implements resource.Repository for entity E stored as row M.
type Repository[E any, M any, PM Row[M]] struct {
	db           *gorm.DB
	queryTimeout time.Duration
	toModel      func(*E) PM
	fromModel    func(PM) *E
}

func NewRepository[E any, M any, PM Row[M]](db *gorm.DB, queryTimeout time.Duration, toModel func(*E) PM, fromModel func(PM) *E) *Repository[E, M, PM] {
	return &Repository[E, M, PM]{
		db:           db,
		queryTimeout: queryTimeout,
		toModel:      toModel,
		fromModel:    fromModel,
	}
}

// Session returns a gorm handle bound to ctx and the query timeout.
func (r *Repository[E, M, PM]) Session(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	ctx, cancel := internal.QueryContext(ctx, r.queryTimeout)
	return r.db.WithContext(ctx), cancel
}

func (r *Repository[E, M, PM]) FromRows(rows []M) []*E {
	entities := make([]*E, 0, len(rows))
	for i := range rows {
		entities = append(entities, r.fromModel(PM(&rows[i])))
	}
	return entities
}

func (r *Repository[E, M, PM]) List(ctx context.Context) ([]*E, error) {
	db, cancel := r.Session(ctx)
	defer cancel()

	var rows []M
	if err := db.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, WrapError("list", err)
	}
	return r.FromRows(rows), nil
}

func (r *Repository[E, M, PM]) GetByID(ctx context.Context, id int64) (*E, error) {
	db, cancel := r.Session(ctx)
	defer cancel()

	var row M
	err := db.Where("id = ?", id).First(PM(&row)).Error
	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, WrapError("get", err)
	}
	return r.fromModel(PM(&row)), nil
}

// Create inserts the entity in a single statement. The store assigns the id,
// which is written back into entity.
func (r *Repository[E, M, PM]) Create(ctx context.Context, entity *E) error {
	db, cancel := r.Session(ctx)
	defer cancel()

	row := r.toModel(entity)
	row.SetID(0)
	if err := db.Create(row).Error; err != nil {
		return WrapError("create", err)
	}

	*entity = *r.fromModel(row)
	return nil
}

// Replace writes every column except the id of the row at id. The WHERE is
// explicit so a zero id matches nothing instead of tripping gorm's
// missing-where guard.
func (r *Repository[E, M, PM]) Replace(ctx context.Context, id int64, entity *E) (bool, error) {
	db, cancel := r.Session(ctx)
	defer cancel()

	row := r.toModel(entity)
	row.SetID(id)
	result := db.Model(PM(new(M))).Where("id = ?", id).Select("*").Omit("id").Updates(row)
	if result.Error != nil {
		return false, WrapError("replace", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *Repository[E, M, PM]) Delete(ctx context.Context, id int64) (bool, error) {
	db, cancel := r.Session(ctx)
	defer cancel()

	result := db.Where("id = ?", id).Delete(PM(new(M)))
	if result.Error != nil {
		return false, WrapError("delete", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// StorageError carries the Postgres diagnostics of a failed statement.
type StorageError struct {
	Op         string
	SQLState   string
	Constraint string
	Err        error
}

func (e *StorageError) Error() string {
	if e.SQLState == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: sqlstate %s constraint %q: %v", e.Op, e.SQLState, e.Constraint, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func WrapError(op string, err error) error {
	storageErr := &StorageError{Op: op, Err: err}

	var pgErr *pgconn.PgError
	if stdErrors.As(err, &pgErr) {
		storageErr.SQLState = pgErr.Code
		storageErr.Constraint = pgErr.ConstraintName
	}
	return storageErr
}
