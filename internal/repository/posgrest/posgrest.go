package posgrest

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	storage "github.com/jeffleon2/draftea-billing-service/internal/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// repository is a generic GORM-based repository implementation.
// It provides the lookups and writes shared by every billing entity type T.
type repository[T interface{}] struct {
	db *gorm.DB
}

// New creates a new generic repository instance for type T.
func New[T interface{}](db *gorm.DB) *repository[T] {
	return &repository[T]{
		db,
	}
}

// Create inserts a new entity without touching its associations. Constraint
// violations come back as storage.ErrDanglingReference or
// storage.ErrDuplicate.
func (r *repository[T]) Create(ctx context.Context, entity *T) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Create(entity).Error)
}

// GetByID retrieves a single entity by its ID. A missing row is not an
// error: it returns nil, nil.
func (r *repository[T]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// FirstBy retrieves the first entity matching all the given column values,
// or nil when none does.
func (r *repository[T]) FirstBy(ctx context.Context, conds map[string]interface{}) (*T, error) {
	var entities []T
	if err := r.db.WithContext(ctx).Where(conds).Limit(1).Find(&entities).Error; err != nil {
		return nil, err
	}
	if len(entities) == 0 {
		return nil, nil
	}
	return &entities[0], nil
}

// Replace writes every column of the entity back to its existing row. A row
// deleted since it was loaded stays deleted.
func (r *repository[T]) Replace(ctx context.Context, entity *T) error {
	return translateError(r.db.WithContext(ctx).Model(entity).Select("*").Omit(clause.Associations).Updates(entity).Error)
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", storage.ErrDanglingReference, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", storage.ErrDuplicate, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %v", storage.ErrDanglingReference, err)
		case pgUniqueViolation:
			return fmt.Errorf("%w: %v", storage.ErrDuplicate, err)
		}
	}

	return err
}
