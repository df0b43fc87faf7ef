package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Filter is a column → value equality condition set merged into a query.
// Filters always compose with (and can never override) the repository's
// default "not soft-deleted" clause.
type Filter map[string]any

// Repository is the uniform data-access contract every entity repository
// satisfies. Soft-delete and pagination semantics are enforced here once, so
// services never reimplement them.
type Repository[T any] interface {
	Create(ctx context.Context, entity *T) error
	GetAll(ctx context.Context, limit, offset int, filter Filter) ([]T, error)
	GetByID(ctx context.Context, id uuid.UUID, filter Filter) (*T, error)
	// ListByFilter matches rows with NO implicit soft-delete exclusion. It
	// exists for existence/uniqueness pre-checks that must also see
	// soft-deleted rows (e.g. username reuse after delete).
	ListByFilter(ctx context.Context, filter Filter) ([]T, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]any, filter Filter) (*T, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Base is the gorm-backed implementation of Repository, embedded by the
// monomorphized per-entity repositories.
type Base[T any] struct {
	db *gorm.DB
}

func NewBase[T any](db *gorm.DB) Base[T] {
	return Base[T]{db: db}
}

func (r *Base[T]) Create(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return translate(err)
	}
	return nil
}

// GetAll returns an insertion-ordered page of rows matching the filter and
// not soft-deleted.
func (r *Base[T]) GetAll(ctx context.Context, limit, offset int, filter Filter) ([]T, error) {
	var rows []T
	err := r.scoped(r.db.WithContext(ctx), filter).
		Order("created_at ASC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

func (r *Base[T]) GetByID(ctx context.Context, id uuid.UUID, filter Filter) (*T, error) {
	var row T
	err := r.scoped(r.db.WithContext(ctx), filter).
		Where("id = ?", id).
		First(&row).Error
	if err != nil {
		return nil, translate(err)
	}
	return &row, nil
}

func (r *Base[T]) ListByFilter(ctx context.Context, filter Filter) ([]T, error) {
	var rows []T
	q := r.db.WithContext(ctx).Model(new(T))
	if len(filter) > 0 {
		q = q.Where(map[string]any(filter))
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

// Update re-fetches the row under the filter plus the soft-delete clause,
// applies the partial field set and returns the fresh row. Keys absent from
// fields are untouched; updated_at is refreshed by gorm.
func (r *Base[T]) Update(ctx context.Context, id uuid.UUID, fields map[string]any, filter Filter) (*T, error) {
	if _, err := r.GetByID(ctx, id, filter); err != nil {
		return nil, err
	}

	// The soft-delete marker is owned by Delete; callers cannot smuggle it
	// through an update.
	delete(fields, "is_deleted")

	if len(fields) > 0 {
		res := r.scoped(r.db.WithContext(ctx).Model(new(T)), filter).
			Where("id = ?", id).
			Updates(fields)
		if res.Error != nil {
			return nil, translate(res.Error)
		}
	}
	return r.GetByID(ctx, id, filter)
}

// Delete marks the row soft-deleted. It is deliberately not idempotent: a
// second call finds no live row and reports ErrNotFound.
func (r *Base[T]) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Model(new(T)).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]any{"is_deleted": true})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// scoped applies the caller filter and then ANDs the default soft-delete
// clause last, so no filter value can widen the query to deleted rows.
func (r *Base[T]) scoped(q *gorm.DB, filter Filter) *gorm.DB {
	if len(filter) > 0 {
		q = q.Where(map[string]any(filter))
	}
	return q.Where("is_deleted = ?", false)
}
