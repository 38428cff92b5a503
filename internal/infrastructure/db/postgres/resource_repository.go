package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"smart-grocery/internal/domain/entities"
)

// ResourceRepository is the gorm-backed store shared by every owned
// collection. E is the record struct, T its pointer type.
type ResourceRepository[E any, T interface {
	*E
	entities.Owned
}] struct {
	db *gorm.DB
}

func NewResourceRepository[E any, T interface {
	*E
	entities.Owned
}](db *gorm.DB) *ResourceRepository[E, T] {
	return &ResourceRepository[E, T]{db: db}
}

// Save inserts the record or fully replaces the row with the same id.
func (r *ResourceRepository[E, T]) Save(ctx context.Context, record T) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *ResourceRepository[E, T]) FindByID(ctx context.Context, id string) (T, error) {
	var record E
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return T(&record), nil
}

func (r *ResourceRepository[E, T]) FindByOwner(ctx context.Context, username string) ([]T, error) {
	var records []E
	if err := r.db.WithContext(ctx).Where("user_id = ?", username).Find(&records).Error; err != nil {
		return nil, err
	}
	out := make([]T, 0, len(records))
	for i := range records {
		out = append(out, T(&records[i]))
	}
	return out, nil
}

func (r *ResourceRepository[E, T]) DeleteByID(ctx context.Context, id string) error {
	var record E
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&record).Error
}
