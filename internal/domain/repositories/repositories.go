package repositories

import (
	"context"
	"errors"

	"smart-grocery/internal/domain/entities"
)

// ErrDuplicateKey is returned by stores when a unique constraint rejects a
// write. The constraint is the authoritative guard against duplicate
// usernames; a concurrent duplicate signup surfaces through this error.
var ErrDuplicateKey = errors.New("duplicate key")

type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	// FindByUsername returns (nil, nil) when no such user exists.
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
}

// ResourceRepository is the storage capability shared by every owned
// collection. The relational and document implementations are
// interchangeable behind it.
type ResourceRepository[T entities.Owned] interface {
	// Save inserts the record or fully replaces the one with the same id.
	Save(ctx context.Context, record T) error
	// FindByID returns a nil record and nil error when no record exists.
	FindByID(ctx context.Context, id string) (T, error)
	FindByOwner(ctx context.Context, username string) ([]T, error)
	DeleteByID(ctx context.Context, id string) error
}
