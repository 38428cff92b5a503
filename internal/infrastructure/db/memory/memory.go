// Package memory provides in-process stores. It is the default driver so the
// server runs with zero configuration, and it backs the service and handler
// tests. Records are stored by value so callers never share memory with the
// store.
package memory

import (
	"context"
	"sync"

	"smart-grocery/internal/domain/entities"
	"smart-grocery/internal/domain/repositories"
)

type UserStore struct {
	mu    sync.RWMutex
	users map[string]entities.User // keyed by username
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]entities.User)}
}

func (s *UserStore) Create(ctx context.Context, user *entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[user.Username]; exists {
		return repositories.ErrDuplicateKey
	}
	s.users[user.Username] = *user
	return nil
}

func (s *UserStore) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[username]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// ResourceStore keeps one owned collection in a map keyed by record id.
type ResourceStore[E any, T interface {
	*E
	entities.Owned
}] struct {
	mu      sync.RWMutex
	records map[string]E
}

func NewResourceStore[E any, T interface {
	*E
	entities.Owned
}]() *ResourceStore[E, T] {
	return &ResourceStore[E, T]{records: make(map[string]E)}
}

func (s *ResourceStore[E, T]) Save(ctx context.Context, record T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.GetID()] = *record
	return nil
}

func (s *ResourceStore[E, T]) FindByID(ctx context.Context, id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[id]
	if !ok {
		return nil, nil
	}
	return T(&record), nil
}

func (s *ResourceStore[E, T]) FindByOwner(ctx context.Context, username string) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]T, 0)
	for id := range s.records {
		record := s.records[id]
		if T(&record).Owner() == username {
			records = append(records, T(&record))
		}
	}
	return records, nil
}

func (s *ResourceStore[E, T]) DeleteByID(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
	return nil
}
