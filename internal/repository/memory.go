package repository

import (
	"context"
	"sync"

	"github.com/atinyakov/AuthKeeper/internal/models"
)

// MemoryUserRepository stores users in a process-local map. It is the
// default store: empty at process start, no durability across restarts.
// Safe for concurrent use.
type MemoryUserRepository struct {
	// mu guards users. CreateUser holds the write lock across the
	// existence check and the insert, so concurrent registrations of
	// the same username cannot both succeed.
	mu sync.RWMutex
	// users maps normalized username to the stored record.
	users map[string]models.User
}

// NewMemoryUserRepository creates an empty in-memory user store.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]models.User)}
}

// FindUser returns the stored user with the given username, or
// ErrUserNotFound if none exists.
func (r *MemoryUserRepository) FindUser(_ context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

// CreateUser inserts a new user record. It returns ErrUserExists if a
// user with the same username is already stored; the store is unchanged
// in that case.
func (r *MemoryUserRepository) CreateUser(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Username]; ok {
		return ErrUserExists
	}
	r.users[user.Username] = *user
	return nil
}
