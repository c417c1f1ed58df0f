// Package memory holds in-process repository implementations with the same
// contracts as the MongoDB ones. They back tests and local tooling.
package memory

import (
	"context"
	"fmt"
	"sync"

	"blog-service/internal/domain/entities"
	"blog-service/internal/domain/repositories"
)

type UserRepository struct {
	mu      sync.RWMutex
	byName  map[string]entities.User
	byEmail map[string]string
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byName:  make(map[string]entities.User),
		byEmail: make(map[string]string),
	}
}

var _ repositories.UserRepository = (*UserRepository)(nil)

// Create enforces the same uniqueness as the Mongo unique indexes.
func (r *UserRepository) Create(_ context.Context, user *entities.User) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[user.Username]; ok {
		return nil, fmt.Errorf("%w: username %q", repositories.ErrDuplicate, user.Username)
	}
	if _, ok := r.byEmail[user.Email]; ok {
		return nil, fmt.Errorf("%w: email %q", repositories.ErrDuplicate, user.Email)
	}

	r.byName[user.Username] = *user
	r.byEmail[user.Email] = user.Username
	stored := *user
	return &stored, nil
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byName[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	u := r.byName[name]
	return &u, nil
}
