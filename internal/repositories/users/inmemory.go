package users

import (
	"context"
	"sync"

	"github.com/dbelakovs/authcore/internal/common"
	"github.com/dbelakovs/authcore/internal/models"
	"github.com/google/uuid"
)

// InMemoryRepository is a map-backed Repository used in tests and
// development. Row ids are random UUIDs.
type InMemoryRepository struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{users: make(map[string]*models.User)}
}

func clone(u *models.User) *models.User {
	c := *u
	return &c
}

func (r *InMemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = uuid.NewString()
	r.users[user.ID] = clone(user)

	return user, nil
}

func (r *InMemoryRepository) FindIDsByName(ctx context.Context, name string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var ids []string
	for id, u := range r.users {
		if u.Name == name {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return clone(u), nil
}

// GetByIDForUpdate has no row locking in memory; callers relying on
// serialization must use the SQL repository.
func (r *InMemoryRepository) GetByIDForUpdate(ctx context.Context, id string) (*models.User, error) {
	return r.GetByID(ctx, id)
}

func (r *InMemoryRepository) UpdateLock(ctx context.Context, id string, lockUntil int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.LockUntil = lockUntil
	return nil
}
