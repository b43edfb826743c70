package sessions

import (
	"context"
	"sync"

	"github.com/dbelakovs/authcore/internal/common"
	"github.com/dbelakovs/authcore/internal/models"
	"github.com/google/uuid"
)

// InMemoryRepository is a map-backed Repository used in tests and
// development.
type InMemoryRepository struct {
	mu       sync.Mutex
	sessions map[string]*models.Session
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{sessions: make(map[string]*models.Session)}
}

func (r *InMemoryRepository) Create(ctx context.Context, userID string, secretHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[secretHash] = &models.Session{
		ID:         uuid.NewString(),
		UserID:     userID,
		SecretHash: secretHash,
	}
	return nil
}

func (r *InMemoryRepository) Find(ctx context.Context, secretHash string) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[secretHash]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *s
	return &c, nil
}
