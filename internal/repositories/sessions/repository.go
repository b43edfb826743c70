// Package sessions declares the repository contract for session links:
// one-way mappings from a hashed session secret to the owning user.
package sessions

import (
	"context"

	"github.com/dbelakovs/authcore/internal/models"
)

type Repository interface {
	// Create stores a new link from secretHash to userID.
	Create(ctx context.Context, userID string, secretHash string) error

	// Find resolves a link by the hashed secret. Implementations return
	// ErrorNotFound when no link exists.
	Find(ctx context.Context, secretHash string) (*models.Session, error)
}
