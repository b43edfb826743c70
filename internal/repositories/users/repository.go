// Package users declares the repository contract for user records.
package users

import (
	"context"

	"github.com/dbelakovs/authcore/internal/models"
)

type Repository interface {
	// Create inserts a new user and returns it with its generated row id.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// FindIDsByName returns the row ids of every user with the given name.
	// A healthy store holds at most one.
	FindIDsByName(ctx context.Context, name string) ([]string, error)

	// GetByID returns the user with the given row id, or ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// GetByIDForUpdate is GetByID with the row locked for the duration of
	// the surrounding transaction, serializing verify-then-lock sequences
	// against the same user.
	GetByIDForUpdate(ctx context.Context, id string) (*models.User, error)

	// UpdateLock sets the user's lock deadline (unix seconds).
	UpdateLock(ctx context.Context, id string, lockUntil int64) error
}
