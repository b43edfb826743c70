package repomanager

import (
	"context"
	"database/sql"

	"github.com/dbelakovs/authcore/internal/dbx"
	"github.com/dbelakovs/authcore/internal/repositories/sessions"
	"github.com/dbelakovs/authcore/internal/repositories/users"
)

// InMemoryRepositoryManager hands out shared map-backed repositories,
// ignoring the DBTX argument. Used in tests and development.
type InMemoryRepositoryManager struct {
	users    *users.InMemoryRepository
	sessions *sessions.InMemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:    users.NewInMemoryRepository(),
		sessions: sessions.NewInMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}

func (m *InMemoryRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Sessions(db dbx.DBTX) sessions.Repository {
	return m.sessions
}
