// Package repomanager bundles the engine's repositories behind a single
// factory so services can run them against either a live connection or a
// transaction handle.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dbelakovs/authcore/internal/dbx"
	"github.com/dbelakovs/authcore/internal/repositories/sessions"
	"github.com/dbelakovs/authcore/internal/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Sessions(db dbx.DBTX) sessions.Repository
}
