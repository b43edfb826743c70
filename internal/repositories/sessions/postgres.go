package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dbelakovs/authcore/internal/common"
	"github.com/dbelakovs/authcore/internal/dbx"
	"github.com/dbelakovs/authcore/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, userID string, secretHash string) error {

	query :=
		`INSERT INTO sessions (user_id, secret_hash)
         VALUES ($1, $2)
		 `

	if _, err := r.db.ExecContext(ctx, query, userID, secretHash); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Find(ctx context.Context, secretHash string) (*models.Session, error) {
	query :=
		`SELECT id, user_id, secret_hash FROM sessions
		 WHERE secret_hash = $1
		 `

	session := &models.Session{}
	err := r.db.QueryRowContext(ctx, query, secretHash).Scan(
		&session.ID, &session.UserID, &session.SecretHash)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return session, nil
}
