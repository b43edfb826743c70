package users

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

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (username, salt, password_hash, lock_until)
         VALUES ($1, $2, $3, $4)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.Name, user.Salt, user.Hash, user.LockUntil).Scan(&user.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) FindIDsByName(ctx context.Context, name string) ([]string, error) {
	query :=
		`SELECT id FROM users
		 WHERE username = $1
		 `

	rows, err := r.db.QueryContext(ctx, query, name)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return ids, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.get(ctx, id, false)
}

func (r *PostgresRepository) GetByIDForUpdate(ctx context.Context, id string) (*models.User, error) {
	return r.get(ctx, id, true)
}

func (r *PostgresRepository) get(ctx context.Context, id string, forUpdate bool) (*models.User, error) {
	query :=
		`SELECT id, username, salt, password_hash, lock_until FROM users
		 WHERE id = $1
		 `
	if forUpdate {
		query += ` FOR UPDATE`
	}

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Salt, &user.Hash, &user.LockUntil)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) UpdateLock(ctx context.Context, id string, lockUntil int64) error {
	query :=
		`UPDATE users SET lock_until = $2
		 WHERE id = $1
		 `

	if _, err := r.db.ExecContext(ctx, query, id, lockUntil); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
