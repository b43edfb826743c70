// Package services contains the engine's business logic. This file
// implements AuthService, which handles registration, password verification
// under the lockout policy, and credential issuance.
package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dbelakovs/authcore/internal/common"
	"github.com/dbelakovs/authcore/internal/config"
	"github.com/dbelakovs/authcore/internal/cryptox"
	"github.com/dbelakovs/authcore/internal/dbx"
	"github.com/dbelakovs/authcore/internal/lockout"
	"github.com/dbelakovs/authcore/internal/logging"
	"github.com/dbelakovs/authcore/internal/models"
	"github.com/dbelakovs/authcore/internal/repositories/repomanager"
)

// AuthService provides the three engine operations:
// - Register: create users with uniqueness and password-strength checks
// - SignIn: verify a password under the lockout policy and issue a credential
// - Authenticate: resolve a credential back to the subject id
type AuthService struct {
	db                *sql.DB
	repomanager       repomanager.RepositoryManager
	issuer            Issuer
	policy            *lockout.Policy
	logger            logging.Logger
	minPasswordLength int
	saltLength        int
	hashRounds        int
}

// NewAuthService constructs an AuthService using repositories, the chosen
// issuer, and engine config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, issuer Issuer, cfg *config.Config, logger logging.Logger) *AuthService {
	return &AuthService{
		db:                db,
		repomanager:       m,
		issuer:            issuer,
		policy:            &lockout.Policy{Cooldown: cfg.LockCooldown},
		logger:            logger,
		minPasswordLength: cfg.MinPasswordLength,
		saltLength:        cfg.SaltLength,
		hashRounds:        cfg.HashRounds,
	}
}

// Register creates a new user. Names must be unique and passwords must meet
// the minimum length; all checks precede any write.
func (s *AuthService) Register(ctx context.Context, name string, password string) error {
	repo := s.repomanager.Users(s.db)

	ids, err := repo.FindIDsByName(ctx, name)
	if err != nil {
		return fmt.Errorf("error searching users: %w", err)
	}
	// One or more existing rows both count as duplicate, so a pre-existing
	// data anomaly can never be compounded by another row.
	if len(ids) > 0 {
		return common.ErrDuplicateUser
	}

	if len(password) < s.minPasswordLength {
		return common.ErrWeakPassword
	}

	salt, err := common.RandomString(s.saltLength)
	if err != nil {
		return common.ErrorInternal
	}

	user := &models.User{
		Name: name,
		Salt: salt,
		Hash: cryptox.HashSalted(password, salt, s.hashRounds),
	}
	if _, err := repo.Create(ctx, user); err != nil {
		return fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info(ctx, "user registered", "name", name)
	return nil
}

// SignIn verifies the password for the named user and, on success, returns
// a freshly issued credential.
//
// Verification and any lock write run inside a single transaction with the
// user row locked, so concurrent attempts against the same user cannot race
// on the lock field.
func (s *AuthService) SignIn(ctx context.Context, name string, password string) (string, error) {
	ids, err := s.repomanager.Users(s.db).FindIDsByName(ctx, name)
	if err != nil {
		return "", fmt.Errorf("error searching users: %w", err)
	}
	if len(ids) != 1 {
		return "", common.ErrUserNotFound
	}
	userID := ids[0]

	var credential string
	var signInErr error

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		user, err := repo.GetByIDForUpdate(ctx, userID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				signInErr = common.ErrUserNotFound
				return nil
			}
			return err
		}

		// A locked attempt is rejected before the password is inspected
		// and never extends the lock.
		if s.policy.Locked(user.LockUntil) {
			signInErr = common.ErrUserLocked
			return nil
		}

		if !s.checkPassword(password, user.Salt, user.Hash) {
			// The lock write must commit even though sign-in fails, so the
			// failure is reported through signInErr rather than the
			// transaction error.
			if err := repo.UpdateLock(ctx, user.ID, s.policy.Next()); err != nil {
				return err
			}
			s.logger.Warn(ctx, "failed sign-in attempt, user locked", "name", name)
			signInErr = common.ErrWrongPassword
			return nil
		}

		credential, err = s.issuer.Issue(ctx, tx, user.ID)
		return err
	})
	if err != nil {
		return "", err
	}
	if signInErr != nil {
		return "", signInErr
	}

	return credential, nil
}

// Authenticate resolves a previously issued credential to the subject id.
func (s *AuthService) Authenticate(ctx context.Context, credential string) (string, error) {
	return s.issuer.Authenticate(ctx, credential)
}

func (s *AuthService) checkPassword(password, salt, storedHash string) bool {
	candidate := cryptox.HashSalted(password, salt, s.hashRounds)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(storedHash)) == 1
}
