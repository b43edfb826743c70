package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dbelakovs/authcore/internal/auth"
	"github.com/dbelakovs/authcore/internal/common"
	"github.com/dbelakovs/authcore/internal/config"
	"github.com/dbelakovs/authcore/internal/cryptox"
	"github.com/dbelakovs/authcore/internal/dbx"
	"github.com/dbelakovs/authcore/internal/repositories/repomanager"
)

// Issuer produces a bearer credential for a verified user and resolves a
// presented credential back to the subject id. One implementation is chosen
// at startup; issuance modes are never mixed within a deployment.
type Issuer interface {
	// Issue mints a credential bound to userID. The handle tx joins the
	// sign-in transaction, so stateful issuers commit or roll back together
	// with the verification that authorized them.
	Issue(ctx context.Context, tx dbx.DBTX, userID string) (string, error)

	// Authenticate resolves credential to the bound subject id.
	Authenticate(ctx context.Context, credential string) (string, error)
}

// TokenIssuer delegates to the token authority: credentials are signed,
// self-contained, and never touch the record store.
type TokenIssuer struct {
	secret   []byte
	validity time.Duration
}

func NewTokenIssuer(cfg *config.Config) *TokenIssuer {
	return &TokenIssuer{secret: []byte(cfg.SecretKey), validity: cfg.TokenValidity}
}

func (i *TokenIssuer) Issue(ctx context.Context, tx dbx.DBTX, userID string) (string, error) {
	return auth.GenerateToken(userID, i.secret, i.validity)
}

func (i *TokenIssuer) Authenticate(ctx context.Context, credential string) (string, error) {
	return auth.GetUserIDFromToken(credential, i.secret)
}

// SessionIssuer generates opaque random session secrets and stores a link
// from the hashed secret to the user. Only the hash is persisted; the raw
// secret exists solely in the caller's hands.
type SessionIssuer struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	length      int
	rounds      int
}

func NewSessionIssuer(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *SessionIssuer {
	return &SessionIssuer{db: db, repomanager: m, length: cfg.SessionLength, rounds: cfg.HashRounds}
}

func (i *SessionIssuer) Issue(ctx context.Context, tx dbx.DBTX, userID string) (string, error) {
	secret, err := common.RandomString(i.length)
	if err != nil {
		return "", common.ErrorInternal
	}

	repo := i.repomanager.Sessions(tx)
	if err := repo.Create(ctx, userID, cryptox.Hash(secret, i.rounds)); err != nil {
		return "", err
	}

	return secret, nil
}

func (i *SessionIssuer) Authenticate(ctx context.Context, credential string) (string, error) {
	repo := i.repomanager.Sessions(i.db)

	session, err := repo.Find(ctx, cryptox.Hash(credential, i.rounds))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrInvalidSession
		}
		return "", err
	}

	return session.UserID, nil
}
